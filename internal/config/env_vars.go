package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	portEnvVar = "PORT"
	appNameVar = "APP_NAME"
	envVar     = "ENV"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Storefront Auth")
}

func (EnvVars) GetEnv() string {
	return GetEnv(envVar, "DEV")
}
