package config

import "fmt"

type Config interface {
	EnvConfig
	CorsConfig
	ProviderConfig
	SecurityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	Provider
	Security
}

func New() Config {
	return mainConfig{}
}

// Validate checks the options that have no usable default.
func Validate(c Config) error {
	if c.GetAPIEndpoint() == "" {
		return fmt.Errorf("API_ENDPOINT is required")
	}
	return nil
}
