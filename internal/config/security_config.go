package config

import (
	"strconv"
	"time"
)

const (
	sessionSecretVar  = "SESSION_SECRET"
	sessionTTLDaysVar = "SESSION_TTL_DAYS"

	defaultSessionTTLDays = 30
)

type SecurityConfig interface {
	GetSessionSecret() []byte
	GetSessionTTL() time.Duration
}

type Security struct{}

var _ SecurityConfig = Security{}

func (Security) GetSessionSecret() []byte {
	// The default only exists so a DEV instance starts without any
	// environment; production deployments must set SESSION_SECRET.
	return []byte(GetEnv(sessionSecretVar, "dev-insecure-session-secret"))
}

// GetSessionTTL returns how long a session record (and its cookie)
// survives, independent of the access token's own expiry.
func (Security) GetSessionTTL() time.Duration {
	days, err := strconv.Atoi(GetEnv(sessionTTLDaysVar, ""))
	if err != nil || days <= 0 {
		days = defaultSessionTTLDays
	}
	return time.Duration(days) * 24 * time.Hour
}
