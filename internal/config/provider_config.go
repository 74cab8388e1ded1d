package config

import (
	"strconv"
	"time"
)

const (
	apiEndpointVar             = "API_ENDPOINT"
	refreshThresholdMinutesVar = "REFRESH_THRESHOLD_MINUTES"

	defaultRefreshThresholdMinutes = 5
)

type ProviderConfig interface {
	GetAPIEndpoint() string
	GetRefreshThreshold() time.Duration
}

type Provider struct{}

var _ ProviderConfig = Provider{}

func (Provider) GetAPIEndpoint() string {
	return GetEnv(apiEndpointVar, "")
}

// GetRefreshThreshold returns the minutes-before-expiry window that
// triggers a proactive token refresh. Unset, malformed, or
// non-positive values fall back to the default of 5 minutes.
func (Provider) GetRefreshThreshold() time.Duration {
	minutes, err := strconv.Atoi(GetEnv(refreshThresholdMinutesVar, ""))
	if err != nil || minutes <= 0 {
		minutes = defaultRefreshThresholdMinutes
	}
	return time.Duration(minutes) * time.Minute
}
