package config

import (
	"strings"
	"time"
)

const (
	apiBaseURLVar     = "API_BASE_URL"
	requestTimeoutVar = "REQUEST_TIMEOUT"

	localAPIBaseURL      = "http://localhost:8000"
	productionAPIBaseURL = "https://api.tajweer.com"

	defaultRequestTimeout = 30 * time.Second
)

type API struct{}

var _ APIConfig = API{}

// GetAPIBaseURL returns the backend root including the /api prefix.
// ENV=PROD ignores API_BASE_URL and always targets the production host.
func (API) GetAPIBaseURL() string {
	base := GetEnv(apiBaseURLVar, localAPIBaseURL)
	if (EnvVars{}).GetEnv() == EnvProduction {
		base = productionAPIBaseURL
	}
	return strings.TrimRight(base, "/") + "/api"
}

func (API) GetRequestTimeout() time.Duration {
	raw := GetEnv(requestTimeoutVar, "")
	if raw == "" {
		return defaultRequestTimeout
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return defaultRequestTimeout
	}
	return d
}
