package config

import (
	"os"
	"strings"
)

const (
	appNameVar  = "APP_NAME"
	envVar      = "ENV"
	logLevelVar = "LOG_LEVEL"

	// EnvProduction selects the production API base URL and JSON logs.
	EnvProduction = "PROD"
	// EnvDevelopment is used when ENV is unset.
	EnvDevelopment = "DEV"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Tajweer Admin")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv(envVar)
	if env == "" {
		return EnvDevelopment
	}
	return strings.ToUpper(env)
}

// GetLogLevel returns the zerolog level name. DEV defaults to debug.
func (e EnvVars) GetLogLevel() string {
	if e.GetEnv() == EnvDevelopment {
		return GetEnv(logLevelVar, "debug")
	}
	return GetEnv(logLevelVar, "info")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
