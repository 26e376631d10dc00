package config

import (
	"os"
	"strings"
)

const (
	appNameVar        = "APP_NAME"
	adaptationFileVar = "ADAPTATION_FILE"
	dotEnvFileVar     = "DOTENV_FILE"
	logLevelVar       = "LOG_LEVEL"
	logFormatVar      = "LOG_FORMAT"

	DefaultAdaptationFile = "JobSearch_AdaptableData.dat"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Job Search")
}

// GetAdaptationFile returns the path of the key/value adaptation data read by the gateway at startup.
// A missing file is not an error, the gateway falls back to its defaults.
func (EnvVars) GetAdaptationFile() string {
	return GetEnv(adaptationFileVar, DefaultAdaptationFile)
}

func (EnvVars) GetDotEnvFile() string {
	return GetEnv(dotEnvFileVar, ".env")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

type Logging struct{}

var _ LoggingConfig = Logging{}

func (Logging) GetLogLevel() string {
	return strings.ToLower(GetEnv(logLevelVar, "info"))
}

// GetLogFormat is either "console" or "json"
func (Logging) GetLogFormat() string {
	return strings.ToLower(GetEnv(logFormatVar, "console"))
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
