package config

type Config interface {
	EnvConfig
	LoggingConfig
}

type EnvConfig interface {
	GetAppName() string
	GetAdaptationFile() string
	GetDotEnvFile() string
	GetEnv() string
}

type LoggingConfig interface {
	GetLogLevel() string
	GetLogFormat() string
}

type mainConfig struct {
	EnvVars
	Logging
}

func New() Config {
	return mainConfig{}
}
