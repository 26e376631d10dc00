package config_test

import (
	"testing"

	"github.com/jrsteele09/go-jobsearch/internal/config"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("ADAPTATION_FILE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("ENV", "")

	c := config.New()
	require.Equal(t, "Job Search", c.GetAppName())
	require.Equal(t, config.DefaultAdaptationFile, c.GetAdaptationFile())
	require.Equal(t, "info", c.GetLogLevel())
	require.Equal(t, "console", c.GetLogFormat())
	require.Equal(t, "DEV", c.GetEnv())
}

func TestOverridesFromEnvironment(t *testing.T) {
	t.Setenv("ADAPTATION_FILE", "/tmp/adaptation.dat")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("ENV", "PROD")

	c := config.New()
	require.Equal(t, "/tmp/adaptation.dat", c.GetAdaptationFile())
	require.Equal(t, "debug", c.GetLogLevel())
	require.Equal(t, "json", c.GetLogFormat())
	require.Equal(t, "PROD", c.GetEnv())
}
