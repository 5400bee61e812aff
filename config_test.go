package mailtm

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"MAILTM_BASE_URL", "MAILTM_TIMEOUT", "MAILTM_DEBUG", "MAILTM_USER_AGENT", "MAILTM_TOKEN"} {
		// Setenv restores the original value after the test.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Zero(t, cfg.Timeout)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.Token)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("MAILTM_BASE_URL", "http://localhost:8080")
	t.Setenv("MAILTM_TIMEOUT", "7s")
	t.Setenv("MAILTM_DEBUG", "true")
	t.Setenv("MAILTM_USER_AGENT", "tests/1.0")
	t.Setenv("MAILTM_TOKEN", "jwt")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Config{
		BaseURL:   "http://localhost:8080",
		Timeout:   7 * time.Second,
		Debug:     true,
		UserAgent: "tests/1.0",
		Token:     "jwt",
	}, cfg)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("MAILTM_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfig_Options(t *testing.T) {
	cfg := Config{
		BaseURL:   "http://localhost:8080",
		Timeout:   3 * time.Second,
		Debug:     true,
		UserAgent: "tests/1.0",
	}

	applied := &clientConfig{}
	for _, opt := range cfg.Options() {
		opt(applied)
	}

	assert.Equal(t, "http://localhost:8080", applied.baseURL)
	assert.Equal(t, 3*time.Second, applied.timeout)
	assert.True(t, applied.debug)
	assert.Equal(t, "tests/1.0", applied.userAgent)
}

func TestConfig_OptionsBuildClient(t *testing.T) {
	c, err := New(Config{BaseURL: "http://localhost:8080"}.Options()...)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "http://localhost:8080", c.BaseURL())
}
