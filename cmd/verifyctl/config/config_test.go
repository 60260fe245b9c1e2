package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	os.Unsetenv("VERIFYKIT_APP_ID")
	os.Unsetenv("VERIFYKIT_SECRET_KEY")
	os.Unsetenv("VERIFYKIT_ENDPOINT")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Empty(t, cfg.GetApplicationID())
	assert.Empty(t, cfg.GetSharedSecretKey())
	assert.Empty(t, cfg.GetEnvironmentHost())
}

func TestLoad_EnvVar(t *testing.T) {
	os.Setenv("VERIFYKIT_APP_ID", "app-env")
	defer os.Unsetenv("VERIFYKIT_APP_ID")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "app-env", cfg.GetApplicationID())
}

func TestGetters_Priority(t *testing.T) {
	t.Run("env var takes precedence over config file", func(t *testing.T) {
		os.Setenv("VERIFYKIT_APP_ID", "app-env")
		os.Setenv("VERIFYKIT_SECRET_KEY", "secret-env")
		os.Setenv("VERIFYKIT_ENDPOINT", "https://env.example.com")
		defer func() {
			os.Unsetenv("VERIFYKIT_APP_ID")
			os.Unsetenv("VERIFYKIT_SECRET_KEY")
			os.Unsetenv("VERIFYKIT_ENDPOINT")
		}()

		cfg := &Config{
			ApplicationID:   "app-file",
			SharedSecretKey: "secret-file",
			EnvironmentHost: "https://file.example.com",
		}

		assert.Equal(t, "app-env", cfg.GetApplicationID())
		assert.Equal(t, "secret-env", cfg.GetSharedSecretKey())
		assert.Equal(t, "https://env.example.com", cfg.GetEnvironmentHost())
	})

	t.Run("config file value when no env var", func(t *testing.T) {
		os.Unsetenv("VERIFYKIT_APP_ID")
		os.Unsetenv("VERIFYKIT_SECRET_KEY")
		os.Unsetenv("VERIFYKIT_ENDPOINT")

		cfg := &Config{
			ApplicationID:   "app-file",
			SharedSecretKey: "secret-file",
			EnvironmentHost: "https://file.example.com",
		}

		assert.Equal(t, "app-file", cfg.GetApplicationID())
		assert.Equal(t, "secret-file", cfg.GetSharedSecretKey())
		assert.Equal(t, "https://file.example.com", cfg.GetEnvironmentHost())
	})
}
