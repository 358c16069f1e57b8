package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"EMS_APP_NAME":     os.Getenv("EMS_APP_NAME"),
		"EMS_APP_ENV":      os.Getenv("EMS_APP_ENV"),
		"EMS_STORAGE_FILE": os.Getenv("EMS_STORAGE_FILE"),
		"EMS_SMTP_ENABLED": os.Getenv("EMS_SMTP_ENABLED"),
		"EMS_SMTP_HOST":    os.Getenv("EMS_SMTP_HOST"),
		"EMS_SMTP_FROM":    os.Getenv("EMS_SMTP_FROM"),
		"EMS_LOG_LEVEL":    os.Getenv("EMS_LOG_LEVEL"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when nothing is set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "ems", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "employees.csv", cfg.Storage.File)
		assert.False(t, cfg.SMTP.Enabled)
		assert.Equal(t, 587, cfg.SMTP.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "stderr", cfg.Log.Output)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		clearEnv()
		os.Setenv("EMS_STORAGE_FILE", "/tmp/staff.csv")
		os.Setenv("EMS_LOG_LEVEL", "debug")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "/tmp/staff.csv", cfg.Storage.File)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("reads a TOML config file", func(t *testing.T) {
		clearEnv()
		path := filepath.Join(t.TempDir(), "config.toml")
		data := "[app]\nname = \"hr-tool\"\n\n[storage]\nfile = \"people.csv\"\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "hr-tool", cfg.App.Name)
		assert.Equal(t, "people.csv", cfg.Storage.File)
	})

	t.Run("rejects invalid log level", func(t *testing.T) {
		clearEnv()
		os.Setenv("EMS_LOG_LEVEL", "loud")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("requires host and from when smtp is enabled", func(t *testing.T) {
		clearEnv()
		os.Setenv("EMS_SMTP_ENABLED", "true")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "smtp.host is required")

		os.Setenv("EMS_SMTP_HOST", "smtp.example.com")
		_, err = Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "smtp.from is required")

		os.Setenv("EMS_SMTP_FROM", "hr@example.com")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.True(t, cfg.SMTP.Enabled)
	})
}
