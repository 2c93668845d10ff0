package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.API.URL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, ProfileEnhanced, cfg.Terminal.Profile)
	assert.Equal(t, "fast", cfg.Terminal.Speed)
	assert.Equal(t, "classic", cfg.Terminal.Theme)
	assert.True(t, cfg.Enhanced())
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)

	configDir := filepath.Join(dir, "termfolio")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(
		"terminal:\n  speed: slow\n  theme: amber\napi:\n  url: http://file.example\n"), 0o600))

	t.Setenv("TERMFOLIO_API_URL", "http://env.example")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "slow", cfg.Terminal.Speed)
	assert.Equal(t, "amber", cfg.Terminal.Theme)
	assert.Equal(t, "http://env.example", cfg.API.URL)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"TERMFOLIO_TERMINAL_PROFILE=basic\nTERMFOLIO_TERMINAL_HOSTNAME=fromdotenv\n"), 0o600))
	t.Setenv("TERMFOLIO_TERMINAL_HOSTNAME", "fromenv")
	t.Setenv("TERMFOLIO_TERMINAL_PROFILE", "")
	require.NoError(t, os.Unsetenv("TERMFOLIO_TERMINAL_PROFILE"))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.Terminal.Hostname)
	assert.Equal(t, ProfileBasic, cfg.Terminal.Profile)
	assert.False(t, cfg.Enhanced())
}

func TestLoadExplicitMissingFile(t *testing.T) {
	isolate(t)
	_, err := Load(viper.New(), "/nonexistent/termfolio.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(_ *Config) {}},
		{name: "profile case folded", mutate: func(c *Config) { c.Terminal.Profile = "BASIC" }},
		{name: "bad profile", mutate: func(c *Config) { c.Terminal.Profile = "fancy" }, wantErr: true},
		{name: "bad speed", mutate: func(c *Config) { c.Terminal.Speed = "ludicrous" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.API.Timeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				API:      API{Timeout: time.Second},
				Terminal: Terminal{Profile: ProfileEnhanced, Speed: "fast"},
			}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatePath(t *testing.T) {
	cfg := Config{Terminal: Terminal{StateDir: "/var/lib/termfolio"}}
	assert.Equal(t, "/var/lib/termfolio/state.yaml", cfg.StatePath())
}
