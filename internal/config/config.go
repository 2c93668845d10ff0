// Package config loads termfolio settings from defaults, an optional YAML
// file, .env files and TERMFOLIO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix shared by every termfolio environment variable.
const EnvPrefix = "TERMFOLIO"

// Profile names the terminal feature set.
const (
	ProfileBasic    = "basic"
	ProfileEnhanced = "enhanced"
)

// API holds backend client settings. An empty URL selects the in-process content store.
type API struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Terminal holds interpreter and renderer settings.
type Terminal struct {
	Profile  string `mapstructure:"profile"`
	Speed    string `mapstructure:"speed"`
	Theme    string `mapstructure:"theme"`
	Hostname string `mapstructure:"hostname"`
	StateDir string `mapstructure:"state_dir"`
}

// Owner is the portfolio owner shown by contact, banner and copy.
type Owner struct {
	Name     string `mapstructure:"name"`
	Title    string `mapstructure:"title"`
	Email    string `mapstructure:"email"`
	LinkedIn string `mapstructure:"linkedin"`
	GitHub   string `mapstructure:"github"`
}

// Server holds backend listener settings.
type Server struct {
	Addr       string `mapstructure:"addr"`
	ContentDir string `mapstructure:"content_dir"`
	Hostname   string `mapstructure:"hostname"`
}

// SMTP holds outgoing mail settings for contact submissions. Mail is disabled when Host is empty.
type SMTP struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`
}

// Log holds logger settings.
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Config is the fully resolved termfolio configuration.
type Config struct {
	API      API      `mapstructure:"api"`
	Terminal Terminal `mapstructure:"terminal"`
	Owner    Owner    `mapstructure:"profile"`
	Server   Server   `mapstructure:"server"`
	SMTP     SMTP     `mapstructure:"smtp"`
	Log      Log      `mapstructure:"log"`
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.url", "")
	v.SetDefault("api.timeout", 10*time.Second)

	v.SetDefault("terminal.profile", ProfileEnhanced)
	v.SetDefault("terminal.speed", "fast")
	v.SetDefault("terminal.theme", "classic")
	v.SetDefault("terminal.hostname", "portfolio")
	v.SetDefault("terminal.state_dir", "")

	v.SetDefault("profile.name", "Alex Morgan")
	v.SetDefault("profile.title", "Software Engineer")
	v.SetDefault("profile.email", "alex@example.com")
	v.SetDefault("profile.linkedin", "https://www.linkedin.com/in/alexmorgan")
	v.SetDefault("profile.github", "https://github.com/alexmorgan")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.content_dir", "")
	v.SetDefault("server.hostname", "portfolio")

	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("smtp.to", "")

	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
}

// UserConfigDir returns $XDG_CONFIG_HOME/termfolio, falling back to ~/.config/termfolio.
func UserConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "termfolio"), nil
}

// LoadDotEnv loads the config directory .env and then the working directory .env.
// Variables already present in the environment are never overridden.
// Missing files are not an error.
func LoadDotEnv(configDir, workDir string) error {
	for _, dir := range []string{configDir, workDir} {
		if dir == "" {
			continue
		}
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("failed to load .env file %s: %w", envPath, err)
		}
	}
	return nil
}

// Load resolves configuration into a Config. configFile overrides the default
// config file location; a missing default file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	configDir, err := UserConfigDir()
	if err != nil {
		configDir = ""
	}
	workDir, _ := os.Getwd()
	if err := LoadDotEnv(configDir, workDir); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else if configDir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return Decode(v)
}

// Decode unmarshals v into a Config and validates it.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Terminal.Profile) {
	case ProfileBasic, ProfileEnhanced:
		c.Terminal.Profile = strings.ToLower(c.Terminal.Profile)
	default:
		return fmt.Errorf("invalid terminal profile %q (expected %s or %s)", c.Terminal.Profile, ProfileBasic, ProfileEnhanced)
	}

	switch strings.ToLower(c.Terminal.Speed) {
	case "instant", "fast", "medium", "slow":
		c.Terminal.Speed = strings.ToLower(c.Terminal.Speed)
	default:
		return fmt.Errorf("invalid typing speed %q (expected instant, fast, medium or slow)", c.Terminal.Speed)
	}

	if c.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %s", c.API.Timeout)
	}
	return nil
}

// Enhanced reports whether the enhanced feature set is enabled.
func (c *Config) Enhanced() bool {
	return c.Terminal.Profile == ProfileEnhanced
}

// StatePath returns the local-flag state file path, defaulting to the user config directory.
func (c *Config) StatePath() string {
	dir := c.Terminal.StateDir
	if dir == "" {
		userDir, err := UserConfigDir()
		if err != nil {
			return ""
		}
		dir = userDir
	}
	return filepath.Join(dir, "state.yaml")
}
