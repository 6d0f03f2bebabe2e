package config

import (
	"os"
	"path/filepath"

	"github.com/oye-labs/oye/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized config keys.
const (
	KeyDefaultDir = "default_dir"
	KeyLogLevel   = "log_level"
)

var v = viper.New()

// Dir returns the home catalog directory (~/.oye/), which also holds
// config.yaml. OYE_HOME overrides it. Returns "" when neither OYE_HOME nor
// the user's home directory is known.
func Dir() string {
	if d := os.Getenv(branding.EnvVar("HOME")); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.oye/config.yaml),
// or "" when Dir is unknown.
func FilePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
// Each call starts from a clean instance so stale values never leak between loads.
func Load() {
	v = viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	v.SetDefault(KeyLogLevel, "warn")

	path := FilePath()
	if path == "" {
		return
	}
	v.SetConfigFile(path)
	// Ignore error if config file doesn't exist yet.
	_ = v.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// DefaultDir returns the configured bundled catalog directory, or "" when unset.
func DefaultDir() string { return Get(KeyDefaultDir) }

// LogLevel returns the configured log level name.
func LogLevel() string { return Get(KeyLogLevel) }
