package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// DirName is the per-user configuration directory under $HOME
	DirName = ".internconnect"

	fileName    = "config.json"
	logFileName = "internconnect.log"
)

// Config represents the application configuration. Every field can be
// overridden with the matching INTERNCONNECT_* environment variable.
type Config struct {
	// Env selects the log format and level: local, dev or prod
	Env string `json:"env" env:"INTERNCONNECT_ENV" env-description:"Log format and level: local, dev or prod" env-default:"local"`

	// Optional YAML file replacing the built-in sample data
	SeedPath string `json:"seed_path,omitempty" env:"INTERNCONNECT_SEED_PATH" env-description:"YAML file replacing the built-in sample data"`

	// Tab gating policy: guarded or open
	Policy string `json:"policy" env:"INTERNCONNECT_POLICY" env-description:"Tab gating policy: guarded or open" env-default:"guarded"`

	// Role to log in as when the UI starts; empty shows the login screen
	DefaultRole string `json:"default_role,omitempty" env:"INTERNCONNECT_DEFAULT_ROLE" env-description:"Role to log in as on start: student or recruiter"`

	// Student treated as the logged-in user; empty means the first student
	Student string `json:"student,omitempty" env:"INTERNCONNECT_STUDENT" env-description:"Name of the student to view as"`

	// Log file location; empty means internconnect.log in the config directory
	LogPath string `json:"log_path,omitempty" env:"INTERNCONNECT_LOG_PATH" env-description:"Log file path"`
}

// Load loads the configuration from the given file path. A missing file is
// not an error: defaults and environment overrides are returned instead.
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save saves the configuration to the given file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ResolvedLogPath returns LogPath, or the default log file inside dir
func (c *Config) ResolvedLogPath(dir string) string {
	if c.LogPath != "" {
		return c.LogPath
	}
	return filepath.Join(dir, logFileName)
}

// GetGlobalConfigDir returns the per-user configuration directory
func GetGlobalConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, DirName), nil
}

// GetGlobalConfigPath returns the path to the per-user configuration file
func GetGlobalConfigPath() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Usage describes the environment variables Config understands
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
