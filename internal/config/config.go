// Package config loads the tool configuration from a YAML file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/agtools/agswitch/internal/account"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Close   CloseConfig   `yaml:"close"`
	Backup  BackupConfig  `yaml:"backup"`
	Logging LoggingConfig `yaml:"logging"`
}

// AppConfig overrides the discovered Antigravity install locations.
type AppConfig struct {
	DatabasePath   string `yaml:"database_path"`
	ExecutablePath string `yaml:"executable_path"`
}

type CloseConfig struct {
	Timeout      string `yaml:"timeout"`
	PollInterval string `yaml:"poll_interval"`
	ForceKill    *bool  `yaml:"force_kill"`
}

type BackupConfig struct {
	Dir  string   `yaml:"dir"`
	Keys []string `yaml:"keys"`
}

type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

func (c *CloseConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

func (c *CloseConfig) GetPollInterval() time.Duration {
	d, err := time.ParseDuration(c.PollInterval)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}

// ForceKillEnabled reports whether unresponsive processes may be killed.
// Defaults to true when the field is absent from the file.
func (c *CloseConfig) ForceKillEnabled() bool {
	if c.ForceKill == nil {
		return true
	}
	return *c.ForceKill
}

func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	setDefaults(&cfg)

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Close.Timeout == "" {
		cfg.Close.Timeout = "10s"
	}
	if cfg.Close.PollInterval == "" {
		cfg.Close.PollInterval = "500ms"
	}
	if cfg.Backup.Dir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.Backup.Dir = filepath.Join(home, ".agswitch", "backups")
		} else {
			cfg.Backup.Dir = "backups"
		}
	}
	if len(cfg.Backup.Keys) == 0 {
		cfg.Backup.Keys = account.DefaultKeys()
	}
}
