// Package config loads tasca settings from the user's TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tasca-io/tasca/internal/task"
)

// HomeEnv is the environment variable that relocates the tasca home
// directory.
const HomeEnv = "TASCA_HOME"

const (
	configFileName = "config.toml"
	tasksFileName  = "tasks.json"
)

// Config holds user settings. Every field is optional in the file; empty
// values fall back to defaults at load time.
type Config struct {
	TasksFile       string `toml:"tasks_file"`
	DefaultPriority string `toml:"default_priority"`
	DefaultCategory string `toml:"default_category"`
}

// Home returns the tasca home directory: $TASCA_HOME if set, ~/.tasca
// otherwise.
func Home() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return expandPath(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tasca"
	}
	return filepath.Join(home, ".tasca")
}

// Path returns the config file location inside the tasca home directory.
func Path() string {
	return filepath.Join(Home(), configFileName)
}

// Load reads the config file, fills in defaults, and validates the result.
// A missing file yields pure defaults; a malformed one is an error.
func Load() (*Config, error) {
	return loadFile(Path())
}

func loadFile(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if cfg.TasksFile == "" {
		cfg.TasksFile = filepath.Join(Home(), tasksFileName)
	} else {
		cfg.TasksFile = expandPath(cfg.TasksFile)
	}

	if cfg.DefaultPriority == "" {
		cfg.DefaultPriority = string(task.DefaultPriority)
	}
	p, err := task.ParsePriority(cfg.DefaultPriority)
	if err != nil {
		return nil, fmt.Errorf("config %s: default_priority: %w", path, err)
	}
	cfg.DefaultPriority = string(p)

	if cfg.DefaultCategory == "" {
		cfg.DefaultCategory = string(task.DefaultCategory)
	}
	c, err := task.ParseCategory(cfg.DefaultCategory)
	if err != nil {
		return nil, fmt.Errorf("config %s: default_category: %w", path, err)
	}
	cfg.DefaultCategory = string(c)

	return cfg, nil
}

// Priority returns the default priority for new tasks.
func (c *Config) Priority() task.Priority {
	return task.Priority(c.DefaultPriority)
}

// Category returns the default category for new tasks.
func (c *Config) Category() task.Category {
	return task.Category(c.DefaultCategory)
}

// expandPath turns a leading ~ into the user's home directory.
func expandPath(p string) string {
	if p == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return p
	}
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}
