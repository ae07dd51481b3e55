// Package config loads the simulator configuration from a yaml file
// with environment overrides. Every field has a playable default, so
// the game runs without any file present.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version string  `yaml:"version" json:"version"`
	Balance Balance `yaml:"balance" json:"balance"`
	Saves   Saves   `yaml:"saves" json:"saves"`
	History History `yaml:"history" json:"history"`
}

// Saves configures the save-file store.
type Saves struct {
	Dir string `yaml:"dir" json:"dir"`
	// AutosaveKeep is how many recent autosave slots survive rotation.
	AutosaveKeep int `yaml:"autosave_keep" json:"autosave_keep"`
}

// History configures the day-summary recorder.
type History struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Path    string `yaml:"path" json:"path"`
}

func (c *Config) ApplyDefaults() {
	def := Default()
	if c.Version == "" {
		c.Version = def.Version
	}
	c.Balance.applyDefaults()
	if c.Saves.Dir == "" {
		c.Saves.Dir = def.Saves.Dir
	}
	if c.Saves.AutosaveKeep <= 0 {
		c.Saves.AutosaveKeep = def.Saves.AutosaveKeep
	}
	if c.History.Path == "" {
		c.History.Path = def.History.Path
	}
}

// Default returns the fully-populated default configuration.
func Default() Config {
	return Config{
		Version: "1",
		Balance: defaultBalance(),
		Saves: Saves{
			Dir:          "saves",
			AutosaveKeep: 2,
		},
		History: History{
			Enabled: true,
			Path:    "history.db",
		},
	}
}

// Load reads a yaml config file and applies defaults and env
// overrides. A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	cfg.ApplyDefaults()
	applyEnv(&cfg)
	return cfg, nil
}
