// Package config loads the optional YAML run configuration. Flags
// override the file; the file overrides defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kcorpus/kcorpus/internal/miner"
)

// MinerConfig tunes the structural source miner.
type MinerConfig struct {
	// FilterPrefix discards mined targets starting with this prefix.
	FilterPrefix string `yaml:"filter_prefix"`

	// MaxFiles caps how many source files one scan reads.
	MaxFiles int `yaml:"max_files"`
}

// Config is the full run configuration.
type Config struct {
	// OutputDir receives the exported corpus files.
	OutputDir string `yaml:"output_dir"`

	// Merge additionally writes the merged train.jsonl.
	Merge bool `yaml:"merge"`

	// Database is the optional archive path; empty disables archiving.
	Database string `yaml:"database"`

	Miner MinerConfig `yaml:"miner"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir: "data",
		Miner: MinerConfig{
			FilterPrefix: miner.DefaultFilterPrefix,
			MaxFiles:     miner.DefaultMaxFiles,
		},
	}
}

// Load reads a YAML configuration file over the defaults. Unset fields
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "data"
	}
	if cfg.Miner.MaxFiles <= 0 {
		cfg.Miner.MaxFiles = miner.DefaultMaxFiles
	}
	return cfg, nil
}

// NewMiner builds a miner from the configuration.
func (c Config) NewMiner() *miner.Miner {
	m := miner.New()
	m.FilterPrefix = c.Miner.FilterPrefix
	m.MaxFiles = c.Miner.MaxFiles
	return m
}
