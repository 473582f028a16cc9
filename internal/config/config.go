// Package config provides YAML-based configuration loading for the
// zombietrap tool.
package config

import "time"

// Config contains all tool configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Levels  LevelsConfig  `yaml:"levels"`
	Solve   SolveConfig   `yaml:"solve"`
	Server  ServerConfig  `yaml:"server"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level     string `yaml:"level"`     // debug, info, warn, error
	Timestamp bool   `yaml:"timestamp"` // Report timestamps on each line
}

// StorageConfig defines where solve summaries and scores are kept.
type StorageConfig struct {
	Path string `yaml:"path"` // SQLite file, ~ is expanded
}

// LevelsConfig defines extra level sources besides the built-in set.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // Directory scanned for *.yaml levels, empty = none
}

// SolveConfig tunes the solve command.
type SolveConfig struct {
	Jobs          int  `yaml:"jobs"`           // Levels solved concurrently
	Save          bool `yaml:"save"`           // Record summaries in storage
	ProgressEvery int  `yaml:"progress_every"` // Log progress every N states, 0 = off
}

// ServerConfig defines the SSH play server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
