package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/zombietrap.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration used when no file parses.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:     "info",
			Timestamp: false,
		},
		Storage: StorageConfig{
			Path: "~/.zombietrap/zombietrap.db",
		},
		Solve: SolveConfig{
			Jobs:          2,
			Save:          false,
			ProgressEvery: 0,
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
