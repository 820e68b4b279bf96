package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 30x30 board advancing every
// 100ms.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Cols:      30,
			Rows:      30,
			CellWidth: 2,
		},
		Tick: 100 * time.Millisecond,
		Seed: 0,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
