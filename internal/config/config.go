// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config contains all configuration for the game.
type Config struct {
	Grid GridConfig    `yaml:"grid"`
	Tick time.Duration `yaml:"tick"` // Simulation tick period
	Seed int64         `yaml:"seed"` // 0 = random based on time
	Log  LogConfig     `yaml:"log"`
}

// GridConfig defines the playing field.
type GridConfig struct {
	Cols      int `yaml:"cols"`
	Rows      int `yaml:"rows"`
	CellWidth int `yaml:"cell_width"` // Terminal columns per cell
}

// LogConfig defines where and how much the game logs.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty discards logs; the TUI owns the terminal
}

// Validate reports every invalid setting in one error.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Cols < 2 {
		errs = append(errs, fmt.Errorf("grid.cols must be at least 2, got %d", c.Grid.Cols))
	}
	if c.Grid.Rows < 2 {
		errs = append(errs, fmt.Errorf("grid.rows must be at least 2, got %d", c.Grid.Rows))
	}
	if c.Grid.CellWidth < 1 {
		errs = append(errs, fmt.Errorf("grid.cell_width must be at least 1, got %d", c.Grid.CellWidth))
	}
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %s", c.Tick))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Runtime converts the configuration into the game's runtime settings for a
// screen of the given size.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		Cols:      c.Grid.Cols,
		Rows:      c.Grid.Rows,
		CellWidth: c.Grid.CellWidth,
		ScreenW:   screenW,
		ScreenH:   screenH,
		Tick:      c.Tick,
		Seed:      c.Seed,
	}
}
