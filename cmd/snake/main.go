// snake is the classic Snake game played in the terminal.
//
// Usage:
//
//	snake                  - Play
//	snake config           - Print the effective configuration as YAML
//
// Flags:
//
//	--config <path>      - Path to a YAML config file
//	--cols, --rows <n>   - Board size in cells (default: 30x30)
//	--cell-width <n>     - Terminal columns per cell (default: 2)
//	--tick <duration>    - Time per move (default: 100ms)
//	--seed <value>       - RNG seed for reproducible food placement
//	--log-file <path>    - Write logs to this file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagCols      int
	flagRows      int
	flagCellWidth int
	flagTick      time.Duration
	flagSeed      int64
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat, grow, don't bite yourself",
	Long: `Snake in your terminal. Steer the snake to the food; every bite makes it
one segment longer. Leaving the board or running into yourself ends the round.

Controls:
  Arrows/WASD/HJKL  - Steer
  P                 - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Examples:
  snake
  snake --cols 20 --rows 15 --tick 150ms
  snake --seed 42 --log-file snake.log --log-level debug
  snake config > ~/.snake/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagCols, "cols", 0, "Board width in cells (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagRows, "rows", 0, "Board height in cells (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagCellWidth, "cell-width", 0, "Terminal columns per cell (default from config)")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Time per move, e.g. 100ms (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(configCmd)
}
