// bricker is Breakout in the terminal, with bricks that hide power-ups.
//
// Usage:
//
//	bricker [bricks-per-row] [rows]   - Play a round (default 8x7)
//	bricker scores                    - Show high scores and recent rounds
//	bricker serve                     - Start SSH server for remote play
//	bricker config                    - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.bricker/scores.db)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricker/internal/games/bricker"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       uint64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricker [bricks-per-row] [rows]",
	Short: "Bricker - Breakout with surprises, in your terminal",
	Long: `Bricker is Breakout for the terminal. Half of the bricks hide something:
extra balls, a helper paddle, a turbo ball, an extra life, or several at once.

Clear the board or send the ball out through the top to win.

Controls:
  Left/A, Right/D  - Move paddle
  P/Esc            - Pause
  R                - Restart
  Y/Enter, N       - Answer the play again prompt
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Examples:
  bricker
  bricker 10 5
  bricker --difficulty hard --sound
  bricker --seed 42 --log-file bricker.log --debug`,
	Args:          boardArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bricker/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bricker config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log game events at debug level")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Without a log file the
// terminal belongs to the game, so logs are dropped.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          bricker.ID,
		Level:           level,
	})
	return logger, closeFn, nil
}
