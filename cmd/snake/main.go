// snake is a terminal snake game that can also be served over SSH.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the effective configuration
//	snake presets            - List difficulty presets
//
// Global flags:
//
//	--config <path>          - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--difficulty <preset>    - easy, normal or hard
//	--log-level <level>      - debug, info, warn or error (default: info)
//	--log-file <path>        - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a grid snake game for the terminal. The board wraps at
every edge; the game ends when the snake runs into itself.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  presets  - List difficulty presets

Examples:
  snake play
  snake play --difficulty hard
  snake serve --ssh :2222
  snake config --difficulty easy > ~/.snake/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(presetsCmd)
}

// loadConfig loads the config file and applies the global difficulty flag.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// newLogger builds the command logger. Logs go to --log-file when set and
// to fallback otherwise. The returned close func releases the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
