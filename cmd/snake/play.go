package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagTPS        int
	flagFPS        int
	flagSeed       int64
	flagAvoidSnake bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Arrows/WASD  - Steer (menus: Up/Down to move, Enter to select)
  P/Esc        - Pause
  R            - Restart (after game over)
  Esc/B        - Back to menu (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 ticks per second
  normal - 8 ticks per second
  hard   - 12 ticks per second

Examples:
  snake play
  snake play --difficulty hard
  snake play --tps 10 --seed 42
  snake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagTPS, "tps", 0, "Simulation ticks per second (overrides config and difficulty)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Render frames per second (overrides config)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	playCmd.Flags().BoolVar(&flagAvoidSnake, "avoid-snake", false, "Never place food on the snake")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyPlayFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW, needH := snake.RequiredSize(cfg.GridSize())
		if w < needW || h < needH+1 {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH+1)
		}
	}

	return tui.Run(cfg, logger)
}

// applyPlayFlags copies explicitly set flags over the loaded config.
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("tps") {
		cfg.TickRate = flagTPS
	}
	if flags.Changed("fps") {
		cfg.FrameRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("avoid-snake") {
		cfg.Food.AvoidSnake = flagAvoidSnake
	}
}
