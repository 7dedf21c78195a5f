package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cupcake/internal/game"
	"github.com/vovakirdan/tui-cupcake/internal/platform/tui"
	"github.com/vovakirdan/tui-cupcake/internal/systems"
)

var (
	flagDebug   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run in the terminal.

Controls:
  A/Left     - Walk left
  D/Right    - Walk right
  Space/W/Up - Jump
  P/Esc      - Pause
  R          - Restart
  F3         - Toggle debug panel
  Q/Ctrl+C   - Quit

Examples:
  cupcake play
  cupcake play --difficulty easy
  cupcake play --debug --log-file cupcake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the debug panel")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "cupcake",
		Level:           log.DebugLevel,
	})

	width := 0
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
	}

	ctx, err := game.NewContext(game.Options{
		Config: cfg,
		Logger: logger,
		Seed:   flagSeed,
	})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	if err := tui.Run(systems.NewGame(ctx), tui.Options{Debug: flagDebug, Width: width}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
