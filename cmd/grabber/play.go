package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/money-grabber/internal/assets"
	"github.com/vovakirdan/money-grabber/internal/audio"
	"github.com/vovakirdan/money-grabber/internal/config"
	"github.com/vovakirdan/money-grabber/internal/core"
	"github.com/vovakirdan/money-grabber/internal/platform/tui"
)

var (
	flagDifficulty string
	flagAssets     string
	flagSound      string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the bot",
	Long: `Start the game at the title menu.

Controls:
  1/e 2/m 3/h    - Pick Easy, Medium or Hard (menu)
  Enter/Space/S  - Start a round (menu)
  Mouse click    - Grab at the pointer, press menu buttons
  Arrows/HJKL    - Move the keyboard pointer
  Space/Enter    - Grab at the keyboard pointer
  B/Esc          - Back to the menu (game over)
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Difficulty presets:
  easy   - bot speed 3, reacts after 1.5s
  medium - bot speed 5, reacts after 1.0s
  hard   - bot speed 7, reacts after 0.5s

Sprites are read from <assets>/{coin,bill,player,bot,pointer,hand}.txt
when present; missing files use built-in art. The capture chime is
<assets>/coin.wav when present, else a synthesized one.

Examples:
  grabber play
  grabber play --difficulty hard
  grabber play --assets ./assets --log-file grabber.log --log-level debug
  grabber play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty: easy, medium, hard")
	playCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory with sprite and sound files")
	playCmd.Flags().StringVar(&flagSound, "sound", "", "WAV file for the capture chime (default <assets>/coin.wav)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("grabber", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, source, err := config.Load(flagConfig)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	level := game.Difficulty.DefaultLevel()
	if flagDifficulty != "" {
		parsed, ok := config.ParseDifficultyFlag(flagDifficulty)
		if !ok {
			closeLog()
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, medium or hard)\n", flagDifficulty)
			os.Exit(1)
		}
		level = parsed
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sound := flagSound
	if sound == "" && flagAssets != "" {
		sound = filepath.Join(flagAssets, "coin.wav")
	}
	player := audio.New(audio.Options{Mute: flagMute, SoundFile: sound}, logger)
	logger.Info("audio", "enabled", player.Enabled(), "muted", flagMute)

	runErr := tui.Run(tui.Options{
		Game: game,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Difficulty: level,
		Sprites:    assets.Load(flagAssets, logger),
		Effects:    []tui.CaptureEffects{player},
		Logger:     logger,
	})

	player.Close()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
