package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rockjump/internal/audio"
	"github.com/vovakirdan/rockjump/internal/config"
	"github.com/vovakirdan/rockjump/internal/core"
	"github.com/vovakirdan/rockjump/internal/games/rockjump"
	"github.com/vovakirdan/rockjump/internal/platform/tui"
	"github.com/vovakirdan/rockjump/internal/registry"
	"github.com/vovakirdan/rockjump/internal/storage"
)

var (
	flagConfig string
	flagAssets string
	flagSound  bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to rockjump.

Controls:
  Space/Up/W/Enter  - Jump
  R                 - Restart the scene
  Ctrl+S            - Save a text screenshot to ~/.rockjump/screenshots
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Configuration is read from --config, then ~/.rockjump/configs/rockjump.yaml,
then ./configs/rockjump.yaml, then the built-in defaults.

Examples:
  rockjump play
  rockjump play --config ./my-rockjump.yaml
  rockjump play --assets ./my-sprites --sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with spritesheet.toml and its texture")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a sound on every jump")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := rockjump.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fail("unknown game %q (run 'rockjump list' to see available games)", gameID)
	}

	// The frame rate comes from the config unless --fps is given
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	tickRate := gameCfg.Display.FPS
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
	}

	// Set config path and assets for the game before creation
	rockjump.SetConfigPath(flagConfig)
	rockjump.SetAssetsDir(flagAssets)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	// Open history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var sound *audio.SoundManager
	if flagSound {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			logger.Warn("could not initialize audio", "error", err)
			sound = nil
		}
	}

	runErr := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
	})

	// Release resources before potential exit
	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
