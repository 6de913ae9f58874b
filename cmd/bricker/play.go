package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bricker/internal/assets"
	"github.com/vovakirdan/tui-bricker/internal/audio"
	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/games/bricker"
	"github.com/vovakirdan/tui-bricker/internal/platform/tui"
	"github.com/vovakirdan/tui-bricker/internal/registry"
	"github.com/vovakirdan/tui-bricker/internal/scene"
	"github.com/vovakirdan/tui-bricker/internal/storage"
)

var (
	flagSound  bool
	flagImages string
)

func init() {
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a sound on every ball bounce")
	rootCmd.PersistentFlags().StringVar(&flagImages, "images", "", "Path to a YAML file overriding glyphs and colors")
}

// boardArgs accepts up to two positive integers: bricks per row and rows.
func boardArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}
	_, _, err := parseBoard(args)
	return err
}

// parseBoard reads the optional board dimensions. Zero means "not given".
func parseBoard(args []string) (perRow, rows int, err error) {
	dims := make([]int, 2)
	names := []string{"bricks per row", "rows"}
	for i, a := range args {
		n, convErr := strconv.Atoi(a)
		if convErr != nil || n <= 0 {
			return 0, 0, fmt.Errorf("%s must be a positive integer, got %q", names[i], a)
		}
		dims[i] = n
	}
	return dims[0], dims[1], nil
}

// loadGameConfig resolves the config file, the difficulty preset and the
// board size from the command line, in that order.
func loadGameConfig(args []string) (config.BrickerConfig, error) {
	cfg, err := config.LoadBricker(flagConfig)
	if err != nil {
		return config.BrickerConfig{}, err
	}

	// Without --difficulty the config file keeps its own tuning.
	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			return config.BrickerConfig{}, presetErr
		}
		config.ApplyBrickerPreset(&cfg, preset)
	}

	perRow, rows, err := parseBoard(args)
	if err != nil {
		return config.BrickerConfig{}, err
	}
	if perRow > 0 {
		cfg.Board.BricksPerRow = perRow
	}
	if rows > 0 {
		cfg.Board.Rows = rows
	}

	if err := cfg.Validate(); err != nil {
		return config.BrickerConfig{}, err
	}
	return cfg, nil
}

// loadImages returns the embedded catalog, overlaid with --images if given.
func loadImages() (scene.ImageReader, error) {
	if flagImages == "" {
		return assets.Default(), nil
	}
	return assets.Load(flagImages)
}

// openSounds starts the speaker when --sound is set. Audio problems never
// stop the game.
func openSounds(logger *log.Logger) (scene.SoundReader, func()) {
	if !flagSound {
		return audio.Muted{}, func() {}
	}
	p := audio.NewPlayer()
	if err := p.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return audio.Muted{}, func() {}
	}
	return p, p.Close
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig(args)
	if err != nil {
		return err
	}
	images, err := loadImages()
	if err != nil {
		return err
	}
	sounds, closeSounds := openSounds(logger)
	defer closeSounds()

	game, err := registry.Create(bricker.ID, registry.Settings{
		Config: cfg,
		Images: images,
		Sounds: sounds,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW, runtime.ScreenH = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting round",
		"board", fmt.Sprintf("%dx%d", cfg.Board.BricksPerRow, cfg.Board.Rows),
		"difficulty", flagDifficulty,
		"seed", flagSeed,
	)

	if err := tui.Run(game, tui.Options{
		Store:   store,
		Runtime: runtime,
		Logger:  logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
