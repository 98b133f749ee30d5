package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dancerunaway/internal/config"
	"dancerunaway/internal/game"
	"dancerunaway/internal/input"
	"dancerunaway/internal/media"
	"dancerunaway/internal/scores"
)

const version = "0.1.0"

var (
	// Global flags
	verbose    bool
	configPath string

	// Game flags
	listJoysticks bool
	joystickGUID  string
	windowed      bool
	assetsDir     string

	// Logger
	logger   *zap.Logger
	logLevel zap.AtomicLevel
)

// rootCmd launches the game. The joystick flags mirror the original
// desktop release: --list_joysticks enumerates mats, --joystick picks one
// by GUID, the default is the first attached device.
var rootCmd = &cobra.Command{
	Use:   "dance-runaway",
	Short: "Run away dancing the mat",
	Long: `dance-runaway is a dance-mat game: step LEFT and RIGHT in turns to
outrun the chaser through the levels. Plug in a dance mat (or any joystick)
to play; without one the keyboard still drives the menus and, in debug mode,
the steps.

Use --list_joysticks to see the attached devices and --joystick to pick one
by its GUID.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		if verbose {
			logLevel.SetLevel(zapcore.DebugLevel)
		}
		cfg.Level = logLevel
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGame,
}

// scoresCmd prints the recorded runs.
var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	RunE:  showScores,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: user config dir)")

	rootCmd.Flags().BoolVar(&listJoysticks, "list_joysticks", false, "List joystick names and GUIDs, then exit")
	rootCmd.Flags().StringVar(&joystickGUID, "joystick", "", "GUID of the joystick to use (default: first attached)")
	rootCmd.Flags().BoolVar(&windowed, "window", false, "Run the game in a window instead of fullscreen")
	rootCmd.Flags().StringVar(&assetsDir, "assets", "", "Asset directory (default from config)")

	rootCmd.AddCommand(scoresCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	if listJoysticks {
		devices, err := input.Probe()
		if err != nil {
			return fmt.Errorf("failed to enumerate joysticks: %w", err)
		}
		fmt.Print(formatJoysticks(devices))
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// --verbose wins over the configured level.
	if !verbose {
		if lvl, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
			logLevel.SetLevel(lvl)
		}
	}

	mapping, err := cfg.Mapping()
	if err != nil {
		return err
	}

	m, err := media.Load(cfg.AssetsDir)
	if err != nil {
		return fmt.Errorf("failed to load media: %w", err)
	}
	logger.Info("media loaded",
		zap.Int("levels", len(m.Levels)),
		zap.String("assets", cfg.AssetsDir))

	// Score keeping is best effort: a broken store must not stop the game.
	var recorder game.Recorder
	store := openStore()
	if store != nil {
		recorder = store
		defer store.Close()
	}

	g := game.New(m, game.Options{
		JoystickGUID: joystickGUID,
		Mapping:      mapping,
		Debug:        cfg.Debug,
		Recorder:     recorder,
		Logger:       logger,
	})

	watcher := startConfigWatcher(cmd, g)
	if watcher != nil {
		defer watcher.Stop()
	}

	ebiten.SetWindowTitle("dance-runaway")
	ebiten.SetWindowSize(media.SceneWidth, media.SceneHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(!cfg.Window)

	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	logger.Info("quit the game")
	return nil
}

// loadConfig resolves the config file, applies it and lets the explicit
// CLI flags win over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("window") {
		cfg.Window = windowed
	}
	if cmd.Flags().Changed("assets") {
		cfg.AssetsDir = assetsDir
	}
	return cfg, nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func openStore() *scores.Store {
	path, err := config.ScoresPath()
	if err != nil {
		logger.Warn("score store unavailable", zap.Error(err))
		return nil
	}
	store, err := scores.Open(path)
	if err != nil {
		logger.Warn("score store unavailable", zap.Error(err))
		return nil
	}
	return store
}

// startConfigWatcher hot-reloads the button mapping while the game runs.
func startConfigWatcher(cmd *cobra.Command, g *game.Game) *config.Watcher {
	path, err := resolveConfigPath()
	if err != nil {
		return nil
	}

	watcher, err := config.NewWatcher(path, func(cfg *config.Config) {
		mapping, err := cfg.Mapping()
		if err != nil {
			logger.Warn("ignoring reloaded config", zap.Error(err))
			return
		}
		g.SetMapping(mapping)
	}, logger)
	if err != nil {
		logger.Warn("config watcher unavailable", zap.Error(err))
		return nil
	}

	if err := watcher.Start(context.Background()); err != nil {
		logger.Warn("config watcher failed to start", zap.Error(err))
		return nil
	}
	return watcher
}

func showScores(cmd *cobra.Command, args []string) error {
	path, err := config.ScoresPath()
	if err != nil {
		return err
	}
	store, err := scores.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open score store: %w", err)
	}
	defer store.Close()

	runs, err := store.Recent(20)
	if err != nil {
		return err
	}
	best, hasBest, err := store.BestEscape()
	if err != nil {
		return err
	}

	var bestPtr *scores.Run
	if hasBest {
		bestPtr = &best
	}
	fmt.Print(formatRuns(runs, bestPtr))
	return nil
}
