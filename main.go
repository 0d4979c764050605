package main

import (
	"errors"
	"flag"
	"image"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/catburglar/assets"
	"github.com/milk9111/catburglar/prefabs"
	"github.com/milk9111/catburglar/settings"
	"github.com/milk9111/catburglar/storage"
)

func main() {
	os.Exit(run())
}

// run wires the game and returns the process exit code, so deferred cleanup always runs.
func run() int {
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	seed := flag.Int64("seed", 0, "RNG seed for the first run (0 = time based)")
	watch := flag.Bool("watch", false, "reload world.yaml tuning when files in prefabs/ change")
	lenient := flag.Bool("lenient-assets", false, "skip gaps in animation frame numbering instead of failing")
	dbPath := flag.String("db", storage.DefaultPath, "path to the runs database (empty disables recording)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "catburglar",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		logger.Error("load world", "error", err)
		return 1
	}

	lib, err := assets.LoadLibrary(assets.FS(), assets.DefaultTables,
		assets.WithStrict(!*lenient),
		assets.WithLogger(logger),
		assets.WithConvert(func(img image.Image) image.Image { return ebiten.NewImageFromImage(img) }),
	)
	if err != nil {
		logger.Error("load assets", "error", err)
		return 1
	}

	prefs := settings.Open(logger)

	res := openResources(*dbPath, *watch, logger)
	defer res.Close()

	game, err := NewGame(GameOptions{
		Spec:     spec,
		Tables:   lib,
		Settings: prefs,
		Store:    res.store,
		Watcher:  res.watcher,
		Logger:   logger,
		Seed:     *seed,
		Debug:    *debug,
	})
	if err != nil {
		logger.Error("start game", "error", err)
		return 1
	}

	scale := float64(prefs.Get().WindowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(spec.PlayWidth()*scale), int(spec.PlayHeight()*scale))
	ebiten.SetWindowTitle("Cat Burglar")
	ebiten.SetFullscreen(prefs.Get().Fullscreen)
	ebiten.SetTPS(spec.TickRate)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", "error", err)
		return 1
	}
	return 0
}

// resources are the optional handles the game holds open for its whole life. Either may be
// nil when disabled or unavailable.
type resources struct {
	store   *storage.Store
	watcher *prefabs.Watcher
	logger  *log.Logger
}

// openResources opens the runs database (empty dbPath disables it) and the prefab watcher.
// Failures only log: the game runs without recording or hot reload.
func openResources(dbPath string, watch bool, logger *log.Logger) *resources {
	res := &resources{logger: logger}
	if dbPath != "" {
		store, err := storage.Open(dbPath)
		if err != nil {
			logger.Warn("runs will not be recorded", "error", err)
		} else {
			res.store = store
		}
	}
	if watch {
		watcher, err := prefabs.NewWatcher(prefabs.DiskDir)
		if err != nil {
			logger.Warn("prefab watcher disabled", "dir", prefabs.DiskDir, "error", err)
		} else {
			res.watcher = watcher
		}
	}
	return res
}

func (r *resources) Close() {
	if r.watcher != nil {
		if err := r.watcher.Close(); err != nil {
			r.logger.Warn("close prefab watcher", "error", err)
		}
		r.watcher = nil
	}
	if r.store != nil {
		if err := r.store.Close(); err != nil {
			r.logger.Warn("close runs database", "error", err)
		}
		r.store = nil
	}
}
