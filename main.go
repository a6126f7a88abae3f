package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/leonelquinteros/gotext"

	"echoshift/pkg/engine/telemetry"
	"echoshift/pkg/game/config"
	"echoshift/pkg/game/devtools"
	"echoshift/pkg/game/renderer"
	"echoshift/pkg/game/renderer/ebiten"
	"echoshift/pkg/game/renderer/tui"
	"echoshift/pkg/game/state"
)

func initGettext(lang string) {
	gotext.Configure("locales", lang, "default")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig layers defaults, the YAML file, the environment and then flags.
func loadConfig(path, catalog, strategy string, seed int64) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	if catalog != "" {
		cfg.Props.Catalog = catalog
	}
	if strategy != "" {
		cfg.Strategy = strategy
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	catalogPath := flag.String("props", "", "YAML prop catalog (default: built-in)")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	strategy := flag.String("strategy", "", "layout strategy: random-walk, corridor-first or rooms-first")
	dump := flag.String("dump", "", "write a debug map dump to this file instead of printing")
	screenshot := flag.Bool("screenshot", false, "also save an HTML screenshot of the map")
	window := flag.Bool("window", false, "preview the dungeon in a window")
	lang := flag.String("lang", "en_GB", "language for messages")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		// Not fatal, settings may come from the real environment.
		log.Printf("Note: .env file not loaded: %v", err)
	}

	initGettext(*lang)
	logger := newLogger(*verbose)

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, continuing without traces", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Warn("telemetry shutdown", "error", err)
			}
		}()
	}

	if err := run(ctx, logger, *configPath, *catalogPath, *strategy, *seed, *dump, *screenshot, *window); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, configPath, catalogPath, strategy string, seed int64, dump string, screenshot, window bool) error {
	cfg, err := loadConfig(configPath, catalogPath, strategy, seed)
	if err != nil {
		return err
	}

	s, err := state.NewSession(cfg, logger)
	if err != nil {
		return err
	}
	if _, err := s.Generate(ctx); err != nil {
		return err
	}

	if screenshot {
		name, err := devtools.SaveScreenshotHTML(s)
		if err != nil {
			return err
		}
		fmt.Println(gotext.Get("Screenshot written to %s", name))
	}

	if dump != "" {
		path, err := devtools.DumpMapToPath(s, dump)
		if err != nil {
			return err
		}
		fmt.Println(gotext.Get("Map dump written to %s", path))
		return nil
	}

	var r renderer.Renderer = tui.New()
	if window {
		r = ebiten.New(gotext.Get("echoshift dungeon (seed %d)", s.Source.Seed()))
	}
	return r.Render(s.Scene())
}
