// Package state holds everything one generation session owns, so nothing in
// the game reaches for package-level singletons.
package state

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/telemetry"
	"echoshift/pkg/game/agents"
	"echoshift/pkg/game/config"
	"echoshift/pkg/game/dungeon"
	"echoshift/pkg/game/entities"
	"echoshift/pkg/game/generator"
	"echoshift/pkg/game/props"
	"echoshift/pkg/game/renderer"
)

// Session is the dependency context for generating dungeons.
type Session struct {
	Config   config.Config
	Source   *rng.Rand
	Registry *entities.Registry
	Tilemap  *renderer.Tilemap
	Layout   *dungeon.Layout
	Props    *props.Manager

	Generator *generator.Generator
	Logger    *slog.Logger

	// Generations counts completed runs.
	Generations int
	LastReport  generator.Report
}

// NewSession validates cfg and wires a generator around it. A nil logger discards output.
func NewSession(cfg config.Config, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	strategy, err := generator.NewStrategy(cfg.Strategy, cfg.Params)
	if err != nil {
		return nil, err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("state: prop catalog: %w", err)
	}

	src := rng.NewTimeSeeded()
	if cfg.Seed != 0 {
		src = rng.New(cfg.Seed)
	}

	s := &Session{
		Config:   cfg,
		Source:   src,
		Registry: entities.NewRegistry(),
		Tilemap:  renderer.NewTilemap(),
		Layout:   dungeon.NewLayout(),
		Logger:   logger,
	}
	s.Props = props.NewManager(catalog, s.Registry, src, cfg.PropsContext(), logger)
	s.Generator = generator.New(generator.Options{
		Strategy: strategy,
		Source:   src,
		Painter:  s.Tilemap,
		Spawner:  s.Registry,
		Props:    s.Props,
		Agents:   agents.NewPlacer(cfg.Agents, s.Registry, src, logger),
		Logger:   logger,
		Tracer:   telemetry.Tracer("generator"),
	})

	logger.Debug("session created", "strategy", cfg.Strategy, "seed", src.Seed(), "props", len(catalog))
	return s, nil
}

// Generate replaces the current dungeon with a new one.
func (s *Session) Generate(ctx context.Context) (generator.Report, error) {
	report, err := s.Generator.Generate(ctx, s.Layout)
	if err != nil {
		return report, err
	}
	s.Generations++
	s.LastReport = report
	return report, nil
}

// Scene returns the current dungeon for rendering.
func (s *Session) Scene() *renderer.Scene {
	return renderer.NewScene(s.Tilemap, s.Layout)
}
