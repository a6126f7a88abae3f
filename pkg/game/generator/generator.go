// Package generator builds dungeon layouts and runs the generation pipeline.
package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/telemetry"
	"echoshift/pkg/game/dungeon"
	"echoshift/pkg/game/entities"
	"echoshift/pkg/game/walls"
)

// PropPlacer decorates analysed rooms with props.
type PropPlacer interface {
	PlaceProps(ctx context.Context, layout *dungeon.Layout)
}

// AgentPlacer computes reachability and seats the player, enemies and exit.
type AgentPlacer interface {
	PlaceAgents(ctx context.Context, layout *dungeon.Layout)
}

// Options wires a Generator to its collaborators. Props and Agents may be nil
// to stop the pipeline after room analysis.
type Options struct {
	Strategy Strategy
	Source   rng.Source
	Painter  walls.Painter
	Spawner  entities.Spawner
	Props    PropPlacer
	Agents   AgentPlacer
	Logger   *slog.Logger
	Tracer   trace.Tracer
}

// Generator runs reset, layout, painting, analysis and placement in order.
type Generator struct {
	opts   Options
	logger *slog.Logger
}

// Report summarises one generation run.
type Report struct {
	Strategy   string
	Rooms      int
	FloorTiles int
	PathTiles  int
	Walls      walls.Result
}

// New creates a Generator. Strategy, Source, Painter and Spawner are required.
func New(opts Options) *Generator {
	if opts.Tracer == nil {
		opts.Tracer = telemetry.NoopTracer()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{opts: opts, logger: logger.With("component", "generator")}
}

// Strategy returns the layout strategy in use.
func (g *Generator) Strategy() Strategy {
	return g.opts.Strategy
}

// Generate resets layout and fills it with a new dungeon. ErrNoRooms aborts
// before anything is painted.
func (g *Generator) Generate(ctx context.Context, layout *dungeon.Layout) (Report, error) {
	ctx, span := g.opts.Tracer.Start(ctx, "generate",
		trace.WithAttributes(attribute.String("strategy", g.opts.Strategy.Name())))
	defer span.End()

	report := Report{Strategy: g.opts.Strategy.Name()}

	layout.Reset(g.opts.Spawner)
	g.opts.Painter.Clear()

	_, buildSpan := g.opts.Tracer.Start(ctx, "layout")
	err := g.opts.Strategy.Build(g.opts.Source, layout)
	buildSpan.End()
	if err != nil {
		g.logger.Warn("layout aborted", "strategy", report.Strategy, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return report, fmt.Errorf("build %s layout: %w", report.Strategy, err)
	}

	floor := layout.Floor()
	report.Rooms = len(layout.Rooms)
	report.FloorTiles = floor.Size()
	report.PathTiles = layout.Path.Size()

	_, paintSpan := g.opts.Tracer.Start(ctx, "paint")
	g.opts.Painter.PaintFloor(floor.Sorted())
	report.Walls = walls.Create(floor, g.opts.Painter)
	paintSpan.End()

	if report.Walls.Unmatched > 0 {
		g.logger.Debug("wall masks without archetype", "count", report.Walls.Unmatched)
	}

	for _, room := range layout.Rooms {
		dungeon.Analyze(room)
	}

	if g.opts.Props != nil {
		g.opts.Props.PlaceProps(ctx, layout)
	}
	if g.opts.Agents != nil {
		g.opts.Agents.PlaceAgents(ctx, layout)
	}

	span.SetAttributes(
		attribute.Int("rooms", report.Rooms),
		attribute.Int("floor_tiles", report.FloorTiles),
		attribute.Int("path_tiles", report.PathTiles),
	)
	g.logger.Info("dungeon generated",
		"strategy", report.Strategy,
		"rooms", report.Rooms,
		"floor", report.FloorTiles,
		"path", report.PathTiles,
		"walls", report.Walls.Basic+report.Walls.Corner,
	)

	return report, nil
}
