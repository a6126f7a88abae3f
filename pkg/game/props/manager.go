package props

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/telemetry"
	"echoshift/pkg/game/dungeon"
	"echoshift/pkg/game/entities"
)

// Manager decorates every room of a layout from a prop catalog.
type Manager struct {
	catalog []*Prop
	placer  *Placer
	src     rng.Source
	ctx     Context
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewManager creates a Manager. A nil logger discards output.
func NewManager(catalog []*Prop, spawner entities.Spawner, src rng.Source, ctx Context, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if ctx.Parent == "" {
		ctx.Parent = entities.ContainerProps
	}
	return &Manager{
		catalog: catalog,
		placer:  NewPlacer(spawner, src),
		src:     src,
		ctx:     ctx,
		logger:  logger.With("component", "props"),
		tracer:  telemetry.Tracer("props"),
	}
}

// Catalog returns the props the manager places from.
func (m *Manager) Catalog() []*Prop {
	return m.catalog
}

// PlaceProps runs every zone strategy on every room.
func (m *Manager) PlaceProps(ctx context.Context, layout *dungeon.Layout) {
	_, span := m.tracer.Start(ctx, "place-props")
	defer span.End()

	total := 0
	for i, room := range layout.Rooms {
		before := len(room.Props)
		for _, a := range StrategiesFor(room, m.catalog, m.placer, m.src) {
			a.Strategy.Place(room, a.Props, layout.Path, m.ctx)
		}
		placed := len(room.Props) - before
		total += placed
		m.logger.Debug("room decorated", "room", i, "props", placed, "occupied", room.PropPositions.Size())
	}

	span.SetAttributes(attribute.Int("props", total))
}
