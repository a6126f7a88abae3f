package agents

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

// Params configures agent placement.
type Params struct {
	PlayerPrefab string   `yaml:"player_prefab"`
	PortalPrefab string   `yaml:"portal_prefab"`
	EnemyPrefabs []string `yaml:"enemy_prefabs"`
	// RoomEnemiesCount is the desired enemy count per room index.
	RoomEnemiesCount []int `yaml:"room_enemies_count"`
}

// Placer computes every room's accessibility and then places agents.
type Placer struct {
	src    rng.Source
	player Strategy
	enemy  Strategy
	portal Strategy
	logger *slog.Logger
	tracer trace.Tracer
}

// NewPlacer creates a Placer. A nil logger discards output.
func NewPlacer(p Params, spawner entities.Spawner, src rng.Source, logger *slog.Logger) *Placer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("component", "agents")

	return &Placer{
		src:    src,
		player: &PlayerStrategy{Prefab: p.PlayerPrefab, Spawner: spawner},
		enemy:  &EnemyStrategy{Prefabs: p.EnemyPrefabs, Counts: p.RoomEnemiesCount, Spawner: spawner, Source: src},
		portal: &PortalStrategy{Prefab: p.PortalPrefab, Spawner: spawner, Logger: logger},
		logger: logger,
		tracer: telemetry.Tracer("agents"),
	}
}

// PlaceAgents fills in accessibility for all rooms before seating anyone, so
// placement in one room never races reachability in another.
func (pl *Placer) PlaceAgents(ctx context.Context, layout *dungeon.Layout) {
	_, span := pl.tracer.Start(ctx, "place-agents")
	defer span.End()

	for _, room := range layout.Rooms {
		dungeon.ComputeAccessibility(room, layout.Path, pl.src)
	}

	enemies := 0
	for i, room := range layout.Rooms {
		if i == 0 {
			pl.player.Place(room, layout, i)
		}
		pl.enemy.Place(room, layout, i)
		enemies += len(room.Enemies)
		pl.logger.Debug("room populated", "room", i, "accessible", len(room.Accessible), "enemies", len(room.Enemies))
	}

	if n := len(layout.Rooms); n > 0 {
		pl.portal.Place(layout.Rooms[n-1], layout, n-1)
	}

	span.SetAttributes(
		attribute.Int("enemies", enemies),
		attribute.Bool("portal", layout.Portal != nil),
	)
}
