// Package agents seats the player, enemies and the exit portal once rooms
// have been decorated and their reachable tiles are known.
package agents

import (
	"log/slog"

	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/dungeon"
	"echoshift/pkg/game/entities"
)

// Strategy places one kind of agent into a room.
type Strategy interface {
	Place(room *dungeon.Room, layout *dungeon.Layout, index int)
}

// PlayerStrategy puts the player on the room center.
type PlayerStrategy struct {
	Prefab  string
	Spawner entities.Spawner
}

func (s *PlayerStrategy) Place(room *dungeon.Room, layout *dungeon.Layout, _ int) {
	if layout.Player.Alive() {
		layout.Player.Position = room.Center
		return
	}
	layout.Player = s.Spawner.Spawn(s.Prefab, room.Center, entities.ContainerAgents)
}

// EnemyStrategy seats Counts[index] enemies on the first accessible tiles of
// the room, stopping early when the room runs out of tiles.
type EnemyStrategy struct {
	Prefabs []string
	Counts  []int
	Spawner entities.Spawner
	Source  rng.Source
}

func (s *EnemyStrategy) Place(room *dungeon.Room, _ *dungeon.Layout, index int) {
	if index >= len(s.Counts) {
		return
	}
	for k := 0; k < s.Counts[index]; k++ {
		if k >= len(room.Accessible) {
			return
		}
		prefab, ok := rng.Pick(s.Source, s.Prefabs)
		if !ok {
			return
		}
		e := s.Spawner.Spawn(prefab, room.Accessible[k], entities.ContainerEnemies)
		room.Enemies = append(room.Enemies, e)
	}
}

// PortalStrategy places the exit portal.
type PortalStrategy struct {
	Prefab  string
	Spawner entities.Spawner
	Logger  *slog.Logger
}

func (s *PortalStrategy) Place(room *dungeon.Room, layout *dungeon.Layout, index int) {
	if s.Prefab == "" {
		return
	}

	pos, ok := PortalPosition(room, len(layout.Rooms))
	if !ok {
		s.Logger.Warn("no position for portal", "room", index)
		return
	}

	e := s.Spawner.Spawn(s.Prefab, pos, entities.ContainerAgents)
	room.AddProp(e, pos)
	layout.Portal = e
}

// PortalPosition picks the exit tile of the last room. A lone room uses the
// free accessible tile furthest from its center. Otherwise the center is used
// when it is free and accessible, falling back to the first free accessible tile.
func PortalPosition(room *dungeon.Room, roomCount int) (world.Position, bool) {
	if roomCount == 1 {
		return FurthestFromCenter(room)
	}

	for _, p := range room.Accessible {
		if p == room.Center && room.IsFree(p) {
			return p, true
		}
	}
	for _, p := range room.Accessible {
		if !room.PropPositions.Has(p) {
			return p, true
		}
	}
	return world.Position{}, false
}

// FurthestFromCenter returns the free accessible tile with the greatest
// distance from the room center. Ties keep the earlier tile.
func FurthestFromCenter(room *dungeon.Room) (world.Position, bool) {
	var best world.Position
	bestDist := -1.0
	for _, p := range room.Accessible {
		if room.PropPositions.Has(p) {
			continue
		}
		if d := room.Center.Distance(p); d > bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist >= 0
}
