package generator

import (
	"math"

	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/dungeon"
)

// CorridorFirstParams configures CorridorFirstStrategy.
type CorridorFirstParams struct {
	CorridorLength int `yaml:"corridor_length"`
	CorridorCount  int `yaml:"corridor_count"`
	// RoomPercent is the fraction of corridor anchors that grow a room.
	RoomPercent float64 `yaml:"room_percent"`
}

// CorridorFirstStrategy chains straight corridors end to end, grows rooms by
// random walk at a sample of the corridor anchors and at every dead end.
type CorridorFirstStrategy struct {
	Start  world.Position
	Params CorridorFirstParams
	Walk   RandomWalkParams
}

func (s *CorridorFirstStrategy) Name() string {
	return CorridorFirstName
}

func (s *CorridorFirstStrategy) Build(src rng.Source, layout *dungeon.Layout) error {
	corridors, anchors := s.createCorridors(src)
	layout.Path.UnionWith(corridors)

	roomFloors := world.NewTileSet()

	roomCount := int(math.RoundToEven(float64(len(anchors)) * s.Params.RoomPercent))
	rng.ShuffleSlice(src, anchors)
	for _, anchor := range anchors[:min(roomCount, len(anchors))] {
		s.growRoom(src, layout, roomFloors, anchor)
	}

	for _, end := range FindDeadEnds(corridors) {
		if !roomFloors.Has(end) {
			s.growRoom(src, layout, roomFloors, end)
		}
	}

	return nil
}

// createCorridors lays the corridor chain and returns its tiles together with
// the potential room anchors: the start and every corridor end, deduplicated.
func (s *CorridorFirstStrategy) createCorridors(src rng.Source) (*world.TileSet, []world.Position) {
	corridors := world.NewTileSet()
	seen := world.NewTileSet(s.Start)
	anchors := []world.Position{s.Start}

	current := s.Start
	for i := 0; i < s.Params.CorridorCount; i++ {
		corridor := RandomWalkCorridor(src, current, s.Params.CorridorLength)
		current = corridor[len(corridor)-1]
		if !seen.Has(current) {
			seen.Put(current)
			anchors = append(anchors, current)
		}
		corridors.Put(corridor...)
	}
	return corridors, anchors
}

func (s *CorridorFirstStrategy) growRoom(src rng.Source, layout *dungeon.Layout, roomFloors *world.TileSet, anchor world.Position) {
	floor := RunRandomWalk(src, s.Walk, anchor)
	layout.AddRoom(dungeon.NewRoom(anchor, floor))
	roomFloors.UnionWith(floor)
}

// FindDeadEnds returns the tiles of floor with exactly one orthogonal
// neighbour, in sorted order.
func FindDeadEnds(floor *world.TileSet) []world.Position {
	var ends []world.Position
	for _, p := range floor.Sorted() {
		if floor.CountNeighbours(p, world.Cardinals()) == 1 {
			ends = append(ends, p)
		}
	}
	return ends
}
