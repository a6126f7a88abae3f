package generator

import (
	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/dungeon"
)

// RoomsFirstParams configures RoomsFirstStrategy.
type RoomsFirstParams struct {
	MinRoomWidth  int `yaml:"min_room_width"`
	MinRoomHeight int `yaml:"min_room_height"`
	DungeonWidth  int `yaml:"dungeon_width"`
	DungeonHeight int `yaml:"dungeon_height"`
	// Offset insets each room from its partition to leave a wall margin.
	Offset int `yaml:"offset"`
}

// RoomsFirstStrategy partitions the dungeon bounds with BSP, carves an inset
// room into every leaf and joins the room centers with L-shaped corridors.
type RoomsFirstStrategy struct {
	Start  world.Position
	Params RoomsFirstParams
}

func (s *RoomsFirstStrategy) Name() string {
	return RoomsFirstName
}

func (s *RoomsFirstStrategy) Build(src rng.Source, layout *dungeon.Layout) error {
	bounds := world.Rect{X: s.Start.X, Y: s.Start.Y, W: s.Params.DungeonWidth, H: s.Params.DungeonHeight}
	leaves := BinarySpacePartition(src, bounds, s.Params.MinRoomWidth, s.Params.MinRoomHeight)
	if len(leaves) == 0 {
		return ErrNoRooms
	}

	centers := make([]world.Position, 0, len(leaves))
	for _, leaf := range leaves {
		room := layout.AddRoom(dungeon.NewRoom(leaf.Center(), s.carve(leaf)))
		centers = append(centers, room.Center)
	}

	layout.Path.UnionWith(ConnectRooms(src, centers))
	return nil
}

// carve returns the floor of leaf inset by Offset on every side.
func (s *RoomsFirstStrategy) carve(leaf world.Rect) *world.TileSet {
	floor := world.NewTileSet()
	for col := s.Params.Offset; col < leaf.W-s.Params.Offset; col++ {
		for row := s.Params.Offset; row < leaf.H-s.Params.Offset; row++ {
			floor.Put(leaf.Min().Add(world.Pos(col, row)))
		}
	}
	return floor
}

// ConnectRooms starts at a random center and repeatedly digs a corridor to
// the closest center not yet connected.
func ConnectRooms(src rng.Source, centers []world.Position) *world.TileSet {
	corridors := world.NewTileSet()
	if len(centers) == 0 {
		return corridors
	}

	pool := append([]world.Position(nil), centers...)
	i := src.Intn(len(pool))
	current := pool[i]
	pool = append(pool[:i], pool[i+1:]...)

	for len(pool) > 0 {
		j := closest(current, pool)
		next := pool[j]
		pool = append(pool[:j], pool[j+1:]...)

		corridors.Put(LCorridor(current, next)...)
		current = next
	}
	return corridors
}

// closest returns the index of the point nearest to from. Ties keep the earliest.
func closest(from world.Position, points []world.Position) int {
	best := 0
	bestDist := from.Distance(points[0])
	for i := 1; i < len(points); i++ {
		if d := from.Distance(points[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// LCorridor returns the tiles of a corridor from a to b that moves
// vertically first, then horizontally. Both ends are included.
func LCorridor(a, b world.Position) []world.Position {
	tiles := []world.Position{a}
	p := a
	for p.Y != b.Y {
		if b.Y > p.Y {
			p = p.Step(world.Up)
		} else {
			p = p.Step(world.Down)
		}
		tiles = append(tiles, p)
	}
	for p.X != b.X {
		if b.X > p.X {
			p = p.Step(world.Right)
		} else {
			p = p.Step(world.Left)
		}
		tiles = append(tiles, p)
	}
	return tiles
}
