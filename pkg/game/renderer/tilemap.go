package renderer

import (
	"maps"
	"slices"

	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/walls"
)

// Tilemap is an in-memory painting surface. It satisfies walls.Painter.
type Tilemap struct {
	floor *world.TileSet
	walls map[world.Position]walls.Type
}

var _ walls.Painter = (*Tilemap)(nil)

// NewTilemap creates an empty Tilemap.
func NewTilemap() *Tilemap {
	return &Tilemap{floor: world.NewTileSet(), walls: make(map[world.Position]walls.Type)}
}

func (m *Tilemap) Clear() {
	m.floor.Clear()
	clear(m.walls)
}

func (m *Tilemap) PaintFloor(tiles []world.Position) {
	m.floor.Put(tiles...)
}

// PaintWall records a wall. A later paint on the same tile replaces the earlier one.
func (m *Tilemap) PaintWall(pos world.Position, wall walls.Type) {
	m.walls[pos] = wall
}

// IsFloor reports whether p was painted as floor.
func (m *Tilemap) IsFloor(p world.Position) bool {
	return m.floor.Has(p)
}

// WallAt returns the wall painted at p.
func (m *Tilemap) WallAt(p world.Position) (walls.Type, bool) {
	t, ok := m.walls[p]
	return t, ok
}

// FloorCount is the number of floor tiles painted.
func (m *Tilemap) FloorCount() int {
	return m.floor.Size()
}

// WallPositions returns painted wall tiles in row order.
func (m *Tilemap) WallPositions() []world.Position {
	return slices.SortedFunc(maps.Keys(m.walls), func(a, b world.Position) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
}

// Bounds covers floor and walls.
func (m *Tilemap) Bounds() (world.Rect, bool) {
	all := m.floor.Clone()
	for p := range m.walls {
		all.Put(p)
	}
	return all.Bounds()
}
