package walls

import (
	"fmt"

	"echoshift/pkg/engine/world"
)

// Painter is the tile-painting surface walls and floors are drawn onto.
type Painter interface {
	Clear()
	PaintFloor(tiles []world.Position)
	PaintWall(pos world.Position, wall Type)
}

// Result counts what Create painted.
type Result struct {
	Basic     int
	Corner    int
	Unmatched int
}

// FindWallsInDirections returns every non-floor tile one step from a floor
// tile in any of dirs.
func FindWallsInDirections(floor *world.TileSet, dirs []world.Direction) *world.TileSet {
	out := world.NewTileSet()
	floor.Each(func(p world.Position) {
		for _, d := range dirs {
			if n := p.Step(d); !floor.Has(n) {
				out.Put(n)
			}
		}
	})
	return out
}

// Mask tests each direction in order and packs the results into an integer
// with the first direction in the highest bit. A set bit means floor.
func Mask(floor *world.TileSet, p world.Position, dirs []world.Direction) int {
	mask := 0
	for _, d := range dirs {
		mask <<= 1
		if floor.Has(p.Step(d)) {
			mask |= 1
		}
	}
	return mask
}

// MaskString formats a mask as a binary string of the given width.
func MaskString(mask, width int) string {
	return fmt.Sprintf("%0*b", width, mask)
}

// Create paints walls around floor: orthogonal walls first, then the diagonal
// candidates, which may repaint a tile. Masks missing from the catalog are
// counted and left unpainted.
func Create(floor *world.TileSet, painter Painter) Result {
	var res Result

	cardinals := world.Cardinals()
	for _, p := range FindWallsInDirections(floor, cardinals).Sorted() {
		wall, ok := ClassifyBasic(Mask(floor, p, cardinals))
		if !ok {
			res.Unmatched++
			continue
		}
		painter.PaintWall(p, wall)
		res.Basic++
	}

	all := world.AllDirections()
	for _, p := range FindWallsInDirections(floor, world.Diagonals()).Sorted() {
		wall, ok := ClassifyCorner(Mask(floor, p, all))
		if !ok {
			res.Unmatched++
			continue
		}
		painter.PaintWall(p, wall)
		res.Corner++
	}

	return res
}
