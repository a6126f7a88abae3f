package props

import (
	"slices"

	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/dungeon"
)

// cornerChanceStep is added to the corner acceptance chance after every rejection.
const cornerChanceStep = 0.1

// Strategy places a list of props into one zone of a room.
type Strategy interface {
	Place(room *dungeon.Room, props []*Prop, path *world.TileSet, ctx Context)
}

// CornerChance returns the acceptance chance after the given number of
// rejected corners, clamped to 1.
func CornerChance(base float64, rejections int) float64 {
	return min(1, max(0, base+cornerChanceStep*float64(rejections)))
}

// CornerStrategy walks the corner tiles and drops a random prop on each with
// a chance that grows every time a corner is passed over.
type CornerStrategy struct {
	placer *Placer
	src    rng.Source
}

func (s *CornerStrategy) Place(room *dungeon.Room, props []*Prop, path *world.TileSet, ctx Context) {
	rejections := 0
	for _, corner := range room.Corners.Sorted() {
		if path.Has(corner) || room.PropPositions.Has(corner) {
			continue
		}

		if s.src.Float64() >= CornerChance(ctx.CornerChance, rejections) {
			rejections++
			continue
		}

		prop, ok := rng.Pick(s.src, props)
		if !ok {
			return
		}
		s.placer.PlaceAt(room, corner, prop, ctx)
		if prop.PlaceAsGroup {
			s.placer.PlaceGroup(room, corner, prop, groupRadius(prop, 2), path, ctx)
		}
	}
}

// TileBasedStrategy fills a zone's tiles with props, largest footprint first,
// anchoring each footprint at a fixed corner.
type TileBasedStrategy struct {
	placer *Placer
	src    rng.Source
	tiles  *world.TileSet
	origin Origin
}

func (s *TileBasedStrategy) Place(room *dungeon.Room, props []*Prop, path *world.TileSet, ctx Context) {
	free := s.tiles.Clone()
	free.ExceptWith(path)

	sorted := slices.Clone(props)
	slices.SortStableFunc(sorted, func(a, b *Prop) int {
		return b.Area() - a.Area()
	})

	for _, prop := range sorted {
		quantity := s.src.Range(prop.QuantityMin, prop.QuantityMax+1)
		for i := 0; i < quantity; i++ {
			free.ExceptWith(room.PropPositions)
			candidates := free.Sorted()
			rng.ShuffleSlice(s.src, candidates)

			// One failed unit means the zone is full for this prop.
			if !s.placer.TryPlace(room, prop, candidates, s.origin, path, ctx) {
				break
			}
		}
	}
}
