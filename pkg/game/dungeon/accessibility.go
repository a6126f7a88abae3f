package dungeon

import (
	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/world"
)

// StartTile picks where reachability search begins for r: the first floor
// tile on path, else the center when it is floor, else the first floor tile.
func StartTile(r *Room, path *world.TileSet) (world.Position, bool) {
	if p, ok := r.Floor().Intersect(path).First(); ok {
		return p, true
	}
	if r.Floor().Has(r.Center) {
		return r.Center, true
	}
	return r.Floor().First()
}

// ComputeAccessibility fills r.Accessible with the prop-free tiles reachable
// from the room's start tile, in shuffled order.
func ComputeAccessibility(r *Room, path *world.TileSet, src rng.Source) {
	r.Accessible = nil

	start, ok := StartTile(r, path)
	if !ok {
		return
	}

	reached := NewGraph(r.Floor()).BFS(start, r.PropPositions)

	keys := world.NewTileSet()
	for p := range reached {
		if !r.PropPositions.Has(p) {
			keys.Put(p)
		}
	}

	accessible := keys.Sorted()
	rng.ShuffleSlice(src, accessible)
	r.Accessible = accessible
}
