package dungeon

import "echoshift/pkg/engine/world"

// Analyze sorts every floor tile of r into exactly one structural category:
// inner tiles have all four orthogonal neighbours, corners have at most two,
// and the rest sit next to the wall on each side missing a neighbour.
// Previous results are discarded so Analyze may be called again.
func Analyze(r *Room) {
	r.Corners = world.NewTileSet()
	r.NearWallUp = world.NewTileSet()
	r.NearWallDown = world.NewTileSet()
	r.NearWallLeft = world.NewTileSet()
	r.NearWallRight = world.NewTileSet()
	r.Inner = world.NewTileSet()

	floor := r.Floor()
	floor.Each(func(p world.Position) {
		n := 0
		for _, d := range world.Cardinals() {
			if floor.Has(p.Step(d)) {
				n++
				continue
			}
			r.NearWall(d).Put(p)
		}

		switch {
		case n == 4:
			r.Inner.Put(p)
		case n <= 2:
			r.Corners.Put(p)
		}
	})

	for _, d := range world.Cardinals() {
		r.NearWall(d).ExceptWith(r.Corners)
	}
}
