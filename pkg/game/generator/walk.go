package generator

import (
	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/world"
)

// RandomWalkParams configures RunRandomWalk.
type RandomWalkParams struct {
	Iterations int `yaml:"iterations"`
	WalkLength int `yaml:"walk_length"`
	// StartRandomly restarts each iteration from a random tile already walked.
	StartRandomly bool `yaml:"start_random"`
}

// randomCardinal returns one of the four orthogonal directions.
func randomCardinal(src rng.Source) world.Direction {
	dirs := world.Cardinals()
	return dirs[src.Intn(len(dirs))]
}

// RandomWalk takes length unit steps from start, choosing a new cardinal
// direction each step, and returns every tile visited including start.
func RandomWalk(src rng.Source, start world.Position, length int) *world.TileSet {
	path := world.NewTileSet(start)
	current := start
	for i := 0; i < length; i++ {
		current = current.Step(randomCardinal(src))
		path.Put(current)
	}
	return path
}

// RunRandomWalk repeats RandomWalk p.Iterations times and returns the union.
func RunRandomWalk(src rng.Source, p RandomWalkParams, start world.Position) *world.TileSet {
	floor := world.NewTileSet()
	current := start
	for i := 0; i < p.Iterations; i++ {
		floor.UnionWith(RandomWalk(src, current, p.WalkLength))
		if p.StartRandomly {
			current, _ = rng.Pick(src, floor.Sorted())
		}
	}
	return floor
}

// RandomWalkCorridor walks length steps from start in a single random
// direction. The returned slice starts at start and ends at the far tile.
func RandomWalkCorridor(src rng.Source, start world.Position, length int) []world.Position {
	dir := randomCardinal(src)
	corridor := []world.Position{start}
	current := start
	for i := 0; i < length; i++ {
		current = current.Step(dir)
		corridor = append(corridor, current)
	}
	return corridor
}
