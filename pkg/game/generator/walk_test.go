package generator

import (
	"testing"

	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/world"
)

func TestRandomWalkFromOrigin(t *testing.T) {
	origin := world.Pos(0, 0)
	for seed := int64(1); seed <= 200; seed++ {
		floor := RunRandomWalk(rng.New(seed), RandomWalkParams{Iterations: 1, WalkLength: 5}, origin)
		if !floor.Has(origin) {
			t.Fatalf("seed %d: walk does not contain the start", seed)
		}
		if floor.Size() > 6 {
			t.Fatalf("seed %d: walk has %d tiles, want at most 6", seed, floor.Size())
		}
	}
}

func TestRandomWalkIsConnected(t *testing.T) {
	floor := RunRandomWalk(rng.New(4), RandomWalkParams{Iterations: 10, WalkLength: 12, StartRandomly: true}, world.Pos(3, 3))
	if floor.Size() > 10*12+1 {
		t.Errorf("walk has %d tiles, more than iterations*length+1", floor.Size())
	}

	// Every tile after the start was reached by a unit step from another walked tile.
	floor.Each(func(p world.Position) {
		if floor.Size() > 1 && floor.CountNeighbours(p, world.Cardinals()) == 0 {
			t.Errorf("tile %v has no walked neighbour", p)
		}
	})
}

func TestRandomWalkZeroIterations(t *testing.T) {
	floor := RunRandomWalk(rng.New(1), RandomWalkParams{Iterations: 0, WalkLength: 10}, world.Pos(0, 0))
	if !floor.Empty() {
		t.Errorf("zero iterations produced %d tiles", floor.Size())
	}
}

func TestRandomWalkCorridorIsStraight(t *testing.T) {
	start := world.Pos(2, -1)
	for seed := int64(1); seed <= 20; seed++ {
		corridor := RandomWalkCorridor(rng.New(seed), start, 7)
		if len(corridor) != 8 {
			t.Fatalf("seed %d: corridor has %d tiles, want 8", seed, len(corridor))
		}
		if corridor[0] != start {
			t.Errorf("seed %d: corridor starts at %v, want %v", seed, corridor[0], start)
		}
		step := world.Pos(corridor[1].X-corridor[0].X, corridor[1].Y-corridor[0].Y)
		for i := 1; i < len(corridor); i++ {
			if got := world.Pos(corridor[i].X-corridor[i-1].X, corridor[i].Y-corridor[i-1].Y); got != step {
				t.Fatalf("seed %d: step %d = %v, want %v", seed, i, got, step)
			}
		}
		if start.ManhattanDistance(corridor[7]) != 7 {
			t.Errorf("seed %d: corridor end %v is not 7 tiles away", seed, corridor[7])
		}
	}
}
