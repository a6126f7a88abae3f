package generator

import (
	"testing"

	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/world"
)

func TestBSPPartitionsSpace(t *testing.T) {
	space := world.Rect{X: 0, Y: 0, W: 20, H: 20}

	for seed := int64(1); seed <= 50; seed++ {
		leaves := BinarySpacePartition(rng.New(seed), space, 4, 4)
		if len(leaves) < 2 {
			t.Fatalf("seed %d: got %d leaves, want a split", seed, len(leaves))
		}

		covered := world.NewTileSet()
		area := 0
		for _, leaf := range leaves {
			if leaf.W < 4 || leaf.W >= 20 || leaf.H < 4 || leaf.H >= 20 {
				t.Errorf("seed %d: leaf %+v outside [4,20)", seed, leaf)
			}
			tiles := leaf.Tiles()
			if covered.Overlaps(tiles) {
				t.Errorf("seed %d: leaf %+v overlaps another leaf", seed, leaf)
			}
			covered.UnionWith(tiles)
			area += leaf.Area()
		}

		if area != space.Area() || covered.Size() != space.Area() {
			t.Errorf("seed %d: leaves cover %d tiles (area sum %d), want %d", seed, covered.Size(), area, space.Area())
		}
		covered.Each(func(p world.Position) {
			if !space.Contains(p) {
				t.Errorf("seed %d: tile %v outside the space", seed, p)
			}
		})
	}
}

func TestBSPLeavesRespectMinimum(t *testing.T) {
	space := world.Rect{X: -5, Y: 3, W: 37, H: 23}
	for seed := int64(1); seed <= 30; seed++ {
		for _, leaf := range BinarySpacePartition(rng.New(seed), space, 5, 3) {
			if leaf.W < 5 || leaf.H < 3 {
				t.Errorf("seed %d: leaf %+v below 5x3", seed, leaf)
			}
			// A leaf that could still be split on either axis should not exist.
			if leaf.W >= 10 || leaf.H >= 6 {
				t.Errorf("seed %d: leaf %+v is still splittable", seed, leaf)
			}
		}
	}
}

func TestBSPSmallAndEmptySpace(t *testing.T) {
	small := world.Rect{X: 0, Y: 0, W: 3, H: 10}
	leaves := BinarySpacePartition(rng.New(1), small, 4, 4)
	if len(leaves) != 1 || leaves[0] != small {
		t.Errorf("small space: got %v, want [%+v]", leaves, small)
	}

	if leaves := BinarySpacePartition(rng.New(1), world.Rect{W: 0, H: 10}, 4, 4); len(leaves) != 0 {
		t.Errorf("empty space: got %d leaves, want 0", len(leaves))
	}
}

func TestBSPIsReproducible(t *testing.T) {
	space := world.Rect{W: 60, H: 40}
	a := BinarySpacePartition(rng.New(99), space, 6, 6)
	b := BinarySpacePartition(rng.New(99), space, 6, 6)
	if len(a) != len(b) {
		t.Fatalf("got %d and %d leaves from the same seed", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("leaf %d: %+v != %+v", i, a[i], b[i])
		}
	}
}
