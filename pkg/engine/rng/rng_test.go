package rng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: got %d and %d from identical seeds", i, x, y)
		}
	}
}

func TestRange(t *testing.T) {
	src := New(1)

	for i := 0; i < 500; i++ {
		v := src.Range(3, 7)
		if v < 3 || v >= 7 {
			t.Fatalf("Range(3, 7) = %d, want value in [3, 7)", v)
		}
	}

	if got := src.Range(5, 5); got != 5 {
		t.Errorf("Range(5, 5) = %d, want 5", got)
	}
	if got := src.Range(5, 2); got != 5 {
		t.Errorf("Range(5, 2) = %d, want 5", got)
	}
}

func TestIntnNonPositive(t *testing.T) {
	src := New(1)
	if got := src.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
	if got := src.Intn(-3); got != 0 {
		t.Errorf("Intn(-3) = %d, want 0", got)
	}
}

func TestPick(t *testing.T) {
	src := New(7)

	if _, ok := Pick[string](src, nil); ok {
		t.Error("Pick on empty slice reported ok")
	}

	items := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		got, ok := Pick(src, items)
		if !ok {
			t.Fatal("Pick on non-empty slice reported !ok")
		}
		if got != "a" && got != "b" && got != "c" {
			t.Fatalf("Pick returned %q, not an element of %v", got, items)
		}
	}
}

func TestShuffleSliceKeepsElements(t *testing.T) {
	src := New(3)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	ShuffleSlice(src, items)

	seen := map[int]bool{}
	for _, v := range items {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("ShuffleSlice lost elements: %v", items)
	}
}
