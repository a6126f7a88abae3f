package generator

import (
	"github.com/zyedidia/generic/queue"

	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/world"
)

// BinarySpacePartition splits space into leaves no smaller than
// minWidth x minHeight. Rectangles are processed from a queue; each picks a
// random axis, falls back to the other axis when the first cannot hold two
// minimum-sized halves, and becomes a leaf when neither can. Leaves are
// returned in dequeue order and tile space exactly.
//
// A space already below the minimum comes back as its own single leaf.
// An empty space yields no leaves.
func BinarySpacePartition(src rng.Source, space world.Rect, minWidth, minHeight int) []world.Rect {
	if space.Area() == 0 {
		return nil
	}
	minWidth, minHeight = max(1, minWidth), max(1, minHeight)
	if space.W < minWidth || space.H < minHeight {
		return []world.Rect{space}
	}

	var leaves []world.Rect
	pending := queue.New[world.Rect]()
	pending.Enqueue(space)

	for !pending.Empty() {
		r := pending.Dequeue()

		canSplitH := r.H >= minHeight*2
		canSplitV := r.W >= minWidth*2

		horizontalFirst := src.Float64() < 0.5
		switch {
		case horizontalFirst && canSplitH, !horizontalFirst && !canSplitV && canSplitH:
			a, b := splitHorizontally(src, r, minHeight)
			pending.Enqueue(a)
			pending.Enqueue(b)
		case canSplitV:
			a, b := splitVertically(src, r, minWidth)
			pending.Enqueue(a)
			pending.Enqueue(b)
		default:
			leaves = append(leaves, r)
		}
	}

	return leaves
}

// splitHorizontally cuts r into a lower and an upper part, each at least minHeight tall.
func splitHorizontally(src rng.Source, r world.Rect, minHeight int) (world.Rect, world.Rect) {
	at := src.Range(minHeight, r.H-minHeight+1)
	return world.Rect{X: r.X, Y: r.Y, W: r.W, H: at},
		world.Rect{X: r.X, Y: r.Y + at, W: r.W, H: r.H - at}
}

// splitVertically cuts r into a left and a right part, each at least minWidth wide.
func splitVertically(src rng.Source, r world.Rect, minWidth int) (world.Rect, world.Rect) {
	at := src.Range(minWidth, r.W-minWidth+1)
	return world.Rect{X: r.X, Y: r.Y, W: at, H: r.H},
		world.Rect{X: r.X + at, Y: r.Y, W: r.W - at, H: r.H}
}
