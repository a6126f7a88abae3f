package world

import "math"

// Rect is an axis-aligned rectangle of tiles. (X, Y) is the minimum corner
// and W, H are the size; the maximum corner is exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// Min returns the minimum corner.
func (r Rect) Min() Position {
	return Position{r.X, r.Y}
}

// Max returns the exclusive maximum corner.
func (r Rect) Max() Position {
	return Position{r.X + r.W, r.Y + r.H}
}

// Area returns W*H, or zero for an empty rectangle.
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the geometric center rounded to the nearest tile,
// with halves rounded to even.
func (r Rect) Center() Position {
	cx := float64(r.X) + float64(r.W)/2
	cy := float64(r.Y) + float64(r.H)/2
	return Position{int(math.RoundToEven(cx)), int(math.RoundToEven(cy))}
}

// Tiles returns every tile position inside the rectangle.
func (r Rect) Tiles() *TileSet {
	out := NewTileSet()
	for x := r.X; x < r.X+r.W; x++ {
		for y := r.Y; y < r.Y+r.H; y++ {
			out.Put(Position{x, y})
		}
	}
	return out
}
