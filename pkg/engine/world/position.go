// Package world provides generic 2D tile-grid primitives: positions,
// direction tables, position sets and rectangles.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"fmt"
	"math"
)

// Position is an integer tile coordinate. It is comparable and used as a map key.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pos is shorthand for Position{x, y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p offset by o.
func (p Position) Add(o Position) Position {
	return Position{p.X + o.X, p.Y + o.Y}
}

// Step returns the neighbouring position in the given direction.
func (p Position) Step(d Direction) Position {
	return p.Add(d.Delta())
}

// Distance returns the Euclidean distance between p and o.
func (p Position) Distance(o Position) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ManhattanDistance returns |dx| + |dy|.
func (p Position) ManhattanDistance(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Less orders positions by row (Y) then column (X).
func (p Position) Less(o Position) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
