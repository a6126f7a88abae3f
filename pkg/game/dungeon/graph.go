package dungeon

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"echoshift/pkg/engine/world"
)

// Graph is the orthogonal adjacency over a set of floor tiles.
type Graph struct {
	adj map[world.Position][]world.Position
}

// NewGraph builds the adjacency list for floor.
func NewGraph(floor *world.TileSet) *Graph {
	g := &Graph{adj: make(map[world.Position][]world.Position, floor.Size())}
	floor.Each(func(p world.Position) {
		var ns []world.Position
		for _, d := range world.Cardinals() {
			if n := p.Step(d); floor.Has(n) {
				ns = append(ns, n)
			}
		}
		g.adj[p] = ns
	})
	return g
}

// Neighbours returns the floor tiles orthogonally adjacent to p.
func (g *Graph) Neighbours(p world.Position) []world.Position {
	return g.adj[p]
}

// BFS walks the graph from start without entering occupied tiles and returns
// each reached tile mapped to its predecessor. start maps to itself and is
// always included. A start outside the graph yields an empty result.
func (g *Graph) BFS(start world.Position, occupied *world.TileSet) map[world.Position]world.Position {
	parents := make(map[world.Position]world.Position)
	if _, ok := g.adj[start]; !ok {
		return parents
	}

	visited := mapset.New[world.Position]()
	frontier := queue.New[world.Position]()

	visited.Put(start)
	parents[start] = start
	frontier.Enqueue(start)

	for !frontier.Empty() {
		current := frontier.Dequeue()
		for _, n := range g.adj[current] {
			if visited.Has(n) || occupied.Has(n) {
				continue
			}
			visited.Put(n)
			parents[n] = current
			frontier.Enqueue(n)
		}
	}

	return parents
}
