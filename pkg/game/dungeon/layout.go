package dungeon

import (
	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/entities"
)

// Layout is one generated dungeon: its rooms and the corridor path between them.
type Layout struct {
	Rooms []*Room
	// Path tiles are kept clear of props so the dungeon stays traversable.
	Path   *world.TileSet
	Player *entities.Entity
	// Portal is the exit. The last room also owns it.
	Portal *entities.Entity
}

// NewLayout creates an empty layout.
func NewLayout() *Layout {
	return &Layout{Path: world.NewTileSet()}
}

// AddRoom appends a room and returns it.
func (l *Layout) AddRoom(r *Room) *Room {
	l.Rooms = append(l.Rooms, r)
	return r
}

// Floor returns the union of every room floor and the path.
func (l *Layout) Floor() *world.TileSet {
	floor := l.Path.Clone()
	for _, r := range l.Rooms {
		floor.UnionWith(r.Floor())
	}
	return floor
}

// RoomAt returns the first room whose floor contains p.
func (l *Layout) RoomAt(p world.Position) (int, *Room) {
	for i, r := range l.Rooms {
		if r.Floor().Has(p) {
			return i, r
		}
	}
	return -1, nil
}

// Reset despawns every entity owned by the layout and clears rooms and path.
// Calling it on an already empty layout is a no-op.
func (l *Layout) Reset(sp entities.Spawner) {
	for _, r := range l.Rooms {
		r.Release(sp)
	}
	if l.Player != nil {
		sp.Despawn(l.Player)
		l.Player = nil
	}
	if l.Portal != nil {
		sp.Despawn(l.Portal)
		l.Portal = nil
	}
	l.Rooms = nil
	l.Path = world.NewTileSet()
}
