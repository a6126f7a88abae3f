// Package dungeon holds the generated dungeon model: rooms, the corridor path
// connecting them and the per-room analysis consumed by placement.
package dungeon

import (
	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/entities"
)

// Room is a group of floor tiles plus everything derived from and placed on them.
type Room struct {
	// Center is the room's reference point. It need not be a floor tile.
	Center world.Position

	floor *world.TileSet

	Corners       *world.TileSet
	NearWallUp    *world.TileSet
	NearWallDown  *world.TileSet
	NearWallLeft  *world.TileSet
	NearWallRight *world.TileSet
	Inner         *world.TileSet

	// PropPositions only grows during a generation pass.
	PropPositions *world.TileSet
	Props         []*entities.Entity
	Enemies       []*entities.Entity
	// Drops are loot pickups left by broken props.
	Drops []*entities.Entity

	// Accessible is the shuffled BFS reachability ordering, filled after props are placed.
	Accessible []world.Position
}

// NewRoom creates a room over a copy of floor.
func NewRoom(center world.Position, floor *world.TileSet) *Room {
	return &Room{
		Center:        center,
		floor:         floor.Clone(),
		Corners:       world.NewTileSet(),
		NearWallUp:    world.NewTileSet(),
		NearWallDown:  world.NewTileSet(),
		NearWallLeft:  world.NewTileSet(),
		NearWallRight: world.NewTileSet(),
		Inner:         world.NewTileSet(),
		PropPositions: world.NewTileSet(),
	}
}

// Floor returns the room's floor tiles. Callers must not modify the set.
func (r *Room) Floor() *world.TileSet {
	return r.floor
}

// NearWall returns the near-wall set for a cardinal direction, or nil.
func (r *Room) NearWall(d world.Direction) *world.TileSet {
	switch d {
	case world.Up:
		return r.NearWallUp
	case world.Down:
		return r.NearWallDown
	case world.Left:
		return r.NearWallLeft
	case world.Right:
		return r.NearWallRight
	default:
		return nil
	}
}

// ZoneTiles returns the tile set backing a placement zone.
func (r *Room) ZoneTiles(z Zone) *world.TileSet {
	switch z {
	case ZoneCorner:
		return r.Corners
	case ZoneWallUp:
		return r.NearWallUp
	case ZoneWallDown:
		return r.NearWallDown
	case ZoneWallLeft:
		return r.NearWallLeft
	case ZoneWallRight:
		return r.NearWallRight
	case ZoneInner:
		return r.Inner
	default:
		return nil
	}
}

// IsFree reports whether p is a floor tile not yet taken by a prop.
func (r *Room) IsFree(p world.Position) bool {
	return r.floor.Has(p) && !r.PropPositions.Has(p)
}

// AddProp records a spawned prop and the tiles it covers.
func (r *Room) AddProp(e *entities.Entity, tiles ...world.Position) {
	r.PropPositions.Put(tiles...)
	if e != nil {
		r.Props = append(r.Props, e)
	}
}

// RemoveProp drops e from the room's owned props. Its tiles stay occupied.
func (r *Room) RemoveProp(e *entities.Entity) {
	for i, p := range r.Props {
		if p == e {
			r.Props = append(r.Props[:i], r.Props[i+1:]...)
			return
		}
	}
}

// Release despawns every entity the room owns and forgets them.
func (r *Room) Release(sp entities.Spawner) {
	for _, e := range r.Props {
		sp.Despawn(e)
	}
	for _, e := range r.Enemies {
		sp.Despawn(e)
	}
	for _, e := range r.Drops {
		sp.Despawn(e)
	}
	r.Props = nil
	r.Enemies = nil
	r.Drops = nil
}
