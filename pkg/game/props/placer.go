package props

import (
	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/dungeon"
	"echoshift/pkg/game/entities"
)

// Origin is the footprint corner a prop is anchored at. The footprint grows
// away from it.
type Origin int

const (
	BottomLeft Origin = iota
	BottomRight
	TopLeft
	TopRight
)

// Context carries the per-run settings every strategy needs.
type Context struct {
	Parent         string
	PropPrefab     string
	LootDropPrefab string
	CornerChance   float64
}

// Instance is the component attached to a spawned prop entity.
type Instance struct {
	Prop      *Prop
	Footprint []world.Position
	// Destructible is nil unless the prop is breakable.
	Destructible *Destructible
}

// Placer spawns props and records them in rooms.
type Placer struct {
	spawner entities.Spawner
	src     rng.Source
}

// NewPlacer creates a Placer.
func NewPlacer(spawner entities.Spawner, src rng.Source) *Placer {
	return &Placer{spawner: spawner, src: src}
}

// PlaceAt spawns prop at pos and registers pos and the entity in room.
// The caller registers any further footprint tiles.
func (pl *Placer) PlaceAt(room *dungeon.Room, pos world.Position, prop *Prop, ctx Context) *entities.Entity {
	e := pl.spawner.Spawn(ctx.PropPrefab, pos, ctx.Parent)
	inst := &Instance{Prop: prop, Footprint: []world.Position{pos}}
	if prop.Breakable {
		inst.Destructible = newDestructible(prop, e, room, pl, ctx.LootDropPrefab)
	}
	e.Data = inst
	room.AddProp(e, pos)
	return e
}

// TryPlace scans candidates in order and places prop at the first position
// whose whole footprint, grown from origin, lies within candidates and is
// free. It reports whether a placement happened.
func (pl *Placer) TryPlace(room *dungeon.Room, prop *Prop, candidates []world.Position, origin Origin, path *world.TileSet, ctx Context) bool {
	available := world.NewTileSet(candidates...)

	for _, pos := range candidates {
		if room.PropPositions.Has(pos) {
			continue
		}

		fit := CheckFit(prop, available, pos, origin)
		if len(fit) != prop.Area() {
			continue
		}

		e := pl.PlaceAt(room, pos, prop, ctx)
		room.PropPositions.Put(fit...)
		e.Data.(*Instance).Footprint = fit

		if prop.PlaceAsGroup {
			pl.PlaceGroup(room, pos, prop, groupRadius(prop, 1), path, ctx)
		}
		return true
	}
	return false
}

// CheckFit returns the footprint tiles of prop anchored at pos that are in available.
func CheckFit(prop *Prop, available *world.TileSet, pos world.Position, origin Origin) []world.Position {
	xFrom, xTo := 0, prop.Size.W-1
	yFrom, yTo := 0, prop.Size.H-1
	if origin == BottomRight || origin == TopRight {
		xFrom, xTo = -prop.Size.W+1, 0
	}
	if origin == TopLeft || origin == TopRight {
		yFrom, yTo = -prop.Size.H+1, 0
	}

	var free []world.Position
	for x := xFrom; x <= xTo; x++ {
		for y := yFrom; y <= yTo; y++ {
			if p := pos.Add(world.Pos(x, y)); available.Has(p) {
				free = append(free, p)
			}
		}
	}
	return free
}

// PlaceGroup spawns extra single-tile copies of prop on free floor tiles
// within radius of anchor, never on the path.
func (pl *Placer) PlaceGroup(room *dungeon.Room, anchor world.Position, prop *Prop, radius int, path *world.TileSet, ctx Context) int {
	size := pl.src.Range(prop.GroupMin, prop.GroupMax) - 1
	size = min(max(size, 0), 8)

	var nearby []world.Position
	for x := -radius; x <= radius; x++ {
		for y := -radius; y <= radius; y++ {
			p := anchor.Add(world.Pos(x, y))
			if room.IsFree(p) && !path.Has(p) {
				nearby = append(nearby, p)
			}
		}
	}

	rng.ShuffleSlice(pl.src, nearby)

	n := min(size, len(nearby))
	for _, p := range nearby[:n] {
		pl.PlaceAt(room, p, prop, ctx)
	}
	return n
}

func groupRadius(prop *Prop, fallback int) int {
	if prop.GroupSearchRadius > 0 {
		return prop.GroupSearchRadius
	}
	return fallback
}
