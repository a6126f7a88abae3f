package renderer

import (
	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/dungeon"
	"echoshift/pkg/game/entities"
)

// Renderer draws a generated dungeon. Implementations include the terminal
// printer and the Ebiten preview window.
type Renderer interface {
	Render(scene *Scene) error
}

// Kind is what occupies a map cell, from the renderer's point of view.
type Kind int

const (
	KindVoid Kind = iota
	KindFloor
	KindPath
	KindWall
	KindProp
	KindLoot
	KindEnemy
	KindPortal
	KindPlayer
)

// Scene pairs painted tiles with the layout that produced them.
type Scene struct {
	Tiles  *Tilemap
	Layout *dungeon.Layout

	occupants map[world.Position]Kind
}

// NewScene builds a Scene. Entities are indexed once up front.
func NewScene(tiles *Tilemap, layout *dungeon.Layout) *Scene {
	s := &Scene{Tiles: tiles, Layout: layout, occupants: make(map[world.Position]Kind)}

	mark := func(kind Kind, es ...*entities.Entity) {
		for _, e := range es {
			if !e.Alive() {
				continue
			}
			// Higher kinds win when entities stack.
			if kind > s.occupants[e.Position] {
				s.occupants[e.Position] = kind
			}
		}
	}

	for _, r := range layout.Rooms {
		mark(KindProp, r.Props...)
		mark(KindLoot, r.Drops...)
		mark(KindEnemy, r.Enemies...)
	}
	mark(KindPortal, layout.Portal)
	mark(KindPlayer, layout.Player)
	return s
}

// KindAt classifies the cell at p.
func (s *Scene) KindAt(p world.Position) Kind {
	if k, ok := s.occupants[p]; ok {
		return k
	}
	if _, ok := s.Tiles.WallAt(p); ok {
		return KindWall
	}
	if s.Tiles.IsFloor(p) {
		if s.Layout.Path.Has(p) {
			if _, room := s.Layout.RoomAt(p); room == nil {
				return KindPath
			}
		}
		return KindFloor
	}
	return KindVoid
}

// Bounds is the rectangle covering every painted tile.
func (s *Scene) Bounds() (world.Rect, bool) {
	return s.Tiles.Bounds()
}

// ASCII is the plain-text glyph for each kind, used by dumps and uncoloured output.
var ASCII = map[Kind]rune{
	KindVoid:   ' ',
	KindFloor:  '.',
	KindPath:   ',',
	KindWall:   '#',
	KindProp:   'P',
	KindLoot:   '$',
	KindEnemy:  'E',
	KindPortal: 'O',
	KindPlayer: '@',
}

func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindPath:
		return "path"
	case KindWall:
		return "wall"
	case KindProp:
		return "prop"
	case KindLoot:
		return "loot"
	case KindEnemy:
		return "enemy"
	case KindPortal:
		return "portal"
	case KindPlayer:
		return "player"
	default:
		return "void"
	}
}
