// Package props places decorative and breakable props into analysed rooms.
package props

import (
	"errors"
	"fmt"

	"echoshift/pkg/game/dungeon"
	"echoshift/pkg/game/entities"
)

// ErrInvalidProp is returned for catalog entries that cannot be placed.
var ErrInvalidProp = errors.New("props: invalid prop")

// Size is a footprint in tiles.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Prop is a catalog entry describing something that can be placed in a room.
type Prop struct {
	Name   string `yaml:"name"`
	Sprite string `yaml:"sprite"`
	Size   Size   `yaml:"size"`

	Corner        bool `yaml:"corner"`
	NearWallUp    bool `yaml:"near_wall_up"`
	NearWallDown  bool `yaml:"near_wall_down"`
	NearWallLeft  bool `yaml:"near_wall_left"`
	NearWallRight bool `yaml:"near_wall_right"`
	Inner         bool `yaml:"inner"`

	QuantityMin int `yaml:"quantity_min"`
	QuantityMax int `yaml:"quantity_max"`

	PlaceAsGroup bool `yaml:"place_as_group"`
	GroupMin     int  `yaml:"group_min"`
	GroupMax     int  `yaml:"group_max"`
	// GroupSearchRadius overrides the strategy's search radius when positive.
	GroupSearchRadius int `yaml:"group_search_radius"`

	Breakable bool                `yaml:"breakable"`
	Health    int                 `yaml:"health"`
	Loot      []entities.LootItem `yaml:"loot"`
}

// Area returns the footprint area.
func (p *Prop) Area() int {
	return p.Size.W * p.Size.H
}

// Allows reports whether the prop may be placed in zone z.
func (p *Prop) Allows(z dungeon.Zone) bool {
	switch z {
	case dungeon.ZoneCorner:
		return p.Corner
	case dungeon.ZoneWallUp:
		return p.NearWallUp
	case dungeon.ZoneWallDown:
		return p.NearWallDown
	case dungeon.ZoneWallLeft:
		return p.NearWallLeft
	case dungeon.ZoneWallRight:
		return p.NearWallRight
	case dungeon.ZoneInner:
		return p.Inner
	default:
		return false
	}
}

// applyDefaults fills zero values the way an unconfigured entry behaves.
func (p *Prop) applyDefaults() {
	if p.Size.W == 0 {
		p.Size.W = 1
	}
	if p.Size.H == 0 {
		p.Size.H = 1
	}
	if p.QuantityMin == 0 && p.QuantityMax == 0 {
		p.QuantityMin, p.QuantityMax = 1, 1
	}
	if p.GroupMin == 0 {
		p.GroupMin = 1
	}
	if p.GroupMax == 0 {
		p.GroupMax = p.GroupMin
	}
	if p.Breakable && p.Health == 0 {
		p.Health = 1
	}
}

// Validate checks the entry is placeable.
func (p *Prop) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidProp)
	case p.Size.W < 1 || p.Size.H < 1:
		return fmt.Errorf("%w: %s: size %dx%d", ErrInvalidProp, p.Name, p.Size.W, p.Size.H)
	case p.QuantityMin < 0 || p.QuantityMax < p.QuantityMin:
		return fmt.Errorf("%w: %s: quantity range [%d, %d]", ErrInvalidProp, p.Name, p.QuantityMin, p.QuantityMax)
	case p.GroupMin < 1 || p.GroupMax < 1:
		return fmt.Errorf("%w: %s: group range [%d, %d]", ErrInvalidProp, p.Name, p.GroupMin, p.GroupMax)
	case p.Breakable && p.Health < 1:
		return fmt.Errorf("%w: %s: breakable with health %d", ErrInvalidProp, p.Name, p.Health)
	}
	for _, l := range p.Loot {
		if l.DropChance < 0 || l.DropChance > 1 {
			return fmt.Errorf("%w: %s: loot %s drop chance %v", ErrInvalidProp, p.Name, l.Name, l.DropChance)
		}
	}
	return nil
}

// Filter returns the props allowed in zone z, in catalog order.
func Filter(props []*Prop, z dungeon.Zone) []*Prop {
	var out []*Prop
	for _, p := range props {
		if p.Allows(z) {
			out = append(out, p)
		}
	}
	return out
}
