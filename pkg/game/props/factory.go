package props

import (
	"echoshift/pkg/engine/rng"
	"echoshift/pkg/game/dungeon"
)

// Assignment pairs a zone's strategy with the props allowed in it.
type Assignment struct {
	Zone     dungeon.Zone
	Strategy Strategy
	Props    []*Prop
}

// zoneOrigins is the footprint anchor used for each tile-based zone.
var zoneOrigins = map[dungeon.Zone]Origin{
	dungeon.ZoneWallLeft:  BottomLeft,
	dungeon.ZoneWallRight: TopRight,
	dungeon.ZoneWallUp:    TopLeft,
	dungeon.ZoneWallDown:  BottomLeft,
	dungeon.ZoneInner:     BottomLeft,
}

// StrategiesFor returns the strategies to run for room, in zone order. Zones
// with no tiles or no allowed props are left out.
func StrategiesFor(room *dungeon.Room, catalog []*Prop, placer *Placer, src rng.Source) []Assignment {
	var out []Assignment

	for _, zone := range dungeon.Zones() {
		props := Filter(catalog, zone)
		if len(props) == 0 {
			continue
		}

		if zone == dungeon.ZoneCorner {
			out = append(out, Assignment{
				Zone:     zone,
				Strategy: &CornerStrategy{placer: placer, src: src},
				Props:    props,
			})
			continue
		}

		tiles := room.ZoneTiles(zone)
		if tiles.Empty() {
			continue
		}
		out = append(out, Assignment{
			Zone:     zone,
			Strategy: &TileBasedStrategy{placer: placer, src: src, tiles: tiles, origin: zoneOrigins[zone]},
			Props:    props,
		})
	}

	return out
}
