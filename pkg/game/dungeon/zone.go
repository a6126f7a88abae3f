package dungeon

import (
	"fmt"
	"strings"
)

// Zone is a structural category of room tiles that props can be placed in.
type Zone int

const (
	ZoneCorner Zone = iota
	ZoneWallLeft
	ZoneWallRight
	ZoneWallUp
	ZoneWallDown
	ZoneInner
)

// Zones lists every zone in placement order.
func Zones() []Zone {
	return []Zone{ZoneCorner, ZoneWallLeft, ZoneWallRight, ZoneWallUp, ZoneWallDown, ZoneInner}
}

func (z Zone) String() string {
	switch z {
	case ZoneCorner:
		return "corner"
	case ZoneWallLeft:
		return "wall-left"
	case ZoneWallRight:
		return "wall-right"
	case ZoneWallUp:
		return "wall-up"
	case ZoneWallDown:
		return "wall-down"
	case ZoneInner:
		return "inner"
	default:
		return "unknown"
	}
}

// ParseZone parses a zone name as produced by String.
func ParseZone(s string) (Zone, error) {
	for _, z := range Zones() {
		if z.String() == strings.ToLower(strings.TrimSpace(s)) {
			return z, nil
		}
	}
	return 0, fmt.Errorf("unknown zone %q", s)
}
