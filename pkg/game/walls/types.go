// Package walls derives wall tiles around a dungeon floor and picks the wall
// archetype for each from its neighbour bitmask.
package walls

import (
	"strconv"

	"github.com/zyedidia/generic/mapset"
)

// Type is a wall tile archetype.
type Type int

const (
	None Type = iota
	Top
	SideLeft
	SideRight
	Bottom
	Full
	InnerCornerDownLeft
	InnerCornerDownRight
	DiagonalCornerDownLeft
	DiagonalCornerDownRight
	DiagonalCornerUpLeft
	DiagonalCornerUpRight
)

func (t Type) String() string {
	switch t {
	case Top:
		return "top"
	case SideLeft:
		return "side-left"
	case SideRight:
		return "side-right"
	case Bottom:
		return "bottom"
	case Full:
		return "full"
	case InnerCornerDownLeft:
		return "inner-corner-down-left"
	case InnerCornerDownRight:
		return "inner-corner-down-right"
	case DiagonalCornerDownLeft:
		return "diagonal-corner-down-left"
	case DiagonalCornerDownRight:
		return "diagonal-corner-down-right"
	case DiagonalCornerUpLeft:
		return "diagonal-corner-up-left"
	case DiagonalCornerUpRight:
		return "diagonal-corner-up-right"
	default:
		return "none"
	}
}

// catalogEntry maps a set of masks to the archetype painted for them.
type catalogEntry struct {
	masks mapset.Set[int]
	wall  Type
}

func masks(bits ...string) mapset.Set[int] {
	s := mapset.New[int]()
	for _, b := range bits {
		v, err := strconv.ParseInt(b, 2, 0)
		if err != nil {
			panic("walls: bad mask literal " + b)
		}
		s.Put(int(v))
	}
	return s
}

// Four-direction masks, bits ordered up, right, down, left (up is the high bit).
// Entries are matched in order.
var basicCatalog = []catalogEntry{
	{masks("1111", "0110", "0011", "0010", "1010", "1100", "1110", "1011", "0111"), Top},
	{masks("0001"), SideRight},
	{masks("0100"), SideLeft},
	{masks("1000"), Bottom},
	{masks("1101", "0101", "1001"), Full},
}

// Eight-direction masks, bits ordered clockwise from up (up is the high bit).
var cornerCatalog = []catalogEntry{
	{masks(
		"11110001", "11100000", "11110000", "11100001", "10100000", "01010001",
		"11010001", "01100001", "11010000", "01110001", "00010001", "10110001",
		"10100001", "10010000", "00110001", "10110000", "00100001", "10010001",
	), InnerCornerDownLeft},
	{masks(
		"11000111", "11000011", "10000011", "10000111", "10000010", "01000101",
		"11000101", "01000011", "10000101", "01000111", "01000100", "11000110",
		"11000010", "10000100", "01000110", "10000110", "11000100", "01000010",
	), InnerCornerDownRight},
	{masks("01000000"), DiagonalCornerDownLeft},
	{masks("00000001"), DiagonalCornerDownRight},
	{masks("00010000", "01010000"), DiagonalCornerUpLeft},
	{masks("00000100", "00000101"), DiagonalCornerUpRight},
	{masks(
		"00010100", "11100100", "10010011", "01110100", "00010111", "00010110",
		"00110100", "00010101", "01010100", "00010010", "00100100", "00010011",
		"01100100", "10010111", "11110100", "10010110", "10110100", "11100101",
		"11010011", "11110101", "11010111", "01110101", "01010111", "01100101",
		"01010011", "01010010", "00100101", "00110101", "01010110", "11010101",
		"11010100", "10010101",
	), Full},
	{masks("01000001"), Bottom},
}

func classify(catalog []catalogEntry, mask int) (Type, bool) {
	for _, e := range catalog {
		if e.masks.Has(mask) {
			return e.wall, true
		}
	}
	return None, false
}

// ClassifyBasic maps a four-direction mask to a wall archetype.
func ClassifyBasic(mask int) (Type, bool) {
	return classify(basicCatalog, mask)
}

// ClassifyCorner maps an eight-direction mask to a wall archetype.
func ClassifyCorner(mask int) (Type, bool) {
	return classify(cornerCatalog, mask)
}
