// Package ebiten opens a window previewing a generated dungeon.
package ebiten

import (
	"image/color"

	"echoshift/pkg/game/renderer"
)

var colorBackground = color.RGBA{15, 15, 26, 255}

// Cell colours by occupant
var kindColors = map[renderer.Kind]color.RGBA{
	renderer.KindFloor:  {100, 100, 120, 255},
	renderer.KindPath:   {160, 160, 180, 255},
	renderer.KindWall:   {60, 60, 80, 255},
	renderer.KindProp:   {200, 180, 100, 255},
	renderer.KindLoot:   {255, 200, 100, 255},
	renderer.KindEnemy:  {255, 80, 80, 255},
	renderer.KindPortal: {220, 170, 255, 255},
	renderer.KindPlayer: {0, 255, 0, 255},
}

// Tile size constraints
const (
	minTileSize     = 4
	maxTileSize     = 48
	tileSizeStep    = 4
	defaultTileSize = 16
)
