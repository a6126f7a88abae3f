// Package tui prints a generated dungeon to a terminal.
package tui

import (
	"bufio"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"echoshift/pkg/engine/terminal"
	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/renderer"
	"echoshift/pkg/game/walls"
)

// Wall glyphs by archetype
var wallIcons = map[walls.Type]string{
	walls.Top:                     "▀",
	walls.Bottom:                  "▄",
	walls.SideLeft:                "▌",
	walls.SideRight:               "▐",
	walls.Full:                    "█",
	walls.InnerCornerDownLeft:     "▙",
	walls.InnerCornerDownRight:    "▟",
	walls.DiagonalCornerDownLeft:  "▖",
	walls.DiagonalCornerDownRight: "▗",
	walls.DiagonalCornerUpLeft:    "▘",
	walls.DiagonalCornerUpRight:   "▝",
}

var kindIcons = map[renderer.Kind]string{
	renderer.KindVoid:   " ",
	renderer.KindFloor:  "·",
	renderer.KindPath:   "░",
	renderer.KindProp:   "■",
	renderer.KindLoot:   "$",
	renderer.KindEnemy:  "E",
	renderer.KindPortal: "◎",
	renderer.KindPlayer: "@",
}

// TUIRenderer writes the map row by row, top row first.
type TUIRenderer struct {
	out io.Writer
	// Colour and clipping only apply when writing to a terminal.
	tty bool

	styles map[renderer.Kind]color.Style
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a renderer writing to stdout.
func New() *TUIRenderer {
	return NewWriter(os.Stdout, terminal.IsTerminal())
}

// NewWriter creates a renderer writing to w. Colour is only emitted when tty is set.
func NewWriter(w io.Writer, tty bool) *TUIRenderer {
	return &TUIRenderer{
		out: w,
		tty: tty,
		styles: map[renderer.Kind]color.Style{
			renderer.KindFloor:  {color.FgGray},
			renderer.KindPath:   {color.FgGray, color.OpBold},
			renderer.KindWall:   {color.FgBlue},
			renderer.KindProp:   {color.FgYellow},
			renderer.KindLoot:   {color.FgYellow, color.OpBold},
			renderer.KindEnemy:  {color.FgRed, color.OpBold},
			renderer.KindPortal: {color.FgMagenta, color.OpBold},
			renderer.KindPlayer: {color.FgGreen, color.BgBlack, color.OpBold},
		},
	}
}

// Icon returns the glyph for the cell at p.
func (t *TUIRenderer) Icon(scene *renderer.Scene, p world.Position) string {
	kind := scene.KindAt(p)
	icon := kindIcons[kind]
	if kind == renderer.KindWall {
		wall, _ := scene.Tiles.WallAt(p)
		var ok bool
		if icon, ok = wallIcons[wall]; !ok {
			icon = string(renderer.ASCII[renderer.KindWall])
		}
	}
	if t.tty {
		if style, ok := t.styles[kind]; ok {
			return style.Sprint(icon)
		}
	}
	return icon
}

// Render prints the map followed by a one-line summary.
func (t *TUIRenderer) Render(scene *renderer.Scene) error {
	w := bufio.NewWriter(t.out)

	bounds, ok := scene.Bounds()
	if !ok {
		w.WriteString(gotext.Get("The dungeon is empty.") + "\n")
		return w.Flush()
	}

	rows, cols := bounds.H, bounds.W
	if t.tty {
		// Leave room for the summary line.
		width, height := terminal.GetSize()
		cols = min(cols, width)
		rows = min(rows, height-2)
	}

	top := bounds.Y + bounds.H - 1
	for y := top; y > top-rows; y-- {
		for x := bounds.X; x < bounds.X+cols; x++ {
			w.WriteString(t.Icon(scene, world.Pos(x, y)))
		}
		w.WriteByte('\n')
	}

	enemies := 0
	for _, r := range scene.Layout.Rooms {
		enemies += len(r.Enemies)
	}
	w.WriteString(gotext.Get("%d rooms, %d floor tiles, %d enemies", len(scene.Layout.Rooms), scene.Tiles.FloorCount(), enemies) + "\n")
	return w.Flush()
}
