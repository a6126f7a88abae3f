package tui

import (
	"bytes"
	"strings"
	"testing"

	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/dungeon"
	"echoshift/pkg/game/renderer"
	"echoshift/pkg/game/walls"
)

func TestRenderTopRowFirst(t *testing.T) {
	layout := dungeon.NewLayout()
	layout.AddRoom(dungeon.NewRoom(world.Pos(0, 0), world.NewTileSet(world.Pos(0, 0), world.Pos(1, 0))))

	m := renderer.NewTilemap()
	m.PaintFloor(layout.Floor().Sorted())
	m.PaintWall(world.Pos(0, 1), walls.Bottom)
	m.PaintWall(world.Pos(1, 1), walls.Full)

	var buf bytes.Buffer
	if err := NewWriter(&buf, false).Render(renderer.NewScene(m, layout)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("got %d lines, want at least 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "▄█" {
		t.Errorf("top row = %q, want %q", lines[0], "▄█")
	}
	if lines[1] != "··" {
		t.Errorf("floor row = %q, want %q", lines[1], "··")
	}
	if !strings.Contains(lines[2], "1 rooms") {
		t.Errorf("summary = %q", lines[2])
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	scene := renderer.NewScene(renderer.NewTilemap(), dungeon.NewLayout())
	if err := NewWriter(&buf, false).Render(scene); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "empty") {
		t.Errorf("got %q", buf.String())
	}
}
