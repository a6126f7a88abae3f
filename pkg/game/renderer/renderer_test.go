package renderer

import (
	"testing"

	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/dungeon"
	"echoshift/pkg/game/entities"
	"echoshift/pkg/game/walls"
)

func TestTilemapPaints(t *testing.T) {
	m := NewTilemap()
	m.PaintFloor([]world.Position{world.Pos(0, 0), world.Pos(1, 0)})
	m.PaintWall(world.Pos(2, 0), walls.SideRight)
	m.PaintWall(world.Pos(2, 0), walls.Full)

	if !m.IsFloor(world.Pos(1, 0)) || m.FloorCount() != 2 {
		t.Errorf("floor not painted")
	}
	if got, _ := m.WallAt(world.Pos(2, 0)); got != walls.Full {
		t.Errorf("WallAt = %v, want %v", got, walls.Full)
	}

	b, ok := m.Bounds()
	if !ok || b != (world.Rect{X: 0, Y: 0, W: 3, H: 1}) {
		t.Errorf("Bounds = %+v, %v", b, ok)
	}

	m.Clear()
	if m.FloorCount() != 0 || len(m.WallPositions()) != 0 {
		t.Error("Clear left tiles behind")
	}
}

func TestWallPositionsSorted(t *testing.T) {
	m := NewTilemap()
	m.PaintWall(world.Pos(5, 1), walls.Top)
	m.PaintWall(world.Pos(0, 1), walls.Top)
	m.PaintWall(world.Pos(3, 0), walls.Top)

	got := m.WallPositions()
	want := []world.Position{world.Pos(3, 0), world.Pos(0, 1), world.Pos(5, 1)}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("WallPositions = %v, want %v", got, want)
		}
	}
}

func TestSceneKinds(t *testing.T) {
	layout := dungeon.NewLayout()
	room := layout.AddRoom(dungeon.NewRoom(world.Pos(1, 0), world.Rect{W: 3, H: 1}.Tiles()))
	layout.Path.Put(world.Pos(3, 0), world.Pos(4, 0))

	reg := entities.NewRegistry()
	prop := reg.Spawn("prop", world.Pos(0, 0), entities.ContainerProps)
	room.AddProp(prop, prop.Position)
	enemy := reg.Spawn("slime", world.Pos(2, 0), entities.ContainerEnemies)
	room.Enemies = append(room.Enemies, enemy)
	layout.Player = reg.Spawn("player", world.Pos(2, 0), entities.ContainerAgents)

	m := NewTilemap()
	m.PaintFloor(layout.Floor().Sorted())
	m.PaintWall(world.Pos(0, 1), walls.Top)

	s := NewScene(m, layout)
	tests := []struct {
		pos  world.Position
		want Kind
	}{
		{world.Pos(0, 0), KindProp},
		{world.Pos(1, 0), KindFloor},
		{world.Pos(2, 0), KindPlayer},
		{world.Pos(4, 0), KindPath},
		{world.Pos(0, 1), KindWall},
		{world.Pos(9, 9), KindVoid},
	}
	for _, tt := range tests {
		if got := s.KindAt(tt.pos); got != tt.want {
			t.Errorf("KindAt(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}

	reg.Despawn(prop)
	if got := NewScene(m, layout).KindAt(world.Pos(0, 0)); got != KindFloor {
		t.Errorf("despawned prop still shown as %v", got)
	}
}
