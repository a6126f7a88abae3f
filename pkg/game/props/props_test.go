package props

import (
	"context"
	"errors"
	"strings"
	"testing"

	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/dungeon"
	"echoshift/pkg/game/entities"
)

// fixedSource returns the same float for every roll and the lowest value for
// every integer draw. Shuffle leaves order untouched.
type fixedSource struct {
	roll float64
}

func (s fixedSource) Float64() float64 { return s.roll }
func (s fixedSource) Intn(int) int     { return 0 }
func (s fixedSource) Shuffle(int, func(i, j int)) {}

func (s fixedSource) Range(lo, _ int) int {
	return lo
}

func analysedRoom(floor *world.TileSet) *dungeon.Room {
	r := dungeon.NewRoom(world.Pos(0, 0), floor)
	dungeon.Analyze(r)
	return r
}

func testContext() Context {
	return Context{Parent: entities.ContainerProps, PropPrefab: "prop", LootDropPrefab: "loot"}
}

func instance(t *testing.T, e *entities.Entity) *Instance {
	t.Helper()
	inst, ok := e.Data.(*Instance)
	if !ok {
		t.Fatalf("entity %v has no prop instance", e.ID)
	}
	return inst
}

func TestCornerChance(t *testing.T) {
	for k := 0; k <= 15; k++ {
		want := min(1.0, 0.1*float64(k))
		if got := CornerChance(0, k); got != want {
			t.Errorf("CornerChance(0, %d) = %v, want %v", k, got, want)
		}
	}
	if got := CornerChance(0.7, 5); got != 1 {
		t.Errorf("CornerChance(0.7, 5) = %v, want 1", got)
	}
}

func TestCornerStrategyEscalates(t *testing.T) {
	// Fifteen isolated tiles are all corners.
	floor := world.NewTileSet()
	for i := 0; i < 15; i++ {
		floor.Put(world.Pos(i*2, 0))
	}
	room := analysedRoom(floor)
	if room.Corners.Size() != 15 {
		t.Fatalf("got %d corners, want 15", room.Corners.Size())
	}

	src := fixedSource{roll: 0.95}
	reg := entities.NewRegistry()
	s := &CornerStrategy{placer: NewPlacer(reg, src), src: src}
	ctx := testContext()
	ctx.CornerChance = 0

	s.Place(room, []*Prop{{Name: "urn", Size: Size{1, 1}, Corner: true}}, world.NewTileSet(), ctx)

	// Ten rejections raise the chance to 1, after which every corner is taken.
	if len(room.Props) != 5 {
		t.Fatalf("placed %d props, want 5", len(room.Props))
	}
	for i, e := range room.Props {
		if want := world.Pos((10+i)*2, 0); e.Position != want {
			t.Errorf("prop %d at %v, want %v", i, e.Position, want)
		}
	}
}

func TestCornerStrategySkipsPath(t *testing.T) {
	room := analysedRoom(world.Rect{W: 3, H: 3}.Tiles())
	path := world.NewTileSet(world.Pos(0, 0), world.Pos(2, 2))

	src := fixedSource{roll: 0}
	s := &CornerStrategy{placer: NewPlacer(entities.NewRegistry(), src), src: src}
	ctx := testContext()
	ctx.CornerChance = 1

	s.Place(room, []*Prop{{Name: "urn", Size: Size{1, 1}, Corner: true}}, path, ctx)

	if len(room.Props) != 2 {
		t.Fatalf("placed %d props, want 2", len(room.Props))
	}
	for _, e := range room.Props {
		if path.Has(e.Position) {
			t.Errorf("prop placed on path tile %v", e.Position)
		}
	}
}

func TestCheckFitOrigins(t *testing.T) {
	available := world.Rect{X: 0, Y: 0, W: 10, H: 10}.Tiles()
	prop := &Prop{Name: "table", Size: Size{2, 2}}
	anchor := world.Pos(5, 5)

	tests := []struct {
		origin Origin
		want   world.Rect
	}{
		{BottomLeft, world.Rect{X: 5, Y: 5, W: 2, H: 2}},
		{BottomRight, world.Rect{X: 4, Y: 5, W: 2, H: 2}},
		{TopLeft, world.Rect{X: 5, Y: 4, W: 2, H: 2}},
		{TopRight, world.Rect{X: 4, Y: 4, W: 2, H: 2}},
	}

	for _, tt := range tests {
		fit := CheckFit(prop, available, anchor, tt.origin)
		if !world.NewTileSet(fit...).Equal(tt.want.Tiles()) {
			t.Errorf("origin %d: fit = %v, want %+v", tt.origin, fit, tt.want)
		}
	}

	edge := CheckFit(prop, available, world.Pos(9, 9), BottomLeft)
	if len(edge) != 1 {
		t.Errorf("fit at the edge = %v, want only the anchor", edge)
	}
}

func TestFootprintsNeverOverlap(t *testing.T) {
	catalog := []*Prop{
		{Name: "table", Size: Size{2, 2}, Inner: true, QuantityMin: 3, QuantityMax: 6},
		{Name: "rug", Size: Size{3, 2}, Inner: true, QuantityMin: 2, QuantityMax: 4},
		{Name: "pillar", Size: Size{1, 1}, Inner: true, QuantityMin: 4, QuantityMax: 8,
			PlaceAsGroup: true, GroupMin: 2, GroupMax: 5},
		{Name: "shelf", Size: Size{2, 1}, NearWallUp: true, NearWallDown: true, QuantityMin: 2, QuantityMax: 3},
		{Name: "torch", Size: Size{1, 1}, NearWallLeft: true, NearWallRight: true, QuantityMin: 1, QuantityMax: 3},
		{Name: "urn", Size: Size{1, 1}, Corner: true, PlaceAsGroup: true, GroupMin: 3, GroupMax: 6},
	}

	for seed := int64(1); seed <= 20; seed++ {
		layout := dungeon.NewLayout()
		room := layout.AddRoom(analysedRoom(world.Rect{W: 14, H: 11}.Tiles()))
		for x := 0; x < 14; x++ {
			layout.Path.Put(world.Pos(x, 5))
		}

		reg := entities.NewRegistry()
		ctx := testContext()
		ctx.CornerChance = 0.5
		NewManager(catalog, reg, rng.New(seed), ctx, nil).PlaceProps(context.Background(), layout)

		if len(room.Props) == 0 {
			t.Fatalf("seed %d: nothing placed", seed)
		}

		taken := world.NewTileSet()
		for _, e := range room.Props {
			for _, p := range instance(t, e).Footprint {
				if taken.Has(p) {
					t.Errorf("seed %d: tile %v covered twice", seed, p)
				}
				if layout.Path.Has(p) {
					t.Errorf("seed %d: %s covers path tile %v", seed, instance(t, e).Prop.Name, p)
				}
				if !room.Floor().Has(p) {
					t.Errorf("seed %d: %s covers non-floor tile %v", seed, instance(t, e).Prop.Name, p)
				}
				if !room.PropPositions.Has(p) {
					t.Errorf("seed %d: footprint tile %v not registered", seed, p)
				}
				taken.Put(p)
			}
		}
	}
}

func TestTileBasedStopsAfterFailedUnit(t *testing.T) {
	// A 4x4 room has a 2x2 interior, too small for a 3x3 prop.
	room := analysedRoom(world.Rect{W: 4, H: 4}.Tiles())
	src := rng.New(1)
	s := &TileBasedStrategy{placer: NewPlacer(entities.NewRegistry(), src), src: src, tiles: room.Inner, origin: BottomLeft}

	big := &Prop{Name: "altar", Size: Size{3, 3}, Inner: true, QuantityMin: 3, QuantityMax: 3}
	small := &Prop{Name: "candle", Size: Size{1, 1}, Inner: true, QuantityMin: 6, QuantityMax: 6}
	s.Place(room, []*Prop{small, big}, world.NewTileSet(), testContext())

	if len(room.Props) != 4 {
		t.Fatalf("placed %d props, want 4 candles", len(room.Props))
	}
	for _, e := range room.Props {
		if name := instance(t, e).Prop.Name; name != "candle" {
			t.Errorf("placed %s, want only candles", name)
		}
	}
}

func TestPlaceGroupIsCapped(t *testing.T) {
	room := analysedRoom(world.Rect{W: 9, H: 9}.Tiles())
	src := fixedSource{}
	pl := NewPlacer(entities.NewRegistry(), src)

	prop := &Prop{Name: "pot", Size: Size{1, 1}, PlaceAsGroup: true, GroupMin: 20, GroupMax: 30}
	anchor := world.Pos(4, 4)
	pl.PlaceAt(room, anchor, prop, testContext())

	if n := pl.PlaceGroup(room, anchor, prop, 2, world.NewTileSet(), testContext()); n != 8 {
		t.Errorf("PlaceGroup placed %d, want 8", n)
	}
	for _, e := range room.Props {
		if e.Position.ManhattanDistance(anchor) > 4 {
			t.Errorf("group member %v too far from %v", e.Position, anchor)
		}
	}

	// GroupMax is exclusive, so [2, 2) places nothing extra.
	pair := &Prop{Name: "pair", Size: Size{1, 1}, PlaceAsGroup: true, GroupMin: 1, GroupMax: 2}
	if n := pl.PlaceGroup(room, world.Pos(1, 1), pair, 1, world.NewTileSet(), testContext()); n != 0 {
		t.Errorf("PlaceGroup with [1, 2) placed %d, want 0", n)
	}
}

func TestDestructibleDropsLootOnce(t *testing.T) {
	room := analysedRoom(world.Rect{W: 3, H: 3}.Tiles())
	reg := entities.NewRegistry()
	pl := NewPlacer(reg, fixedSource{roll: 0.5})

	prop := &Prop{
		Name: "barrel", Size: Size{1, 1}, Breakable: true, Health: 2,
		Loot: []entities.LootItem{
			{Name: "coin", Type: entities.LootCoin, Value: 1, DropChance: 1},
			{Name: "potion", Type: entities.LootHealth, Value: 5, DropChance: 0.1},
		},
	}
	e := pl.PlaceAt(room, world.Pos(1, 1), prop, testContext())
	d := instance(t, e).Destructible
	if d == nil {
		t.Fatal("breakable prop has no Destructible")
	}

	if drops := d.TakeDamage(1); drops != nil || d.Destroyed() {
		t.Fatalf("first hit: drops = %v, destroyed = %v", drops, d.Destroyed())
	}

	drops := d.TakeDamage(3)
	if !d.Destroyed() {
		t.Fatal("prop not destroyed at zero health")
	}
	if len(drops) != 1 {
		t.Fatalf("got %d drops, want 1", len(drops))
	}
	if pickup := drops[0].Data.(*entities.Pickup); pickup.Item.Name != "coin" {
		t.Errorf("dropped %q, want coin", pickup.Item.Name)
	}
	if drops[0].Position != world.Pos(1, 1) || drops[0].Parent != entities.ContainerLoot {
		t.Errorf("drop at %v under %q", drops[0].Position, drops[0].Parent)
	}
	if e.Alive() || len(room.Props) != 0 {
		t.Error("destroyed prop still owned or alive")
	}
	if again := d.TakeDamage(1); again != nil {
		t.Error("destroyed prop dropped loot twice")
	}

	room.Release(reg)
	if reg.Len() != 0 {
		t.Errorf("%d entities alive after release", reg.Len())
	}
}

func TestStrategiesForOrderAndSkips(t *testing.T) {
	// Two rows: corners at the ends, up and down walls between them, no inner tiles.
	room := analysedRoom(world.Rect{W: 5, H: 2}.Tiles())
	catalog := []*Prop{
		{Name: "a", Size: Size{1, 1}, Corner: true, Inner: true},
		{Name: "b", Size: Size{1, 1}, NearWallDown: true, NearWallUp: true},
	}

	src := rng.New(1)
	got := StrategiesFor(room, catalog, NewPlacer(entities.NewRegistry(), src), src)

	want := []dungeon.Zone{dungeon.ZoneCorner, dungeon.ZoneWallUp, dungeon.ZoneWallDown}
	if len(got) != len(want) {
		t.Fatalf("got %d strategies, want %d", len(got), len(want))
	}
	for i, a := range got {
		if a.Zone != want[i] {
			t.Errorf("strategy %d zone = %v, want %v", i, a.Zone, want[i])
		}
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	catalog := DefaultCatalog()
	if len(catalog) == 0 {
		t.Fatal("built-in catalog is empty")
	}
	for _, p := range catalog {
		if err := p.Validate(); err != nil {
			t.Errorf("%s: %v", p.Name, err)
		}
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := map[string]string{
		"bad size":      "props:\n  - name: x\n    size: {w: -1, h: 1}\n",
		"unknown field": "props:\n  - name: x\n    colour: red\n",
		"drop chance":   "props:\n  - name: x\n    loot:\n      - {name: c, type: coin, drop_chance: 2}\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadCatalog(strings.NewReader(src)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	_, err := LoadCatalog(strings.NewReader("props:\n  - size: {w: 1, h: 1}\n"))
	if !errors.Is(err, ErrInvalidProp) {
		t.Errorf("missing name: error = %v, want ErrInvalidProp", err)
	}
}

func TestLoadCatalogDefaults(t *testing.T) {
	props, err := LoadCatalog(strings.NewReader("props:\n  - name: stool\n    inner: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	p := props[0]
	if p.Size != (Size{1, 1}) || p.QuantityMin != 1 || p.QuantityMax != 1 || p.GroupMin != 1 {
		t.Errorf("defaults not applied: %+v", p)
	}
}
