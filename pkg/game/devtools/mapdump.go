// Package devtools provides developer tools for inspecting generated dungeons.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/dungeon"
	"echoshift/pkg/game/renderer"
	"echoshift/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// writeMapGrid writes the scene top row first. When accessible is set, floor
// tiles reachable in their room are drawn as 'a'.
func writeMapGrid(w io.Writer, scene *renderer.Scene, bounds world.Rect, accessible *world.TileSet) {
	top := bounds.Y + bounds.H - 1
	for y := top; y >= bounds.Y; y-- {
		for x := bounds.X; x < bounds.X+bounds.W; x++ {
			p := world.Pos(x, y)
			kind := scene.KindAt(p)
			if accessible != nil && accessible.Has(p) && (kind == renderer.KindFloor || kind == renderer.KindPath) {
				fmt.Fprint(w, "a")
				continue
			}
			fmt.Fprintf(w, "%c", renderer.ASCII[kind])
		}
		fmt.Fprintln(w)
	}
}

// WriteMapDump writes the debug dump of s to w: metadata, legend, the map,
// the accessibility map, per-room statistics and every live entity.
func WriteMapDump(w io.Writer, s *state.Session) error {
	scene := s.Scene()
	bounds, ok := scene.Bounds()
	if !ok {
		return fmt.Errorf("nothing generated")
	}
	layout := s.Layout
	report := s.LastReport

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (layout, rooms, entities) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "strategy: %s\n", report.Strategy)
	fmt.Fprintf(w, "seed: %d\n", s.Source.Seed())
	fmt.Fprintf(w, "generation: %d\n", s.Generations)
	fmt.Fprintf(w, "bounds: x=%d y=%d w=%d h=%d\n", bounds.X, bounds.Y, bounds.W, bounds.H)
	fmt.Fprintln(w, "coordinate_system: x,y (up is +y; top map row printed first)")
	fmt.Fprintf(w, "rooms: %d\n", report.Rooms)
	fmt.Fprintf(w, "floor_tiles: %d\n", report.FloorTiles)
	fmt.Fprintf(w, "path_tiles: %d\n", report.PathTiles)
	fmt.Fprintf(w, "walls_basic: %d\n", report.Walls.Basic)
	fmt.Fprintf(w, "walls_corner: %d\n", report.Walls.Corner)
	fmt.Fprintf(w, "walls_unmatched: %d\n", report.Walls.Unmatched)
	if layout.Player != nil {
		fmt.Fprintf(w, "player: %v\n", layout.Player.Position)
	}
	if layout.Portal != nil {
		fmt.Fprintf(w, "portal: %v\n", layout.Portal.Position)
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	for k := renderer.KindVoid; k <= renderer.KindPlayer; k++ {
		fmt.Fprintf(w, "%q = %s  ", renderer.ASCII[k], k)
	}
	fmt.Fprintln(w, "'a' = accessible floor")
	fmt.Fprintln(w, "")

	// --- Maps ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, scene, bounds, nil)
	fmt.Fprintln(w, "")

	accessible := world.NewTileSet()
	for _, r := range layout.Rooms {
		accessible.Put(r.Accessible...)
	}
	fmt.Fprintln(w, "--- Map (accessible tiles) ---")
	writeMapGrid(w, scene, bounds, accessible)
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintln(w, "--- Rooms ---")
	for i, r := range layout.Rooms {
		fmt.Fprintf(w, "  room: %d center: %v floor: %d accessible: %d props: %d enemies: %d drops: %d\n",
			i, r.Center, r.Floor().Size(), len(r.Accessible), len(r.Props), len(r.Enemies), len(r.Drops))
		fmt.Fprint(w, "   ")
		for _, z := range dungeon.Zones() {
			fmt.Fprintf(w, " %s: %d", z, r.ZoneTiles(z).Size())
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "")

	// --- Entities ---
	fmt.Fprintln(w, "--- Entities (spawn order) ---")
	for _, e := range s.Registry.All() {
		fmt.Fprintf(w, "  id: %s prefab: %q parent: %q pos: %v\n", e.ID, e.Prefab, e.Parent, e.Position)
	}
	return nil
}

// DumpMapToFile writes the debug dump to map.txt in the working directory
// and returns its absolute path.
func DumpMapToFile(s *state.Session) (string, error) {
	return DumpMapToPath(s, mapDumpFilename)
}

// DumpMapToPath writes the debug dump to path and returns its absolute form.
func DumpMapToPath(s *state.Session, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, s); err != nil {
		return "", err
	}
	return absPath, nil
}
