package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/renderer"
)

// EbitenRenderer shows the map in a window until it is closed or Escape is pressed.
type EbitenRenderer struct {
	title    string
	tileSize int

	scene  *renderer.Scene
	bounds world.Rect
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// New creates a preview window renderer.
func New(title string) *EbitenRenderer {
	return &EbitenRenderer{title: title, tileSize: defaultTileSize}
}

// Render blocks running the window loop.
func (e *EbitenRenderer) Render(scene *renderer.Scene) error {
	e.scene = scene
	e.bounds, _ = scene.Bounds()

	w, h := e.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(e); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// Update handles Escape and =/- zoom (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.tileSize = min(maxTileSize, e.tileSize+tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.tileSize = max(minTileSize, e.tileSize-tileSizeStep)
	}
	return nil
}

// Draw paints one filled square per non-void cell. Screen rows grow downward
// so the top map row is drawn first.
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.scene == nil {
		return
	}

	size := float32(e.tileSize)
	top := e.bounds.Y + e.bounds.H - 1
	for y := e.bounds.Y; y <= top; y++ {
		for x := e.bounds.X; x < e.bounds.X+e.bounds.W; x++ {
			col, ok := kindColors[e.scene.KindAt(world.Pos(x, y))]
			if !ok {
				continue
			}
			sx := float32(x-e.bounds.X) * size
			sy := float32(top-y) * size
			vector.DrawFilledRect(screen, sx, sy, size-1, size-1, col, false)
		}
	}
}

// Layout returns the logical screen size: the map at the current tile size.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(1, e.bounds.W) * e.tileSize
	h := max(1, e.bounds.H) * e.tileSize
	return w, h
}
