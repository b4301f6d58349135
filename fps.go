package arbor

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws the current FPS and TPS in the top-left corner of the
// screen, on top of the UI. The text is refreshed every ~0.5 seconds.
type fpsOverlay struct {
	text  string
	ticks int
}

// 100x32 is enough for "FPS: 60.0\nTPS: 60.0".
var fpsBounds = image.Rect(0, 0, 100, 32)

func (o *fpsOverlay) update() {
	if o.ticks%(ebiten.TPS()/2+1) == 0 {
		o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	o.ticks++
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	r := fpsBounds.Intersect(screen.Bounds())
	if r.Empty() {
		return
	}
	// Semi-transparent background for readability.
	screen.SubImage(r).(*ebiten.Image).Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(screen, o.text)
}
