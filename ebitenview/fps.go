package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows the achieved frame rate and engine tick rate. The text
// is refreshed every ~0.5 seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{lastUpdate: 0.5}
}

func (o *fpsOverlay) update(dt, engineRate float64) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	if o.img == nil {
		// 120x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(120, 32)
	}
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), engineRate))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		return
	}
	screen.DrawImage(o.img, nil)
}
