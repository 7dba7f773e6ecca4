// Package ebitenview is the windowed backend of the simulator. It paints
// the engine's screen-space batches with Ebitengine and feeds the keyboard
// into the engine's input state.
package ebitenview

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/phanxgames/adventure"
)

// RunConfig configures the window.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws the achieved frame and tick rates in the top-left corner.
	ShowFPS bool
	// LineScale multiplies every stroke weight. Zero means 1.
	LineScale float64
	// ScreenshotDir receives PNGs captured with F12. Empty means "screenshots".
	ScreenshotDir string
	Logger        *zap.Logger
}

func (c *RunConfig) defaults() {
	if c.Title == "" {
		c.Title = "Adventure World"
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.LineScale <= 0 {
		c.LineScale = 1
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// Renderer implements both adventure.Renderer and ebiten.Game. Ebitengine
// drives the loop: every Update polls the keyboard and ticks the engine,
// every Draw paints the batches of the latest tick.
type Renderer struct {
	cfg     RunConfig
	engine  *adventure.Engine
	batches []adventure.Frame
	closed  bool
	log     *zap.Logger
	fps     *fpsOverlay

	screenshotQueue []string
}

// NewRenderer creates a renderer. Attach it to an engine before running.
func NewRenderer(cfg RunConfig) *Renderer {
	cfg.defaults()
	return &Renderer{
		cfg: cfg,
		log: cfg.Logger,
		fps: newFPSOverlay(),
	}
}

// Attach makes r the engine's renderer.
func (r *Renderer) Attach(e *adventure.Engine) {
	r.engine = e
	e.SetRenderer(r)
}

// IsOpen reports whether the window is still open.
func (r *Renderer) IsOpen() bool { return !r.closed }

// Render stores the batches for the next Draw.
func (r *Renderer) Render(batches []adventure.Frame) { r.batches = batches }

// Close ends the game loop after the current frame.
func (r *Renderer) Close() { r.closed = true }

// Screenshot queues a PNG capture of the next drawn frame.
func (r *Renderer) Screenshot(label string) {
	r.screenshotQueue = append(r.screenshotQueue, label)
}

// Update implements ebiten.Game.
func (r *Renderer) Update() error {
	if r.closed || r.engine == nil {
		return ebiten.Termination
	}
	in := r.engine.Input()
	pollKeys(in)
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		r.Screenshot("capture")
	}
	if in.CloseRequested() {
		r.closed = true
		return ebiten.Termination
	}

	r.engine.Tick()
	r.fps.update(1/float64(ebiten.TPS()), r.engine.ActualFPS())
	if r.engine.Input().CloseRequested() {
		r.closed = true
	}
	return nil
}

// Draw implements ebiten.Game.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if r.engine != nil {
		b := screen.Bounds()
		m := pixelMap{vp: r.engine.Camera().Viewport, w: float64(b.Dx()), h: float64(b.Dy())}
		drawBatches(screen, m, r.batches, r.cfg.LineScale)
	}
	if r.cfg.ShowFPS {
		r.fps.draw(screen)
	}
	r.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (r *Renderer) Layout(_, _ int) (int, int) {
	return r.cfg.Width, r.cfg.Height
}

// Run opens a window and runs engine in it until the window is closed or
// Escape is pressed. The engine's target FPS becomes the window's TPS.
func Run(engine *adventure.Engine, cfg RunConfig) error {
	r := NewRenderer(cfg)
	r.Attach(engine)

	ebiten.SetWindowTitle(r.cfg.Title)
	ebiten.SetWindowSize(r.cfg.Width, r.cfg.Height)
	ebiten.SetTPS(engine.FPS())

	r.log.Info("window opened",
		zap.String("title", r.cfg.Title),
		zap.Int("width", r.cfg.Width),
		zap.Int("height", r.cfg.Height),
		zap.Int("tps", engine.FPS()))

	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	r.log.Info("window closed", zap.Int("ticks", engine.Ticks()))
	return nil
}
