package ebitenview

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/adventure"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestDashPatternScalesWithWidth(t *testing.T) {
	if p := dashPattern(adventure.DashSolid, 3); p != nil {
		t.Errorf("solid pattern = %v, want nil", p)
	}
	thin := dashPattern(adventure.DashDashed, 1)
	thick := dashPattern(adventure.DashDashed, 2)
	for i := range thin {
		if !approxEqual(thick[i], 2*thin[i], 1e-12) {
			t.Errorf("pattern[%d] = %v, want %v", i, thick[i], 2*thin[i])
		}
	}
	if got := dashPattern(adventure.DashDotted, 0); !approxEqual(got[0], 1, 1e-12) {
		t.Errorf("zero-width dots = %v, want floor of 1px", got)
	}
	if n := len(dashPattern(adventure.DashDashDot, 1)); n != 4 {
		t.Errorf("dash-dot pattern length = %d, want 4", n)
	}
}

var wideClip = clipRect{-100, -100, 100, 100}

func TestDashSpansSolid(t *testing.T) {
	got := dashSpans(0, 0, 10, 0, nil, wideClip)
	if !reflect.DeepEqual(got, []span{{0, 0, 10, 0}}) {
		t.Errorf("spans = %v", got)
	}
	got = dashSpans(5, 5, 5, 5, []float64{1, 1}, wideClip)
	if len(got) != 1 {
		t.Errorf("zero-length line spans = %d, want 1", len(got))
	}
}

func TestDashSpansCoverPattern(t *testing.T) {
	got := dashSpans(0, 0, 10, 0, []float64{3, 2}, wideClip)
	want := []span{{0, 0, 3, 0}, {5, 0, 8, 0}}
	if len(got) != len(want) {
		t.Fatalf("spans = %v, want %v", got, want)
	}
	for i := range want {
		g, w := got[i], want[i]
		if !approxEqual(g.x0, w.x0, 1e-9) || !approxEqual(g.x1, w.x1, 1e-9) {
			t.Errorf("span[%d] = %v, want %v", i, g, w)
		}
	}
}

func TestDashSpansClipAtEnd(t *testing.T) {
	got := dashSpans(0, 0, 0, 4, []float64{3, 0.5}, wideClip)
	last := got[len(got)-1]
	if !approxEqual(last.y1, 4, 1e-9) || !approxEqual(last.y0, 3.5, 1e-9) {
		t.Errorf("last span = %v, want clipped to (0,3.5)-(0,4)", last)
	}
}

func TestDashSpansKeepPhaseWhenClipped(t *testing.T) {
	// Unclipped dashes are [-10,-7] [-5,-2] [0,3] [5,8].
	got := dashSpans(-10, 0, 10, 0, []float64{3, 2}, clipRect{-1, -1, 20, 1})
	want := []span{{0, 0, 3, 0}, {5, 0, 8, 0}}
	if len(got) != len(want) {
		t.Fatalf("spans = %v, want %v", got, want)
	}
	for i := range want {
		g, w := got[i], want[i]
		if !approxEqual(g.x0, w.x0, 1e-9) || !approxEqual(g.x1, w.x1, 1e-9) {
			t.Errorf("span[%d] = %v, want %v", i, g, w)
		}
	}
}

func TestDashSpansHugeSegmentIsBounded(t *testing.T) {
	clip := targetClip(1280, 720)
	pattern := dashPattern(adventure.DashDashed, 1)
	got := dashSpans(-1e9, 360, 640, 360, pattern, clip)
	if len(got) == 0 || len(got) > 300 {
		t.Fatalf("span count = %d, want a screen's worth", len(got))
	}
	for i, sp := range got {
		if sp.x0 < clip.minX-1e-3 || sp.x1 > clip.maxX+1e-3 {
			t.Errorf("span[%d] = %v outside clip %+v", i, sp, clip)
		}
	}
	if last := got[len(got)-1]; last.x1 > 640+1e-3 {
		t.Errorf("last span ends at %v, want <= 640", last.x1)
	}
}

func TestDashSpansFallBackToSolid(t *testing.T) {
	huge := clipRect{-2e9, -2e9, 2e9, 2e9}
	got := dashSpans(0, 0, 1e9, 0, []float64{3, 2}, huge)
	if len(got) != 1 || !approxEqual(got[0].x1, 1e9, 1e-3) {
		t.Errorf("spans = %d, want one solid span", len(got))
	}
	if n := len(dashSpans(0, 0, 1e9, 0, []float64{3, 2}, wideClip)); n > maxDashSpans {
		t.Errorf("span count = %d, want <= %d", n, maxDashSpans)
	}
}

func TestDashSpansOffscreenAndNonFinite(t *testing.T) {
	if got := dashSpans(200, 200, 300, 300, []float64{3, 2}, wideClip); got != nil {
		t.Errorf("offscreen spans = %v, want nil", got)
	}
	if got := dashSpans(0, 0, math.Inf(1), 0, nil, wideClip); got != nil {
		t.Errorf("infinite spans = %v, want nil", got)
	}
	if got := dashSpans(math.NaN(), 0, 1, 0, []float64{1, 1}, wideClip); got != nil {
		t.Errorf("NaN spans = %v, want nil", got)
	}
}

func TestHeldKeys(t *testing.T) {
	pressed := map[ebiten.Key]bool{ebiten.KeyArrowUp: true, ebiten.KeyZ: true, ebiten.KeyQ: true}
	got := heldKeys(func(k ebiten.Key) bool { return pressed[k] })
	want := []adventure.Key{adventure.KeyUp, adventure.KeyZoomIn}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("heldKeys = %v, want %v", got, want)
	}
	got = heldKeys(func(k ebiten.Key) bool { return k == ebiten.KeyR })
	if !reflect.DeepEqual(got, []adventure.Key{adventure.KeyRotateCC}) {
		t.Errorf("heldKeys(R) = %v, want rotate counter-clockwise", got)
	}
	if got := heldKeys(func(ebiten.Key) bool { return false }); len(got) != 0 {
		t.Errorf("heldKeys with nothing pressed = %v", got)
	}
}

func TestPixelMapFlipsY(t *testing.T) {
	m := pixelMap{vp: adventure.Rect{X: 0, Y: 0, Width: 1, Height: 1}, w: 800, h: 600}
	x, y := m.apply(adventure.Point{X: 0, Y: 0})
	if x != 0 || y != 600 {
		t.Errorf("origin -> (%v,%v), want (0,600)", x, y)
	}
	x, y = m.apply(adventure.Point{X: 0.5, Y: 1})
	if x != 400 || y != 0 {
		t.Errorf("top centre -> (%v,%v), want (400,0)", x, y)
	}
}

func TestResolve(t *testing.T) {
	if got := resolve("r", 0.5); got != (color.NRGBA{R: 0xff, A: 128}) {
		t.Errorf("resolve(r, 0.5) = %v", got)
	}
	if got := resolve("unknown", 2); got != (color.NRGBA{A: 0xff}) {
		t.Errorf("resolve(unknown, 2) = %v, want opaque black", got)
	}
}

func TestBuildPolygonFan(t *testing.T) {
	xy := []float32{0, 0, 10, 0, 10, 10, 0, 10, 5, 5}
	verts, inds := buildPolygonFan(xy, color.NRGBA{R: 255, A: 128})
	if len(verts) != 5 || len(inds) != 9 {
		t.Fatalf("verts=%d inds=%d, want 5, 9", len(verts), len(inds))
	}
	want := []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4}
	if !reflect.DeepEqual(inds, want) {
		t.Errorf("indices = %v, want %v", inds, want)
	}
	v := verts[2]
	if v.DstX != 10 || v.DstY != 10 || v.SrcX != 0.5 || v.SrcY != 0.5 {
		t.Errorf("vertex = %+v", v)
	}
	if !approxEqual(float64(v.ColorR), 1, 1e-3) || !approxEqual(float64(v.ColorA), 128.0/255, 1e-3) {
		t.Errorf("vertex color = %v/%v, want straight red at half alpha", v.ColorR, v.ColorA)
	}

	if verts, inds := buildPolygonFan([]float32{0, 0, 1, 1}, color.White); verts != nil || inds != nil {
		t.Error("two-point polygon triangulated")
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#$%", "special_____"},
		{"", "screenshot"},
		{"   ", "screenshot"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{64, 32, 0, 128, 10, 20, 30, 255}, 2, 1)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 127, G: 63, B: 0, A: 128}) {
		t.Errorf("pixel 0 = %v", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("pixel 1 = %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(2, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	if err := writePNG(path, src); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v", img.Bounds())
	}

	if err := writePNG(filepath.Join(t.TempDir(), "missing", "x.png"), src); err == nil {
		t.Error("writePNG into a missing directory succeeded")
	}
}

func TestRunConfigDefaults(t *testing.T) {
	var cfg RunConfig
	cfg.defaults()
	if cfg.Title != "Adventure World" || cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("window = %q %dx%d", cfg.Title, cfg.Width, cfg.Height)
	}
	if cfg.LineScale != 1 || cfg.ScreenshotDir != "screenshots" || cfg.Logger == nil {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestRendererLifecycle(t *testing.T) {
	engine := adventure.NewEngine(adventure.DefaultEngineConfig(), nil)
	r := NewRenderer(RunConfig{Width: 320, Height: 200})
	r.Attach(engine)

	engine.Add(adventure.NewEntity("e", adventure.NewAnimation(adventure.Frame{
		adventure.Segment{End: adventure.Point{X: 1, Y: 1}, Style: adventure.MustLineStyle("k", 1)},
	}), adventure.Point{}, adventure.Size{Height: 1, Width: 1}))
	engine.Tick()
	if len(r.batches) != 1 {
		t.Errorf("renderer received %d batches, want 1", len(r.batches))
	}

	if w, h := r.Layout(0, 0); w != 320 || h != 200 {
		t.Errorf("Layout = %dx%d", w, h)
	}

	r.Screenshot("a")
	r.Screenshot("b")
	if !reflect.DeepEqual(r.screenshotQueue, []string{"a", "b"}) {
		t.Errorf("queue = %v", r.screenshotQueue)
	}

	if !r.IsOpen() {
		t.Fatal("renderer closed before Close")
	}
	r.Close()
	if r.IsOpen() {
		t.Error("renderer open after Close")
	}
	if err := r.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after Close = %v, want ebiten.Termination", err)
	}
}
