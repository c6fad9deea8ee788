package render

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/screensavers/internal/gfx"
)

func TestNewRasterInvalidSize(t *testing.T) {
	if _, err := NewRaster(0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestRasterClearAndFill(t *testing.T) {
	r, err := NewRaster(64, 48)
	if err != nil {
		t.Fatalf("new raster: %v", err)
	}
	w, h := r.Size()
	if w != 64 || h != 48 {
		t.Fatalf("unexpected size %vx%v", w, h)
	}

	r.Clear(gfx.Hex("#444"))
	img := r.Image()
	if got := img.RGBAAt(0, 0); got.R != 0x44 || got.G != 0x44 || got.B != 0x44 {
		t.Errorf("expected cleared pixel #444, got %v", got)
	}

	r.FillCircle(32, 24, 10, gfx.RGB(255, 0, 0))
	if got := img.RGBAAt(32, 24); got.R != 255 || got.G != 0 {
		t.Errorf("expected red circle center, got %v", got)
	}
	if got := img.RGBAAt(2, 2); got.R != 0x44 {
		t.Errorf("fill leaked outside circle: %v", got)
	}

	r.FillPolygon([]Point{{0, 0}, {20, 0}, {20, 20}, {0, 20}}, gfx.RGB(0, 255, 0))
	if got := img.RGBAAt(10, 10); got.G != 255 || got.R != 0 {
		t.Errorf("expected green polygon, got %v", got)
	}
}

func TestRasterTextMetrics(t *testing.T) {
	r, err := NewRaster(400, 100)
	if err != nil {
		t.Fatalf("new raster: %v", err)
	}
	short, long := r.MeasureText("ab"), r.MeasureText("abcd")
	if math.Abs(long.Width-2*short.Width) > 1 {
		t.Errorf("monospace widths should scale: %f vs %f", short.Width, long.Width)
	}
	if short.Ascent <= 0 {
		t.Errorf("expected positive ascent, got %f", short.Ascent)
	}
	r.Clear(gfx.Black)
	r.WriteCentered("Start", 200, 50, gfx.White)
	lit := 0
	img := r.Image()
	for x := 0; x < 400; x++ {
		if img.RGBAAt(x, 50).R > 128 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("expected text pixels on the center row")
	}
}

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder(100, 50)
	r.Clear(gfx.Black)
	r.FillCircle(1, 2, 3, gfx.White)
	r.FillCircle(math.NaN(), 2, 3, gfx.White)
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(math.Inf(1), 0)
	r.StrokePath(p, 1, gfx.White)
	r.WriteCentered("hi", 50, 25, gfx.White)

	if r.Counts[OpFillCircle] != 2 {
		t.Errorf("expected 2 circles, got %d", r.Counts[OpFillCircle])
	}
	if r.Total() != 4 {
		t.Errorf("expected 4 draw ops, got %d", r.Total())
	}
	if r.NonFinite != 2 {
		t.Errorf("expected 2 non-finite coordinates, got %d", r.NonFinite)
	}
	if len(r.Texts) != 1 || r.Texts[0] != "hi" {
		t.Errorf("unexpected texts %v", r.Texts)
	}

	r.Reset()
	if r.Total() != 0 || r.NonFinite != 0 || len(r.Texts) != 0 {
		t.Error("reset should drop recorded state")
	}
}
