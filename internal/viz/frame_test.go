package viz

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFit(t *testing.T) {
	v := Fit(80, 60, 40, 30)
	if v.Scale != 0.5 {
		t.Fatalf("expected scale 0.5, got %f", v.Scale)
	}
	if v.Cols != 40 || v.Rows != 15 {
		t.Errorf("expected 40x15 cells, got %dx%d", v.Cols, v.Rows)
	}
	if v.OffsetX != 0 || v.OffsetY != 7 {
		t.Errorf("expected offset (0,7), got (%d,%d)", v.OffsetX, v.OffsetY)
	}
}

func TestFitKeepsInsideTerminal(t *testing.T) {
	tests := []struct{ cols, rows int }{
		{80, 24}, {200, 50}, {10, 100}, {1, 1},
	}
	for _, tt := range tests {
		v := Fit(800, 600, tt.cols, tt.rows)
		if v.OffsetX+v.Cols > tt.cols || v.OffsetY+v.Rows > tt.rows {
			t.Errorf("%dx%d: viewport %+v overflows", tt.cols, tt.rows, v)
		}
	}
	if v := Fit(800, 600, 0, 10); v != (Viewport{}) {
		t.Errorf("expected empty viewport, got %+v", v)
	}
}

func TestToCanvas(t *testing.T) {
	v := Fit(80, 60, 40, 30)

	tests := []struct {
		col, row int
		x, y     float64
		ok       bool
	}{
		{0, 7, 1, 2, true},
		{39, 21, 79, 58, true},
		{10, 6, 0, 0, false},
		{40, 10, 0, 0, false},
		{-1, 10, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := v.ToCanvas(tt.col, tt.row)
		if ok != tt.ok || x != tt.x || y != tt.y {
			t.Errorf("ToCanvas(%d,%d) = (%f,%f,%v), want (%f,%f,%v)", tt.col, tt.row, x, y, ok, tt.x, tt.y, tt.ok)
		}
	}
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsample(t *testing.T) {
	src := solid(80, 60, color.RGBA{R: 200, G: 10, B: 30, A: 255})
	dst := Downsample(src, Fit(80, 60, 40, 30))
	if b := dst.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("expected 40x30 pixels, got %v", b)
	}
	got := dst.RGBAAt(20, 15)
	if absDiff(got.R, 200) > 1 || absDiff(got.G, 10) > 1 || absDiff(got.B, 30) > 1 || got.A != 255 {
		t.Errorf("solid colour changed to %v", got)
	}
}

func TestFrameShape(t *testing.T) {
	v := Fit(80, 60, 44, 30)
	frame := Frame(solid(80, 60, color.RGBA{R: 255, A: 255}), v)

	lines := strings.Split(frame, "\n")
	if len(lines) != v.OffsetY+v.Rows {
		t.Fatalf("expected %d lines, got %d", v.OffsetY+v.Rows, len(lines))
	}
	for i, line := range lines[v.OffsetY:] {
		if w := lipgloss.Width(line); w != v.OffsetX+v.Cols {
			t.Errorf("line %d: width %d, want %d", i, w, v.OffsetX+v.Cols)
		}
		if strings.Count(line, halfBlock) != v.Cols {
			t.Errorf("line %d: expected %d half blocks", i, v.Cols)
		}
	}
}

func TestFrameEmptyViewport(t *testing.T) {
	if Frame(solid(4, 4, color.RGBA{A: 255}), Viewport{}) != "" {
		t.Error("empty viewport should render nothing")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 4); got != "────" {
		t.Errorf("expected flat line, got %q", got)
	}
	got := []rune(Sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8))
	if got[0] != '▁' || got[7] != '█' {
		t.Errorf("unexpected sparkline %q", string(got))
	}
	if n := len([]rune(Sparkline(make([]float64, 50), 10))); n != 10 {
		t.Errorf("expected 10 runes, got %d", n)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("retro").Name != "retro" {
		t.Error("expected the retro theme")
	}
	if GetTheme("nope").Name != Themes[0].Name {
		t.Error("unknown names should fall back to the first theme")
	}
	seen := map[string]bool{}
	th := Themes[0]
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(Themes) || th.Name != Themes[0].Name {
		t.Error("NextTheme should visit every theme and wrap")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
