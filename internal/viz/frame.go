package viz

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"

	"github.com/san-kum/screensavers/internal/gfx"
)

const halfBlock = "▀"

// Viewport places the canvas inside a terminal area. Cells are one pixel wide
// and two pixels tall, so Scale maps canvas units to those pixels on both axes.
type Viewport struct {
	Cols, Rows       int
	OffsetX, OffsetY int
	Scale            float64
}

// Fit is the largest viewport for the canvas inside cols×rows cells that
// keeps its aspect ratio, centered.
func Fit(canvasW, canvasH float64, cols, rows int) Viewport {
	if cols <= 0 || rows <= 0 || canvasW <= 0 || canvasH <= 0 {
		return Viewport{}
	}
	scale := math.Min(float64(cols)/canvasW, float64(2*rows)/canvasH)
	v := Viewport{
		Cols:  max(1, int(canvasW*scale)),
		Rows:  max(1, int(canvasH*scale/2)),
		Scale: scale,
	}
	v.OffsetX = (cols - v.Cols) / 2
	v.OffsetY = (rows - v.Rows) / 2
	return v
}

// ToCanvas maps a terminal cell to the canvas point under its center. ok is
// false outside the viewport.
func (v Viewport) ToCanvas(col, row int) (x, y float64, ok bool) {
	c, r := col-v.OffsetX, row-v.OffsetY
	if v.Scale <= 0 || c < 0 || r < 0 || c >= v.Cols || r >= v.Rows {
		return 0, 0, false
	}
	return (float64(c) + 0.5) / v.Scale, (float64(2*r) + 1) / v.Scale, true
}

// Downsample scales src to the viewport's pixel grid.
func Downsample(src image.Image, v Viewport) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, v.Cols, 2*v.Rows))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Frame renders src into the viewport as text, padded by its offsets. Runs of
// cells sharing both colours are styled once.
func Frame(src image.Image, v Viewport) string {
	if v.Cols == 0 || v.Rows == 0 {
		return ""
	}
	px := Downsample(src, v)
	pad := strings.Repeat(" ", v.OffsetX)

	var b strings.Builder
	for i := 0; i < v.OffsetY; i++ {
		b.WriteByte('\n')
	}
	for row := 0; row < v.Rows; row++ {
		b.WriteString(pad)
		run := 0
		var top, bottom string
		for col := 0; col < v.Cols; col++ {
			t, bo := hexOf(px.RGBAAt(col, 2*row)), hexOf(px.RGBAAt(col, 2*row+1))
			if run > 0 && (t != top || bo != bottom) {
				b.WriteString(cellStyle(top, bottom).Render(strings.Repeat(halfBlock, run)))
				run = 0
			}
			top, bottom = t, bo
			run++
		}
		if run > 0 {
			b.WriteString(cellStyle(top, bottom).Render(strings.Repeat(halfBlock, run)))
		}
		if row < v.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cellStyle(top, bottom string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Background(lipgloss.Color(bottom))
}

func hexOf(c color.RGBA) string {
	return gfx.RGB(c.R, c.G, c.B).String()
}
