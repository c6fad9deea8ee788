// Package render defines the immediate-mode drawing surface the screensavers
// paint on, and its two implementations:
//
//   - [Raster]: an RGBA image backed by gg, used by the terminal gallery and
//     the export commands
//   - [Recorder]: a headless surface that only counts operations
//
// Every call sets its own paint state; nothing leaks from one call into the
// next.
package render

import "github.com/san-kum/screensavers/internal/gfx"

type Point struct {
	X, Y float64
}

type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height is the inked height of the measured text.
func (m TextMetrics) Height() float64 { return m.Ascent + m.Descent }

type Surface interface {
	Size() (width, height float64)
	Clear(c gfx.Color)
	FillCircle(x, y, radius float64, c gfx.Color)
	StrokeCircle(x, y, radius, lineWidth float64, c gfx.Color)
	FillRect(x, y, w, h float64, c gfx.Color)
	FillPolygon(points []Point, c gfx.Color)
	FillPath(p *Path, c gfx.Color)
	StrokeLine(x1, y1, x2, y2, lineWidth float64, c gfx.Color)
	StrokePath(p *Path, lineWidth float64, c gfx.Color)
	// WriteCentered draws text whose ink box is centered on (x, y).
	WriteCentered(text string, x, y float64, c gfx.Color)
	MeasureText(text string) TextMetrics
}
