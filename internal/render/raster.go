package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/san-kum/screensavers/internal/gfx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// DefaultFontSize matches the 50px monospace face of the gallery title.
const DefaultFontSize = 50.0

// Raster is a Surface backed by an in-memory RGBA image.
type Raster struct {
	dc   *gg.Context
	face font.Face
	w, h int
}

func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster size %dx%d: %w", width, height, ErrInvalidSize)
	}
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    DefaultFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	return &Raster{dc: dc, face: face, w: width, h: height}, nil
}

func (r *Raster) Size() (float64, float64) { return float64(r.w), float64(r.h) }

// Image exposes the backing buffer. It is overwritten by subsequent draws.
func (r *Raster) Image() *image.RGBA {
	return r.dc.Image().(*image.RGBA)
}

func (r *Raster) SavePNG(path string) error { return r.dc.SavePNG(path) }

func (r *Raster) Clear(c gfx.Color) {
	r.dc.Push()
	defer r.dc.Pop()
	r.dc.SetColor(c)
	r.dc.Clear()
}

func (r *Raster) FillCircle(x, y, radius float64, c gfx.Color) {
	r.dc.Push()
	defer r.dc.Pop()
	r.dc.NewSubPath()
	r.dc.DrawCircle(x, y, radius)
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *Raster) StrokeCircle(x, y, radius, lineWidth float64, c gfx.Color) {
	r.dc.Push()
	defer r.dc.Pop()
	r.dc.NewSubPath()
	r.dc.DrawCircle(x, y, radius)
	r.dc.SetLineWidth(lineWidth)
	r.dc.SetColor(c)
	r.dc.Stroke()
}

func (r *Raster) FillRect(x, y, w, h float64, c gfx.Color) {
	r.dc.Push()
	defer r.dc.Pop()
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *Raster) FillPolygon(points []Point, c gfx.Color) {
	if len(points) == 0 {
		return
	}
	r.dc.Push()
	defer r.dc.Pop()
	r.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.ClosePath()
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *Raster) FillPath(p *Path, c gfx.Color) {
	if p.Empty() {
		return
	}
	r.dc.Push()
	defer r.dc.Pop()
	r.trace(p)
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *Raster) StrokeLine(x1, y1, x2, y2, lineWidth float64, c gfx.Color) {
	r.dc.Push()
	defer r.dc.Pop()
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.SetLineWidth(lineWidth)
	r.dc.SetColor(c)
	r.dc.Stroke()
}

func (r *Raster) StrokePath(p *Path, lineWidth float64, c gfx.Color) {
	if p.Empty() {
		return
	}
	r.dc.Push()
	defer r.dc.Pop()
	r.trace(p)
	r.dc.SetLineWidth(lineWidth)
	r.dc.SetColor(c)
	r.dc.Stroke()
}

func (r *Raster) WriteCentered(text string, x, y float64, c gfx.Color) {
	m := r.MeasureText(text)
	r.dc.Push()
	defer r.dc.Pop()
	r.dc.SetColor(c)
	r.dc.DrawString(text, x-m.Width/2, y+m.Height()/2)
}

func (r *Raster) MeasureText(text string) TextMetrics {
	bounds, advance := font.BoundString(r.face, text)
	return TextMetrics{
		Width:   float64(advance) / 64,
		Ascent:  float64(-bounds.Min.Y) / 64,
		Descent: float64(bounds.Max.Y) / 64,
	}
}

// trace replays the path into the gg context. gg's arc helper already joins
// the current point to the arc start, which is the canvas behaviour.
func (r *Raster) trace(p *Path) {
	r.dc.ClearPath()
	for _, op := range p.ops {
		switch op.kind {
		case opMove:
			r.dc.MoveTo(op.x, op.y)
		case opLine:
			r.dc.LineTo(op.x, op.y)
		case opArc:
			r.dc.DrawArc(op.x, op.y, op.radius, op.start, op.end)
		}
	}
}
