package render

import (
	"math"

	"github.com/san-kum/screensavers/internal/gfx"
)

// Op names a Surface operation counted by Recorder.
type Op string

const (
	OpClear        Op = "clear"
	OpFillCircle   Op = "fill_circle"
	OpStrokeCircle Op = "stroke_circle"
	OpFillRect     Op = "fill_rect"
	OpFillPolygon  Op = "fill_polygon"
	OpFillPath     Op = "fill_path"
	OpStrokeLine   Op = "stroke_line"
	OpStrokePath   Op = "stroke_path"
	OpText         Op = "text"
)

// Recorder is a headless Surface. It keeps per-operation counts, the last
// clear colour, written text and the number of non-finite coordinates seen.
// Text is measured with a fixed-pitch approximation of the raster face.
type Recorder struct {
	Width, Height float64
	Counts        map[Op]int
	LastClear     gfx.Color
	Texts         []string
	Colors        []gfx.Color
	NonFinite     int
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height, Counts: make(map[Op]int)}
}

// Reset drops everything recorded so far but keeps the size.
func (r *Recorder) Reset() {
	r.Counts = make(map[Op]int)
	r.Texts = r.Texts[:0]
	r.Colors = r.Colors[:0]
	r.NonFinite = 0
}

// Total is the number of draw operations recorded, clears excluded.
func (r *Recorder) Total() int {
	n := 0
	for op, c := range r.Counts {
		if op != OpClear {
			n += c
		}
	}
	return n
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Clear(c gfx.Color) {
	r.Counts[OpClear]++
	r.LastClear = c
}

func (r *Recorder) FillCircle(x, y, radius float64, c gfx.Color) {
	r.record(OpFillCircle, c, x, y, radius)
}

func (r *Recorder) StrokeCircle(x, y, radius, lineWidth float64, c gfx.Color) {
	r.record(OpStrokeCircle, c, x, y, radius, lineWidth)
}

func (r *Recorder) FillRect(x, y, w, h float64, c gfx.Color) {
	r.record(OpFillRect, c, x, y, w, h)
}

func (r *Recorder) FillPolygon(points []Point, c gfx.Color) {
	r.record(OpFillPolygon, c)
	for _, p := range points {
		r.check(p.X, p.Y)
	}
}

func (r *Recorder) FillPath(p *Path, c gfx.Color) {
	r.record(OpFillPath, c)
	r.checkPath(p)
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, lineWidth float64, c gfx.Color) {
	r.record(OpStrokeLine, c, x1, y1, x2, y2, lineWidth)
}

func (r *Recorder) StrokePath(p *Path, lineWidth float64, c gfx.Color) {
	r.record(OpStrokePath, c, lineWidth)
	r.checkPath(p)
}

func (r *Recorder) WriteCentered(text string, x, y float64, c gfx.Color) {
	r.record(OpText, c, x, y)
	r.Texts = append(r.Texts, text)
}

func (r *Recorder) MeasureText(text string) TextMetrics {
	const advance, ascent, descent = 30.0, 37.0, 0.0
	return TextMetrics{Width: advance * float64(len([]rune(text))), Ascent: ascent, Descent: descent}
}

func (r *Recorder) record(op Op, c gfx.Color, vals ...float64) {
	r.Counts[op]++
	r.Colors = append(r.Colors, c)
	r.check(vals...)
}

func (r *Recorder) checkPath(p *Path) {
	for _, op := range p.ops {
		r.check(op.x, op.y, op.radius, op.start, op.end)
	}
}

func (r *Recorder) check(vals ...float64) {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			r.NonFinite++
		}
	}
}
