package render

import "math"

type opKind int

const (
	opMove opKind = iota
	opLine
	opArc
)

type pathOp struct {
	kind       opKind
	x, y       float64
	radius     float64
	start, end float64
}

// Path is a retained list of drawing commands. Arcs follow the HTML canvas
// convention: angles in radians measured clockwise on a y-down surface, and
// the sweep direction picked by the counterclockwise flag.
type Path struct {
	ops []pathOp
}

func NewPath() *Path { return &Path{} }

func (p *Path) MoveTo(x, y float64) {
	p.ops = append(p.ops, pathOp{kind: opMove, x: x, y: y})
}

func (p *Path) LineTo(x, y float64) {
	p.ops = append(p.ops, pathOp{kind: opLine, x: x, y: y})
}

// Arc appends an arc around (cx, cy). Like the canvas API, a line is implied
// from the current point to the start of the arc.
func (p *Path) Arc(cx, cy, radius, start, end float64, counterclockwise bool) {
	p.ops = append(p.ops, pathOp{
		kind:   opArc,
		x:      cx,
		y:      cy,
		radius: radius,
		start:  start,
		end:    arcEnd(start, end, counterclockwise),
	})
}

func (p *Path) Len() int     { return len(p.ops) }
func (p *Path) Empty() bool  { return len(p.ops) == 0 }
func (p *Path) Reset()       { p.ops = p.ops[:0] }
func (p *Path) Clone() *Path { return &Path{ops: append([]pathOp(nil), p.ops...)} }

// arcEnd resolves the end angle so that sweeping linearly from start to the
// returned value traces the arc in the requested direction.
func arcEnd(start, end float64, ccw bool) float64 {
	const tau = 2 * math.Pi
	if !ccw {
		if end-start >= tau {
			return start + tau
		}
		d := math.Mod(end-start, tau)
		if d < 0 {
			d += tau
		}
		return start + d
	}
	if start-end >= tau {
		return start - tau
	}
	d := math.Mod(start-end, tau)
	if d < 0 {
		d += tau
	}
	return start - d
}
