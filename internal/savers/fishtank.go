package savers

import (
	"math"

	"github.com/san-kum/screensavers/internal/gfx"
	"github.com/san-kum/screensavers/internal/render"
	"github.com/san-kum/screensavers/internal/rng"
)

const (
	tankPeriod        = 10
	fishSegmentSize   = 10
	maxFishSegments   = 5
	kelpRadius        = 10
	bubblerChance     = 5
	kelpChangeChance  = 5
	maxBubbleDrift    = 3
	bubbleTopMargin   = -50
	minKelpSegments   = 6
	bubbleStrokeWidth = 1
	kelpStrokeWidth   = 1
	fishMinCount      = 5
	fishMaxCount      = 20
	bubblerMaxCount   = 3
	kelpMaxCount      = 5
	fishMinSpeed      = 1
	fishMaxSpeed      = 5
	fishXFlipMin      = 10
	fishXFlipMax      = 60
	fishYFlipMin      = 2
	fishYFlipMax      = 20
	bubbleMinSize     = 1
	bubbleMaxSize     = 8
	bubbleMinRise     = 2
	bubbleMaxRise     = 4
)

var kelpColor = gfx.Hex("#0f0")

type FishTank struct{}

func NewFishTank() *FishTank { return &FishTank{} }

func (FishTank) Name() string { return "Fish Tank" }

// SegmentKind is the shape of one fish body segment.
type SegmentKind int

const (
	SegmentHead SegmentKind = iota
	SegmentCross
	SegmentSquare
	SegmentSemis
	SegmentTail
)

var bodySegments = []SegmentKind{SegmentCross, SegmentSquare, SegmentSemis}

func (k SegmentKind) String() string {
	switch k {
	case SegmentHead:
		return "head"
	case SegmentCross:
		return "cross"
	case SegmentSquare:
		return "square"
	case SegmentSemis:
		return "semis"
	case SegmentTail:
		return "tail"
	}
	return "unknown"
}

type colorPattern int

const (
	patternRandom colorPattern = iota
	patternHeadTail
	patternSingle
	patternGradient
)

var colorPatterns = []colorPattern{patternRandom, patternHeadTail, patternSingle, patternGradient}

// colors paints n segments, head first.
func (p colorPattern) colors(r *rng.Rand, n int) []gfx.Color {
	out := make([]gfx.Color, n)
	switch p {
	case patternRandom:
		for i := range out {
			out[i] = r.Color()
		}
	case patternHeadTail:
		head, body := r.Color(), r.Color()
		for i := range out {
			out[i] = body
		}
		out[0], out[n-1] = head, head
	case patternSingle:
		c := r.Color()
		for i := range out {
			out[i] = c
		}
	case patternGradient:
		out = gfx.Gradient(r.Color(), r.Color(), n)
	}
	return out
}

type fish struct {
	segments  []SegmentKind
	colors    []gfx.Color
	x, y      float64
	vx, vy    float64
	xflip     int
	yflip     int
	goingR    bool
	goingDown bool
}

func (f *fish) length() float64 { return fishSegmentSize * float64(len(f.segments)) }

type bubble struct {
	x, y, size float64
}

type kelp struct {
	x    float64
	lean []bool
}

type tankSim struct {
	width, height float64
	rand          *rng.Rand
	fish          []fish
	bubblers      []float64
	bubbles       []bubble
	kelp          []kelp
}

func (FishTank) Setup(env Env) Simulation {
	r := env.Rand
	s := &tankSim{width: env.Width, height: env.Height, rand: r}

	numFish := r.Int(fishMinCount, fishMaxCount)
	s.fish = make([]fish, numFish)
	for i := range s.fish {
		s.fish[i] = newFish(r, env.Width, env.Height)
	}

	s.bubblers = make([]float64, r.Int(1, bubblerMaxCount))
	for i := range s.bubblers {
		s.bubblers[i] = r.Num(0, env.Width)
	}

	maxKelpSegments := int(env.Height / (kelpRadius * 2))
	s.kelp = make([]kelp, r.Int(1, kelpMaxCount))
	for i := range s.kelp {
		lean := make([]bool, r.Int(minKelpSegments, maxKelpSegments))
		for j := range lean {
			lean[j] = r.Chance(50)
		}
		s.kelp[i] = kelp{x: r.Num(0, env.Width), lean: lean}
	}
	return s
}

func newFish(r *rng.Rand, width, height float64) fish {
	body := r.Int(1, maxFishSegments)
	segments := make([]SegmentKind, 0, body+2)
	segments = append(segments, SegmentHead)
	for j := 0; j < body; j++ {
		k, _ := rng.Choice(r, bodySegments)
		segments = append(segments, k)
	}
	segments = append(segments, SegmentTail)

	pattern, _ := rng.Choice(r, colorPatterns)
	f := fish{
		segments:  segments,
		colors:    pattern.colors(r, len(segments)),
		vx:        r.Num(fishMinSpeed, fishMaxSpeed),
		vy:        r.Num(fishMinSpeed, fishMaxSpeed),
		xflip:     r.Int(fishXFlipMin, fishXFlipMax),
		yflip:     r.Int(fishYFlipMin, fishYFlipMax),
		goingR:    r.Chance(50),
		goingDown: r.Chance(50),
		y:         r.Num(0, height),
	}
	f.x = r.Num(0, math.Max(0, width-f.length()))
	return f
}

func (s *tankSim) Update(tick uint64) {
	if tick%tankPeriod != 0 {
		return
	}
	s.moveFish(tick)
	s.spawnBubbles()
	s.moveBubbles()
	s.swayKelp()
}

// moveFish flips each axis on its own countdown or at the tank edge, then
// clamps the fish back inside.
func (s *tankSim) moveFish(tick uint64) {
	for i := range s.fish {
		f := &s.fish[i]
		maxX := s.width - f.length()
		if f.goingR {
			f.x += f.vx
		} else {
			f.x -= f.vx
		}
		if f.goingDown {
			f.y += f.vy
		} else {
			f.y -= f.vy
		}
		if tick%uint64(f.xflip) == 0 || f.x < 0 || f.x > maxX {
			f.goingR = !f.goingR
			f.xflip = s.rand.Int(fishXFlipMin, fishXFlipMax)
		}
		if tick%uint64(f.yflip) == 0 || f.y < 0 || f.y > s.height {
			f.goingDown = !f.goingDown
			f.yflip = s.rand.Int(fishYFlipMin, fishYFlipMax)
		}
		f.x = gfx.Clamp(f.x, 0, math.Max(0, maxX))
		f.y = gfx.Clamp(f.y, 0, s.height)
	}
}

func (s *tankSim) spawnBubbles() {
	for _, x := range s.bubblers {
		if s.rand.Chance(bubblerChance) {
			s.bubbles = append(s.bubbles, bubble{
				x:    x,
				y:    s.height,
				size: s.rand.Num(bubbleMinSize, bubbleMaxSize),
			})
		}
	}
}

func (s *tankSim) moveBubbles() {
	kept := s.bubbles[:0]
	for _, b := range s.bubbles {
		b.x += s.rand.Num(-maxBubbleDrift, maxBubbleDrift)
		b.y -= s.rand.Num(bubbleMinRise, bubbleMaxRise)
		if b.y < bubbleTopMargin {
			continue
		}
		kept = append(kept, b)
	}
	s.bubbles = kept
}

func (s *tankSim) swayKelp() {
	for i := range s.kelp {
		for j := range s.kelp[i].lean {
			if s.rand.Chance(kelpChangeChance) {
				s.kelp[i].lean[j] = !s.kelp[i].lean[j]
			}
		}
	}
}

func (s *tankSim) Draw(surf render.Surface) {
	surf.Clear(gfx.Black)
	for i := range s.fish {
		s.drawFish(surf, &s.fish[i])
	}
	for _, b := range s.bubbles {
		surf.StrokeCircle(b.x, b.y, b.size, bubbleStrokeWidth, gfx.White)
	}
	for _, k := range s.kelp {
		surf.StrokePath(kelpPath(k, s.height), kelpStrokeWidth, kelpColor)
	}
}

func (s *tankSim) drawFish(surf render.Surface, f *fish) {
	n := float64(len(f.segments))
	y := f.y + 0.5*fishSegmentSize
	for i, kind := range f.segments {
		var x float64
		if f.goingR {
			x = f.x - (float64(i)+0.5-n)*fishSegmentSize
		} else {
			x = f.x + (float64(i)+0.5)*fishSegmentSize
		}
		drawSegment(surf, kind, x, y, f.goingR, f.colors[i])
	}
}

func drawSegment(surf render.Surface, kind SegmentKind, x, y float64, facingRight bool, c gfx.Color) {
	const half = fishSegmentSize / 2.0
	const eta = math.Pi / 2
	switch kind {
	case SegmentHead:
		p := render.NewPath()
		if facingRight {
			p.MoveTo(x-half, y-half)
			p.Arc(x-half, y, half, eta, -eta, true)
		} else {
			p.MoveTo(x+half, y-half)
			p.Arc(x+half, y, half, eta, -eta, false)
		}
		surf.FillPath(p, c)
	case SegmentTail:
		dir := -1.0
		if facingRight {
			dir = 1
		}
		bx := x + dir*half
		surf.FillPolygon([]render.Point{
			{X: bx, Y: y},
			{X: bx - dir*half, Y: y - half},
			{X: bx - dir*half, Y: y + half},
		}, c)
	case SegmentCross:
		left, top := x-half, y-half
		right, bottom := left+fishSegmentSize, top+fishSegmentSize
		notch := fishSegmentSize / 4.0
		surf.FillPolygon([]render.Point{
			{X: left, Y: top},
			{X: x, Y: top + notch},
			{X: right, Y: top},
			{X: right, Y: bottom},
			{X: x, Y: bottom - notch},
			{X: left, Y: bottom},
		}, c)
	case SegmentSquare:
		surf.FillRect(x-half, y-half, fishSegmentSize, fishSegmentSize, c)
	case SegmentSemis:
		p := render.NewPath()
		p.MoveTo(x+half, y-half)
		p.Arc(x+half, y, half, eta, -eta, false)
		p.MoveTo(x-half, y-half)
		p.Arc(x-half, y, half, eta, -eta, true)
		surf.FillPath(p, c)
	}
}

// kelpPath chains one quarter arc per segment, bending left or right by the
// segment's lean flag.
func kelpPath(k kelp, height float64) *render.Path {
	const qp = math.Pi / 4
	p := render.NewPath()
	offset := kelpRadius / math.Sqrt2
	for i, right := range k.lean {
		y := height - (math.Sqrt2*float64(i)+1)*kelpRadius
		if right {
			p.Arc(k.x-offset, y, kelpRadius, qp, -qp, true)
		} else {
			p.Arc(k.x+offset, y, kelpRadius, 3*qp, -3*qp, false)
		}
	}
	return p
}

func (s *tankSim) Probe() (string, float64) {
	return "bubbles", float64(len(s.bubbles))
}
