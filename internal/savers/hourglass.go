package savers

import (
	"github.com/san-kum/screensavers/internal/gfx"
	"github.com/san-kum/screensavers/internal/render"
	"github.com/san-kum/screensavers/internal/rng"
	"go.uber.org/zap"
)

const (
	hourglassPeriod = 10
	settleTicks     = 10
	cellSize        = 20
	// grid cell drawn at the canvas center
	gridCenterX = 27
	gridCenterY = 12
)

var (
	sandColor = gfx.Hex("#fc0")
	wallColor = gfx.Hex("#8cc")
)

type Hourglass struct{}

func NewHourglass() *Hourglass { return &Hourglass{} }

func (Hourglass) Name() string { return "Hourglass" }

type cell struct {
	x, y int
}

type grain struct {
	cell
	color gfx.Color
}

func cloneGrains(src []grain) []grain {
	return append([]grain(nil), src...)
}

type hourglassSim struct {
	width, height float64
	rand          *rng.Rand
	log           *zap.Logger
	walls         []cell
	wallSet       map[cell]struct{}
	initial       []grain
	sand          []grain
	occupied      map[cell]struct{}
	countdown     int
	settling      bool
	showColors    bool
	lastMoved     int
	resets        int
}

// hourglassWalls traces the outline: caps at rows 1 and 23, short vertical
// sides, and two diagonals per bulb meeting at a one-cell neck.
func hourglassWalls() []cell {
	var walls []cell
	for i := 18; i < 37; i++ {
		walls = append(walls, cell{i, 1}, cell{i, 23})
	}
	for i := 1; i < 5; i++ {
		walls = append(walls, cell{18, i}, cell{36, i}, cell{18, i + 19}, cell{36, i + 19})
	}
	for i := 0; i < 8; i++ {
		walls = append(walls, cell{19 + i, 5 + i}, cell{35 - i, 5 + i}, cell{25 - i, 13 + i}, cell{29 + i, 13 + i})
	}
	return walls
}

// hourglassSand fills the upper bulb row by row.
func hourglassSand() []grain {
	var sand []grain
	for y := 0; y < 8; y++ {
		for x := 19 + y; x < 36-y; x++ {
			sand = append(sand, grain{cell: cell{x, y + 4}})
		}
	}
	return sand
}

func (Hourglass) Setup(env Env) Simulation {
	s := &hourglassSim{
		width:   env.Width,
		height:  env.Height,
		rand:    env.Rand,
		log:     env.logger(),
		wallSet: make(map[cell]struct{}),
		initial: hourglassSand(),
	}
	// the outline meets itself at the corners and the neck
	for _, w := range hourglassWalls() {
		if _, dup := s.wallSet[w]; dup {
			continue
		}
		s.wallSet[w] = struct{}{}
		s.walls = append(s.walls, w)
	}
	s.reset()
	return s
}

// reset restores the initial grains and paints them with a fresh gradient.
func (s *hourglassSim) reset() {
	s.sand = cloneGrains(s.initial)
	colors := gfx.Gradient(s.rand.Color(), s.rand.Color(), len(s.sand))
	s.occupied = make(map[cell]struct{}, len(s.sand))
	for i := range s.sand {
		s.sand[i].color = colors[i]
		s.occupied[s.sand[i].cell] = struct{}{}
	}
	s.settling = false
	s.countdown = 0
}

func (s *hourglassSim) wall(c cell) bool {
	_, ok := s.wallSet[c]
	return ok
}

func (s *hourglassSim) free(c cell) bool {
	if _, ok := s.occupied[c]; ok {
		return false
	}
	return !s.wall(c)
}

func (s *hourglassSim) Update(tick uint64) {
	if tick%hourglassPeriod != 0 {
		return
	}
	moved := s.pass()
	s.lastMoved = moved
	if moved > 0 {
		return
	}
	if !s.settling {
		s.settling = true
		s.countdown = settleTicks
		return
	}
	s.countdown--
	if s.countdown <= 0 {
		s.resets++
		s.log.Debug("hourglass settled, resetting", zap.Int("resets", s.resets))
		s.reset()
	}
}

// pass visits every grain once in a fresh random order and returns how many
// of them moved.
func (s *hourglassSim) pass() int {
	rng.Shuffle(s.rand, s.sand)
	moved := 0
	for i := range s.sand {
		g := &s.sand[i]
		to, ok := s.target(g.cell)
		if !ok {
			continue
		}
		delete(s.occupied, g.cell)
		g.cell = to
		s.occupied[to] = struct{}{}
		moved++
	}
	return moved
}

// target picks where the grain at c falls this pass. ok is false when no
// direction is open.
func (s *hourglassSim) target(c cell) (cell, bool) {
	below := cell{c.x, c.y + 1}
	if s.free(below) {
		return below, true
	}

	canLeft := s.free(cell{c.x - 1, c.y + 1}) && !s.wall(cell{c.x - 1, c.y})
	canRight := s.free(cell{c.x + 1, c.y + 1}) && !s.wall(cell{c.x + 1, c.y})

	dirs := make([]int, 0, 2)
	if canLeft {
		dirs = append(dirs, -1)
	}
	if canRight {
		dirs = append(dirs, 1)
	}
	if s.rand.Chance(50) {
		wide := make([]int, 0, 2)
		if canLeft && s.free(cell{c.x - 2, c.y + 1}) {
			wide = append(wide, -2)
		}
		if canRight && s.free(cell{c.x + 2, c.y + 1}) {
			wide = append(wide, 2)
		}
		if len(wide) > 0 {
			dirs = wide
		}
	}

	dx, ok := rng.Choice(s.rand, dirs)
	if !ok {
		return c, false
	}
	return cell{c.x + dx, c.y + 1}, true
}

func (s *hourglassSim) Draw(surf render.Surface) {
	surf.Clear(gfx.Black)
	for _, g := range s.sand {
		color := sandColor
		if s.showColors {
			color = g.color
		}
		x, y := s.screen(g.cell)
		surf.FillCircle(x, y, cellSize/2, color)
	}
	for _, w := range s.walls {
		x, y := s.screen(w)
		surf.FillRect(x-cellSize/2, y-cellSize/2, cellSize, cellSize, wallColor)
	}
}

func (s *hourglassSim) screen(c cell) (float64, float64) {
	return s.width/2 + float64(c.x-gridCenterX)*cellSize, s.height/2 + float64(c.y-gridCenterY)*cellSize
}

// OnPointer toggles between plain sand and the per-grain gradient.
func (s *hourglassSim) OnPointer(x, y float64, right bool) {
	s.showColors = !s.showColors
}

func (s *hourglassSim) Probe() (string, float64) {
	return "grains moved", float64(s.lastMoved)
}
