package host

import (
	"github.com/san-kum/screensavers/internal/gfx"
	"github.com/san-kum/screensavers/internal/render"
)

const (
	arrowInset   = 40
	arrowDepth   = 40
	arrowHalf    = 40
	buttonHalfW  = 80
	buttonTop    = 100
	buttonBottom = 20
	startLabelY  = 60
)

var (
	menuBackground = gfx.Hex("#444")
	menuForeground = gfx.Hex("#fff")
	buttonColor    = gfx.Hex("#888")
)

// Menu lays out the idle screen: the selected name, an arrow on each side and
// a start button along the bottom.
type Menu struct {
	Width, Height float64
}

// Region is what a menu click landed on.
type Region int

const (
	RegionNone Region = iota
	RegionPrev
	RegionNext
	RegionStart
)

func (m Menu) leftArrow() []render.Point {
	cy := m.Height / 2
	return []render.Point{
		{X: arrowInset, Y: cy},
		{X: arrowInset + arrowDepth, Y: cy - arrowHalf},
		{X: arrowInset + arrowDepth, Y: cy + arrowHalf},
	}
}

func (m Menu) rightArrow() []render.Point {
	cy := m.Height / 2
	return []render.Point{
		{X: m.Width - arrowInset, Y: cy},
		{X: m.Width - arrowInset - arrowDepth, Y: cy - arrowHalf},
		{X: m.Width - arrowInset - arrowDepth, Y: cy + arrowHalf},
	}
}

func (m Menu) Draw(s render.Surface, name string) {
	s.Clear(menuBackground)
	s.WriteCentered(name, m.Width/2, m.Height/2, menuForeground)
	s.FillPolygon(m.leftArrow(), menuForeground)
	s.FillPolygon(m.rightArrow(), menuForeground)
	s.FillRect(m.Width/2-buttonHalfW, m.Height-buttonTop, 2*buttonHalfW, buttonTop-buttonBottom, buttonColor)
	s.WriteCentered("Start", m.Width/2, m.Height-startLabelY, menuForeground)
}

// HitTest uses the bounding boxes of the arrows and the button. Edges count
// as inside.
func (m Menu) HitTest(x, y float64) Region {
	cy := m.Height / 2
	inArrowRow := y >= cy-arrowHalf && y <= cy+arrowHalf
	switch {
	case x >= m.Width/2-buttonHalfW && x <= m.Width/2+buttonHalfW &&
		y >= m.Height-buttonTop && y <= m.Height-buttonBottom:
		return RegionStart
	case inArrowRow && x >= arrowInset && x <= arrowInset+arrowDepth:
		return RegionPrev
	case inArrowRow && x >= m.Width-arrowInset-arrowDepth && x <= m.Width-arrowInset:
		return RegionNext
	}
	return RegionNone
}
