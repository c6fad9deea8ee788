// Package gfx holds the colour type and scalar helpers shared by the renderer
// and the simulations.
package gfx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// Hex parses "#rgb" or "#rrggbb". Invalid input yields opaque black.
func Hex(s string) Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Black
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return
}

// Fade returns c with its alpha set to opacity in [0,1].
func (c Color) Fade(opacity float64) Color {
	c.A = uint8(Clamp(opacity, 0, 1)*255 + 0.5)
	return c
}

func (c Color) String() string {
	if c.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend interpolates each channel from a to b, rounding to the nearest byte.
func Blend(a, b Color, t float64) Color {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).RGB255()
	alpha := Lerp(float64(a.A), float64(b.A), t)
	return Color{R: r, G: g, B: bl, A: uint8(Clamp(alpha, 0, 255) + 0.5)}
}

// Gradient returns n colours from start towards end, the i-th at t = i/n.
func Gradient(start, end Color, n int) []Color {
	out := make([]Color, n)
	for i := range out {
		out[i] = Blend(start, end, float64(i)/float64(n))
	}
	return out
}
