// Package export writes rendered frames to disk: a single PNG or an animated
// GIF.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrNoFrames          = errors.New("no frames captured")
)

type Format int

const (
	FormatPNG Format = iota
	FormatGIF
)

// FormatOf picks the output format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".gif":
		return FormatGIF, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("write png %s: %w", path, err)
	}
	return nil
}

// Animation collects frames for an animated GIF, each scaled and dithered to
// the Plan 9 palette as it is added.
type Animation struct {
	frames []*image.Paletted
	delays []int
	delay  int
	scale  float64
}

// NewAnimation makes an animation with delay hundredths of a second per
// frame. Frames are scaled by scale, which must be in (0, 1].
func NewAnimation(delay int, scale float64) *Animation {
	if scale <= 0 || scale > 1 {
		scale = 1
	}
	return &Animation{delay: delay, scale: scale}
}

func (a *Animation) Len() int { return len(a.frames) }

func (a *Animation) Add(img image.Image) {
	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*a.scale))
	h := max(1, int(float64(b.Dy())*a.scale))

	src := img
	if w != b.Dx() || h != b.Dy() {
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
		src = scaled
	}
	frame := image.NewPaletted(image.Rect(0, 0, w, h), palette.Plan9)
	draw.FloydSteinberg.Draw(frame, frame.Bounds(), src, src.Bounds().Min)

	a.frames = append(a.frames, frame)
	a.delays = append(a.delays, a.delay)
}

func (a *Animation) Encode(w io.Writer) error {
	if len(a.frames) == 0 {
		return ErrNoFrames
	}
	return gif.EncodeAll(w, &gif.GIF{Image: a.frames, Delay: a.delays, LoopCount: 0})
}

func (a *Animation) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := a.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("write gif %s: %w", path, err)
	}
	return f.Close()
}
