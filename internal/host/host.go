package host

import (
	"time"

	"github.com/san-kum/screensavers/internal/render"
	"github.com/san-kum/screensavers/internal/rng"
	"github.com/san-kum/screensavers/internal/savers"
	"go.uber.org/zap"
)

// Idle is the Active value while the menu is shown.
const Idle = -1

// PointerFunc receives clicks in canvas coordinates.
type PointerFunc func(x, y float64, right bool)

func noPointer(x, y float64, right bool) {}

// Runtime is the state shared by the loop and the router.
type Runtime struct {
	Active   int
	Selected int
	Tick     uint64
	Pointer  PointerFunc
}

type Host struct {
	Runtime       Runtime
	registry      *savers.Registry
	menu          Menu
	sim           savers.Simulation
	width, height float64
	rand          *rng.Rand
	log           *zap.Logger
}

type Option func(*Host)

func WithLogger(l *zap.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.log = l
		}
	}
}

// WithRand fixes the session random source. Without it the host seeds one
// from the clock.
func WithRand(r *rng.Rand) Option {
	return func(h *Host) {
		if r != nil {
			h.rand = r
		}
	}
}

func New(reg *savers.Registry, width, height float64, opts ...Option) *Host {
	h := &Host{
		Runtime:  Runtime{Active: Idle, Pointer: noPointer},
		registry: reg,
		menu:     Menu{Width: width, Height: height},
		width:    width,
		height:   height,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.rand == nil {
		h.rand = rng.New(time.Now().UnixNano())
	}
	return h
}

func (h *Host) Registry() *savers.Registry { return h.registry }
func (h *Host) Menu() Menu                 { return h.menu }
func (h *Host) Rand() *rng.Rand            { return h.rand }

func (h *Host) Running() bool { return h.Runtime.Active != Idle }

// Simulation returns the running simulation, or nil while idle.
func (h *Host) Simulation() savers.Simulation { return h.sim }

// Current names the running screensaver, or the menu selection while idle.
func (h *Host) Current() string {
	if h.Running() {
		return h.registry.At(h.Runtime.Active).Name()
	}
	return h.registry.At(h.Runtime.Selected).Name()
}

// Tick runs one iteration of the loop and draws it onto s.
func (h *Host) Tick(s render.Surface) {
	if h.Runtime.Active == Idle {
		h.Runtime.Pointer = noPointer
		h.menu.Draw(s, h.registry.At(h.Runtime.Selected).Name())
	} else {
		h.sim.Update(h.Runtime.Tick)
		h.sim.Draw(s)
	}
	h.Runtime.Tick++
}

// Launch sets up a fresh simulation for the selected screensaver.
func (h *Host) Launch() {
	saver := h.registry.At(h.Runtime.Selected)
	log := h.log.With(zap.String("screensaver", saver.Name()))
	h.sim = saver.Setup(savers.Env{
		Width:  h.width,
		Height: h.height,
		Rand:   h.rand,
		Logger: log,
	})
	h.Runtime.Active = h.Runtime.Selected
	h.Runtime.Pointer = noPointer
	if ph, ok := h.sim.(savers.PointerHandler); ok {
		h.Runtime.Pointer = ph.OnPointer
	}
	log.Info("screensaver activated", zap.Int("index", h.Runtime.Active), zap.Uint64("tick", h.Runtime.Tick))
}

// Escape drops the running simulation and returns to the menu.
func (h *Host) Escape() {
	if !h.Running() {
		return
	}
	h.log.Info("screensaver deactivated",
		zap.String("screensaver", h.registry.At(h.Runtime.Active).Name()),
		zap.Uint64("tick", h.Runtime.Tick))
	h.Runtime.Active = Idle
	h.sim = nil
	h.Runtime.Pointer = noPointer
}

// Navigate moves the menu selection by delta, wrapping both ways.
func (h *Host) Navigate(delta int) {
	h.Runtime.Selected = h.registry.Wrap(h.Runtime.Selected + delta)
}
