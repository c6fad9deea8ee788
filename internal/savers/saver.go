// Package savers holds the screensaver plugin contract, the fixed registry
// and one simulation engine per screensaver.
//
// A [Screensaver] is an immutable definition. Activating it calls Setup,
// which returns a fresh [Simulation] owning all of that run's state; the host
// then drives Update and Draw once per tick until the user leaves. A
// simulation that reacts to clicks also implements [PointerHandler].
package savers

import (
	"github.com/san-kum/screensavers/internal/render"
	"github.com/san-kum/screensavers/internal/rng"
	"go.uber.org/zap"
)

// Env is what a screensaver sees of the host at setup time.
type Env struct {
	Width, Height float64
	Rand          *rng.Rand
	Logger        *zap.Logger
}

func (e Env) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

type Screensaver interface {
	Name() string
	Setup(env Env) Simulation
}

type Simulation interface {
	// Update advances the simulation. tick is the host's frame counter.
	Update(tick uint64)
	Draw(s render.Surface)
}

// PointerHandler receives clicks routed to the running simulation.
type PointerHandler interface {
	OnPointer(x, y float64, right bool)
}

// Probe exposes a single scalar describing the simulation, sampled by the
// trace command.
type Probe interface {
	Probe() (name string, value float64)
}
