package host_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/screensavers/internal/host"
	"github.com/san-kum/screensavers/internal/render"
	"github.com/san-kum/screensavers/internal/rng"
	"github.com/san-kum/screensavers/internal/savers"
)

const (
	width  = 800
	height = 600
)

type click struct {
	x, y  float64
	right bool
}

// clickSaver records the pointer calls and ticks it receives.
type clickSaver struct {
	name   string
	setups int
	last   *clickSim
}

func (c *clickSaver) Name() string { return c.name }

func (c *clickSaver) Setup(env savers.Env) savers.Simulation {
	c.setups++
	c.last = &clickSim{}
	return c.last
}

type clickSim struct {
	clicks []click
	ticks  []uint64
	draws  int
}

func (s *clickSim) Update(tick uint64)       { s.ticks = append(s.ticks, tick) }
func (s *clickSim) Draw(surf render.Surface) { s.draws++ }

func (s *clickSim) OnPointer(x, y float64, right bool) {
	s.clicks = append(s.clicks, click{x, y, right})
}

// quietSaver has no pointer handler.
type quietSaver struct{}

func (quietSaver) Name() string                           { return "Quiet" }
func (quietSaver) Setup(env savers.Env) savers.Simulation { return quietSim{} }

type quietSim struct{}

func (quietSim) Update(tick uint64)       {}
func (quietSim) Draw(surf render.Surface) {}

var _ = Describe("Host", func() {
	var (
		h   *host.Host
		rec *render.Recorder
	)

	BeforeEach(func() {
		h = host.New(savers.Default(), width, height, host.WithRand(rng.New(42)))
		rec = render.NewRecorder(width, height)
	})

	It("starts idle on the first screensaver", func() {
		Expect(h.Running()).To(BeFalse())
		Expect(h.Runtime.Active).To(Equal(host.Idle))
		Expect(h.Runtime.Selected).To(Equal(0))
		Expect(h.Runtime.Tick).To(BeZero())
		Expect(h.Simulation()).To(BeNil())
	})

	Describe("Tick", func() {
		It("draws the menu while idle and still counts the tick", func() {
			h.Tick(rec)
			h.Tick(rec)
			Expect(h.Runtime.Tick).To(Equal(uint64(2)))
			Expect(rec.Texts).To(ContainElements("Random Circles", "Start"))
		})

		It("updates then draws the active simulation with the current tick", func() {
			saver := &clickSaver{name: "Clicks"}
			h = host.New(savers.NewRegistry(saver), width, height)
			h.Tick(rec)
			h.Tick(rec)
			h.Launch()
			h.Tick(rec)
			h.Tick(rec)

			Expect(saver.last.ticks).To(Equal([]uint64{2, 3}))
			Expect(saver.last.draws).To(Equal(2))
			Expect(h.Runtime.Tick).To(Equal(uint64(4)))
		})

		It("resets the pointer handler whenever the menu is drawn", func() {
			saver := &clickSaver{name: "Clicks"}
			h = host.New(savers.NewRegistry(saver), width, height)
			h.Runtime.Pointer = func(x, y float64, right bool) { Fail("stale pointer handler") }
			h.Tick(rec)
			h.Runtime.Pointer(1, 2, false)
		})
	})

	Describe("Launch", func() {
		It("activates the Double Pendulum from index 2 and draws it next tick", func() {
			h.Navigate(2)
			h.Launch()
			Expect(h.Running()).To(BeTrue())
			Expect(h.Runtime.Active).To(Equal(2))
			Expect(h.Current()).To(Equal("Double Pendulum"))
			probe, ok := h.Simulation().(savers.Probe)
			Expect(ok).To(BeTrue())
			name, _ := probe.Probe()
			Expect(name).To(Equal("energy"))

			Expect(func() { h.Tick(rec) }).NotTo(Panic())
			Expect(rec.Counts[render.OpClear]).To(Equal(1))
			Expect(rec.NonFinite).To(BeZero())
		})

		It("sets up a fresh simulation on every activation", func() {
			saver := &clickSaver{name: "Clicks"}
			h = host.New(savers.NewRegistry(saver), width, height)
			h.Launch()
			first := saver.last
			h.Escape()
			h.Launch()
			Expect(saver.setups).To(Equal(2))
			Expect(saver.last).NotTo(BeIdenticalTo(first))
		})

		It("falls back to a no-op pointer for simulations without a handler", func() {
			h = host.New(savers.NewRegistry(quietSaver{}), width, height)
			h.Launch()
			Expect(func() { h.Runtime.Pointer(5, 5, true) }).NotTo(Panic())
		})
	})

	Describe("Escape", func() {
		It("returns every screensaver to idle with a no-op pointer", func() {
			for i := 0; i < h.Registry().Len(); i++ {
				h.Runtime.Selected = i
				h.Launch()
				for j := 0; j < 30; j++ {
					h.Tick(rec)
				}
				h.Escape()
				Expect(h.Running()).To(BeFalse())
				Expect(h.Simulation()).To(BeNil())
				Expect(func() { h.Runtime.Pointer(10, 10, false) }).NotTo(Panic())
			}
		})

		It("does not move the selection", func() {
			h.Navigate(3)
			h.Launch()
			h.Escape()
			Expect(h.Runtime.Selected).To(Equal(3))
		})
	})

	Describe("Navigate", func() {
		DescribeTable("wraps the selection into range",
			func(steps []int, want int) {
				for _, d := range steps {
					h.Navigate(d)
				}
				Expect(h.Runtime.Selected).To(Equal(want))
			},
			Entry("one left from the start", []int{-1}, 4),
			Entry("five right", []int{1, 1, 1, 1, 1}, 0),
			Entry("mixed", []int{1, 1, -1, -1, -1, -1}, 3),
			Entry("large jumps", []int{13, -27}, 1),
		)

		It("stays within range for a long random walk", func() {
			r := rng.New(7)
			for i := 0; i < 1000; i++ {
				if r.Chance(50) {
					h.Navigate(1)
				} else {
					h.Navigate(-1)
				}
				Expect(h.Runtime.Selected).To(BeNumerically(">=", 0))
				Expect(h.Runtime.Selected).To(BeNumerically("<", 5))
			}
		})
	})
})
