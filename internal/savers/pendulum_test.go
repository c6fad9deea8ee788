package savers

import (
	"math"
	"testing"

	"github.com/san-kum/screensavers/internal/dynamo"
	"github.com/san-kum/screensavers/internal/render"
	"github.com/san-kum/screensavers/internal/rng"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func restingPendulum() *pendulumSim {
	sim := NewPendulum().Setup(newEnv(1)).(*pendulumSim)
	sim.state = dynamo.State{0, 0, 0, 0}
	return sim
}

func TestPendulumSetupRanges(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		sim := NewPendulum().Setup(newEnv(seed)).(*pendulumSim)
		m := sim.model
		if m.L1 < 50 || m.L1 >= 150 || m.L2 < 50 || m.L2 >= 150 {
			t.Errorf("seed %d: lengths out of range: %f %f", seed, m.L1, m.L2)
		}
		if m.M1 < 1 || m.M1 >= 10 || m.M2 < 1 || m.M2 >= 10 || m.Gravity < 1 || m.Gravity >= 10 {
			t.Errorf("seed %d: masses or gravity out of range: %+v", seed, m)
		}
		if sim.state[2] != 0 || sim.state[3] != 0 {
			t.Errorf("seed %d: should start at rest, got %v", seed, sim.state)
		}
		if sim.state[0] < 0 || sim.state[0] >= 2*math.Pi {
			t.Errorf("seed %d: theta1 out of range: %f", seed, sim.state[0])
		}
	}
}

func TestPendulumAtRestStaysAtRest(t *testing.T) {
	sim := restingPendulum()
	for tick := uint64(0); tick <= 1000; tick++ {
		sim.Update(tick)
	}
	for i, v := range sim.state {
		if v != 0 {
			t.Errorf("state[%d] = %f, expected 0", i, v)
		}
	}
}

func TestPendulumStepsOnPeriod(t *testing.T) {
	sim := NewPendulum().Setup(newEnv(4)).(*pendulumSim)
	start := sim.state.Clone()
	for tick := uint64(1); tick < pendulumPeriod; tick++ {
		sim.Update(tick)
	}
	if sim.history.len() != 0 {
		t.Fatalf("history grew off-period: %d", sim.history.len())
	}
	for i := range start {
		if sim.state[i] != start[i] {
			t.Fatal("state changed off-period")
		}
	}

	sim.Update(pendulumPeriod)
	if sim.history.len() != 1 {
		t.Fatalf("expected one afterimage, got %d", sim.history.len())
	}
	last := sim.history.at(0)
	if last.theta1 != sim.state[0] || last.theta2 != sim.state[1] {
		t.Error("afterimage should record the new angles")
	}
}

func TestPendulumRejectsInvalidStep(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	env := Env{Width: testWidth, Height: testHeight, Rand: rng.New(5), Logger: zap.New(core)}
	sim := NewPendulum().Setup(env).(*pendulumSim)
	// massless bobs make the equations of motion 0/0
	sim.model.M1, sim.model.M2 = 0, 0
	start := sim.state.Clone()

	for tick := uint64(0); tick < 5*pendulumPeriod; tick += pendulumPeriod {
		sim.Update(tick)
	}
	for i := range start {
		if sim.state[i] != start[i] {
			t.Fatalf("state should keep its last good value, got %v", sim.state)
		}
	}
	if sim.history.len() != 0 {
		t.Errorf("rejected steps should not leave afterimages, got %d", sim.history.len())
	}
	entries := logs.FilterMessage("pendulum step rejected").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning, got %d", len(entries))
	}
	if err, ok := entries[0].ContextMap()["error"].(string); !ok || err != dynamo.ErrInvalidState.Error() {
		t.Errorf("expected the invalid state error, got %v", entries[0].ContextMap()["error"])
	}
}

func TestPendulumProbeReportsEnergy(t *testing.T) {
	sim := NewPendulum().Setup(newEnv(6)).(*pendulumSim)
	name, v := sim.Probe()
	if name != "energy" || v != sim.model.Energy(sim.state) {
		t.Errorf("expected the model energy, got %q %f", name, v)
	}
}

func TestAfterimagesRing(t *testing.T) {
	var r afterimages
	for i := 0; i < 15; i++ {
		r.push(anglePair{theta1: float64(i)})
	}
	if r.len() != afterimageCount {
		t.Fatalf("expected %d entries, got %d", afterimageCount, r.len())
	}
	for i := 0; i < r.len(); i++ {
		if got, want := r.at(i).theta1, float64(5+i); got != want {
			t.Errorf("at(%d) = %f, want %f", i, got, want)
		}
	}
}

func TestPendulumTrailToggles(t *testing.T) {
	sim := NewPendulum().Setup(newEnv(9)).(*pendulumSim)

	sim.OnPointer(0, 0, true)
	if !sim.trailing {
		t.Fatal("right click should start recording")
	}
	sim.Update(10)
	sim.Update(20)
	if sim.trail.Len() != 2 || !sim.trailed {
		t.Fatalf("expected a move and a line in the trail, got %d ops", sim.trail.Len())
	}

	rec := render.NewRecorder(testWidth, testHeight)
	sim.Draw(rec)
	if rec.Counts[render.OpStrokePath] != 1 {
		t.Error("trail should be drawn while recording")
	}

	sim.OnPointer(0, 0, true)
	if sim.trailing {
		t.Fatal("second right click should stop recording")
	}
	sim.Update(30)
	if sim.trail.Len() != 2 {
		t.Error("trail must not grow while paused")
	}

	sim.OnPointer(0, 0, true)
	sim.OnPointer(10, 10, false)
	if !sim.trail.Empty() || sim.trailed || sim.trailing {
		t.Error("left click should discard the trail and stop recording")
	}
}

func TestPendulumDrawFadesAfterimages(t *testing.T) {
	sim := NewPendulum().Setup(newEnv(2)).(*pendulumSim)
	for tick := uint64(1); tick <= 200; tick++ {
		sim.Update(tick)
	}
	rec := render.NewRecorder(testWidth, testHeight)
	sim.Draw(rec)

	n := sim.history.len()
	if rec.Counts[render.OpStrokeLine] != 2*n || rec.Counts[render.OpFillCircle] != 2*n {
		t.Errorf("expected two rods and two bobs per afterimage, got %v", rec.Counts)
	}
	// the oldest afterimage is fully transparent
	if rec.Colors[0].A != 0 {
		t.Errorf("oldest afterimage alpha = %d, want 0", rec.Colors[0].A)
	}
	if rec.NonFinite != 0 {
		t.Errorf("drew %d non-finite coordinates", rec.NonFinite)
	}
}
