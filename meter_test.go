package additive

import (
	"math"
	"testing"
)

func TestAmpMeter(t *testing.T) {
	m := NewAmpMeter(.01)
	Init(m, Params{1000})

	if a := m.Amplitude(Audio{.5, .5, .5, .5, .5}); math.Abs(a-.5*math.Sqrt(.5)) > 1e-12 {
		t.Errorf("half-full window: %g", a)
	}
	if a := m.Amplitude(Audio{.5, .5, .5, .5, .5}); math.Abs(a-.5) > 1e-12 {
		t.Errorf("full window: %g", a)
	}
}

func TestAmpMeter_loudest(t *testing.T) {
	a := make(Audio, 1000)
	for i := 600; i < 700; i++ {
		a[i] = 1
	}
	m := NewAmpMeter(.05)
	Init(m, Params{1000})
	amp, at := m.Loudest(a)
	if math.Abs(amp-1) > 1e-9 || at != 649 {
		t.Errorf("Loudest = %g at %d, want 1 at 649", amp, at)
	}
}

func TestAudio(t *testing.T) {
	a := Audio{1, -3, 2}
	if p := a.Peak(); p != 3 {
		t.Errorf("Peak = %g", p)
	}
	if r := (Audio{2, -2}).RMS(); r != 2 {
		t.Errorf("RMS = %g", r)
	}
	if r := Audio(nil).RMS(); r != 0 {
		t.Errorf("RMS of nothing = %g", r)
	}
	z := make(Audio, 3).Add(a, a)
	if z[1] != -6 {
		t.Errorf("Add: %v", z)
	}
	if z.MulX(z, .5)[2] != 2 || z.Zero()[0] != 0 {
		t.Errorf("MulX/Zero: %v", z)
	}
	if f := a.Float32(); len(f) != 3 || f[1] != -3 {
		t.Errorf("Float32: %v", f)
	}
}
