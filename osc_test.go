package additive

import (
	"math"
	"testing"
)

func newTestOsc(freq, sampleRate float64) *WavetableOsc {
	o := NewWavetableOsc(nil, freq)
	Init(o, Params{sampleRate})
	return o
}

func TestWavetableOsc_period(t *testing.T) {
	for _, c := range []struct{ freq, sampleRate float64 }{
		{441, 44100},
		{1000, 48000},
		{100, 96000},
		{3, 48},
	} {
		o := newTestOsc(c.freq, c.sampleRate)
		period := int(math.Round(c.sampleRate / c.freq))
		first := o.Tick()
		for i := 1; i < period; i++ {
			o.Tick()
		}
		if x := o.Tick(); math.Abs(x-first) > 1e-3 {
			t.Errorf("freq=%g rate=%g: after one period got %.6f, want %.6f", c.freq, c.sampleRate, x, first)
		}
	}
}

func TestWavetableOsc_sine(t *testing.T) {
	const sampleRate = 48000
	o := newTestOsc(440, sampleRate)
	for n := 0; n < 2000; n++ {
		want := math.Sin(2 * math.Pi * 440 * float64(n) / sampleRate)
		x := o.Tick()
		if math.Abs(x-want) > 1e-5 {
			t.Fatalf("sample %d: got %.7f, want %.7f", n, x, want)
		}
		if o.Last() != x {
			t.Fatalf("sample %d: Last() = %g, Tick returned %g", n, o.Last(), x)
		}
	}
}

func TestWavetableOsc_phase(t *testing.T) {
	o := newTestOsc(0, 44100)
	o.AddPhase(.25)
	if x := o.Tick(); math.Abs(x-1) > 1e-9 {
		t.Errorf("quarter cycle: got %g, want 1", x)
	}

	o.Reset()
	if o.Last() != 0 {
		t.Errorf("Last after Reset = %g", o.Last())
	}
	o.AddPhase(-.25)
	if x := o.Tick(); math.Abs(x+1) > 1e-9 {
		t.Errorf("negative quarter cycle: got %g, want -1", x)
	}

	o.Reset()
	o.AddPhase(1e6 + .25)
	if x := o.Tick(); math.Abs(x-1) > 1e-6 {
		t.Errorf("large phase: got %g, want 1", x)
	}

	o.Reset()
	o.AddPhase(-1e6 - .25)
	if x := o.Tick(); math.Abs(x+1) > 1e-6 {
		t.Errorf("large negative phase: got %g, want -1", x)
	}
}

func TestWavetableOsc_phaseOffset(t *testing.T) {
	o := newTestOsc(0, 44100)
	o.AddPhaseOffset(.25)
	o.AddPhaseOffset(.25) // no change in offset, no change in phase
	if x := o.Tick(); math.Abs(x-1) > 1e-9 {
		t.Errorf("offset .25: got %g, want 1", x)
	}
	o.AddPhaseOffset(.75)
	if x := o.Tick(); math.Abs(x+1) > 1e-9 {
		t.Errorf("offset .75: got %g, want -1", x)
	}
}

func TestWavetableOsc_setFreq(t *testing.T) {
	o := newTestOsc(100, 44100)
	o.SetFreq(11025) // a quarter cycle per sample
	want := []float64{0, 1, 0, -1, 0}
	for i, w := range want {
		if x := o.Tick(); math.Abs(x-w) > 1e-9 {
			t.Errorf("sample %d: got %g, want %g", i, x, w)
		}
	}
	if o.Freq() != 11025 {
		t.Errorf("Freq() = %g", o.Freq())
	}
}

func BenchmarkWavetableOsc(b *testing.B) {
	o := newTestOsc(1234, 96000)
	for i := 0; i < b.N; i++ {
		o.Tick()
	}
}
