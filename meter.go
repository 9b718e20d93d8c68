package additive

import "math"

// AmpMeter tracks the RMS amplitude of the most recent windowSize seconds.
type AmpMeter struct {
	windowSize float64
	buf        Audio
	i          int
	sum        float64
}

func NewAmpMeter(windowSize float64) *AmpMeter {
	return &AmpMeter{windowSize: windowSize}
}

func (a *AmpMeter) InitAudio(p Params) {
	a.buf = make(Audio, max(1, int(p.Samples(a.windowSize))))
	a.i = 0
	a.sum = 0
}

// Amplitude feeds x into the meter and returns the RMS over the window.
func (a *AmpMeter) Amplitude(x Audio) float64 {
	for _, x := range x {
		a.sum -= a.buf[a.i]
		a.buf[a.i] = x * x
		a.sum += a.buf[a.i]
		a.i = (a.i + 1) % len(a.buf)
	}
	return math.Sqrt(math.Max(0, a.sum) / float64(len(a.buf)))
}

// Loudest returns the highest windowed RMS reached anywhere in x and the
// sample index at which it was reached.
func (a *AmpMeter) Loudest(x Audio) (amp float64, at int) {
	for i := range x {
		if v := a.Amplitude(x[i : i+1]); v > amp {
			amp, at = v, i
		}
	}
	return amp, at
}
