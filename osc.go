package additive

import "math"

// WavetableOsc is a sine oscillator that reads a shared table by phase and
// interpolates linearly between neighboring entries.  Phase is kept in table
// index units.
type WavetableOsc struct {
	Params Params
	tables *Tables

	freq        float64
	increment   float64
	phase       float64
	phaseOffset float64
	last        float64
}

// NewWavetableOsc returns an oscillator at freq.  It produces nothing useful
// until it has been given a sample rate through Init or InitAudio.
func NewWavetableOsc(t *Tables, freq float64) *WavetableOsc {
	return &WavetableOsc{tables: t, freq: freq}
}

func (o *WavetableOsc) InitAudio(p Params) {
	o.Params = p
	if o.tables == nil {
		o.tables = DefaultTables()
	}
	o.SetFreq(o.freq)
}

func (o *WavetableOsc) SetFreq(freq float64) {
	o.freq = freq
	if o.Params.SampleRate > 0 {
		o.increment = freq * sineTableSize / o.Params.SampleRate
	}
}

func (o *WavetableOsc) Freq() float64 { return o.freq }

// AddPhase shifts the phase by a number of cycles.
func (o *WavetableOsc) AddPhase(cycles float64) {
	o.phase += cycles * sineTableSize
}

// AddPhaseOffset moves the phase to a new absolute offset, in cycles,
// relative to the previous offset.
func (o *WavetableOsc) AddPhaseOffset(offset float64) {
	o.phase += (offset - o.phaseOffset) * sineTableSize
	o.phaseOffset = offset
}

func (o *WavetableOsc) Reset() {
	o.phase = 0
	o.last = 0
}

// Last returns the value returned by the most recent Tick.
func (o *WavetableOsc) Last() float64 { return o.last }

func (o *WavetableOsc) Tick() float64 {
	if o.phase < 0 || o.phase >= sineTableSize {
		o.phase = math.Mod(o.phase, sineTableSize)
		if o.phase < 0 {
			o.phase += sineTableSize
		}
		if o.phase >= sineTableSize {
			o.phase = 0
		}
	}

	i := int(o.phase)
	frac := o.phase - float64(i)
	x := o.tables.sineAt(i)
	x += frac * (o.tables.sineAt(i+1) - x)

	o.phase += o.increment
	o.last = x
	return x
}
