package additive

import (
	"errors"
	"fmt"
	"math"
)

// A Voice describes one rendered note: a fundamental, a set of sine partials
// above it and an amplitude envelope.
type Voice struct {
	SampleRate   int       `json:"sampleRate"`
	SampleLength float64   `json:"sampleLength"` // seconds
	Frequency    float64   `json:"frequency"`
	Partials     []Partial `json:"sineWaves"`
	ADSR         ADSR      `json:"adsr"`
}

type Partial struct {
	ID              string `json:"id"`
	Mute            bool   `json:"mute"`
	Level           int    `json:"level"`           // 0 - 100
	Ratio           int    `json:"ratio"`           // 1 - 9
	Coarse          int    `json:"coarse"`          // -12 - 12 semitones
	Fine            int    `json:"fine"`            // -100 - 100 cents
	FrequencyOffset int    `json:"frequencyOffset"` // 0 - 20 Hz
}

// ADSR times are in seconds; Sustain is a level.
type ADSR struct {
	Attack  float64 `json:"attack"`
	Decay   float64 `json:"decay"`
	Sustain float64 `json:"sustain"`
	Release float64 `json:"release"`
}

const (
	MinRatio     = 1
	MaxRatio     = 9
	MaxLevel     = 100
	MaxFreqShift = 20

	// MaxSamples bounds the rendered length of a voice.
	MaxSamples = math.MaxInt32
)

// Gain is the partial's linear amplitude.
func (p Partial) Gain() float64 { return float64(p.Level) / MaxLevel }

// Audible reports whether the partial contributes to the output.
func (p Partial) Audible() bool { return !p.Mute && p.Level > 0 }

func (p Partial) Cents() int { return DetuneCents(p.Coarse, p.Fine) }

// Params returns the audio parameters the voice renders at.
func (v *Voice) Params() Params { return Params{SampleRate: float64(v.SampleRate)} }

// Len returns the number of samples the voice renders to.
func (v *Voice) Len() int {
	return int(math.Round(float64(v.SampleRate) * v.SampleLength))
}

// Validate reports every field that would make rendering meaningless.  The
// returned error, if any, matches ErrConfig.  Detune beyond the coarse and
// fine ranges is not an error; it saturates.
func (v *Voice) Validate() error {
	var errs []error
	bad := func(field string, value any, reason string) {
		errs = append(errs, &ConfigError{Field: field, Value: value, Reason: reason})
	}

	if v.SampleRate <= 0 {
		bad("sampleRate", v.SampleRate, "must be positive")
	}
	if !finite(v.SampleLength) || v.SampleLength < 0 {
		bad("sampleLength", v.SampleLength, "must be a non-negative number of seconds")
	} else if float64(v.SampleRate)*v.SampleLength >= MaxSamples {
		bad("sampleLength", v.SampleLength, fmt.Sprintf("must render to fewer than %d samples", MaxSamples))
	}
	if !finite(v.Frequency) || v.Frequency < 0 {
		bad("frequency", v.Frequency, "must be a non-negative number of Hz")
	}
	for i, p := range v.Partials {
		field := func(name string) string { return fmt.Sprintf("sineWaves[%d].%s", i, name) }
		if p.Ratio < MinRatio || p.Ratio > MaxRatio {
			bad(field("ratio"), p.Ratio, fmt.Sprintf("must be in [%d, %d]", MinRatio, MaxRatio))
		}
		if p.Level < 0 || p.Level > MaxLevel {
			bad(field("level"), p.Level, fmt.Sprintf("must be in [0, %d]", MaxLevel))
		}
		if p.FrequencyOffset < 0 || p.FrequencyOffset > MaxFreqShift {
			bad(field("frequencyOffset"), p.FrequencyOffset, fmt.Sprintf("must be in [0, %d]", MaxFreqShift))
		}
	}

	a := v.ADSR
	for _, t := range []struct {
		name string
		x    float64
	}{{"attack", a.Attack}, {"decay", a.Decay}, {"release", a.Release}} {
		if !finite(t.x) || t.x < 0 {
			bad("adsr."+t.name, t.x, "must be a non-negative number of seconds")
		}
	}
	if !finite(a.Sustain) || a.Sustain < 0 || a.Sustain > 1 {
		bad("adsr.sustain", a.Sustain, "must be in [0, 1]")
	}

	return errors.Join(errs...)
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
