package additive

import "fmt"

// Synth renders a Voice by summing one wavetable oscillator per partial and
// shaping the sum with the voice's envelope.
type Synth struct {
	voice    Voice
	params   Params
	tables   *Tables
	oscs     []*WavetableOsc
	env      *Envelope
	n, total int
}

type Option func(*Synth)

// WithTables makes the synth read t instead of DefaultTables.
func WithTables(t *Tables) Option {
	return func(s *Synth) { s.tables = t }
}

// NewSynth validates v and prepares it for rendering.  v is copied; later
// changes to it do not affect the synth.
func NewSynth(v *Voice, opts ...Option) (*Synth, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("new synth: %w", err)
	}

	s := &Synth{voice: *v, params: v.Params()}
	s.voice.Partials = append([]Partial(nil), v.Partials...)
	for _, o := range opts {
		o(s)
	}
	if s.tables == nil {
		s.tables = DefaultTables()
	}

	// Muted partials get an oscillator too; it just isn't ticked while muted.
	s.oscs = make([]*WavetableOsc, len(s.voice.Partials))
	for i, p := range s.voice.Partials {
		s.oscs[i] = NewWavetableOsc(s.tables, s.partialFreq(p))
	}
	Init(s.oscs, s.params)

	s.total = v.Len()
	s.env = NewEnvelope(s.tables, s.voice.ADSR, s.params, s.total)
	return s, nil
}

func (s *Synth) partialFreq(p Partial) float64 {
	return s.voice.Frequency*float64(p.Ratio)*s.tables.Detune(p.Cents()) + float64(p.FrequencyOffset)
}

// Frequencies returns the effective frequency of each partial in Hz.
func (s *Synth) Frequencies() []float64 {
	f := make([]float64, len(s.oscs))
	for i, o := range s.oscs {
		f[i] = o.Freq()
	}
	return f
}

func (s *Synth) Len() int            { return s.total }
func (s *Synth) SampleRate() int     { return s.voice.SampleRate }
func (s *Synth) Envelope() *Envelope { return s.env }

// Sing returns the next sample; done is true once the voice is exhausted,
// in which case x is 0.
func (s *Synth) Sing() (x float64, done bool) {
	if s.n >= s.total {
		return 0, true
	}
	for i, p := range s.voice.Partials {
		if !p.Audible() {
			continue
		}
		x += p.Gain() * s.oscs[i].Tick()
	}
	x *= s.env.At(s.n)
	s.n++
	return x, false
}

// Render produces the remaining samples of the voice.
func (s *Synth) Render() Audio {
	out := make(Audio, 0, s.total-s.n)
	for {
		x, done := s.Sing()
		if done {
			return out
		}
		out = append(out, x)
	}
}

// Render validates v and renders it with DefaultTables.
func Render(v *Voice) (Audio, error) {
	s, err := NewSynth(v)
	if err != nil {
		return nil, err
	}
	return s.Render(), nil
}
