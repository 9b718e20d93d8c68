package additive

type Stage int

const (
	Attack Stage = iota
	Decay
	Sustain
	Release
)

func (s Stage) String() string {
	switch s {
	case Attack:
		return "attack"
	case Decay:
		return "decay"
	case Sustain:
		return "sustain"
	case Release:
		return "release"
	}
	return "unknown"
}

// Envelope is an ADSR amplitude envelope laid out over a fixed number of
// samples.  Its value depends only on the sample index, so it may be
// evaluated in any order.
type Envelope struct {
	tables *Tables

	// stage lengths in samples
	attackLen, decayLen, sustainLen, releaseLen float64
	level                                       float64
}

// NewEnvelope lays out a over total samples.  Sustain takes whatever attack,
// decay and release leave over; when they overrun total the sustain is empty
// and the later stages are simply cut off.
func NewEnvelope(t *Tables, a ADSR, p Params, total int) *Envelope {
	if t == nil {
		t = DefaultTables()
	}
	e := &Envelope{
		tables:     t,
		attackLen:  p.Samples(a.Attack),
		decayLen:   p.Samples(a.Decay),
		releaseLen: p.Samples(a.Release),
		level:      a.Sustain,
	}
	e.sustainLen = max(0, float64(total)-e.attackLen-e.decayLen-e.releaseLen)
	return e
}

// Stage returns the stage sample n falls in and the offset of n into it.
func (e *Envelope) Stage(n int) (Stage, float64) {
	x := float64(n)
	switch {
	case x < e.attackLen:
		return Attack, x
	case x < e.attackLen+e.decayLen:
		return Decay, x - e.attackLen
	case x < e.attackLen+e.decayLen+e.sustainLen:
		return Sustain, x - e.attackLen - e.decayLen
	}
	return Release, x - e.attackLen - e.decayLen - e.sustainLen
}

// At returns the envelope gain at sample n.
func (e *Envelope) At(n int) float64 {
	s, x := e.Stage(n)
	switch s {
	case Attack:
		return e.tables.Ramp(0, 1, x, e.attackLen)
	case Decay:
		return e.tables.Ramp(1, e.level, x, e.decayLen)
	case Sustain:
		return e.level
	}
	return e.tables.Ramp(e.level, 0, x, e.releaseLen)
}
