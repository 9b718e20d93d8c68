package additive

import (
	"math"
	"sync"
)

const (
	sineTableSize = 4096

	maxCoarse       = 12
	maxFine         = 100
	maxDetuneCents  = maxCoarse*100 + maxFine
	detuneTableSize = 2*maxDetuneCents + 1

	rampTableSize = 1 << 16
)

// Tables holds the precomputed lookup tables shared by every oscillator,
// envelope and detune calculation.  A Tables value is never modified after
// construction and may be used from any number of goroutines.
type Tables struct {
	sine     [sineTableSize]float64
	detune   [detuneTableSize]float64
	rampUp   [rampTableSize]float64
	rampDown [rampTableSize]float64
}

// NewTables builds a fresh set of tables.  Most callers want DefaultTables.
func NewTables() *Tables {
	t := new(Tables)
	for i := range t.sine {
		t.sine[i] = math.Sin(2 * math.Pi * float64(i) / sineTableSize)
	}
	for i := range t.detune {
		t.detune[i] = math.Exp2(float64(i-maxDetuneCents) / 1200)
	}
	const n = rampTableSize - 1
	for i := range t.rampUp {
		t.rampUp[i] = Shape(0, 1, float64(i), n)
		t.rampDown[i] = Shape(1, 0, float64(i), n)
	}
	return t
}

var (
	defaultTables     *Tables
	defaultTablesOnce sync.Once
)

// DefaultTables returns the process-wide tables, building them on first use.
func DefaultTables() *Tables {
	defaultTablesOnce.Do(func() { defaultTables = NewTables() })
	return defaultTables
}

// sineAt wraps i into the table, so any integer index is valid.
func (t *Tables) sineAt(i int) float64 {
	i %= sineTableSize
	if i < 0 {
		i += sineTableSize
	}
	return t.sine[i]
}

// detuneAt saturates cents at ±maxDetuneCents before indexing.
func (t *Tables) detuneAt(cents int) float64 {
	return t.detune[clampInt(cents, -maxDetuneCents, maxDetuneCents)+maxDetuneCents]
}

func (t *Tables) rampUpAt(i int) float64 {
	return t.rampUp[clampInt(i, 0, rampTableSize-1)]
}

func (t *Tables) rampDownAt(i int) float64 {
	return t.rampDown[clampInt(i, 0, rampTableSize-1)]
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
