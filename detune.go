package additive

// Detune returns the frequency multiplier 2^(cents/1200).  Cents beyond
// ±1300 (twelve semitones plus a hundred fine cents) saturate.
func (t *Tables) Detune(cents int) float64 {
	return t.detuneAt(cents)
}

// Detune is Tables.Detune on DefaultTables.
func Detune(cents int) float64 { return DefaultTables().Detune(cents) }

// DetuneCents combines a coarse (semitone) and fine (cent) detune.
func DetuneCents(coarse, fine int) int { return coarse*100 + fine }
