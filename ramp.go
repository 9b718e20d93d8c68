package additive

import "math"

const rampEpsilon = 1e-5

// Shape moves from from to to over length steps, returning the value at
// step at.  A rising ramp follows a cube root and a falling ramp a cube, which
// gives the fast-start, slow-finish approach of an analog envelope.
func Shape(from, to, at, length float64) float64 {
	if math.Abs(to-from) <= rampEpsilon || at <= 0 {
		return from
	}
	if at >= length {
		return to
	}
	x := at / length
	if from > to {
		return math.Pow(1-x, 3)*(from-to) + to
	}
	return math.Cbrt(x)*(to-from) + from
}

// Ramp computes Shape from the precomputed tables, interpolating linearly
// between adjacent entries.
func (t *Tables) Ramp(from, to, at, length float64) float64 {
	if math.Abs(to-from) <= rampEpsilon || at <= 0 {
		return from
	}
	if at >= length {
		return to
	}

	x := (rampTableSize - 1) * at / length
	i := int(x)
	frac := x - float64(i)

	var y0, y1 float64
	if to > from {
		y0 = t.rampUpAt(i)*(to-from) + from
		if i >= rampTableSize-1 {
			y1 = to
		} else {
			y1 = t.rampUpAt(i+1)*(to-from) + from
		}
	} else {
		y0 = (1-t.rampDownAt(i))*(to-from) + from
		if i >= rampTableSize-1 {
			y1 = to
		} else {
			y1 = (1-t.rampDownAt(i+1))*(to-from) + from
		}
	}
	return y0 + frac*(y1-y0)
}

// Ramp is Tables.Ramp on DefaultTables.
func Ramp(from, to, at, length float64) float64 { return DefaultTables().Ramp(from, to, at, length) }
