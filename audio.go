package additive

import "math"

// Audio is a mono block of samples in temporal order.
type Audio []float64

func (z Audio) Zero() Audio {
	for i := range z {
		z[i] = 0
	}
	return z
}

func (z Audio) Add(x Audio, y Audio) Audio {
	for i := range z {
		z[i] = x[i] + y[i]
	}
	return z
}

func (z Audio) MulX(x Audio, f float64) Audio {
	for i := range z {
		z[i] = x[i] * f
	}
	return z
}

// Peak returns the largest absolute sample value.
func (z Audio) Peak() float64 {
	p := 0.0
	for _, x := range z {
		p = math.Max(p, math.Abs(x))
	}
	return p
}

func (z Audio) RMS() float64 {
	if len(z) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range z {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(z)))
}

// Float32 converts z for output devices and file encoders.  Samples are not
// clipped.
func (z Audio) Float32() []float32 {
	out := make([]float32, len(z))
	for i, x := range z {
		out[i] = float32(x)
	}
	return out
}
