package additive

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/ktye/fft"
)

// Spectrum measures the frequency content of rendered audio with a Hann
// windowed FFT averaged over half-overlapping frames.
type Spectrum struct {
	fft fft.FFT
	env []float64
	buf []complex128
}

// NewSpectrum returns an analyzer with the given frame size, which must be a
// power of two.
func NewSpectrum(size int) (*Spectrum, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("spectrum size %d is not a power of two", size)
	}
	f, err := fft.New(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum size %d: %w", size, err)
	}
	env := make([]float64, size)
	for i := range env {
		env[i] = (1 - math.Cos(2*math.Pi*float64(i)/float64(size))) / 2
	}
	return &Spectrum{fft: f, env: env, buf: make([]complex128, size)}, nil
}

func (s *Spectrum) Size() int { return len(s.env) }

// Magnitudes returns the mean magnitude of bins 0 through size/2.  Audio
// shorter than one frame is zero padded.
func (s *Spectrum) Magnitudes(a Audio) []float64 {
	size := len(s.env)
	mag := make([]float64, size/2+1)
	frames := 0
	for start := 0; frames == 0 || start+size <= len(a); start += size / 2 {
		for i := range s.buf {
			x := 0.0
			if start+i < len(a) {
				x = a[start+i]
			}
			s.buf[i] = complex(x*s.env[i], 0)
		}
		s.buf = s.fft.Transform(s.buf)
		for k := range mag {
			mag[k] += cmplx.Abs(s.buf[k])
		}
		frames++
	}
	for k := range mag {
		mag[k] /= float64(frames)
	}
	return mag
}

type Peak struct {
	Freq      float64 // Hz
	Magnitude float64
}

// Peaks returns up to n local maxima of the spectrum of a, strongest first.
// Maxima weaker than a thousandth of the strongest are ignored.  Peak
// frequencies are refined by fitting a parabola through the neighboring bins.
func (s *Spectrum) Peaks(a Audio, sampleRate float64, n int) []Peak {
	mag := s.Magnitudes(a)
	top := 0.0
	for _, m := range mag {
		top = math.Max(top, m)
	}
	if top == 0 {
		return nil
	}

	binWidth := sampleRate / float64(len(s.env))
	var peaks []Peak
	for k := 1; k < len(mag)-1; k++ {
		if mag[k] < top/1000 || mag[k] <= mag[k-1] || mag[k] < mag[k+1] {
			continue
		}
		l, c, r := mag[k-1], mag[k], mag[k+1]
		d := 0.0
		if den := l - 2*c + r; den != 0 {
			d = (l - r) / den / 2
		}
		peaks = append(peaks, Peak{Freq: (float64(k) + d) * binWidth, Magnitude: c})
	}
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Magnitude > peaks[j].Magnitude })
	if len(peaks) > n {
		peaks = peaks[:n]
	}
	return peaks
}
