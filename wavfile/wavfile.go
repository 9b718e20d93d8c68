// Package wavfile writes rendered voices as RIFF/WAVE files.
package wavfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/gordonklaus/additive"
)

// Format selects the sample encoding.
type Format int

const (
	Float32 Format = iota // 32-bit IEEE float, unclipped
	PCM16                 // 16-bit signed integer, clipped to [-1, 1]
)

// WAVE format tags.
const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// Channels is the number of identical channels each mono sample is written to.
const Channels = 2

const chunkFrames = 4096

func (f Format) String() string {
	switch f {
	case Float32:
		return "float32"
	case PCM16:
		return "pcm16"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat is the inverse of Format.String.
func ParseFormat(s string) (Format, error) {
	for _, f := range []Format{Float32, PCM16} {
		if s == f.String() {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown sample format %q (want float32 or pcm16)", s)
}

func (f Format) bitDepth() int {
	if f == PCM16 {
		return 16
	}
	return 32
}

func (f Format) tag() int {
	if f == PCM16 {
		return formatPCM
	}
	return formatIEEEFloat
}

// encode converts one sample to the integer go-audio writes for f.  For
// Float32 that is the IEEE bit pattern, which the encoder's 32-bit path
// writes unchanged.
func (f Format) encode(x float64) int {
	if f == PCM16 {
		x = math.Max(-1, math.Min(1, x))
		return int(math.Round(x * math.MaxInt16))
	}
	return int(int32(math.Float32bits(float32(x))))
}

// Write encodes a as a stereo file at sampleRate, duplicating every sample
// into both channels.
func Write(w io.WriteSeeker, a additive.Audio, sampleRate int, f Format) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wavfile: sample rate %d: %w", sampleRate, additive.ErrConfig)
	}
	if f != Float32 && f != PCM16 {
		return fmt.Errorf("wavfile: %v is not supported", f)
	}

	e := wav.NewEncoder(w, sampleRate, f.bitDepth(), Channels, f.tag())
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: Channels, SampleRate: sampleRate},
		Data:           make([]int, 0, chunkFrames*Channels),
		SourceBitDepth: f.bitDepth(),
	}
	for start := 0; start < len(a); start += chunkFrames {
		buf.Data = buf.Data[:0]
		for _, x := range a[start:min(start+chunkFrames, len(a))] {
			v := f.encode(x)
			for c := 0; c < Channels; c++ {
				buf.Data = append(buf.Data, v)
			}
		}
		if err := e.Write(buf); err != nil {
			return errors.Join(fmt.Errorf("wavfile: %w", err), e.Close())
		}
	}
	if err := e.Close(); err != nil {
		return fmt.Errorf("wavfile: %w", err)
	}
	return nil
}

// Create writes a to a new file at path.
func Create(path string, a additive.Audio, sampleRate int, f Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(file, a, sampleRate, f)
}

// Info describes a WAV file's layout.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Format     Format
	Frames     int
}

// ReadInfo reads the header of a WAV file.
func ReadInfo(r io.ReadSeeker) (Info, error) {
	d := wav.NewDecoder(r)
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return Info{}, fmt.Errorf("wavfile: %w", err)
	}
	if d.NumChans == 0 || d.BitDepth == 0 {
		return Info{}, errors.New("wavfile: missing format chunk")
	}
	info := Info{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
		Format:     Float32,
	}
	if d.WavAudioFormat == formatPCM {
		info.Format = PCM16
	}
	if err := d.FwdToPCM(); err != nil {
		return Info{}, fmt.Errorf("wavfile: %w", err)
	}
	if frameSize := info.Channels * info.BitDepth / 8; frameSize > 0 {
		info.Frames = int(d.PCMLen()) / frameSize
	}
	return info, nil
}
