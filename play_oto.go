//go:build oto && !js

package additive

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// oto allows a single context per process, and its sample rate is fixed
// when it is created.
var (
	otoMu   sync.Mutex
	otoCtx  *oto.Context
	otoRate float64
)

func otoContext(sampleRate float64) (*oto.Context, error) {
	otoMu.Lock()
	defer otoMu.Unlock()
	if otoCtx != nil {
		if otoRate != sampleRate {
			return nil, fmt.Errorf("oto: context already running at %g Hz, cannot play at %g Hz", otoRate, sampleRate)
		}
		return otoCtx, nil
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(sampleRate),
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready
	otoCtx, otoRate = ctx, sampleRate
	return ctx, nil
}

// otoReader encodes samples as little-endian float32 until s is done.
type otoReader struct {
	s   singer
	buf []float32
}

func (r *otoReader) Read(p []byte) (int, error) {
	n := len(p) / 4
	if n == 0 {
		return 0, nil
	}
	if cap(r.buf) < n {
		r.buf = make([]float32, n)
	}
	buf := r.buf[:n]
	for i := range buf {
		x, done := r.s.Sing()
		if done {
			if i == 0 {
				return 0, io.EOF
			}
			buf = buf[:i]
			break
		}
		buf[i] = float32(x)
	}
	for i, x := range buf {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(x))
	}
	return 4 * len(buf), nil
}

type otoPlayer struct {
	player *oto.Player
	quit   chan struct{}
}

func startPlaying(p Params, s singer, finished chan<- struct{}) (player, error) {
	ctx, err := otoContext(p.SampleRate)
	if err != nil {
		return nil, err
	}
	pl := &otoPlayer{player: ctx.NewPlayer(&otoReader{s: s}), quit: make(chan struct{})}
	pl.player.Play()

	go func() {
		t := time.NewTicker(10 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-pl.quit:
				return
			case <-t.C:
				if !pl.player.IsPlaying() {
					close(finished)
					return
				}
			}
		}
	}()
	return pl, nil
}

func (pl *otoPlayer) stop() error {
	close(pl.quit)
	return pl.player.Close()
}
