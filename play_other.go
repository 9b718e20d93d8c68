//go:build !js && !oto

package additive

import (
	"errors"
	"sync"

	"github.com/gordonklaus/portaudio"
)

type portaudioPlayer struct {
	stream *portaudio.Stream
}

func startPlaying(p Params, s singer, finished chan<- struct{}) (player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}

	var once sync.Once
	callback := func(out []float32) {
		if fill(s, out) {
			once.Do(func() { close(finished) })
		}
	}
	stream, err := portaudio.OpenDefaultStream(0, 1, p.SampleRate, 1024, callback)
	if err != nil {
		return nil, errors.Join(err, portaudio.Terminate())
	}
	if err := stream.Start(); err != nil {
		return nil, errors.Join(err, stream.Close(), portaudio.Terminate())
	}
	return &portaudioPlayer{stream}, nil
}

func (pl *portaudioPlayer) stop() error {
	return errors.Join(pl.stream.Stop(), pl.stream.Close(), portaudio.Terminate())
}
