//go:build js

package additive

import (
	"errors"

	"github.com/gopherjs/gopherjs/js"
)

type webAudioPlayer struct {
	context, source *js.Object
}

func startPlaying(p Params, s singer, finished chan<- struct{}) (player, error) {
	contextType := js.Global.Get("AudioContext")
	if contextType == js.Undefined {
		contextType = js.Global.Get("webkitAudioContext")
	}
	if contextType == js.Undefined {
		return nil, errors.New("the Web Audio API is not supported in this browser")
	}

	var samples []float64
	for {
		x, done := s.Sing()
		if done {
			break
		}
		samples = append(samples, x)
	}
	if len(samples) == 0 {
		close(finished)
		return &webAudioPlayer{}, nil
	}

	context := contextType.New()
	buffer := context.Call("createBuffer", 1, len(samples), p.SampleRate)
	data := buffer.Call("getChannelData", 0)
	for i, x := range samples {
		data.SetIndex(i, x)
	}
	source := context.Call("createBufferSource")
	source.Set("buffer", buffer)
	source.Call("connect", context.Get("destination"))
	source.Set("onended", func() { close(finished) })
	source.Call("start")
	return &webAudioPlayer{context, source}, nil
}

func (pl *webAudioPlayer) stop() error {
	if pl.context == nil {
		return nil
	}
	pl.source.Set("onended", nil)
	pl.source.Call("stop")
	pl.context.Call("close")
	return nil
}
