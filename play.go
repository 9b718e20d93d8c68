package additive

import "fmt"

// A singer produces one sample per call until it is done.  *Synth is one.
type singer interface {
	Sing() (x float64, done bool)
}

// A player is a running playback on one of the platform backends.
type player interface {
	stop() error
}

type audioSinger struct {
	a Audio
	i int
}

func (s *audioSinger) Sing() (float64, bool) {
	if s.i >= len(s.a) {
		return 0, true
	}
	s.i++
	return s.a[s.i-1], false
}

// fill writes the next len(out) samples into out, padding with silence.  It
// reports whether s was already exhausted, i.e. out is entirely silence.
func fill(s singer, out []float32) (done bool) {
	for i := range out {
		x, d := s.Sing()
		if d && i == 0 {
			done = true
		}
		out[i] = float32(x)
	}
	return done
}

// Play blocks until a has been played on the default output device.
func Play(a Audio, sampleRate int) error {
	c, err := PlayAsync(a, sampleRate)
	if err != nil {
		return err
	}
	return c.Err()
}

// PlayAsync starts playing a and returns immediately.  c.Done is closed when
// playback ends, either because a is exhausted or because c.Stop was called.
// If playback cannot start, c is returned already done and c.Err reports why.
func PlayAsync(a Audio, sampleRate int) (PlayControl, error) {
	c := PlayControl{stop: make(chan struct{}, 1), Done: make(chan struct{}), err: new(error)}
	p := Params{SampleRate: float64(sampleRate)}
	if err := p.validate(); err != nil {
		return c.fail(fmt.Errorf("play: %w", err))
	}

	finished := make(chan struct{})
	pl, err := startPlaying(p, &audioSinger{a: a}, finished)
	if err != nil {
		return c.fail(fmt.Errorf("play: %w", err))
	}

	go func() {
		select {
		case <-c.stop:
		case <-finished:
		}
		*c.err = pl.stop()
		close(c.Done)
	}()
	return c, nil
}

type PlayControl struct {
	stop, Done chan struct{}
	err        *error
}

// Err waits for playback to end and returns any error from shutting down the
// output device.
func (c PlayControl) Err() error {
	<-c.Done
	return *c.err
}

func (c PlayControl) fail(err error) (PlayControl, error) {
	*c.err = err
	close(c.Done)
	return c, err
}

func (c PlayControl) Stop() {
	select {
	case c.stop <- struct{}{}:
	default:
	}
}
