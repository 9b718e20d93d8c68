package additive

import (
	"errors"
	"testing"
)

func TestFill(t *testing.T) {
	s := &audioSinger{a: Audio{1, 2, 3}}
	out := make([]float32, 2)
	if fill(s, out) || out[0] != 1 || out[1] != 2 {
		t.Fatalf("first buffer: %v", out)
	}
	if fill(s, out) || out[0] != 3 || out[1] != 0 {
		t.Fatalf("second buffer: %v, want [3 0] and not done", out)
	}
	if !fill(s, out) || out[0] != 0 || out[1] != 0 {
		t.Fatalf("third buffer: %v, want silence and done", out)
	}
}

func TestFill_synth(t *testing.T) {
	v := sineVoice()
	v.SampleLength = .01
	s, err := NewSynth(v)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Render(v)
	out := make([]float32, 256)
	var got []float32
	for !fill(s, out) {
		got = append(got, out...)
	}
	for i, x := range want {
		if got[i] != float32(x) {
			t.Fatalf("sample %d: %g, want %g", i, got[i], x)
		}
	}
}

func TestPlayAsync_badRate(t *testing.T) {
	c, err := PlayAsync(Audio{0}, 0)
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
	c.Stop()
	select {
	case <-c.Done:
	default:
		t.Fatal("Done not closed after failed start")
	}
	if c.Err() != err {
		t.Errorf("Err() = %v, want %v", c.Err(), err)
	}
}
