package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gordonklaus/additive"
	"github.com/gordonklaus/additive/voicefile"
	"github.com/gordonklaus/additive/wavfile"
)

const testVoice = `{
	"sampleRate": 44100,
	"sampleLength": 0.5,
	"frequency": 440,
	"sineWaves": [
		{"id": "a", "mute": false, "level": 100, "ratio": 1, "coarse": 0, "fine": 0, "frequencyOffset": 0},
		{"id": "b", "mute": false, "level": 30, "ratio": 2, "coarse": 0, "fine": 0, "frequencyOffset": 0}
	],
	"adsr": {"attack": 0.01, "decay": 0.01, "sustain": 0.8, "release": 0.1}
}`

func writeVoices(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for _, name := range names {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(testVoice), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	return paths
}

func quietLogger(t *testing.T) {
	old := logger
	logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	t.Cleanup(func() { logger = old })
}

func TestRenderAll(t *testing.T) {
	quietLogger(t)
	paths := writeVoices(t, "one.json", "two.json", "three.json")
	out := t.TempDir()

	results, err := renderAll(context.Background(), paths, renderConfig{outDir: out, format: "float32", jobs: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.in != paths[i] {
			t.Errorf("result %d is for %s, want %s", i, r.in, paths[i])
		}
		want := filepath.Join(out, voicefile.Stem(paths[i])+".wav")
		if r.out != want {
			t.Errorf("result %d written to %s, want %s", i, r.out, want)
		}
		f, err := os.Open(r.out)
		if err != nil {
			t.Fatal(err)
		}
		info, err := wavfile.ReadInfo(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if info.Frames != 22050 || info.Channels != 2 || info.SampleRate != 44100 {
			t.Errorf("%s: %+v", r.out, info)
		}
	}
}

func TestRenderAll_errors(t *testing.T) {
	quietLogger(t)
	paths := writeVoices(t, "voice.txt")
	if _, err := renderAll(context.Background(), paths, renderConfig{outDir: t.TempDir(), format: "float32", jobs: 1}); !errors.Is(err, voicefile.ErrNotJSON) {
		t.Errorf("err = %v, want ErrNotJSON", err)
	}

	paths = writeVoices(t, "voice.json")
	if _, err := renderAll(context.Background(), paths, renderConfig{outDir: t.TempDir(), format: "flac"}); err == nil {
		t.Error("expected error for format flac")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(strings.Replace(testVoice, `"sampleRate": 44100`, `"sampleRate": 0`, 1)), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := renderAll(context.Background(), []string{bad}, renderConfig{outDir: t.TempDir(), format: "pcm16", jobs: 1}); !errors.Is(err, additive.ErrConfig) {
		t.Errorf("err = %v, want ErrConfig", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := renderAll(ctx, paths, renderConfig{outDir: t.TempDir(), format: "float32", jobs: 1}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestAnalyze(t *testing.T) {
	v, err := voicefile.Decode(strings.NewReader(testVoice))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := analyze(&buf, v, 8192, 2, .05); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"samples   22050", "loudest", "peak 1", "peak 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if err := analyze(&buf, v, 1000, 2, .05); err == nil {
		t.Error("expected error for fft size 1000")
	}
}

func TestDump(t *testing.T) {
	v, err := voicefile.Decode(strings.NewReader(testVoice))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := dump(&buf, v); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"22050 samples", "440.000", "880.000", "sustain 0.8"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestRootCmd_render(t *testing.T) {
	quietLogger(t)
	paths := writeVoices(t, "cli.json")
	out := t.TempDir()
	saved := renderCfg
	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"render", "--out-dir", out, "--format", "pcm16", paths[0]})
	t.Cleanup(func() {
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		renderCfg = saved
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v\n%s", err, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(out, "cli.wav")); err != nil {
		t.Error(err)
	}
	// Not a terminal, so the log is JSON.
	if !strings.Contains(stderr.String(), `"msg":"rendered"`) {
		t.Errorf("log output:\n%s", stderr.String())
	}
}
