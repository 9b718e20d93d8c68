package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gordonklaus/additive"
	"github.com/gordonklaus/additive/voicefile"
	"github.com/gordonklaus/additive/wavfile"
)

type renderConfig struct {
	outDir string
	format string
	jobs   int
	play   bool
}

var renderCfg renderConfig

var renderCmd = &cobra.Command{
	Use:   "render <voice.json>...",
	Short: "Render voice files to WAV",
	Long: `Render each voice file to <name>.wav: stereo, with the voice duplicated
into both channels, 32-bit float samples unless --format pcm16 is given.

Examples:
  sinewav render organ.json
  sinewav render -o out --format pcm16 voices/*.json
  sinewav render --play bell.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderCfg.outDir, "out-dir", "o", ".", "Directory to write WAV files to")
	renderCmd.Flags().StringVar(&renderCfg.format, "format", wavfile.Float32.String(), "Sample format (float32, pcm16)")
	renderCmd.Flags().IntVarP(&renderCfg.jobs, "jobs", "j", runtime.NumCPU(), "Voice files to render at once")
	renderCmd.Flags().BoolVar(&renderCfg.play, "play", false, "Play each voice after writing it")
}

// rendered is one voice file's result.
type rendered struct {
	in, out    string
	sampleRate int
	audio      additive.Audio
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := renderAll(ctx, args, renderCfg)
	if err != nil {
		return err
	}
	if !renderCfg.play {
		return nil
	}
	for _, r := range results {
		logger.Info("playing", slog.String("voice", r.in), slog.String("wav", r.out))
		if err := play(ctx, r.audio, r.sampleRate); err != nil {
			return err
		}
	}
	return nil
}

// renderAll renders and writes every path, at most cfg.jobs at a time.
// Results are returned in the order of paths.
func renderAll(ctx context.Context, paths []string, cfg renderConfig) ([]rendered, error) {
	format, err := wavfile.ParseFormat(cfg.format)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
		return nil, err
	}

	results := make([]rendered, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.jobs))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := renderFile(path, cfg.outDir, format)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderFile(path, outDir string, format wavfile.Format) (rendered, error) {
	start := time.Now()
	v, err := voicefile.Load(path)
	if err != nil {
		return rendered{}, err
	}
	a, err := additive.Render(v)
	if err != nil {
		return rendered{}, fmt.Errorf("%s: %w", path, err)
	}
	out := filepath.Join(outDir, voicefile.Stem(path)+".wav")
	if err := wavfile.Create(out, a, v.SampleRate, format); err != nil {
		return rendered{}, fmt.Errorf("write %s: %w", out, err)
	}

	logger.Info("rendered",
		slog.String("voice", path),
		slog.String("wav", out),
		slog.Int("samples", len(a)),
		slog.Float64("peak", a.Peak()),
		slog.Duration("took", time.Since(start)))
	if peak := a.Peak(); peak > 1 && format == wavfile.PCM16 {
		logger.Warn("samples clipped", slog.String("wav", out), slog.Float64("peak", peak))
	}
	return rendered{in: path, out: out, sampleRate: v.SampleRate, audio: a}, nil
}
