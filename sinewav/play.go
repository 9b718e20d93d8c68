package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gordonklaus/additive"
	"github.com/gordonklaus/additive/voicefile"
)

var playCmd = &cobra.Command{
	Use:   "play <voice.json>",
	Short: "Render a voice file and play it",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v, err := voicefile.Load(args[0])
	if err != nil {
		return err
	}
	a, err := additive.Render(v)
	if err != nil {
		return err
	}
	logger.Info("playing", slog.String("voice", args[0]), slog.Int("samples", len(a)))
	return play(ctx, a, v.SampleRate)
}

// play blocks until a has finished playing or ctx is done.
func play(ctx context.Context, a additive.Audio, sampleRate int) error {
	c, err := additive.PlayAsync(a, sampleRate)
	if err != nil {
		return err
	}
	select {
	case <-c.Done:
		return c.Err()
	case <-ctx.Done():
		c.Stop()
		return errors.Join(ctx.Err(), c.Err())
	}
}
