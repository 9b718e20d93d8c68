package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "0.1.0"

var (
	verbose bool
	logger  = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sinewav",
	Short: "Render additive sine voices to WAV files",
	Long: `sinewav renders a voice described in JSON - a fundamental frequency,
a set of detuned sine partials and an ADSR envelope - to audio.

Voice file:
  {
    "sampleRate": 44100, "sampleLength": 1.0, "frequency": 440,
    "sineWaves": [{"id": "a", "mute": false, "level": 100, "ratio": 1,
                   "coarse": 0, "fine": 0, "frequencyOffset": 0}],
    "adsr": {"attack": 0.01, "decay": 0.01, "sustain": 0.8, "release": 0.1}
  }`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug detail")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), verbose)
	}

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(dumpCmd)
}

// newLogger logs text to a terminal and JSON to anything else.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
