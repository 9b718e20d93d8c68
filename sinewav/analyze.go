package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/gordonklaus/additive"
	"github.com/gordonklaus/additive/voicefile"
)

var (
	fftSize  int
	numPeaks int
	window   float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <voice.json>",
	Short: "Render a voice file and report its level and spectrum",
	Long: `Render a voice without writing it and print its length, peak and RMS level,
the loudest RMS window and the strongest spectral peaks.

Example:
  sinewav analyze --peaks 8 organ.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&fftSize, "fft-size", 8192, "FFT frame size (power of two)")
	analyzeCmd.Flags().IntVar(&numPeaks, "peaks", 5, "Number of spectral peaks to list")
	analyzeCmd.Flags().Float64Var(&window, "window", .05, "RMS window in seconds")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	v, err := voicefile.Load(args[0])
	if err != nil {
		return err
	}
	return analyze(cmd.OutOrStdout(), v, fftSize, numPeaks, window)
}

func analyze(w io.Writer, v *additive.Voice, fftSize, numPeaks int, window float64) error {
	spectrum, err := additive.NewSpectrum(fftSize)
	if err != nil {
		return err
	}
	s, err := additive.NewSynth(v)
	if err != nil {
		return err
	}
	a := s.Render()

	meter := additive.NewAmpMeter(window)
	additive.Init(meter, v.Params())
	loudest, at := meter.Loudest(a)
	stage, _ := s.Envelope().Stage(at)
	seconds := func(n int) time.Duration {
		return time.Duration(float64(n) / float64(v.SampleRate) * float64(time.Second))
	}

	fmt.Fprintf(w, "samples   %d (%v at %d Hz)\n", len(a), seconds(len(a)), v.SampleRate)
	fmt.Fprintf(w, "peak      %.4f\n", a.Peak())
	fmt.Fprintf(w, "rms       %.4f\n", a.RMS())
	fmt.Fprintf(w, "loudest   %.4f rms at %v (%s)\n", loudest, seconds(at), stage)
	for i, p := range spectrum.Peaks(a, float64(v.SampleRate), numPeaks) {
		fmt.Fprintf(w, "peak %-4d %9.2f Hz  %.1f\n", i+1, p.Freq, p.Magnitude)
	}
	return nil
}
