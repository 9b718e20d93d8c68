package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gordonklaus/additive"
	"github.com/gordonklaus/additive/voicefile"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <voice.json>",
	Short: "Print a parsed voice file and its partial frequencies",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	v, err := voicefile.Load(args[0])
	if err != nil {
		return err
	}
	return dump(cmd.OutOrStdout(), v)
}

func dump(w io.Writer, v *additive.Voice) error {
	s, err := additive.NewSynth(v)
	if err != nil {
		return err
	}
	a := v.ADSR
	fmt.Fprintf(w, "%d Hz, %gs (%d samples), fundamental %g Hz\n", v.SampleRate, v.SampleLength, s.Len(), v.Frequency)
	fmt.Fprintf(w, "adsr: attack %gs, decay %gs, sustain %g, release %gs\n\n", a.Attack, a.Decay, a.Sustain, a.Release)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "id\tmute\tlevel\tratio\tcoarse\tfine\toffset\tfreq (Hz)\t")
	freqs := s.Frequencies()
	for i, p := range v.Partials {
		fmt.Fprintf(tw, "%s\t%v\t%d\t%d\t%d\t%d\t%d\t%.3f\t\n", p.ID, p.Mute, p.Level, p.Ratio, p.Coarse, p.Fine, p.FrequencyOffset, freqs[i])
	}
	return tw.Flush()
}
