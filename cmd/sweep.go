package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/page-sim/sim"
	"github.com/inference-sim/page-sim/sim/workload"
)

var (
	sweepMinFrames int // Smallest frame count in the sweep
	sweepMaxFrames int // Largest frame count in the sweep
	sweepTrials    int // Reference strings per frame count
)

// sweepRow aggregates one frame count across all trials.
type sweepRow struct {
	Frames      int
	Hits        int
	Misses      int
	MissPercent float64
}

// sweepCmd runs the same reference strings across a range of frame counts
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare hit/miss counts across a range of frame counts",
	Run: func(cmd *cobra.Command, args []string) {
		spec, _, err := params.resolve(cmd.Flags().Changed)
		if err != nil {
			logrus.Fatalf("Failed to resolve parameters: %v", err)
		}
		if sweepMinFrames <= 0 || sweepMaxFrames < sweepMinFrames {
			logrus.Fatalf("Invalid frame range [%d, %d]", sweepMinFrames, sweepMaxFrames)
		}

		seqs, err := workload.GenerateTrials(spec, sweepTrials)
		if err != nil {
			logrus.Fatalf("Failed to build reference strings: %v", err)
		}
		for frames := sweepMinFrames; frames <= sweepMaxFrames; frames++ {
			checkBounds(sim.RunRequest{Length: len(seqs[0]), Capacity: frames})
		}

		rows, err := runSweep(seqs, sweepMinFrames, sweepMaxFrames)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		if err := renderSweep(os.Stdout, rows); err != nil {
			logrus.Fatalf("Failed to write output: %v", err)
		}
	},
}

// runSweep simulates every sequence at every frame count in [minFrames, maxFrames].
func runSweep(seqs []sim.Sequence, minFrames, maxFrames int) ([]sweepRow, error) {
	var rows []sweepRow
	for frames := minFrames; frames <= maxFrames; frames++ {
		row := sweepRow{Frames: frames}
		total := 0
		for _, seq := range seqs {
			result, err := sim.Run(seq, frames)
			if err != nil {
				return nil, fmt.Errorf("frames=%d: %w", frames, err)
			}
			row.Hits += result.Hits
			row.Misses += result.Misses
			total += len(seq)
		}
		if total > 0 {
			row.MissPercent = float64(row.Misses) / float64(total) * 100
		}
		logrus.Debugf("frames=%d hits=%d misses=%d", frames, row.Hits, row.Misses)
		rows = append(rows, row)
	}
	return rows, nil
}

func renderSweep(w io.Writer, rows []sweepRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "Frames\tHits\tMisses\tMiss %")
	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%d\t%d\t%d\t%.2f%%\n", r.Frames, r.Hits, r.Misses, r.MissPercent)
	}
	return tw.Flush()
}

func init() {
	addSharedFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepMinFrames, "min-frames", sim.MinRecommendedFrames, "Smallest frame count")
	sweepCmd.Flags().IntVar(&sweepMaxFrames, "max-frames", sim.MaxRecommendedFrames, "Largest frame count")
	sweepCmd.Flags().IntVar(&sweepTrials, "trials", 1, "Number of reference strings per frame count")

	rootCmd.AddCommand(sweepCmd)
}
