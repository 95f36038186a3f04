package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/page-sim/sim"
	"github.com/inference-sim/page-sim/sim/trace"
	"github.com/inference-sim/page-sim/sim/workload"
)

var (
	// CLI flags shared by run and sweep
	params   runParams // reference string, preset and frame settings
	logLevel string    // Log verbosity level
	strict   bool      // Fail instead of warn when parameters are outside recommended bounds

	// CLI flags for run output
	outputFormat    string // table, csv or yaml
	traceHeaderPath string // Optional YAML header export path
	traceOutputPath string // Optional CSV step export path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "page-sim",
	Short: "Step-by-step simulator for OPTimal (Belady) page replacement",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the optimal replacement simulation and print the trace",
	Run: func(cmd *cobra.Command, args []string) {
		spec, frames, err := params.resolve(cmd.Flags().Changed)
		if err != nil {
			logrus.Fatalf("Failed to resolve parameters: %v", err)
		}
		if !validFormats[outputFormat] {
			logrus.Fatalf("Unknown output format %q; valid: table, csv, yaml", outputFormat)
		}

		seq, err := spec.Generate()
		if err != nil {
			logrus.Fatalf("Failed to build reference string: %v", err)
		}
		checkBounds(sim.RunRequest{Length: len(seq), Capacity: frames})

		logrus.Infof("Starting simulation with %d frames over %d references (seed=%d)", frames, len(seq), spec.Seed)
		startTime := time.Now()

		result, err := sim.Run(seq, frames)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logEvictions(result.Trace)

		header := newHeader(spec, result)
		if err := render(os.Stdout, outputFormat, header, result); err != nil {
			logrus.Fatalf("Failed to write output: %v", err)
		}

		if traceHeaderPath != "" || traceOutputPath != "" {
			if traceHeaderPath == "" || traceOutputPath == "" {
				logrus.Fatalf("--trace-header and --trace-output must be given together")
			}
			if err := trace.ExportTrace(header, result.Trace, traceHeaderPath, traceOutputPath); err != nil {
				logrus.Fatalf("Failed to export trace: %v", err)
			}
			logrus.Infof("Trace %s written to %s and %s", header.RunID, traceHeaderPath, traceOutputPath)
		}

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// checkBounds warns, or exits under --strict, when a run is outside the recommended range.
func checkBounds(req sim.RunRequest) {
	if err := req.CheckRecommended(); err != nil {
		if strict {
			logrus.Fatalf("%v (--strict)", err)
		}
		logrus.Warnf("%v", err)
	}
}

// logEvictions emits one debug line per replacement decision.
func logEvictions(pt *trace.PageTrace) {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	for _, s := range pt.Steps {
		if s.Evicting() {
			logrus.Debugf("step %d: page %s replaces %s in frame %d", s.Index, s.Page, s.Evicted, s.Victim)
		}
	}
}

// newHeader fills a trace header from the resolved spec and the finished run.
func newHeader(spec *workload.ReferenceSpec, result *sim.Result) *trace.TraceHeader {
	header := trace.NewTraceHeader()
	header.Frames = result.Capacity
	header.Length = len(result.Sequence)
	if spec.Reference == "" {
		seed := spec.Seed
		header.Seed = &seed
		header.Alphabet = spec.Alphabet
		if header.Alphabet == "" {
			header.Alphabet = sim.DefaultAlphabet().String()
		}
	}
	header.Reference = result.Sequence.String()
	header.Hits = result.Hits
	header.Misses = result.Misses
	header.Final = result.FinalString()
	return header
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addSharedFlags registers the reference string flags common to run and sweep.
func addSharedFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&params.length, "length", sim.MinRecommendedLength, "Length of the generated reference string")
	cmd.Flags().Int64Var(&params.seed, "seed", 42, "Seed for reference string generation")
	cmd.Flags().StringVar(&params.alphabet, "alphabet", "", "Symbols pages are drawn from, one per character (default 0-9)")
	cmd.Flags().StringVar(&params.sequence, "sequence", "", "Explicit reference string; overrides --length, --seed and --alphabet")
	cmd.Flags().StringVar(&params.preset, "preset", "", "Named preset from the defaults file")
	cmd.Flags().StringVar(&params.defaultsPath, "defaults", "defaults.yaml", "Path to the defaults YAML file")
	cmd.Flags().StringVar(&params.specPath, "workload-spec", "", "Path to a reference spec YAML file")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when frames or length fall outside the recommended range")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addSharedFlags(runCmd)
	runCmd.Flags().IntVar(&params.frames, "frames", sim.MinRecommendedFrames, "Number of page frames")
	runCmd.Flags().StringVar(&outputFormat, "format", "table", "Output format: table, csv or yaml")
	runCmd.Flags().StringVar(&traceHeaderPath, "trace-header", "", "Write the trace header (YAML) to this path")
	runCmd.Flags().StringVar(&traceOutputPath, "trace-output", "", "Write the per-step trace (CSV) to this path")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
