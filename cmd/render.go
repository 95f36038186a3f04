package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/page-sim/sim"
	"github.com/inference-sim/page-sim/sim/trace"
)

// validFormats is the set of recognized --format values.
var validFormats = map[string]bool{"table": true, "csv": true, "yaml": true}

// yamlReport is the document written by --format yaml.
type yamlReport struct {
	Header *trace.TraceHeader `yaml:"header"`
	Steps  []yamlStep         `yaml:"steps"`
}

type yamlStep struct {
	Step    int      `yaml:"step"`
	Page    string   `yaml:"page"`
	Miss    bool     `yaml:"miss"`
	Frames  []string `yaml:"frames,flow"`
	Evicted string   `yaml:"evicted,omitempty"`
}

// render writes the result in the requested format.
func render(w io.Writer, format string, header *trace.TraceHeader, result *sim.Result) error {
	switch format {
	case "table", "":
		return renderTable(w, result)
	case "csv":
		return trace.WriteCSV(w, result.Trace)
	case "yaml":
		return renderYAML(w, header, result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// renderTable prints one row per step followed by the metrics block.
func renderTable(w io.Writer, result *sim.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "Step\tPage\tMiss\tFrames")
	for _, s := range result.Trace.Steps {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%t\t%s\n", s.Index, s.Page, s.Miss, strings.Join(s.Frames, " "))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	_, _ = fmt.Fprintln(w)
	sim.NewMetrics(result).Print(w)
	return nil
}

func renderYAML(w io.Writer, header *trace.TraceHeader, result *sim.Result) error {
	report := yamlReport{Header: header, Steps: make([]yamlStep, 0, result.Trace.Len())}
	for _, s := range result.Trace.Steps {
		report.Steps = append(report.Steps, yamlStep{
			Step: s.Index, Page: s.Page, Miss: s.Miss, Frames: s.Frames, Evicted: s.Evicted,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding YAML report: %w", err)
	}
	return enc.Close()
}
