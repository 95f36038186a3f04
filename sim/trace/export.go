package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/xid"
	"gopkg.in/yaml.v3"
)

// TraceHeader captures run metadata written alongside the CSV step data.
type TraceHeader struct {
	Version   int    `yaml:"trace_version"`
	RunID     string `yaml:"run_id"`
	CreatedAt string `yaml:"created_at,omitempty"`
	Policy    string `yaml:"policy"`
	Seed      *int64 `yaml:"seed,omitempty"` // nil when the reference was given explicitly
	Frames    int    `yaml:"frames"`
	Length    int    `yaml:"length"`
	Alphabet  string `yaml:"alphabet,omitempty"`
	Reference string `yaml:"reference"`
	Hits      int    `yaml:"hits"`
	Misses    int    `yaml:"misses"`
	Final     string `yaml:"final"`
}

// NewTraceHeader returns a header stamped with a fresh run ID and the current time.
func NewTraceHeader() *TraceHeader {
	return &TraceHeader{
		Version:   1,
		RunID:     xid.New().String(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Policy:    "optimal",
	}
}

// CSV column headers for the step data file.
var traceColumns = []string{"step", "page", "miss", "frames", "victim", "evicted"}

// FrameSeparator joins frame slots inside the CSV "frames" column.
const FrameSeparator = " "

// WriteCSV writes the column header followed by one row per step.
func WriteCSV(w io.Writer, pt *PageTrace) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(traceColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	if pt != nil {
		for _, s := range pt.Steps {
			row := []string{
				strconv.Itoa(s.Index),
				s.Page,
				strconv.FormatBool(s.Miss),
				strings.Join(s.Frames, FrameSeparator),
				strconv.Itoa(s.Victim),
				s.Evicted,
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("writing CSV row %d: %w", s.Index, err)
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// ExportTrace writes the trace header (YAML) and step data (CSV) to separate files.
func ExportTrace(header *TraceHeader, pt *PageTrace, headerPath, dataPath string) error {
	headerData, err := yaml.Marshal(header)
	if err != nil {
		return fmt.Errorf("marshaling trace header: %w", err)
	}
	if err := os.WriteFile(headerPath, headerData, 0644); err != nil {
		return fmt.Errorf("writing trace header: %w", err)
	}

	file, err := os.Create(dataPath)
	if err != nil {
		return fmt.Errorf("creating trace data file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return WriteCSV(file, pt)
}

// LoadTraceHeader reads a header previously written by ExportTrace.
func LoadTraceHeader(path string) (*TraceHeader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trace header: %w", err)
	}
	var header TraceHeader
	if err := yaml.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("parsing trace header: %w", err)
	}
	return &header, nil
}
