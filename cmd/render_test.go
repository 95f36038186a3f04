package cmd

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/page-sim/sim"
	"github.com/inference-sim/page-sim/sim/workload"
)

func shortDigitsRun(t *testing.T) (*workload.ReferenceSpec, *sim.Result) {
	t.Helper()
	spec := &workload.ReferenceSpec{Version: "1", Reference: "070120304"}
	seq, err := spec.Generate()
	require.NoError(t, err)
	result, err := sim.Run(seq, 3)
	require.NoError(t, err)
	return spec, result
}

func TestRenderTable_RowsAndMetrics(t *testing.T) {
	spec, result := shortDigitsRun(t)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, "table", newHeader(spec, result), result))
	out := buf.String()
	lines := strings.Split(out, "\n")

	// THEN the header row is followed by one row per step
	assert.True(t, strings.HasPrefix(lines[0], "Step"))
	assert.Equal(t, []string{"0", "0", "true", "0", "-", "-"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "0", "false", "0", "7", "-"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"8", "4", "true", "4", "3", "1"}, strings.Fields(lines[9]))

	// THEN the metrics block follows
	assert.Contains(t, out, "Final Output     : 4 3 1")
	assert.Contains(t, out, "Miss Count       : 6")
	assert.Contains(t, out, "Hit Count        : 3")
	assert.Contains(t, out, "Miss Percentage  : 66.67%")
	assert.Contains(t, out, "Hit Percentage   : 33.33%")
	assert.Contains(t, out, "Peak Occupancy   : 3")
}

func TestRender_CSV(t *testing.T) {
	spec, result := shortDigitsRun(t)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, "csv", newHeader(spec, result), result))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 10)
	assert.Equal(t, []string{"4", "2", "true", "0 2 1", "1", "7"}, rows[5])
}

func TestRender_YAML(t *testing.T) {
	spec, result := shortDigitsRun(t)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, "yaml", newHeader(spec, result), result))

	var report yamlReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &report))
	require.NotNil(t, report.Header)
	assert.Equal(t, "070120304", report.Header.Reference)
	assert.Equal(t, 3, report.Header.Hits)
	assert.Equal(t, 6, report.Header.Misses)
	assert.Empty(t, report.Header.Alphabet, "explicit references carry no alphabet")
	assert.Nil(t, report.Header.Seed, "explicit references carry no seed")
	assert.NotContains(t, buf.String(), "seed:")
	require.Len(t, report.Steps, 9)
	assert.Equal(t, []string{"4", "3", "1"}, report.Steps[8].Frames)
	assert.Equal(t, "0", report.Steps[8].Evicted)
}

func TestRender_UnknownFormat(t *testing.T) {
	spec, result := shortDigitsRun(t)
	err := render(&bytes.Buffer{}, "xml", newHeader(spec, result), result)
	assert.Error(t, err)
	assert.False(t, validFormats["xml"])
}

func TestNewHeader_GeneratedReferenceRecordsAlphabet(t *testing.T) {
	spec := &workload.ReferenceSpec{Seed: 3, Length: 25}
	seq, err := spec.Generate()
	require.NoError(t, err)
	result, err := sim.Run(seq, 4)
	require.NoError(t, err)

	header := newHeader(spec, result)

	assert.Equal(t, "0123456789", header.Alphabet)
	require.NotNil(t, header.Seed)
	assert.Equal(t, int64(3), *header.Seed)
	assert.Equal(t, 4, header.Frames)
	assert.Equal(t, 25, header.Length)
	assert.Equal(t, result.Hits+result.Misses, header.Length)
	assert.NotEmpty(t, header.RunID)
}
