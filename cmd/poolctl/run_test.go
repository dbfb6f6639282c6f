package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slotpool/scenario"
)

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name           string
		script         string
		json           bool
		metrics        bool
		verbose        bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:           "text output",
			script:         "ok.yaml",
			wantContain:    []string{"Script: ok (capacity 2)", "1,500", "Allocations: 3", "Releases:    1", "In use:      2 / 2"},
			wantNotContain: []string{"Free list", "slotpool_"},
		},
		{
			name:        "verbose output",
			script:      "ok.yaml",
			verbose:     true,
			wantContain: []string{"Running ok: capacity 2, 4 steps", "Free list:   []"},
		},
		{
			name:        "metrics output",
			script:      "ok.yaml",
			metrics:     true,
			wantContain: []string{`slotpool_allocs_total{pool="ok"} 3`, `slotpool_in_use{pool="ok"} 2`},
		},
		{
			name:           "json output",
			script:         "ok.yaml",
			json:           true,
			wantContain:    []string{`"script": "ok"`, `"allocs": 3`},
			wantNotContain: []string{`"error"`, `"metrics"`},
		},
		{
			name:        "failed expectation",
			script:      "mismatch.yaml",
			wantErr:     true,
			wantContain: []string{"Script: mismatch"},
		},
		{
			name:        "failed expectation as json",
			script:      "mismatch.yaml",
			json:        true,
			wantErr:     true,
			wantContain: []string{"expected slot 0, got 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			t.Cleanup(resetFlags)
			jsonOut = tt.json
			showMetrics = tt.metrics
			verbose = tt.verbose

			args := []string{testScriptPath(t, tt.script)}
			output, err := captureOutput(t, func() error {
				return runRun(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runRun() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestRunCommand_JSONMetrics(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)
	jsonOut = true
	showMetrics = true

	output, err := captureOutput(t, func() error {
		return runRun([]string{testScriptPath(t, "ok.yaml")})
	})
	require.NoError(t, err)

	var res struct {
		Trace   scenario.Trace `json:"trace"`
		Metrics []struct {
			Name   string `json:"name"`
			Allocs uint64 `json:"allocs"`
		} `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &res))
	assert.Len(t, res.Trace.Events, 4)
	require.Len(t, res.Metrics, 1)
	assert.Equal(t, "ok", res.Metrics[0].Name)
	assert.Equal(t, uint64(3), res.Metrics[0].Allocs)
}

func TestRunCommand_MissingFile(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	_, err := captureOutput(t, func() error {
		return runRun([]string{"testdata/does-not-exist.yaml"})
	})
	require.Error(t, err)
}

func TestRunCommand_Quiet(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)
	quiet = true
	showMetrics = true

	output, err := captureOutput(t, func() error {
		return runRun([]string{testScriptPath(t, "ok.yaml")})
	})
	require.NoError(t, err)
	assert.Empty(t, output)
}
