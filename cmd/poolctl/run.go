package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/joshuapare/slotpool/pool"
	"github.com/joshuapare/slotpool/poolmetrics"
	"github.com/joshuapare/slotpool/scenario"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Run a scenario script",
		Long: `The run command executes a YAML scenario script against a fresh pool
and prints the slot handed out or released at every step.

Example:
  poolctl run churn.yaml
  poolctl run churn.yaml --json
  POOLCTL_METRICS=1 poolctl run churn.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
}

func runRun(args []string) error {
	s, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	return runScript(s)
}

// runResult is the JSON form of a run.
type runResult struct {
	Trace   *scenario.Trace `json:"trace"`
	Error   string          `json:"error,omitempty"`
	Metrics []pool.Stats    `json:"metrics,omitempty"`
}

func runScript(s *scenario.Script) error {
	log, err := newLogger(logLevel, verbose, jsonOut)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	printVerbose("Running %s: capacity %d, %d steps\n", s.Name, s.Capacity, len(s.Steps))

	r := scenario.Runner{Log: log}
	if showMetrics {
		r.Metrics = poolmetrics.New()
	}
	trace, runErr := r.Run(s)

	if jsonOut {
		res := runResult{Trace: trace}
		if runErr != nil {
			res.Error = runErr.Error()
		}
		if r.Metrics != nil {
			res.Metrics = r.Metrics.Snapshot()
		}
		if err := printJSON(res); err != nil {
			return err
		}
		return runErr
	}

	if trace != nil {
		printTrace(trace)
	}
	if runErr != nil {
		return runErr
	}
	if r.Metrics != nil && !quiet {
		printInfo("\n")
		return writeMetrics(os.Stdout, r.Metrics)
	}
	return nil
}

func printTrace(trace *scenario.Trace) {
	printInfo("Script: %s (capacity %d)\n\n", trace.Script, trace.Final.Capacity)
	printInfo("%-5s %-8s %-10s %14s %5s %5s\n", "STEP", "OP", "SLOT", "VALUE", "FREE", "HEAD")
	for _, ev := range trace.Events {
		slot := fmt.Sprint(ev.Slot)
		if ev.Exhausted {
			slot = "exhausted"
		}
		printInfo("%-5d %-8s %-10s %14d %5d %5d\n",
			ev.Step, ev.Op, slot, ev.Value, ev.Stats.Free, ev.Stats.Head)
	}

	f := trace.Final
	printInfo("\nSummary:\n")
	printInfo("  Allocations: %d\n", f.Allocs)
	printInfo("  Releases:    %d\n", f.Releases)
	printInfo("  Exhausted:   %d\n", f.Exhausted)
	printInfo("  In use:      %d / %d\n", f.InUse, f.Capacity)
	printVerbose("  Free list:   %v\n", trace.FreeList)
}

// writeMetrics renders the collector in the Prometheus text format.
func writeMetrics(w io.Writer, c *poolmetrics.Collector) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return err
	}
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
