package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	logLevel    string
	showMetrics bool
)

// cfg layers POOLCTL_* environment variables under the global flags.
var cfg = viper.New()

var printer = message.NewPrinter(language.English)

var rootCmd = &cobra.Command{
	Use:   "poolctl",
	Short: "Run and inspect fixed-capacity slot pool scenarios",
	Long: `poolctl drives a fixed-capacity slot pool through scripted allocate and
release sequences, checking every step against the pool's free-list invariants
and printing the slot chosen, the counters, and optional Prometheus metrics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	pf.BoolVar(&jsonOut, "json", false, "Output in JSON format")
	pf.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.BoolVar(&showMetrics, "metrics", false, "Print Prometheus metrics after a run")

	cfg.SetEnvPrefix("POOLCTL")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	if err := cfg.BindPFlags(pf); err != nil {
		panic(err)
	}
}

// loadConfig resolves the global flags, letting POOLCTL_* variables fill in
// any flag not given on the command line.
func loadConfig() error {
	verbose = cfg.GetBool("verbose")
	quiet = cfg.GetBool("quiet")
	jsonOut = cfg.GetBool("json")
	logLevel = cfg.GetString("log-level")
	showMetrics = cfg.GetBool("metrics")

	if _, err := zapcore.ParseLevel(logLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		printer.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		printer.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
