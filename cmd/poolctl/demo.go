package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/slotpool/scenario"
)

const defaultDemo = "lifo"

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [name]",
		Short: "Run a built-in scenario",
		Long: `The demo command runs one of the scenarios compiled into poolctl.
Without a name it runs the LIFO reuse scenario. Use "poolctl list" to see
the available names.

Example:
  poolctl demo
  poolctl demo capacity --metrics`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(args)
		},
	}
}

func runDemo(args []string) error {
	name := defaultDemo
	if len(args) == 1 {
		name = args[0]
	}
	s, err := scenario.Builtin(name)
	if err != nil {
		return err
	}
	return runScript(s)
}
