package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/slotpool/scenario"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

type scriptInfo struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Steps    int    `json:"steps"`
}

func runList() error {
	var infos []scriptInfo
	for _, name := range scenario.Builtins() {
		s, err := scenario.Builtin(name)
		if err != nil {
			return err
		}
		infos = append(infos, scriptInfo{Name: name, Capacity: s.Capacity, Steps: len(s.Steps)})
	}

	if jsonOut {
		return printJSON(infos)
	}
	for _, in := range infos {
		printInfo("%-10s capacity %-4d %d steps\n", in.Name, in.Capacity, in.Steps)
	}
	return nil
}
