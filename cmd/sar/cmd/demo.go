package cmd

import (
	"github.com/spf13/cobra"
)

// demoTargets are the targets resolved by the demo command.
var demoTargets = []int{630, 780}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Resolve the demonstration targets 630 and 780",
	Long: `Resolve the demonstration targets 630 and 780 and print the full report,
including the bit trail for each.

Examples:
  sar demo
  sar demo --policy inclusive`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().VarP(&outputFormat, "format", "f",
		"output format (text, json, sexp)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	logf(cmd, "Running demo with policy %s", policy)
	return writeResults(cmd, demoTargets)
}
