package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSAR/pkg/report"
	"github.com/OpenTraceLab/OpenTraceSAR/pkg/sar"
	"github.com/OpenTraceLab/OpenTraceSAR/pkg/targets"
)

var outputFormat report.Format

var resolveCmd = &cobra.Command{
	Use:   "resolve TARGETS...",
	Short: "Resolve one or more targets",
	Long: `Resolve each target and report the selected code, its output, the absolute
error and the bit trail.

Targets are integers, separated by commas or spaces. A range lo..hi walks every
integer between the two ends; lo..hi:step walks in steps of step. Put -- before
a list that starts with a negative target.

Examples:
  # Single target
  sar resolve 630

  # Several targets, JSON output
  sar resolve 630,780 --format json

  # Every output level with the inclusive keep rule
  sar resolve 1000..550:30 --policy inclusive --format sexp

  # Negative targets
  sar resolve -- -40,2000`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().VarP(&outputFormat, "format", "f",
		"output format (text, json, sexp)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	parser, err := targets.NewParser()
	if err != nil {
		return err
	}
	list, err := parser.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("invalid targets: %w", err)
	}

	logf(cmd, "Resolving %d target(s) with policy %s", len(list), policy)
	return writeResults(cmd, list)
}

func writeResults(cmd *cobra.Command, list []int) error {
	results := make([]sar.Result, len(list))
	for i, target := range list {
		results[i] = sar.Resolve(target, policy)
		if results[i].Clipped != target {
			logf(cmd, "Target %d clipped to %d", target, results[i].Clipped)
		}
	}

	opts := report.Options{Verbose: verbose}
	if err := report.Write(cmd.OutOrStdout(), outputFormat, opts, results...); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
