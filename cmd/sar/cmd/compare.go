package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSAR/pkg/report"
	"github.com/OpenTraceLab/OpenTraceSAR/pkg/sar"
	"github.com/OpenTraceLab/OpenTraceSAR/pkg/targets"
)

var divergingOnly bool

var compareCmd = &cobra.Command{
	Use:   "compare [TARGETS...]",
	Short: "Compare the strict and inclusive bit-keep rules",
	Long: `Resolve each target under both the strict (>) and inclusive (>=) keep rules
and print them side by side. Rows where the bit decisions differ are marked
with '*'; this only happens when a trial output equals the clipped target.

With no targets, compares 630, 780 and 790.

Examples:
  sar compare
  sar compare 550..1000 --diverging-only`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().BoolVar(&divergingOnly, "diverging-only", false,
		"only show targets where the bit decisions differ")
}

func runCompare(cmd *cobra.Command, args []string) error {
	list := append(append([]int{}, demoTargets...), 790)
	if len(args) > 0 {
		parser, err := targets.NewParser()
		if err != nil {
			return err
		}
		if list, err = parser.ParseArgs(args); err != nil {
			return fmt.Errorf("invalid targets: %w", err)
		}
	}

	rows := make([]sar.Comparison, 0, len(list))
	diverging, codesDiffer := 0, 0
	for _, target := range list {
		c := sar.Compare(target)
		if c.Diverges() {
			diverging++
		}
		if c.CodesDiffer() {
			codesDiffer++
		}
		if divergingOnly && !c.Diverges() {
			continue
		}
		rows = append(rows, c)
	}

	if err := report.WriteComparison(cmd.OutOrStdout(), rows...); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d target(s) with differing bit decisions, %d with differing codes\n",
		diverging, len(list), codesDiffer)
	return nil
}
