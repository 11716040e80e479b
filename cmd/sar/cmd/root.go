package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSAR/pkg/sar"
)

var (
	// Global flags
	verbose bool
	policy  sar.Policy
)

var rootCmd = &cobra.Command{
	Use:   "sar",
	Short: "Successive approximation search over a 4-bit converter code",
	Long: `Resolve the 4-bit code x whose output y = 1000 - 30x best matches a target,
testing bits from MSB to LSB and refining against the upper neighbour.

Targets are clipped to [550, 1000] for the bit decisions; the reported error is
measured against the target as given.

Examples:
  sar demo                                  # Resolve the demo targets 630 and 780
  sar resolve 630 780 --format json         # Resolve targets, JSON output
  sar resolve 550..1000:30 -p inclusive     # Sweep with the >= keep rule
  sar compare 760..820:10 --diverging-only  # Show where > and >= disagree`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().VarP(&policy, "policy", "p",
		"bit-keep rule: strict (>) or inclusive (>=)")
}

// logf writes a diagnostic line to the command's error stream when --verbose
// is set.
func logf(cmd *cobra.Command, format string, args ...any) {
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}
