package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSAR/pkg/sar"
)

// WriteText renders each result as a block headed by its target, followed by
// the bit trail in MSB-to-LSB order and a blank line.
func WriteText(w io.Writer, opts Options, results ...sar.Result) error {
	bw := bufio.NewWriter(w)
	for _, res := range results {
		fmt.Fprintf(bw, "Target = %d\n", res.Target)
		if opts.Verbose {
			fmt.Fprintf(bw, "  policy = %s (y_trial %s t), clipped t = %d, SAR x = %d\n",
				res.Policy, res.Policy.Operator(), res.Clipped, res.SARCode)
		}
		fmt.Fprintf(bw, "  -> Best x = %2d  (binary %s), y = %d, |y-target| = %d\n",
			res.Code, sar.FormatCode(res.Code), res.Output, res.AbsError)
		fmt.Fprintf(bw, "  SAR steps (bit, trial_x, trial_y, keep?):\n")
		for _, st := range res.Steps {
			fmt.Fprintf(bw, "    bit%d: trial_x = %2d (b%s), y_trial = %3d, keep = %s\n",
				st.Bit, st.Trial, sar.FormatCode(st.Trial), st.TrialOutput, pyBool(st.Kept))
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// WriteComparison renders a table of strict and inclusive results side by
// side. Rows whose bit trails differ are marked with '*'.
func WriteComparison(w io.Writer, comparisons ...sar.Comparison) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "  %8s  %-34s  %-34s  %s\n", "target", "strict (>)", "inclusive (>=)", "tie bits")
	fmt.Fprintf(bw, "  %s\n", strings.Repeat("─", 92))
	for _, c := range comparisons {
		mark := " "
		if c.Diverges() {
			mark = "*"
		}
		fmt.Fprintf(bw, "%s %8d  %-34s  %-34s  %s\n",
			mark, c.Target, cell(c.Strict), cell(c.Inclusive), tieBits(c.TieBits()))
	}
	return bw.Flush()
}

func cell(r sar.Result) string {
	return fmt.Sprintf("sar=%2d x=%2d (b%s) y=%4d e=%d",
		r.SARCode, r.Code, sar.FormatCode(r.Code), r.Output, r.AbsError)
}

func tieBits(bits []int) string {
	if len(bits) == 0 {
		return "-"
	}
	names := make([]string, len(bits))
	for i, b := range bits {
		names[i] = fmt.Sprintf("bit%d", b)
	}
	return strings.Join(names, ",")
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
