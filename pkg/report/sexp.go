package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/OpenTraceLab/OpenTraceSAR/pkg/sar"
)

// WriteSexp writes results as a single s-expression:
//
//	(sar
//	  (result (target 630) (clipped 630) (policy strict) ...
//	    (steps (step (bit 3) (trial 8) (output 760) (kept true)) ...)))
func WriteSexp(w io.Writer, results ...sar.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "(sar")
	for _, res := range results {
		fmt.Fprintf(bw, "\n  (result (target %d) (clipped %d) (policy %s)", res.Target, res.Clipped, res.Policy)
		fmt.Fprintf(bw, " (sar-code %d) (code %d) (binary b%s) (output %d) (abs-error %d)",
			res.SARCode, res.Code, sar.FormatCode(res.Code), res.Output, res.AbsError)
		fmt.Fprint(bw, "\n    (steps")
		for _, st := range res.Steps {
			fmt.Fprintf(bw, "\n      (step (bit %d) (trial %d) (output %d) (kept %t))",
				st.Bit, st.Trial, st.TrialOutput, st.Kept)
		}
		fmt.Fprint(bw, "))")
	}
	fmt.Fprintln(bw, ")")
	return bw.Flush()
}
