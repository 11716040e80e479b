package sar

import "fmt"

// Output returns the converter output for a code.
func Output(code int) int {
	return FullScale - LSBStep*code
}

// Clamp bounds a target to the reachable output range.
func Clamp(target int) int {
	return max(ClipLow, min(ClipHigh, target))
}

// FormatCode renders a code as a zero-padded binary string of Bits digits.
func FormatCode(code int) string {
	return fmt.Sprintf("%0*b", Bits, code)
}

// Resolve searches for the code whose output best approximates target.
//
// The bit phase runs against the clipped target; the final choice between the
// resulting code and its upper neighbour is scored against target itself, and
// the lower code wins a tie. Resolve holds no state and is safe for
// concurrent use.
func Resolve(target int, policy Policy) Result {
	res := Result{
		Target:  target,
		Clipped: Clamp(target),
		Policy:  policy,
	}

	x := 0
	for i := range res.Steps {
		bit := Bits - 1 - i
		trial := x | 1<<bit
		y := Output(trial)
		keep := policy.Keep(y, res.Clipped)
		if keep {
			x = trial
		}
		res.Steps[i] = Step{Bit: bit, Trial: trial, TrialOutput: y, Kept: keep}
	}
	res.SARCode = x

	candidates := []int{x}
	if x < MaxCode {
		candidates = append(candidates, x+1)
	}

	best := candidates[0]
	bestErr := absDiff(Output(best), target)
	for _, c := range candidates[1:] {
		if e := absDiff(Output(c), target); e < bestErr {
			best, bestErr = c, e
		}
	}

	res.Code = best
	res.Output = Output(best)
	res.AbsError = bestErr
	return res
}

// absDiff returns |a-b| without overflowing for any pair of ints.
func absDiff(a, b int) uint {
	if a >= b {
		return uint(a) - uint(b)
	}
	return uint(b) - uint(a)
}
