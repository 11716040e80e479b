package sar

// Converter geometry. ClipLow is the output of the all-ones code.
const (
	Bits      = 4
	MaxCode   = 1<<Bits - 1
	FullScale = 1000
	LSBStep   = 30
	ClipLow   = FullScale - LSBStep*MaxCode
	ClipHigh  = FullScale
)

// Step records one bit decision of the search.
type Step struct {
	Bit         int  `json:"bit"`          // bit under test, 3 (MSB) .. 0 (LSB)
	Trial       int  `json:"trial"`        // kept bits with Bit set
	TrialOutput int  `json:"trial_output"` // Output(Trial)
	Kept        bool `json:"kept"`
}

// Result is the outcome of a single Resolve call.
type Result struct {
	Target   int    `json:"target"`   // as supplied, never clipped
	Clipped  int    `json:"clipped"`  // target bounded to [ClipLow, ClipHigh]
	Policy   Policy `json:"policy"`
	SARCode  int    `json:"sar_code"` // code after the bit phase
	Code     int    `json:"code"`     // code after neighbour refinement
	Output   int    `json:"output"`   // Output(Code)
	AbsError uint   `json:"abs_error"`

	// Steps are ordered MSB first.
	Steps [Bits]Step `json:"steps"`
}

// Trace returns the committed code after each step.
func (r Result) Trace() []int {
	trace := make([]int, 0, Bits)
	x := 0
	for _, st := range r.Steps {
		if st.Kept {
			x = st.Trial
		}
		trace = append(trace, x)
	}
	return trace
}
