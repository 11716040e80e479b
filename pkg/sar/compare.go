package sar

// Comparison holds the results of resolving one target under both policies.
type Comparison struct {
	Target    int
	Strict    Result
	Inclusive Result
}

// Compare resolves target under StrictGreater and GreaterOrEqual.
func Compare(target int) Comparison {
	return Comparison{
		Target:    target,
		Strict:    Resolve(target, StrictGreater),
		Inclusive: Resolve(target, GreaterOrEqual),
	}
}

// Diverges reports whether the two policies made different bit decisions.
func (c Comparison) Diverges() bool {
	for i := range c.Strict.Steps {
		if c.Strict.Steps[i].Kept != c.Inclusive.Steps[i].Kept {
			return true
		}
	}
	return false
}

// CodesDiffer reports whether the policies settled on different final codes.
func (c Comparison) CodesDiffer() bool {
	return c.Strict.Code != c.Inclusive.Code
}

// TieBits lists, MSB first, the bits at which either policy tried a code
// whose output equals the clipped target.
func (c Comparison) TieBits() []int {
	var bits []int
	for i := range c.Strict.Steps {
		s, inc := c.Strict.Steps[i], c.Inclusive.Steps[i]
		if s.TrialOutput == c.Strict.Clipped || inc.TrialOutput == c.Inclusive.Clipped {
			bits = append(bits, s.Bit)
		}
	}
	return bits
}
