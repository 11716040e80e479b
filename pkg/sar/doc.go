// Package sar implements a successive approximation register (SAR) search
// over a fixed 4-bit code whose output falls linearly with the code.
//
// # Overview
//
// The converter modelled here maps a code x in [0,15] to an output
//
//	y(x) = 1000 - 30*x
//
// so y spans [550, 1000] and is strictly decreasing in x. Resolve finds the
// code whose output best approximates a target:
//
//  1. The target is clipped into [550, 1000].
//  2. Bits are tried from bit3 (MSB) down to bit0. Each trial sets the bit on
//     top of the bits already kept and keeps it when the trial output passes
//     the Policy test against the clipped target.
//  3. The code left after the bit phase and its upper neighbour (when still
//     inside the 4-bit range) are scored against the unclipped target; the
//     first minimum wins.
//
// # Usage
//
//	res := sar.Resolve(630, sar.StrictGreater)
//	fmt.Printf("x=%d (b%s) y=%d err=%d\n",
//		res.Code, sar.FormatCode(res.Code), res.Output, res.AbsError)
//	for _, st := range res.Steps {
//		fmt.Printf("bit%d trial=%d y=%d keep=%v\n",
//			st.Bit, st.Trial, st.TrialOutput, st.Kept)
//	}
//
// # Bit-keep policies
//
// StrictGreater keeps a bit when the trial output is strictly above the
// clipped target; GreaterOrEqual also keeps it on equality. The two only
// disagree when a trial output lands exactly on the clipped target, which
// happens when the target is a multiple of the 30-unit step away from full
// scale. Compare runs both and reports where their trails split.
//
// # Limitations
//
//   - Bit width and transfer function are fixed.
//   - The absolute error is measured against the unclipped target, so targets
//     outside [550, 1000] report the distance to the nearest end of the range.
package sar
