package sar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned when a policy name cannot be parsed.
var ErrUnknownPolicy = errors.New("sar: unknown bit-keep policy")

// Policy selects the comparison used to decide whether a trial bit is kept.
type Policy uint8

const (
	// StrictGreater keeps a bit when the trial output is above the target.
	StrictGreater Policy = iota
	// GreaterOrEqual keeps a bit when the trial output is at or above the target.
	GreaterOrEqual
)

var policyNames = map[Policy]string{
	StrictGreater:  "strict",
	GreaterOrEqual: "inclusive",
}

var policyAliases = map[string]Policy{
	"strict":           StrictGreater,
	"strict-greater":   StrictGreater,
	">":                StrictGreater,
	"inclusive":        GreaterOrEqual,
	"greater-or-equal": GreaterOrEqual,
	">=":               GreaterOrEqual,
}

// Policies returns every policy in declaration order.
func Policies() []Policy {
	return []Policy{StrictGreater, GreaterOrEqual}
}

// ParsePolicy maps a policy name or operator to a Policy.
func ParsePolicy(name string) (Policy, error) {
	p, ok := policyAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	return p, nil
}

// Keep reports whether a trial output passes the policy test against the
// clipped target. It panics on a Policy value outside the declared set.
func (p Policy) Keep(trialOutput, clipped int) bool {
	switch p {
	case StrictGreater:
		return trialOutput > clipped
	case GreaterOrEqual:
		return trialOutput >= clipped
	}
	panic(fmt.Sprintf("sar: unhandled policy %d", p))
}

// Operator returns the comparison symbol used by the policy, or "?" for a
// value outside the declared set.
func (p Policy) Operator() string {
	switch p {
	case StrictGreater:
		return ">"
	case GreaterOrEqual:
		return ">="
	}
	return "?"
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", p)
}

// Set implements pflag.Value.
func (p *Policy) Set(name string) error {
	parsed, err := ParsePolicy(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Type implements pflag.Value.
func (p *Policy) Type() string {
	return "policy"
}

func (p Policy) MarshalText() ([]byte, error) {
	if _, ok := policyNames[p]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, p)
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
