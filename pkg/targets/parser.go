// Package targets parses the target lists accepted on the command line.
package targets

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// MaxTargets bounds how many targets a single list may expand to.
const MaxTargets = 4096

var (
	ErrEmpty   = errors.New("targets: no targets given")
	ErrBadStep = errors.New("targets: range step must be positive")
	ErrTooMany = errors.New("targets: list expands to too many targets")
)

// Parser turns target list text into integers.
type Parser struct {
	parser *participle.Parser[List]
}

// NewParser creates a new target list parser.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[List](
		participle.Lexer(TargetLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// ParseList parses target list text into its syntax tree.
func (p *Parser) ParseList(input string) (*List, error) {
	list, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return list, nil
}

// Parse parses and expands target list text, preserving the written order.
func (p *Parser) Parse(input string) ([]int, error) {
	list, err := p.ParseList(input)
	if err != nil {
		return nil, err
	}
	return list.Expand()
}

// ParseArgs parses command line arguments as one comma separated list.
func (p *Parser) ParseArgs(args []string) ([]int, error) {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if arg = strings.TrimSpace(arg); arg != "" {
			parts = append(parts, arg)
		}
	}
	return p.Parse(strings.Join(parts, ","))
}

// Expand returns every target named by the list.
func (l *List) Expand() ([]int, error) {
	var out []int
	for _, item := range l.Items {
		values, err := item.expand(MaxTargets - len(out))
		if err != nil {
			return nil, err
		}
		out = append(out, values...)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

func (it *Item) expand(budget int) ([]int, error) {
	from, err := parseInt(it.From)
	if err != nil {
		return nil, err
	}
	if it.Range == nil {
		if budget < 1 {
			return nil, fmt.Errorf("%w (max %d)", ErrTooMany, MaxTargets)
		}
		return []int{from}, nil
	}

	to, err := parseInt(it.Range.To)
	if err != nil {
		return nil, err
	}
	step := 1
	if it.Range.Step != nil {
		if step, err = parseInt(*it.Range.Step); err != nil {
			return nil, err
		}
		if step <= 0 {
			return nil, fmt.Errorf("%w: %s..%s:%d", ErrBadStep, it.From, it.Range.To, step)
		}
	}

	span := uint(to) - uint(from)
	if from > to {
		span = uint(from) - uint(to)
	}
	// span/step+1 wraps for a full-width range, so compare before adding.
	if span/uint(step) >= uint(budget) {
		return nil, fmt.Errorf("%w (max %d)", ErrTooMany, MaxTargets)
	}
	count := span/uint(step) + 1

	values := make([]int, 0, count)
	v := from
	for i := uint(0); i < count; i++ {
		values = append(values, v)
		if from <= to {
			v += step
		} else {
			v -= step
		}
	}
	return values, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid target %q: %w", s, err)
	}
	return v, nil
}
