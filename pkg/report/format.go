// Package report renders SAR results for people and tools.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSAR/pkg/sar"
)

// ErrUnknownFormat is returned for an unrecognised output format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects an output encoding.
type Format uint8

const (
	FormatText Format = iota
	FormatJSON
	FormatSexp
)

var formatNames = map[Format]string{
	FormatText: "text",
	FormatJSON: "json",
	FormatSexp: "sexp",
}

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == want {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want text, json or sexp)", ErrUnknownFormat, name)
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", f)
}

// Set implements pflag.Value.
func (f *Format) Set(name string) error {
	parsed, err := ParseFormat(name)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// Options tweak the rendered output.
type Options struct {
	// Verbose adds the policy and clipped target to text reports.
	Verbose bool
}

// Write renders results in the requested format.
func Write(w io.Writer, format Format, opts Options, results ...sar.Result) error {
	switch format {
	case FormatText:
		return WriteText(w, opts, results...)
	case FormatJSON:
		return WriteJSON(w, results...)
	case FormatSexp:
		return WriteSexp(w, results...)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}
