package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSAR/pkg/report"
	"github.com/OpenTraceLab/OpenTraceSAR/pkg/sar"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	// Reset flags to prevent accumulation between tests
	verbose = false
	policy = sar.StrictGreater
	outputFormat = report.FormatText
	divergingOnly = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// TestDemoE2E tests the demo command end-to-end
func TestDemoE2E(t *testing.T) {
	out, _, err := runCLI(t, "demo")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	wantInOrder := []string{
		"Target = 630",
		"-> Best x = 12  (binary 1100), y = 640, |y-target| = 10",
		"bit3: trial_x =  8 (b1000), y_trial = 760, keep = True",
		"bit2: trial_x = 12 (b1100), y_trial = 640, keep = True",
		"bit1: trial_x = 14 (b1110), y_trial = 580, keep = False",
		"bit0: trial_x = 13 (b1101), y_trial = 610, keep = False",
		"Target = 780",
		"-> Best x =  7  (binary 0111), y = 790, |y-target| = 10",
		"bit3: trial_x =  8 (b1000), y_trial = 760, keep = False",
		"bit0: trial_x =  7 (b0111), y_trial = 790, keep = True",
	}
	rest := out
	for _, want := range wantInOrder {
		idx := strings.Index(rest, want)
		if idx < 0 {
			t.Fatalf("Output missing %q (in order)\nGot:\n%s", want, out)
		}
		rest = rest[idx+len(want):]
	}
}

func TestResolveE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
		wantStderr  []string
	}{
		{
			name:        "single target",
			args:        []string{"resolve", "630"},
			wantContain: []string{"Target = 630", "Best x = 12"},
		},
		{
			name:        "range",
			args:        []string{"resolve", "760..820:30"},
			wantContain: []string{"Target = 760", "Target = 790", "Target = 820"},
		},
		{
			name:        "inclusive policy",
			args:        []string{"resolve", "790", "--policy", ">="},
			wantContain: []string{"bit0: trial_x =  7 (b0111), y_trial = 790, keep = True"},
		},
		{
			name:        "strict policy at tie",
			args:        []string{"resolve", "790"},
			wantContain: []string{"bit0: trial_x =  7 (b0111), y_trial = 790, keep = False"},
		},
		{
			name:        "verbose clipping",
			args:        []string{"resolve", "-v", "--", "-40"},
			wantContain: []string{"Target = -40", "clipped t = 550", "|y-target| = 590"},
			wantStderr:  []string{"Target -40 clipped to 550"},
		},
		{
			name:        "sexp",
			args:        []string{"resolve", "630", "-f", "sexp"},
			wantContain: []string{"(sar", "(target 630)", "(kept true)"},
		},
		{
			name:    "bad target",
			args:    []string{"resolve", "abc"},
			wantErr: true,
		},
		{
			name:    "bad step",
			args:    []string{"resolve", "1..10:0"},
			wantErr: true,
		},
		{
			name:    "no targets",
			args:    []string{"resolve"},
			wantErr: true,
		},
		{
			name:    "bad policy",
			args:    []string{"resolve", "630", "--policy", "<"},
			wantErr: true,
		},
		{
			name:    "bad format",
			args:    []string{"resolve", "630", "--format", "yaml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := runCLI(t, tt.args...)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v\nOutput: %s", err, out)
				return
			}

			for _, want := range tt.wantContain {
				if !strings.Contains(out, want) {
					t.Errorf("Output missing expected string: %q\nGot:\n%s", want, out)
				}
			}
			for _, want := range tt.wantStderr {
				if !strings.Contains(errOut, want) {
					t.Errorf("Stderr missing expected string: %q\nGot:\n%s", want, errOut)
				}
			}
		})
	}
}

func TestResolveJSONE2E(t *testing.T) {
	out, _, err := runCLI(t, "resolve", "630,780", "--format", "json", "--policy", "inclusive")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var doc report.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if doc.Count != 2 {
		t.Fatalf("count = %d, want 2", doc.Count)
	}
	for i, target := range []int{630, 780} {
		if want := sar.Resolve(target, sar.GreaterOrEqual); doc.Results[i] != want {
			t.Fatalf("results[%d] = %+v, want %+v", i, doc.Results[i], want)
		}
	}
}

func TestCompareE2E(t *testing.T) {
	out, _, err := runCLI(t, "compare")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"630", "780", "*      790", "1 of 3 target(s) with differing bit decisions, 0 with differing codes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("Output missing %q\nGot:\n%s", want, out)
		}
	}

	// 550..1000 has 15 output levels below full scale where a trial can tie.
	out, _, err = runCLI(t, "compare", "550..1000", "--diverging-only")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out, "15 of 451 target(s) with differing bit decisions, 0 with differing codes") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
	if strings.Contains(out, "     630  ") {
		t.Fatalf("non-diverging row shown with --diverging-only:\n%s", out)
	}
}
