package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}
	r.Start(2)
	r.Update(1, "C++.md")
	r.Update(2, "Go.md")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"Checking 2 documents", "[1/2] C++.md", "[2/2] Go.md", "Checked 2 documents"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewReporter(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		ci   bool
	}{
		{"ci", map[string]string{"CI": "true"}, true},
		{"github actions", map[string]string{"GITHUB_ACTIONS": "true"}, true},
		{"terminal", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", "")
			t.Setenv("GITHUB_ACTIONS", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, isCIReporter := NewReporter().(*CIReporter)
			if isCIReporter != tt.ci {
				t.Errorf("CIReporter = %v, want %v", isCIReporter, tt.ci)
			}
		})
	}
}

func TestTerminalReporterWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{Out: &buf}
	r.Update(1, "Go.md")
	r.Finish()
	if buf.Len() != 0 {
		t.Errorf("wrote %q before Start", buf.String())
	}
}
