package session

import (
	"errors"
	"testing"

	"github.com/radix-cli/radix/internal/base"
)

func TestIsCommand(t *testing.T) {
	s := New()

	if !s.IsCommand(":from hex to dec") {
		t.Error("sentinel-prefixed line not recognized as command")
	}
	for _, line := range []string{"from hex to dec", "0x42", "72", ""} {
		if s.IsCommand(line) {
			t.Errorf("IsCommand(%q) = true, want false", line)
		}
	}
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name    string
		cmd     string
		wantErr bool
		wantIn  base.Base
		wantOut base.Base
	}{
		{"both bases", ":from hex to dec", false, base.Hex, base.Dec},
		{"same base twice", ":from hex to hex", false, base.Hex, base.Hex},
		{"from only", ":from dec", false, base.Dec, base.Bin},
		{"to only", ":to hex", false, base.Hex, base.Hex},
		{"extra whitespace", ":  from bin   to     hex  ", false, base.Bin, base.Hex},
		{"no sentinel", "from hex to dec", true, base.Hex, base.Bin},
		{"doubled sentinel", "::from hex to dec", true, base.Hex, base.Bin},
		{"three tokens", ":from hex to", true, base.Hex, base.Bin},
		{"one token", ":from", true, base.Hex, base.Bin},
		{"trailing junk token", ":from hex to dec.", true, base.Hex, base.Bin},
		{"bad selector", ":fro hex", true, base.Hex, base.Bin},
		{"truncated selector", ":t hex", true, base.Hex, base.Bin},
		{"bad base name", ":to hx", true, base.Hex, base.Bin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			showHelp, err := s.Execute(tt.cmd)
			if showHelp {
				t.Errorf("Execute(%q) requested help", tt.cmd)
			}
			if tt.wantErr != (err != nil) {
				t.Fatalf("Execute(%q) error = %v, wantErr %v", tt.cmd, err, tt.wantErr)
			}
			if s.InputBase() != tt.wantIn || s.OutputBase() != tt.wantOut {
				t.Errorf("after Execute(%q): direction %v->%v, want %v->%v",
					tt.cmd, s.InputBase(), s.OutputBase(), tt.wantIn, tt.wantOut)
			}
		})
	}
}

// TestExecutePartialApplication checks that the first base change of a
// four-token command stays applied when the second one fails.
func TestExecutePartialApplication(t *testing.T) {
	s := NewWithBases(base.Dec, base.Dec)

	_, err := s.Execute(":from hex to dex")
	if !errors.Is(err, base.ErrUnknownBase) {
		t.Fatalf("Execute error = %v, want ErrUnknownBase", err)
	}
	if s.InputBase() != base.Hex {
		t.Errorf("input base = %v, want Hex (first change must stay applied)", s.InputBase())
	}
	if s.OutputBase() != base.Dec {
		t.Errorf("output base = %v, want Dec (second change must not apply)", s.OutputBase())
	}
}

func TestExecuteHelp(t *testing.T) {
	for _, cmd := range []string{":h", ":help", ": help", ":  h  "} {
		s := New()
		showHelp, err := s.Execute(cmd)
		if err != nil {
			t.Errorf("Execute(%q) error: %v", cmd, err)
		}
		if !showHelp {
			t.Errorf("Execute(%q) did not request help", cmd)
		}
		if s.InputBase() != base.Hex || s.OutputBase() != base.Bin {
			t.Errorf("Execute(%q) mutated session state", cmd)
		}
	}
}

func TestExecuteErrorKinds(t *testing.T) {
	s := New()

	if _, err := s.Execute(":from hex to"); !errors.Is(err, ErrCommandFormat) {
		t.Errorf("token count error = %v, want ErrCommandFormat", err)
	}
	if _, err := s.Execute(":fro hex"); !errors.Is(err, ErrCommandFormat) {
		t.Errorf("selector error = %v, want ErrCommandFormat", err)
	}
	if _, err := s.Execute(":from hec"); !errors.Is(err, base.ErrUnknownBase) {
		t.Errorf("base name error = %v, want ErrUnknownBase", err)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		in    base.Base
		out   base.Base
		line  string
		want  string
	}{
		{"default direction", base.Hex, base.Bin, "ff", "1111_1111"},
		{"hex to dec", base.Hex, base.Dec, "0xff", "255"},
		{"dec to bin small", base.Dec, base.Bin, "4", "100"},
		{"dec to bin grouped", base.Dec, base.Bin, "2701", "1010_1000_1101"},
		{"bin to hex", base.Bin, base.Hex, "1010_1000_1101", "0xa8d"},
		{"identity", base.Dec, base.Dec, "42", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewWithBases(tt.in, tt.out)
			got, err := s.Convert(tt.line)
			if err != nil {
				t.Fatalf("Convert(%q) error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestConvertParseError(t *testing.T) {
	s := New() // hex input
	if _, err := s.Convert("0xgk"); err == nil {
		t.Error("Convert of invalid numeral succeeded")
	}
	if s.InputBase() != base.Hex || s.OutputBase() != base.Bin {
		t.Error("failed conversion mutated session state")
	}
}

func TestLabels(t *testing.T) {
	s := New()
	if s.PromptLabel() != "hex" || s.OutputLabel() != "bin" {
		t.Errorf("labels = %q/%q, want hex/bin", s.PromptLabel(), s.OutputLabel())
	}

	if _, err := s.Execute(":from dec to hex"); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if s.PromptLabel() != "dec" || s.OutputLabel() != "hex" {
		t.Errorf("labels after change = %q/%q, want dec/hex", s.PromptLabel(), s.OutputLabel())
	}
}
