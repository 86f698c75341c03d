// Package session owns the active conversion direction and interprets
// the sentinel-prefixed command mini-language.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/radix-cli/radix/internal/base"
)

// Sentinel marks a line as a command rather than a numeral.
const Sentinel = ":"

// Usage is the fixed help text shown for :h / :help.
const Usage = `:from <base>            change input base
:to <base>              change output base
:from <base> to <base>  change both at once
:h or :help             show this message
:q or :quit             quit

<base> is one of "hex", "dec", "bin"`

// ErrCommandFormat is returned for commands with the wrong shape:
// bad token count or an unknown selector keyword.
var ErrCommandFormat = errors.New("wrong command format")

// Session holds the current input and output base. Both are always
// set; they default to hex in, binary out.
type Session struct {
	in  base.Base
	out base.Base
}

// New returns a session with the default direction.
func New() *Session {
	return NewWithBases(base.Hex, base.Bin)
}

// NewWithBases returns a session starting from the given direction.
func NewWithBases(in, out base.Base) *Session {
	return &Session{in: in, out: out}
}

// IsCommand reports whether line carries the command sentinel. The
// check is purely syntactic and has no side effects.
func (s *Session) IsCommand(line string) bool {
	return strings.HasPrefix(line, Sentinel)
}

// Execute runs a sentinel-prefixed command. showHelp is true when the
// command asks for the usage text; displaying it is the caller's job.
//
// A four-token command applies its two base changes left to right. If
// the second change fails the first stays applied; there is no
// rollback.
func (s *Session) Execute(line string) (showHelp bool, err error) {
	rest, ok := strings.CutPrefix(line, Sentinel)
	if !ok {
		return false, ErrCommandFormat
	}
	rest = strings.TrimSpace(rest)
	if rest == "h" || rest == "help" {
		return true, nil
	}

	words := strings.Fields(rest)
	if len(words) != 2 && len(words) != 4 {
		return false, ErrCommandFormat
	}
	if err := s.changeBase(words[0], words[1]); err != nil {
		return false, err
	}
	if len(words) == 4 {
		if err := s.changeBase(words[2], words[3]); err != nil {
			return false, err
		}
	}
	return false, nil
}

// changeBase applies one selector/argument pair. "from" sets the
// input base, "to" the output base.
func (s *Session) changeBase(keyword, name string) error {
	var target *base.Base
	switch keyword {
	case "from":
		target = &s.in
	case "to":
		target = &s.out
	default:
		return fmt.Errorf("%w: unknown selector %q", ErrCommandFormat, keyword)
	}
	b, err := base.ParseName(name)
	if err != nil {
		return err
	}
	*target = b
	return nil
}

// Convert parses line with the input base and renders the value in
// the output base. Formatting cannot fail, so any error comes from
// the parse step and leaves the session untouched.
func (s *Session) Convert(line string) (string, error) {
	v, err := s.in.Parse(line)
	if err != nil {
		return "", err
	}
	return s.out.Format(v), nil
}

// PromptLabel returns the input base label for building the prompt.
func (s *Session) PromptLabel() string { return s.in.String() }

// OutputLabel returns the output base label for echoing results.
func (s *Session) OutputLabel() string { return s.out.String() }

// InputBase returns the current input base.
func (s *Session) InputBase() base.Base { return s.in }

// OutputBase returns the current output base.
func (s *Session) OutputBase() base.Base { return s.out }
