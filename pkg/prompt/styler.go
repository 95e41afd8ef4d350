package prompt

import "github.com/mgutz/ansi"

// Styler formats terminal text. It stands in for the process-wide coloring
// helper so hosts can disable or replace the ANSI codes wholesale.
type Styler interface {
	// Bold styles a field label.
	Bold(s string) string
	// Attention styles a validation error line.
	Attention(s string) string
}

type ansiStyler struct {
	bold      func(string) string
	attention func(string) string
}

// NewANSIStyler returns the default Styler: bold labels, red error lines.
func NewANSIStyler() Styler {
	return &ansiStyler{
		bold:      ansi.ColorFunc("default+b"),
		attention: ansi.ColorFunc("red"),
	}
}

func (s *ansiStyler) Bold(v string) string      { return s.bold(v) }
func (s *ansiStyler) Attention(v string) string { return s.attention(v) }

// PlainStyler returns text unchanged. Useful for tests and dumb terminals.
type PlainStyler struct{}

func (PlainStyler) Bold(s string) string      { return s }
func (PlainStyler) Attention(s string) string { return s }
