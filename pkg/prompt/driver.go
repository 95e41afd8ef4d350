// Package prompt abstracts the terminal interaction used by form fields: a
// Driver asks for input and prints messages, a Styler applies terminal
// formatting. Both are injectable so render logic stays testable without a
// real terminal.
package prompt

import "context"

// InputConfig configures a single text prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// Driver is the terminal capability fields render against. Implementations
// must honour context cancellation before blocking on the terminal.
type Driver interface {
	// Input asks for one line of text.
	Input(ctx context.Context, cfg InputConfig) (string, error)
	// Password asks for one line of text without echoing it.
	Password(ctx context.Context, cfg InputConfig) (string, error)
	// Info prints an informational line (output fields, notices).
	Info(ctx context.Context, msg string) error
	// Banner prints an emphasised heading line.
	Banner(ctx context.Context, msg string) error
	// Error prints a validation failure line in the attention style.
	Error(ctx context.Context, msg string) error
}
