// Package field implements the typed form fields: prompt message assembly,
// raw-text conversion, constraint validation, and value storage. Fields are
// rendered against a prompt.Driver so the terminal interaction can be swapped
// out in tests and host applications.
package field

import (
	"context"

	"github.com/bekha-io/tuiforms/pkg/prompt"
)

// DefaultMaxLength bounds string inputs unless overridden.
const DefaultMaxLength = 256

// Field is the capability set the form layer works against. A field owns its
// label, its current value, and its render cycle.
type Field interface {
	// Label reports the display name the field was constructed with.
	Label() string
	// Value returns the last successfully validated value, or nil when no
	// value has been accepted yet. Subtypes may derive the returned value
	// (rounding, hashing) from the stored one.
	Value() any
	// Render runs the field's interaction: input fields loop
	// prompt/convert/validate until a value is accepted, output fields emit
	// their display line once. Driver errors propagate; validation failures
	// never do.
	Render(ctx context.Context, driver prompt.Driver) error
}

// base carries the label and hint shared by every field variant.
type base struct {
	label string
	hint  string
}

func (b *base) Label() string { return b.label }

// Hint reports the optional help text shown inside the prompt parentheses.
func (b *base) Hint() string { return b.hint }

// renderInput is the shared prompt loop: ask, attempt the SetValue gate, show
// the validation message and retry on failure, stop on success. There is no
// retry limit; the loop blocks until the terminal user supplies acceptable
// input. Only driver failures (aborts, closed terminals) escape.
func renderInput(ctx context.Context, driver prompt.Driver, message string, secret bool, set func(string) error) error {
	for {
		var (
			raw string
			err error
		)
		cfg := prompt.InputConfig{Message: message}
		if secret {
			raw, err = driver.Password(ctx, cfg)
		} else {
			raw, err = driver.Input(ctx, cfg)
		}
		if err != nil {
			return err
		}
		if verr := set(raw); verr != nil {
			if err := driver.Error(ctx, verr.Error()); err != nil {
				return err
			}
			continue
		}
		return nil
	}
}
