// Package tuiforms is a small terminal form toolkit: typed fields prompt a
// user, convert raw text into typed values, validate them against declared
// constraints, and re-prompt with a readable error until input is valid. A
// Form runs its fields in order and collects the validated values into one
// result map.
package tuiforms

import (
	"context"

	"github.com/bekha-io/tuiforms/pkg/field"
	"github.com/bekha-io/tuiforms/pkg/form"
	"github.com/bekha-io/tuiforms/pkg/prompt"
)

// Form aggregates named fields into an ordered prompt sequence.
type Form = form.Form

// Results is the value map a form collects, keyed by field name.
type Results = form.Results

// Field is the capability set every field implements.
type Field = field.Field

// ValidateError is the recoverable failure raised by conversion and
// constraint checks.
type ValidateError = field.ValidateError

// NewForm exposes the form constructor from the top-level module.
func NewForm(options ...form.Option) *form.Form {
	return form.New(options...)
}

// Show runs the form against the default terminal driver and returns the
// collected values. It is the simplest entry point for hosts that just want
// to prompt.
func Show(ctx context.Context, f *form.Form, options ...prompt.SurveyOption) (form.Results, error) {
	return f.Show(ctx, prompt.NewSurveyDriver(options...))
}
