// Package form aggregates named fields into an ordered prompt sequence and
// collects their validated values into a result map.
package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/bekha-io/tuiforms/pkg/field"
	"github.com/bekha-io/tuiforms/pkg/prompt"
)

// Form holds an explicit, ordered registration list of named fields. Fields
// render strictly in registration order; each one completes its own
// prompt/validate loop before the next begins.
type Form struct {
	name        string
	fields      []namedField
	index       map[string]int
	shouldMatch []string
}

type namedField struct {
	name  string
	field field.Field
}

// New constructs an empty form.
func New(options ...Option) *Form {
	f := &Form{index: make(map[string]int)}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Name reports the banner name, empty when the form is anonymous.
func (f *Form) Name() string { return f.name }

// AddField registers a field under a name, appended after all previously
// registered fields. Duplicate names and nil fields are rejected.
func (f *Form) AddField(name string, fld field.Field) error {
	if name == "" {
		return fmt.Errorf("form: field name is required")
	}
	if fld == nil {
		return fmt.Errorf("form: field %q is nil", name)
	}
	if _, exists := f.index[name]; exists {
		return fmt.Errorf("form: field %q already registered", name)
	}
	f.index[name] = len(f.fields)
	f.fields = append(f.fields, namedField{name: name, field: fld})
	return nil
}

// MustAddField panics on registration failure. Useful when building forms
// declaratively at startup.
func (f *Form) MustAddField(name string, fld field.Field) *Form {
	if err := f.AddField(name, fld); err != nil {
		panic(err)
	}
	return f
}

// Field retrieves a registered field by name.
func (f *Form) Field(name string) (field.Field, bool) {
	idx, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.fields[idx].field, true
}

// Names lists the registered field names in registration order.
func (f *Form) Names() []string {
	out := make([]string, len(f.fields))
	for i, nf := range f.fields {
		out[i] = nf.name
	}
	return out
}

// Show prints the banner when the form is named, renders every field in
// registration order, and returns the collected values keyed by field name.
// Each input field loops until valid, so a returned map only ever holds
// fully validated values. Driver failures abort the sequence.
func (f *Form) Show(ctx context.Context, driver prompt.Driver) (Results, error) {
	if driver == nil {
		return nil, fmt.Errorf("form: driver is required")
	}
	if f.name != "" {
		banner := fmt.Sprintf("==========%s==========", strings.ToUpper(f.name))
		if err := driver.Banner(ctx, banner); err != nil {
			return nil, err
		}
	}

	results := make(Results, len(f.fields))
	for _, nf := range f.fields {
		if err := nf.field.Render(ctx, driver); err != nil {
			return nil, err
		}
		results[nf.name] = nf.field.Value()
	}
	return results, nil
}

// IsValid reports the cross-field consistency check: when a should-match set
// is declared, every named field must hold a value equal to the first one's.
// Without a declared set the form is unconditionally valid. This is a
// post-hoc check; it does not re-prompt.
func (f *Form) IsValid() bool {
	if len(f.shouldMatch) == 0 {
		return true
	}
	first, ok := f.Field(f.shouldMatch[0])
	if !ok {
		return false
	}
	want := first.Value()
	for _, name := range f.shouldMatch[1:] {
		fld, ok := f.Field(name)
		if !ok {
			return false
		}
		if fld.Value() != want {
			return false
		}
	}
	return true
}
