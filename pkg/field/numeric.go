package field

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bekha-io/tuiforms/pkg/prompt"
)

// NumericConfig carries the optional settings shared by integer and float
// fields. Bounds are exclusive and explicitly optional: a non-nil pointer is
// always an active bound, including zero. Use Bound for literals.
type NumericConfig struct {
	Hint string
	Min  *float64
	Max  *float64
}

// Bound returns a pointer to v for use as a NumericConfig bound.
func Bound(v float64) *float64 { return &v }

// bounds holds the exclusive numeric interval shared by integer and float
// fields.
type bounds struct {
	min *float64
	max *float64
}

// newBounds applies the historical repair step: when both bounds are present
// and min exceeds max, min is silently lowered to max - 2 instead of
// failing construction.
func newBounds(min, max *float64) bounds {
	if min != nil && max != nil && *min > *max {
		repaired := *max - 2
		min = &repaired
	}
	return bounds{min: min, max: max}
}

func (b bounds) check(v float64) *ValidateError {
	switch {
	case b.min != nil && b.max == nil:
		if v <= *b.min {
			return NewValidateError(fmt.Sprintf("min_value = %s, input = %s", formatBound(*b.min), formatBound(v)))
		}
	case b.max != nil && b.min == nil:
		if v >= *b.max {
			return NewValidateError(fmt.Sprintf("max_value = %s, input = %s", formatBound(*b.max), formatBound(v)))
		}
	case b.min != nil && b.max != nil:
		if v <= *b.min || v >= *b.max {
			return NewValidateError(fmt.Sprintf("%s < %s < %s is not true", formatBound(*b.min), formatBound(v), formatBound(*b.max)))
		}
	}
	return nil
}

// describe renders the active interval for prompt annotations.
func (b bounds) describe() string {
	switch {
	case b.min != nil && b.max == nil:
		return ">" + formatBound(*b.min)
	case b.max != nil && b.min == nil:
		return "<" + formatBound(*b.max)
	case b.min != nil && b.max != nil:
		return fmt.Sprintf("%s < n < %s", formatBound(*b.min), formatBound(*b.max))
	default:
		return ""
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// IntegerField accepts whole numbers inside an optional exclusive interval.
type IntegerField struct {
	base
	bounds     bounds
	validators []Validator[int64]
	value      int64
	set        bool
}

// NewInteger constructs an integer field.
func NewInteger(label string, cfg NumericConfig) *IntegerField {
	f := &IntegerField{
		base:   base{label: label, hint: cfg.Hint},
		bounds: newBounds(cfg.Min, cfg.Max),
	}
	f.validators = []Validator[int64]{f.checkBounds}
	return f
}

// Min reports the active exclusive lower bound, nil when unset.
func (f *IntegerField) Min() *float64 { return f.bounds.min }

// Max reports the active exclusive upper bound, nil when unset.
func (f *IntegerField) Max() *float64 { return f.bounds.max }

func (f *IntegerField) Value() any {
	if !f.set {
		return nil
	}
	return f.value
}

// SetValue parses the raw text as a base-10 integer, checks bounds, and
// stores the result.
func (f *IntegerField) SetValue(raw string) error {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return NewValidateError("cannot parse integer from string", raw)
	}
	if verr := runValidators(f.validators, v); verr != nil {
		return verr
	}
	f.value = v
	f.set = true
	return nil
}

func (f *IntegerField) Render(ctx context.Context, driver prompt.Driver) error {
	return renderInput(ctx, driver, f.promptMessage(), false, f.SetValue)
}

func (f *IntegerField) checkBounds(v int64) *ValidateError {
	return f.bounds.check(float64(v))
}

func (f *IntegerField) promptMessage() string {
	return withNotes(f.label, boundNotes(f.hint, f.bounds))
}

func boundNotes(hint string, b bounds) []string {
	var notes []string
	if hint != "" {
		notes = append(notes, hint)
	}
	if desc := b.describe(); desc != "" {
		notes = append(notes, desc)
	}
	return notes
}

// DefaultMantissa is the rounding precision float fields apply on read.
const DefaultMantissa = 2

// FloatConfig carries the optional settings for float fields. Mantissa of 0
// means DefaultMantissa; a negative value rounds to whole numbers.
type FloatConfig struct {
	Hint     string
	Min      *float64
	Max      *float64
	Mantissa int
}

// FloatField accepts decimal numbers inside an optional exclusive interval.
// The stored value is rounded to the configured mantissa on every read; the
// logical and displayed values are the same rounded number.
type FloatField struct {
	base
	bounds     bounds
	mantissa   int
	validators []Validator[float64]
	value      float64
	set        bool
}

// NewFloat constructs a float field.
func NewFloat(label string, cfg FloatConfig) *FloatField {
	f := &FloatField{
		base:     base{label: label, hint: cfg.Hint},
		bounds:   newBounds(cfg.Min, cfg.Max),
		mantissa: DefaultMantissa,
	}
	switch {
	case cfg.Mantissa > 0:
		f.mantissa = cfg.Mantissa
	case cfg.Mantissa < 0:
		f.mantissa = 0
	}
	f.validators = []Validator[float64]{f.checkBounds}
	return f
}

// Mantissa reports the rounding precision applied on read.
func (f *FloatField) Mantissa() int { return f.mantissa }

func (f *FloatField) Value() any {
	if !f.set {
		return nil
	}
	factor := math.Pow(10, float64(f.mantissa))
	return math.Round(f.value*factor) / factor
}

// SetValue parses the raw text as a decimal number, checks bounds, and
// stores the unrounded result.
func (f *FloatField) SetValue(raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return NewValidateError("cannot parse float from string", raw)
	}
	if verr := runValidators(f.validators, v); verr != nil {
		return verr
	}
	f.value = v
	f.set = true
	return nil
}

func (f *FloatField) Render(ctx context.Context, driver prompt.Driver) error {
	return renderInput(ctx, driver, f.promptMessage(), false, f.SetValue)
}

func (f *FloatField) checkBounds(v float64) *ValidateError {
	return f.bounds.check(v)
}

func (f *FloatField) promptMessage() string {
	return withNotes(f.label, boundNotes(f.hint, f.bounds))
}
