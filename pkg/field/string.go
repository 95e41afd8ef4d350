package field

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/bekha-io/tuiforms/pkg/prompt"
)

// StringConfig carries the optional settings for string-family fields.
// MaxLength of 0 means DefaultMaxLength; a negative value disables the
// length check entirely.
type StringConfig struct {
	Hint      string
	MaxLength int
}

// StringField accepts free text bounded by a maximum length.
type StringField struct {
	base
	maxLength  int
	validators []Validator[string]
	value      string
	set        bool
}

// NewString constructs a string field.
func NewString(label string, cfg StringConfig) *StringField {
	f := newString(label, cfg)
	f.validators = []Validator[string]{f.checkMaxLength}
	return f
}

// newString sets up the shared state without wiring validators, so derived
// field constructors control their own chain order.
func newString(label string, cfg StringConfig) *StringField {
	f := &StringField{
		base:      base{label: label, hint: cfg.Hint},
		maxLength: DefaultMaxLength,
	}
	switch {
	case cfg.MaxLength > 0:
		f.maxLength = cfg.MaxLength
	case cfg.MaxLength < 0:
		f.maxLength = 0
	}
	return f
}

// MaxLength reports the active length limit, 0 when disabled.
func (f *StringField) MaxLength() int { return f.maxLength }

// Value returns the accepted string, or nil before the first valid input.
func (f *StringField) Value() any {
	if !f.set {
		return nil
	}
	return f.value
}

// SetValue runs the validator chain and stores the text on success. A
// failed attempt leaves the previously stored value untouched.
func (f *StringField) SetValue(raw string) error {
	if err := runValidators(f.validators, raw); err != nil {
		return err
	}
	f.value = raw
	f.set = true
	return nil
}

func (f *StringField) Render(ctx context.Context, driver prompt.Driver) error {
	return renderInput(ctx, driver, f.promptMessage(), false, f.SetValue)
}

func (f *StringField) checkMaxLength(value string) *ValidateError {
	if f.maxLength > 0 && len(value) > f.maxLength {
		return NewValidateError("max_length has been exceeded", f.maxLength)
	}
	return nil
}

func (f *StringField) promptMessage() string {
	var notes []string
	if f.hint != "" {
		notes = append(notes, f.hint)
	}
	if f.maxLength > 0 {
		notes = append(notes, fmt.Sprintf("max. %d", f.maxLength))
	}
	return withNotes(f.label, notes)
}

// withNotes appends the parenthesised annotation list to a label.
func withNotes(label string, notes []string) string {
	if len(notes) == 0 {
		return label
	}
	return fmt.Sprintf("%s (%s)", label, strings.Join(notes, ", "))
}

var emailPattern = regexp.MustCompile(`^([A-Za-z0-9]+[.\-_])*[A-Za-z0-9]+@[A-Za-z0-9-]+(\.[A-Za-z]{2,})+$`)

// EmailField is a string field that only accepts email-shaped text.
type EmailField struct {
	StringField
}

// NewEmail constructs an email field. The pattern check runs before the
// base length check.
func NewEmail(label string, cfg StringConfig) *EmailField {
	f := &EmailField{StringField: *newString(label, cfg)}
	f.validators = []Validator[string]{f.checkPattern, f.checkMaxLength}
	return f
}

func (f *EmailField) checkPattern(value string) *ValidateError {
	if !emailPattern.MatchString(value) {
		return NewValidateError("cannot extract email from string", value)
	}
	return nil
}

// phonePattern matches international numbers: a leading +, a known country
// code, then up to 13 further digits with optional grouping separators.
var phonePattern = regexp.MustCompile(`^\+((?:9[679]|8[035789]|6[789]|5[90]|42|3[578]|2[1-689])|9[0-58]|8[1246]|6[0-6]|5[1-8]|4[013-9]|3[0-469]|2[70]|7|1)(?:\W*\d){0,13}\d$`)

// PhoneNumberField is a string field that only accepts international phone
// numbers.
type PhoneNumberField struct {
	StringField
}

// NewPhoneNumber constructs a phone number field.
func NewPhoneNumber(label string, cfg StringConfig) *PhoneNumberField {
	f := &PhoneNumberField{StringField: *newString(label, cfg)}
	f.validators = []Validator[string]{f.checkPattern, f.checkMaxLength}
	return f
}

func (f *PhoneNumberField) checkPattern(value string) *ValidateError {
	if !phonePattern.MatchString(value) {
		return NewValidateError("cannot extract phone number from string", value)
	}
	return nil
}

// HashedField stores text like a string field but never exposes it: Value
// returns a SHA-256 hex digest of the raw input. Rendering uses a no-echo
// password prompt.
type HashedField struct {
	StringField
}

// NewHashed constructs a hashed field.
func NewHashed(label string, cfg StringConfig) *HashedField {
	f := &HashedField{StringField: *newString(label, cfg)}
	f.validators = []Validator[string]{f.checkMaxLength}
	return f
}

func (f *HashedField) Value() any {
	if !f.set {
		return nil
	}
	sum := sha256.Sum256([]byte(f.value))
	return hex.EncodeToString(sum[:])
}

func (f *HashedField) Render(ctx context.Context, driver prompt.Driver) error {
	return renderInput(ctx, driver, f.promptMessage(), true, f.SetValue)
}
