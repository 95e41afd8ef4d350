package field

import (
	"errors"
	"strings"
	"testing"
)

func TestStringField_AcceptsWithinMaxLength(t *testing.T) {
	f := NewString("Name", StringConfig{MaxLength: 5})
	if err := f.SetValue("Alice"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if got := f.Value(); got != "Alice" {
		t.Fatalf("got %v, want Alice", got)
	}
}

func TestStringField_RejectsOverMaxLength(t *testing.T) {
	f := NewString("Name", StringConfig{MaxLength: 3})
	err := f.SetValue("toolong")
	var verr *ValidateError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidateError, got %v", err)
	}
	if f.Value() != nil {
		t.Fatalf("failed attempt must not store a value, got %v", f.Value())
	}
}

func TestStringField_FailedAttemptKeepsStoredValue(t *testing.T) {
	f := NewString("Name", StringConfig{MaxLength: 5})
	if err := f.SetValue("Alice"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if err := f.SetValue("Alexander"); err == nil {
		t.Fatalf("expected rejection")
	}
	if got := f.Value(); got != "Alice" {
		t.Fatalf("stored value changed to %v", got)
	}
}

func TestStringField_DefaultMaxLength(t *testing.T) {
	f := NewString("Bio", StringConfig{})
	if got := f.MaxLength(); got != DefaultMaxLength {
		t.Fatalf("got %d, want %d", got, DefaultMaxLength)
	}
	if err := f.SetValue(strings.Repeat("x", DefaultMaxLength+1)); err == nil {
		t.Fatalf("expected rejection over default limit")
	}
	if err := f.SetValue(strings.Repeat("x", DefaultMaxLength)); err != nil {
		t.Fatalf("at-limit input rejected: %v", err)
	}
}

func TestStringField_NegativeMaxLengthDisablesCheck(t *testing.T) {
	f := NewString("Bio", StringConfig{MaxLength: -1})
	if err := f.SetValue(strings.Repeat("x", DefaultMaxLength*4)); err != nil {
		t.Fatalf("length check should be disabled: %v", err)
	}
}

func TestStringField_PromptMessage(t *testing.T) {
	cases := []struct {
		name string
		f    *StringField
		want string
	}{
		{"plain", NewString("Name", StringConfig{MaxLength: -1}), "Name"},
		{"hint", NewString("Name", StringConfig{Hint: "as in passport", MaxLength: -1}), "Name (as in passport)"},
		{"max", NewString("Name", StringConfig{MaxLength: 64}), "Name (max. 64)"},
		{"hint and max", NewString("Name", StringConfig{Hint: "as in passport", MaxLength: 64}), "Name (as in passport, max. 64)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.f.promptMessage(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEmailField(t *testing.T) {
	accept := []string{"a.b@example.com", "user@mail.example.org", "user-1@host.io"}
	reject := []string{"not-an-email", "@example.com", "user@", "user@host", "user @example.com"}

	for _, input := range accept {
		f := NewEmail("Email", StringConfig{})
		if err := f.SetValue(input); err != nil {
			t.Errorf("%q rejected: %v", input, err)
		}
	}
	for _, input := range reject {
		f := NewEmail("Email", StringConfig{})
		if err := f.SetValue(input); err == nil {
			t.Errorf("%q accepted, want rejection", input)
		}
	}
}

func TestEmailField_PatternRunsBeforeLengthCheck(t *testing.T) {
	f := NewEmail("Email", StringConfig{MaxLength: 3})
	err := f.SetValue("definitely-not-an-email")
	var verr *ValidateError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidateError, got %v", err)
	}
	if !strings.Contains(verr.Message, "email") {
		t.Fatalf("pattern check should fail first, got %q", verr.Message)
	}
}

func TestPhoneNumberField(t *testing.T) {
	accept := []string{"+14155552671", "+992935551234", "+44 20 7946 0958"}
	reject := []string{"notaphone", "14155552671", "+0123", "+1"}

	for _, input := range accept {
		f := NewPhoneNumber("Phone", StringConfig{})
		if err := f.SetValue(input); err != nil {
			t.Errorf("%q rejected: %v", input, err)
		}
	}
	for _, input := range reject {
		f := NewPhoneNumber("Phone", StringConfig{})
		if err := f.SetValue(input); err == nil {
			t.Errorf("%q accepted, want rejection", input)
		}
	}
}

func TestHashedField_NeverExposesRawValue(t *testing.T) {
	f := NewHashed("Password", StringConfig{})
	if err := f.SetValue("secret"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	got, ok := f.Value().(string)
	if !ok {
		t.Fatalf("expected string digest, got %T", f.Value())
	}
	if got == "secret" {
		t.Fatalf("raw value leaked through Value")
	}
	// sha256 hex digest
	if len(got) != 64 {
		t.Fatalf("unexpected digest length %d", len(got))
	}
}

func TestHashedField_StableDigest(t *testing.T) {
	a := NewHashed("Password", StringConfig{})
	b := NewHashed("Password", StringConfig{})
	if err := a.SetValue("secret"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if err := b.SetValue("secret"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if a.Value() != b.Value() {
		t.Fatalf("same input must hash identically")
	}
}
