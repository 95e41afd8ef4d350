package field

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bekha-io/tuiforms/pkg/prompt"
)

// DateFormat is the fixed day.month.year layout date fields parse and
// display.
const DateFormat = "02.01.2006"

// DateConfig carries the optional settings for date fields. EarlierThan is
// an exclusive upper bound, LaterThan an exclusive lower bound.
type DateConfig struct {
	Hint        string
	EarlierThan *time.Time
	LaterThan   *time.Time
}

// DateField accepts dates in DateFormat inside an optional exclusive
// interval.
type DateField struct {
	base
	earlierThan *time.Time
	laterThan   *time.Time
	validators  []Validator[time.Time]
	value       time.Time
	set         bool
}

// NewDate constructs a date field. Passing both bounds with LaterThan not
// strictly before EarlierThan is an impossible interval and fails
// construction outright; it is never surfaced as a retryable validation
// error.
func NewDate(label string, cfg DateConfig) (*DateField, error) {
	if cfg.EarlierThan != nil && cfg.LaterThan != nil && !cfg.LaterThan.Before(*cfg.EarlierThan) {
		return nil, fmt.Errorf("field: later_than %s must be before earlier_than %s",
			cfg.LaterThan.Format(DateFormat), cfg.EarlierThan.Format(DateFormat))
	}
	f := &DateField{
		base:        base{label: label, hint: cfg.Hint},
		earlierThan: cfg.EarlierThan,
		laterThan:   cfg.LaterThan,
	}
	f.validators = []Validator[time.Time]{f.checkBounds}
	return f, nil
}

func (f *DateField) Value() any {
	if !f.set {
		return nil
	}
	return f.value
}

// SetValue parses the raw text with DateFormat, checks the interval, and
// stores the result.
func (f *DateField) SetValue(raw string) error {
	v, err := time.Parse(DateFormat, strings.TrimSpace(raw))
	if err != nil {
		return NewValidateError("cannot parse date from string", raw, DateFormat)
	}
	if verr := runValidators(f.validators, v); verr != nil {
		return verr
	}
	f.value = v
	f.set = true
	return nil
}

func (f *DateField) Render(ctx context.Context, driver prompt.Driver) error {
	return renderInput(ctx, driver, f.promptMessage(), false, f.SetValue)
}

func (f *DateField) checkBounds(v time.Time) *ValidateError {
	switch {
	case f.earlierThan != nil && f.laterThan == nil:
		if !v.Before(*f.earlierThan) {
			return NewValidateError("should be earlier than " + f.earlierThan.Format(DateFormat))
		}
	case f.laterThan != nil && f.earlierThan == nil:
		if !v.After(*f.laterThan) {
			return NewValidateError("should be later than " + f.laterThan.Format(DateFormat))
		}
	case f.laterThan != nil && f.earlierThan != nil:
		if !(v.After(*f.laterThan) && v.Before(*f.earlierThan)) {
			return NewValidateError(fmt.Sprintf("should be later than %s and earlier than %s",
				f.laterThan.Format(DateFormat), f.earlierThan.Format(DateFormat)))
		}
	}
	return nil
}

func (f *DateField) promptMessage() string {
	label := fmt.Sprintf("%s - %s", f.label, DateFormat)
	var notes []string
	if f.hint != "" {
		notes = append(notes, f.hint)
	} else {
		switch {
		case f.earlierThan != nil && f.laterThan == nil:
			notes = append(notes, "< "+f.earlierThan.Format(DateFormat))
		case f.laterThan != nil && f.earlierThan == nil:
			notes = append(notes, "> "+f.laterThan.Format(DateFormat))
		case f.laterThan != nil && f.earlierThan != nil:
			notes = append(notes, fmt.Sprintf("%s < n < %s",
				f.laterThan.Format(DateFormat), f.earlierThan.Format(DateFormat)))
		}
	}
	return withNotes(label, notes)
}
