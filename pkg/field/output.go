package field

import (
	"context"
	"fmt"

	"github.com/bekha-io/tuiforms/pkg/prompt"
)

// OutputField holds a value for display only. It never reads input and has
// no validation; rendering emits a single line through the driver.
type OutputField struct {
	base
	value any
}

// NewOutput constructs a display-only field. The label may be empty, in
// which case only the value is shown.
func NewOutput(label string, value any) *OutputField {
	return &OutputField{base: base{label: label}, value: value}
}

func (f *OutputField) Value() any { return f.value }

// SetValue replaces the displayed value. Output fields accept anything.
func (f *OutputField) SetValue(value any) {
	f.value = value
}

// Display builds the rendered line.
func (f *OutputField) Display() string {
	if f.label != "" {
		return fmt.Sprintf("%s: %v", f.label, f.value)
	}
	return fmt.Sprint(f.value)
}

func (f *OutputField) Render(ctx context.Context, driver prompt.Driver) error {
	return driver.Info(ctx, f.Display())
}
