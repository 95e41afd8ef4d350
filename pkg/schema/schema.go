// Package schema builds forms from declarative YAML definitions, so hosts
// can describe prompt sequences in data instead of wiring field
// constructors by hand.
package schema

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bekha-io/tuiforms/pkg/field"
	"github.com/bekha-io/tuiforms/pkg/form"
)

// Definition is the top-level YAML document.
type Definition struct {
	Form        string            `yaml:"form"`
	ShouldMatch []string          `yaml:"should_match"`
	Fields      []FieldDefinition `yaml:"fields"`
}

// FieldDefinition declares one field. Only the keys relevant to the declared
// type are honoured; Label falls back to Name when omitted.
type FieldDefinition struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Label       string   `yaml:"label"`
	Hint        string   `yaml:"hint"`
	MaxLength   int      `yaml:"max_length"`
	Min         *float64 `yaml:"min"`
	Max         *float64 `yaml:"max"`
	Mantissa    int      `yaml:"mantissa"`
	EarlierThan string   `yaml:"earlier_than"`
	LaterThan   string   `yaml:"later_than"`
	Value       string   `yaml:"value"`
}

// Parse decodes a YAML definition document.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("schema: decode definition: %w", err)
	}
	if len(def.Fields) == 0 {
		return nil, fmt.Errorf("schema: definition declares no fields")
	}
	return &def, nil
}

// Build assembles a form from a parsed definition, preserving the declared
// field order.
func Build(def *Definition) (*form.Form, error) {
	if def == nil {
		return nil, fmt.Errorf("schema: definition is nil")
	}

	options := []form.Option{form.WithName(def.Form)}
	if len(def.ShouldMatch) > 0 {
		options = append(options, form.WithShouldMatch(def.ShouldMatch...))
	}
	f := form.New(options...)

	for _, fd := range def.Fields {
		if fd.Name == "" {
			return nil, fmt.Errorf("schema: field without a name")
		}
		fld, err := buildField(fd)
		if err != nil {
			return nil, err
		}
		if err := f.AddField(fd.Name, fld); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func buildField(fd FieldDefinition) (field.Field, error) {
	label := fd.Label
	if label == "" {
		label = fd.Name
	}
	stringCfg := field.StringConfig{Hint: fd.Hint, MaxLength: fd.MaxLength}

	switch strings.ToLower(fd.Type) {
	case "", "string":
		return field.NewString(label, stringCfg), nil
	case "email":
		return field.NewEmail(label, stringCfg), nil
	case "phone":
		return field.NewPhoneNumber(label, stringCfg), nil
	case "password", "hashed":
		return field.NewHashed(label, stringCfg), nil
	case "integer":
		return field.NewInteger(label, field.NumericConfig{
			Hint: fd.Hint,
			Min:  fd.Min,
			Max:  fd.Max,
		}), nil
	case "float":
		return field.NewFloat(label, field.FloatConfig{
			Hint:     fd.Hint,
			Min:      fd.Min,
			Max:      fd.Max,
			Mantissa: fd.Mantissa,
		}), nil
	case "date":
		cfg := field.DateConfig{Hint: fd.Hint}
		var err error
		if cfg.EarlierThan, err = parseBoundDate(fd.EarlierThan); err != nil {
			return nil, fmt.Errorf("schema: field %q: earlier_than: %w", fd.Name, err)
		}
		if cfg.LaterThan, err = parseBoundDate(fd.LaterThan); err != nil {
			return nil, fmt.Errorf("schema: field %q: later_than: %w", fd.Name, err)
		}
		fld, err := field.NewDate(label, cfg)
		if err != nil {
			return nil, fmt.Errorf("schema: field %q: %w", fd.Name, err)
		}
		return fld, nil
	case "output":
		return field.NewOutput(label, fd.Value), nil
	default:
		return nil, fmt.Errorf("schema: field %q has unknown type %q", fd.Name, fd.Type)
	}
}

func parseBoundDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(field.DateFormat, raw)
	if err != nil {
		return nil, fmt.Errorf("expected %s: %w", field.DateFormat, err)
	}
	return &t, nil
}
