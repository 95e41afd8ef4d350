// Package openapi builds terminal forms from OpenAPI 3 documents: an
// operation's request body schema becomes the prompt sequence, so the same
// contract that drives an HTTP API can drive interactive input.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/bekha-io/tuiforms/pkg/field"
	"github.com/bekha-io/tuiforms/pkg/form"
)

// mediaTypePreference orders the request body content types considered for
// form extraction.
var mediaTypePreference = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// BuildForm loads an OpenAPI document from raw bytes, locates the operation
// by id, and assembles a form from its request body object schema. Scalar
// properties map onto field types by schema type and format; numeric bounds
// and string length limits carry over as field constraints. Bounds are
// applied as strict (exclusive) limits. Properties are prompted in sorted
// name order with required ones first.
func BuildForm(ctx context.Context, raw []byte, operationID string) (*form.Form, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	if operationID == "" {
		return nil, errors.New("openapi: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil {
		return nil, fmt.Errorf("openapi: operation %q has no request body schema", operationID)
	}
	if !schemaIs(schema, "object") || len(schema.Properties) == 0 {
		return nil, fmt.Errorf("openapi: operation %q request body is not an object with properties", operationID)
	}

	name := operation.Summary
	if name == "" {
		name = operationID
	}
	f := form.New(form.WithName(name))

	for _, propName := range orderedProperties(schema) {
		ref := schema.Properties[propName]
		if ref == nil || ref.Value == nil {
			continue
		}
		fld, err := buildField(propName, ref.Value)
		if err != nil {
			return nil, fmt.Errorf("openapi: property %q: %w", propName, err)
		}
		if fld == nil {
			// Nested objects and arrays have no terminal prompt shape.
			continue
		}
		if err := f.AddField(propName, fld); err != nil {
			return nil, err
		}
	}

	if len(f.Names()) == 0 {
		return nil, fmt.Errorf("openapi: operation %q yields no promptable fields", operationID)
	}
	return f, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete, item.Patch,
		} {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestSchema(requestBody *openapi3.RequestBodyRef) *openapi3.Schema {
	if requestBody == nil || requestBody.Value == nil {
		return nil
	}
	content := requestBody.Value.Content
	for _, mediaType := range mediaTypePreference {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// orderedProperties sorts property names, required ones first, so prompt
// order is deterministic even though the schema map is not.
func orderedProperties(schema *openapi3.Schema) []string {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if required[names[i]] != required[names[j]] {
			return required[names[i]]
		}
		return names[i] < names[j]
	})
	return names
}

func buildField(name string, src *openapi3.Schema) (field.Field, error) {
	label := src.Title
	if label == "" {
		label = name
	}
	hint := src.Description

	switch {
	case schemaIs(src, "integer"):
		return field.NewInteger(label, field.NumericConfig{
			Hint: hint,
			Min:  copyBound(src.Min),
			Max:  copyBound(src.Max),
		}), nil
	case schemaIs(src, "number"):
		return field.NewFloat(label, field.FloatConfig{
			Hint: hint,
			Min:  copyBound(src.Min),
			Max:  copyBound(src.Max),
		}), nil
	case schemaIs(src, "string"):
		cfg := field.StringConfig{Hint: hint}
		if src.MaxLength != nil {
			cfg.MaxLength = int(*src.MaxLength)
		}
		switch src.Format {
		case "email":
			return field.NewEmail(label, cfg), nil
		case "password":
			return field.NewHashed(label, cfg), nil
		case "date":
			return buildDateField(label, hint, src)
		default:
			return field.NewString(label, cfg), nil
		}
	case schemaIs(src, "object"), schemaIs(src, "array"):
		return nil, nil
	default:
		return field.NewString(label, field.StringConfig{Hint: hint}), nil
	}
}

func buildDateField(label, hint string, src *openapi3.Schema) (field.Field, error) {
	cfg := field.DateConfig{Hint: hint}
	var err error
	if cfg.EarlierThan, err = parseDateExtension(src.Extensions, "x-earlier-than"); err != nil {
		return nil, err
	}
	if cfg.LaterThan, err = parseDateExtension(src.Extensions, "x-later-than"); err != nil {
		return nil, err
	}
	return field.NewDate(label, cfg)
}

func parseDateExtension(extensions map[string]any, key string) (*time.Time, error) {
	raw, ok := extensions[key].(string)
	if !ok || raw == "" {
		return nil, nil
	}
	t, err := time.Parse(field.DateFormat, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: expected %s: %w", key, field.DateFormat, err)
	}
	return &t, nil
}

func copyBound(src *float64) *float64 {
	if src == nil {
		return nil
	}
	value := *src
	return &value
}

func schemaIs(schema *openapi3.Schema, kind string) bool {
	return schema.Type != nil && schema.Type.Is(kind)
}
