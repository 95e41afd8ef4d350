package form

import (
	"context"
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/bekha-io/tuiforms/pkg/field"
	"github.com/bekha-io/tuiforms/pkg/prompt"
)

type stubDriver struct {
	inputs    []string
	passwords []string
	inputPos  int
	passPos   int
	infos     []string
	banners   []string
	errs      []string
}

func (s *stubDriver) Input(_ context.Context, _ prompt.InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ prompt.InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func (s *stubDriver) Banner(_ context.Context, msg string) error {
	s.banners = append(s.banners, msg)
	return nil
}

func (s *stubDriver) Error(_ context.Context, msg string) error {
	s.errs = append(s.errs, msg)
	return nil
}

func TestForm_ShowCollectsValidatedValues(t *testing.T) {
	f := New(WithName("sign up"))
	f.MustAddField("name", field.NewString("Name", field.StringConfig{}))
	f.MustAddField("age", field.NewInteger("Age", field.NumericConfig{
		Min: field.Bound(0),
		Max: field.Bound(120),
	}))

	driver := &stubDriver{inputs: []string{"Alice", "30"}}
	results, err := f.Show(context.Background(), driver)
	if err != nil {
		t.Fatalf("show: %v", err)
	}

	want := Results{"name": "Alice", "age": int64(30)}
	if diff := cmp.Diff(want, results); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
	if len(driver.banners) != 1 || driver.banners[0] != "==========SIGN UP==========" {
		t.Fatalf("unexpected banner: %v", driver.banners)
	}
}

func TestForm_ShowRendersInRegistrationOrder(t *testing.T) {
	f := New()
	f.MustAddField("first", field.NewString("First", field.StringConfig{}))
	f.MustAddField("second", field.NewInteger("Second", field.NumericConfig{}))
	f.MustAddField("third", field.NewString("Third", field.StringConfig{}))

	driver := &stubDriver{inputs: []string{"a", "2", "c"}}
	results, err := f.Show(context.Background(), driver)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if results["first"] != "a" || results["second"] != int64(2) || results["third"] != "c" {
		t.Fatalf("fields rendered out of order: %v", results)
	}
}

func TestForm_AnonymousFormSkipsBanner(t *testing.T) {
	f := New()
	f.MustAddField("name", field.NewString("Name", field.StringConfig{}))

	driver := &stubDriver{inputs: []string{"Alice"}}
	if _, err := f.Show(context.Background(), driver); err != nil {
		t.Fatalf("show: %v", err)
	}
	if len(driver.banners) != 0 {
		t.Fatalf("unexpected banner: %v", driver.banners)
	}
}

func TestForm_ShowReloopsInvalidFieldBeforeAdvancing(t *testing.T) {
	f := New()
	f.MustAddField("age", field.NewInteger("Age", field.NumericConfig{Max: field.Bound(120)}))
	f.MustAddField("name", field.NewString("Name", field.StringConfig{}))

	driver := &stubDriver{inputs: []string{"500", "30", "Alice"}}
	results, err := f.Show(context.Background(), driver)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if results["age"] != int64(30) || results["name"] != "Alice" {
		t.Fatalf("unexpected results: %v", results)
	}
	if len(driver.errs) != 1 {
		t.Fatalf("expected one validation message, got %v", driver.errs)
	}
}

func TestForm_AddFieldRejectsDuplicates(t *testing.T) {
	f := New()
	if err := f.AddField("name", field.NewString("Name", field.StringConfig{})); err != nil {
		t.Fatalf("add field: %v", err)
	}
	if err := f.AddField("name", field.NewString("Other", field.StringConfig{})); err == nil {
		t.Fatalf("duplicate registration accepted")
	}
	if err := f.AddField("", field.NewString("Name", field.StringConfig{})); err == nil {
		t.Fatalf("empty name accepted")
	}
	if err := f.AddField("nil", nil); err == nil {
		t.Fatalf("nil field accepted")
	}
}

func TestForm_IsValidWithShouldMatch(t *testing.T) {
	build := func(password, confirm string) *Form {
		f := New(WithShouldMatch("password", "confirm"))
		pw := field.NewHashed("Password", field.StringConfig{})
		cf := field.NewHashed("Confirm", field.StringConfig{})
		f.MustAddField("password", pw)
		f.MustAddField("confirm", cf)
		if err := pw.SetValue(password); err != nil {
			t.Fatalf("set password: %v", err)
		}
		if err := cf.SetValue(confirm); err != nil {
			t.Fatalf("set confirm: %v", err)
		}
		return f
	}

	if !build("secret", "secret").IsValid() {
		t.Fatalf("equal values reported invalid")
	}
	if build("secret", "different").IsValid() {
		t.Fatalf("differing values reported valid")
	}
}

func TestForm_IsValidWithoutShouldMatch(t *testing.T) {
	f := New()
	f.MustAddField("name", field.NewString("Name", field.StringConfig{}))
	if !f.IsValid() {
		t.Fatalf("form without should-match set must be valid")
	}
}

func TestForm_FieldLookupAndNames(t *testing.T) {
	f := New()
	f.MustAddField("name", field.NewString("Name", field.StringConfig{}))
	f.MustAddField("age", field.NewInteger("Age", field.NumericConfig{}))

	if _, ok := f.Field("name"); !ok {
		t.Fatalf("registered field not found")
	}
	if _, ok := f.Field("missing"); ok {
		t.Fatalf("unregistered field found")
	}
	if diff := cmp.Diff([]string{"name", "age"}, f.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestResults_EncodeJSON(t *testing.T) {
	results := Results{"name": "Alice", "age": int64(30)}
	data, err := results.EncodeJSON()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["name"] != "Alice" || decoded["age"] != float64(30) {
		t.Fatalf("unexpected round trip: %v", decoded)
	}
}
