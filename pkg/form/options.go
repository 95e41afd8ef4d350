package form

// Option configures a Form at construction time.
type Option func(*Form)

// WithName sets the banner name shown, uppercased, at the top of Show.
func WithName(name string) Option {
	return func(f *Form) {
		f.name = name
	}
}

// WithShouldMatch declares the field names whose values must all be equal
// for IsValid to report true. Typical use: password and its confirmation.
func WithShouldMatch(names ...string) Option {
	return func(f *Form) {
		f.shouldMatch = append([]string(nil), names...)
	}
}
