package field

// Validator checks an already-converted value against one constraint. A nil
// return means the value passed.
type Validator[T any] func(T) *ValidateError

// runValidators applies the chain in order. Subtype validators are placed
// ahead of base validators at construction time, so the first failure wins
// and short-circuits exactly like the original chained checks.
func runValidators[T any](validators []Validator[T], value T) *ValidateError {
	for _, validate := range validators {
		if err := validate(value); err != nil {
			return err
		}
	}
	return nil
}
