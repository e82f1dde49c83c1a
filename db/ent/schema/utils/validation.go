package utils

import "fmt"

// EnumValidator builds an ent string validator accepting only the given
// values. Job statuses and fuel types are stored as text and validated
// with it at the schema level.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not allowed", s)
	}
}
