package project

import "fmt"

// ValidateName checks that name is non-empty and consists only of ASCII
// letters, digits, '-' and '_'.
func ValidateName(name string) error {
	if name == "" {
		return &ValidationError{Field: "project name", Value: name, Reason: "must not be empty"}
	}
	for i, r := range name {
		if !isNameRune(r) {
			return &ValidationError{
				Field:  "project name",
				Value:  name,
				Reason: fmt.Sprintf("character %q at position %d is not allowed (use letters, digits, '-' and '_')", r, i),
			}
		}
	}
	return nil
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}
