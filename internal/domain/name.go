package domain

import (
	"strings"
	"unicode"
)

// NormalizedName is a validated, trimmed, lowercased Pokemon name. It only
// contains ASCII lowercase letters, hyphens and spaces and is never empty.
type NormalizedName string

// String returns the name as a plain string.
func (n NormalizedName) String() string {
	return string(n)
}

// ValidateName checks a raw lookup name and returns its normalized form.
//
// The policy is strict: uppercase input is rejected rather than lowercased.
// Blank input yields ErrNameRequired; digits, uppercase letters or any
// character outside a-z, '-' and ' ' yield ErrInvalidName.
func ValidateName(raw string) (NormalizedName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", NewValidationError("name", "is required", ErrNameRequired)
	}

	if strings.IndexFunc(raw, unicode.IsDigit) >= 0 {
		return "", NewValidationError("name", "must not contain digits", ErrInvalidName)
	}

	if raw != strings.ToLower(raw) {
		return "", NewValidationError("name", "must be lowercase", ErrInvalidName)
	}

	cleaned := strings.ToLower(trimmed)
	for _, r := range cleaned {
		if !isNameRune(r) {
			return "", NewValidationError("name", "contains unsupported characters", ErrInvalidName)
		}
	}

	return NormalizedName(cleaned), nil
}

func isNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || r == '-' || r == ' '
}
