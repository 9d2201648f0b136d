package macro

import "unicode"

// IsValidRegister returns true if r can hold a macro: a-z or 0-9.
func IsValidRegister(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// IsAppendRegister returns true if r is an uppercase letter (A-Z).
// Recording into it appends to the corresponding lowercase register.
func IsAppendRegister(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Normalize converts a register to its canonical form, or 0 if invalid.
func Normalize(r rune) rune {
	if IsAppendRegister(r) {
		return unicode.ToLower(r)
	}
	if IsValidRegister(r) {
		return r
	}
	return 0
}
