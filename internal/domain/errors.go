package domain

import (
	"errors"
	"regexp"
)

var (
	// ErrInvalidFormat indicates the supplied postal code is not exactly six
	// decimal digits. The store is never consulted for such input.
	ErrInvalidFormat = errors.New("postal code must be exactly 6 digits")

	// ErrNotFound indicates a well-formed postal code with no record in the
	// store. This is a user-visible miss, not a system fault.
	ErrNotFound = errors.New("postal code not found")
)

// postalCodeRe matches exactly six ASCII decimal digits with no surrounding
// characters or whitespace.
var postalCodeRe = regexp.MustCompile(`^\d{6}$`)

// ValidatePostalCode returns ErrInvalidFormat unless code is exactly six
// decimal digits.
func ValidatePostalCode(code string) error {
	if !postalCodeRe.MatchString(code) {
		return ErrInvalidFormat
	}
	return nil
}
