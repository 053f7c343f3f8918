package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePostalCode(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{"valid code", "018989", true},
		{"valid all zeros", "000000", true},
		{"five digits", "12345", false},
		{"seven digits", "1234567", false},
		{"letters", "abcdef", false},
		{"leading space", " 018989", false},
		{"trailing space", "018989 ", false},
		{"embedded dash", "018-89", false},
		{"empty", "", false},
		{"unicode digits", "٠١٨٩٨٩", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePostalCode(tt.code)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	assert.NotErrorIs(t, ErrInvalidFormat, ErrNotFound)
	assert.NotErrorIs(t, ErrNotFound, ErrInvalidFormat)
}
