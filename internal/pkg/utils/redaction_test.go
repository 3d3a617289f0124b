package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "single character", input: "a", expected: "*"},
		{name: "four characters fully masked", input: "abcd", expected: "****"},
		{name: "five characters", input: "abcde", expected: "ab*de"},
		{name: "uuid", input: "123e4567-e89b-12d3-a456-426614174000", expected: "12" + strings.Repeat("*", 32) + "00"},
		{name: "multibyte runes", input: "ñandú-42", expected: "ña****42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskIdentifier(tt.input))
		})
	}
}

func TestMaskIdentifierNeverLeaksMiddle(t *testing.T) {
	value := "patient-secret-reference"
	masked := MaskIdentifier(value)

	assert.Len(t, []rune(masked), len([]rune(value)))
	assert.True(t, strings.HasPrefix(masked, "pa"))
	assert.True(t, strings.HasSuffix(masked, "ce"))
	assert.NotContains(t, masked, "secret")
}

func TestMaskOptionalIdentifier(t *testing.T) {
	assert.Equal(t, "null", MaskOptionalIdentifier(nil))

	value := "organization"
	assert.Equal(t, "or********on", MaskOptionalIdentifier(&value))
}
