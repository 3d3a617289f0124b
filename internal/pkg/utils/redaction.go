package utils

import (
	"abdm-link-service/internal/pkg/constvars"
	"strings"
)

// MaskIdentifier keeps the first two and last two characters of value and
// masks everything in between. Values of four characters or fewer are masked
// entirely.
func MaskIdentifier(value string) string {
	runes := []rune(value)
	visible := constvars.RedactionVisiblePrefix + constvars.RedactionVisibleSuffix
	if len(runes) <= visible {
		return strings.Repeat(string(constvars.RedactionMaskCharacter), len(runes))
	}

	masked := make([]rune, len(runes))
	for i, r := range runes {
		if i < constvars.RedactionVisiblePrefix || i >= len(runes)-constvars.RedactionVisibleSuffix {
			masked[i] = r
			continue
		}
		masked[i] = constvars.RedactionMaskCharacter
	}
	return string(masked)
}

func MaskOptionalIdentifier(value *string) string {
	if value == nil {
		return constvars.RedactionNullValue
	}
	return MaskIdentifier(*value)
}
