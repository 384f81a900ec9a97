package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPAN(t *testing.T) {
	testCases := []struct {
		name     string
		pan      string
		expected string
	}{
		{"sixteen digits", "8600123456781234", "860012******1234"},
		{"with spaces", "8600 1234 5678 1234", "860012******1234"},
		{"too short to split", "86001234", "********"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskPAN(tc.pan))
		})
	}
}
