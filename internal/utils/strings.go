package utils

import "strings"

// MaskPAN masks a card number leaving the first six and last four digits
// visible, the way acquirers display stored cards.
func MaskPAN(pan string) string {
	digits := strings.ReplaceAll(pan, " ", "")
	if len(digits) < 10 {
		return strings.Repeat("*", len(digits))
	}
	return digits[:6] + strings.Repeat("*", len(digits)-10) + digits[len(digits)-4:]
}
