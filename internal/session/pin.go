package session

import "strings"

// MaxPinDigits is the longest PIN the spreadsheet script accepts.
const MaxPinDigits = 6

// MinPinDigits is the shortest PIN accepted locally before any
// network call is made.
const MinPinDigits = 4

// NormalizePin strips everything that is not a digit and truncates
// the rest to MaxPinDigits.
func NormalizePin(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == MaxPinDigits {
			break
		}
	}
	return b.String()
}
