// Package masking obscures contact fields for leads that have not been
// revealed yet. Masked output keeps the shape of the original value but
// discloses no usable contact path.
package masking

import (
	"strings"
	"unicode"
)

const (
	MaskRune = '•'

	// Returned for values that do not look like an email at all.
	EmailPlaceholder = "••••@••••"

	emailKeepLocal = 2
	phoneKeepTail  = 4
)

// Email masks the local part of an address, keeping the first two characters
// and the full domain: "jordan@example.com" -> "jo••••@example.com".
// Input without an "@" yields a fixed placeholder.
func Email(raw string) string {
	at := strings.LastIndex(raw, "@")
	if at <= 0 {
		return EmailPlaceholder
	}

	local, domain := raw[:at], raw[at+1:]
	keep := emailKeepLocal
	if len(local) < keep {
		keep = len(local)
	}

	var b strings.Builder
	b.WriteString(local[:keep])
	for i := keep; i < len(local); i++ {
		b.WriteRune(MaskRune)
	}
	// Always hide at least something of the local part.
	if keep == len(local) {
		b.WriteRune(MaskRune)
	}
	b.WriteByte('@')
	b.WriteString(domain)
	return b.String()
}

// Name masks a person's name keeping the first letter of each word:
// "John Smith" -> "J••• S••••".
func Name(raw string) string {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return string(MaskRune)
	}

	masked := make([]string, len(words))
	for i, w := range words {
		runes := []rune(w)
		var b strings.Builder
		b.WriteRune(runes[0])
		for range runes[1:] {
			b.WriteRune(MaskRune)
		}
		masked[i] = b.String()
	}
	return strings.Join(masked, " ")
}

// Phone masks every digit except the last four, preserving punctuation and
// spacing: "(555) 123-4567" -> "(•••) •••-4567".
func Phone(raw string) string {
	digits := 0
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits == 0 {
		return raw
	}

	keepFrom := digits - phoneKeepTail
	if keepFrom < 0 {
		keepFrom = 0
	}

	var b strings.Builder
	seen := 0
	for _, r := range raw {
		if !unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		if seen >= keepFrom {
			b.WriteRune(r)
		} else {
			b.WriteRune(MaskRune)
		}
		seen++
	}
	return b.String()
}
