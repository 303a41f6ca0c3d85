//go:build unit

package masking_test

import (
	"strings"
	"testing"

	"leadgate/internal/pkg/masking"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "typical address", in: "jordan@example.com", want: "jo••••@example.com"},
		{name: "two char local part", in: "jo@example.com", want: "jo•@example.com"},
		{name: "one char local part", in: "j@example.com", want: "j•@example.com"},
		{name: "no at sign", in: "not-an-email", want: masking.EmailPlaceholder},
		{name: "empty string", in: "", want: masking.EmailPlaceholder},
		{name: "leading at sign", in: "@example.com", want: masking.EmailPlaceholder},
		{name: "subdomain kept in full", in: "casey@mail.sub.example.co", want: "ca•••@mail.sub.example.co"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, masking.Email(tc.in))
		})
	}
}

func TestEmailHidesLocalPart(t *testing.T) {
	raw := "firstname.lastname@example.com"
	masked := masking.Email(raw)

	assert.NotContains(t, masked, "rstname.lastname")
	assert.True(t, strings.HasSuffix(masked, "@example.com"))
}

func TestEmailDeterministic(t *testing.T) {
	raw := "sam.taylor@example.org"
	assert.Equal(t, masking.Email(raw), masking.Email(raw))
}

func TestName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "two words", in: "John Smith", want: "J••• S••••"},
		{name: "single word", in: "Cher", want: "C•••"},
		{name: "single letter", in: "J", want: "J"},
		{name: "empty", in: "", want: "•"},
		{name: "extra whitespace collapsed", in: "  Ana  de Armas ", want: "A•• d• A••••"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, masking.Name(tc.in))
		})
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "us format with punctuation", in: "(555) 123-4567", want: "(•••) •••-4567"},
		{name: "dashed", in: "555-123-4567", want: "•••-•••-4567"},
		{name: "bare digits", in: "5551234567", want: "••••••4567"},
		{name: "short number keeps all", in: "123", want: "123"},
		{name: "exactly four digits", in: "4567", want: "4567"},
		{name: "no digits passes through", in: "n/a", want: "n/a"},
		{name: "empty string", in: "", want: ""},
		{name: "international", in: "+1 555 123 4567", want: "+• ••• ••• 4567"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, masking.Phone(tc.in))
		})
	}
}

func TestPhonePreservesShape(t *testing.T) {
	raw := "(555) 987-6543"
	masked := masking.Phone(raw)

	// Same length, same punctuation positions.
	assert.Len(t, []rune(masked), len([]rune(raw)))
	for i, r := range []rune(raw) {
		if r == ' ' || r == '(' || r == ')' || r == '-' {
			assert.Equal(t, r, []rune(masked)[i])
		}
	}
}
