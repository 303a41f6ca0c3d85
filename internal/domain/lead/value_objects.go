package lead

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyName         = errors.New("consumer name cannot be empty")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrEmptyCategory     = errors.New("service category cannot be empty")
	ErrNegativeBudget    = errors.New("budget cannot be negative")
	ErrInvalidZipcode    = errors.New("invalid zipcode")
	ErrNoteTooLong       = errors.New("note exceeds maximum length")
	ErrInvalidStatus     = errors.New("invalid lead status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyRevealed   = errors.New("assignment already revealed")
)

const MaxNoteLength = 2000

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	zipcodeRegex = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
)

// Contact holds the personally-identifying fields that stay masked until a
// business spends a credit.
type Contact struct {
	name  string
	email Email
	phone Phone
}

func NewContact(name string, email Email, phone Phone) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contact{}, ErrEmptyName
	}
	return Contact{name: name, email: email, phone: phone}, nil
}

func (c Contact) Name() string { return c.name }
func (c Contact) Email() Email { return c.email }
func (c Contact) Phone() Phone { return c.phone }

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }

type Phone struct {
	value string
}

// NewPhone accepts common punctuation and requires at least seven digits.
func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+' || r == '.':
		default:
			return Phone{}, ErrInvalidPhone
		}
	}
	if digits < 7 {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string { return p.value }

type Zipcode struct {
	value string
}

func NewZipcode(s string) (Zipcode, error) {
	s = strings.TrimSpace(s)
	if !zipcodeRegex.MatchString(s) {
		return Zipcode{}, ErrInvalidZipcode
	}
	return Zipcode{value: s}, nil
}

func (z Zipcode) Value() string { return z.value }

// Prefix returns the leading digits used for area matching.
func (z Zipcode) Prefix(n int) string {
	if n > len(z.value) {
		n = len(z.value)
	}
	return z.value[:n]
}

// Note is the single opaque free-form field on a lead. Arbitrary extra quote
// fields collapse into it rather than an open map.
type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if len(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string { return n.value }
func (n Note) IsEmpty() bool  { return n.value == "" }
