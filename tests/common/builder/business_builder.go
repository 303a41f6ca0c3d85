//go:build unit || e2e

package builder

import (
	reqdto "leadgate/internal/handler/dto/request"
	"leadgate/internal/pkg/password"
	"leadgate/internal/usecase/queries"

	"github.com/google/uuid"
)

type BusinessBuilder struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
	Role     string
	Category string
	Zipcode  string
	IsActive bool
}

func NewBusinessBuilder() *BusinessBuilder {
	return &BusinessBuilder{
		ID:       uuid.New(),
		Name:     "Ace Plumbing Co",
		Email:    "owner@aceplumbing.example.com",
		Password: "password123",
		Role:     "member",
		Category: "plumbing",
		Zipcode:  "94103",
		IsActive: true,
	}
}

// Build methods
func (b *BusinessBuilder) BuildView() *queries.AuthorizedBusinessView {
	return &queries.AuthorizedBusinessView{
		ID:       b.ID,
		Name:     b.Name,
		Email:    b.Email,
		Role:     b.Role,
		Category: b.Category,
		Zipcode:  b.Zipcode,
		IsActive: b.IsActive,
	}
}

// BuildViewWithHash includes a real bcrypt hash of the builder's password.
func (b *BusinessBuilder) BuildViewWithHash() (*queries.AuthorizedBusinessView, error) {
	view := b.BuildView()
	hash, err := password.HashPassword(b.Password)
	if err != nil {
		return nil, err
	}
	view.PasswordHash = hash
	return view, nil
}

func (b *BusinessBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

// Fluent builder methods
func (b *BusinessBuilder) WithID(id uuid.UUID) *BusinessBuilder {
	b.ID = id
	return b
}

func (b *BusinessBuilder) WithEmail(email string) *BusinessBuilder {
	b.Email = email
	return b
}

func (b *BusinessBuilder) WithPassword(pass string) *BusinessBuilder {
	b.Password = pass
	return b
}

func (b *BusinessBuilder) WithRole(role string) *BusinessBuilder {
	b.Role = role
	return b
}

func (b *BusinessBuilder) WithCategory(category string) *BusinessBuilder {
	b.Category = category
	return b
}

func (b *BusinessBuilder) WithZipcode(zipcode string) *BusinessBuilder {
	b.Zipcode = zipcode
	return b
}

func (b *BusinessBuilder) AsInactive() *BusinessBuilder {
	b.IsActive = false
	return b
}

func (b *BusinessBuilder) AsAdmin() *BusinessBuilder {
	b.Role = "admin"
	return b
}
