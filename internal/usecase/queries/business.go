package queries

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=business.go -destination=../../../tests/mock/queries/business_mock.go -package=queriesmock

// AuthorizedBusinessView carries what the auth layer needs about an account.
type AuthorizedBusinessView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Category     string    `json:"category"`
	Zipcode      string    `json:"zipcode"`
	IsActive     bool      `json:"is_active"`
	PasswordHash string    `json:"-"`
}

type BusinessReadStore interface {
	FindByEmail(ctx context.Context, email string) (*AuthorizedBusinessView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedBusinessView, error)
}
