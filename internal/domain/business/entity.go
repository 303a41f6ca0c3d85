// Package business holds the business account identity used for auth and
// lead assignment. Accounts are the actors that spend credits on reveals.
package business

import (
	"time"

	"github.com/google/uuid"
)

type Business struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	role         Role
	category     string
	zipcode      string
	isActive     bool
	createdAt    time.Time
}

func NewBusiness(name string, email Email, passwordHash string, role Role, category, zipcode string) *Business {
	return &Business{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		category:     category,
		zipcode:      zipcode,
		isActive:     true,
	}
}

func ReconstructBusiness(
	id uuid.UUID,
	name string,
	email Email,
	passwordHash string,
	role Role,
	category, zipcode string,
	isActive bool,
	createdAt time.Time,
) *Business {
	return &Business{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		category:     category,
		zipcode:      zipcode,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func (b *Business) ID() uuid.UUID        { return b.id }
func (b *Business) Name() string         { return b.name }
func (b *Business) Email() Email         { return b.email }
func (b *Business) PasswordHash() string { return b.passwordHash }
func (b *Business) Role() Role           { return b.role }
func (b *Business) Category() string     { return b.category }
func (b *Business) Zipcode() string      { return b.zipcode }
func (b *Business) IsActive() bool       { return b.isActive }
func (b *Business) CreatedAt() time.Time { return b.createdAt }
