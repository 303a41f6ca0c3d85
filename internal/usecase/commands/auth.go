package commands

import (
	"context"
	"errors"

	"leadgate/internal/domain/business"
	"leadgate/internal/infra"
	"leadgate/internal/pkg/jwt"
	"leadgate/internal/pkg/password"
	"leadgate/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrBusinessNotFound   = errors.New("business not found")
)

type LoginResult struct {
	Token    string
	Business *queries.AuthorizedBusinessView
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	Me(ctx context.Context, businessID uuid.UUID) (*queries.AuthorizedBusinessView, error)
}

type authUseCaseImpl struct {
	businesses queries.BusinessReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(businesses queries.BusinessReadStore, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		businesses: businesses,
		jwtService: jwtService,
	}
}

func (u *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	account, err := u.businesses.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a bad password so probing reveals nothing.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, ErrAccountInactive
	}

	if err := password.ComparePassword(account.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := business.NewRole(account.Role)
	if err != nil {
		return nil, err
	}

	token, err := u.jwtService.GenerateToken(account.ID, role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Business: account}, nil
}

func (u *authUseCaseImpl) Me(ctx context.Context, businessID uuid.UUID) (*queries.AuthorizedBusinessView, error) {
	account, err := u.businesses.FindByID(ctx, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return account, nil
}
