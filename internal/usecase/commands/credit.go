package commands

import (
	"context"
	"errors"

	"leadgate/internal/domain/credit"
	"leadgate/internal/pkg/errs"
	"leadgate/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=credit.go -destination=../../../tests/mock/commands/credit_mock.go -package=commandsmock

type GrantCreditsResult struct {
	TransactionID uuid.UUID
}

type CreditCommands interface {
	// GrantCredits records a positive ledger entry. The payment itself is
	// validated upstream; this is only the accounting.
	GrantCredits(ctx context.Context, businessID uuid.UUID, amount int64, reason credit.Reason, reference *uuid.UUID) (*GrantCreditsResult, error)
}

type creditUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCreditCommands(uow shared.UnitOfWork) CreditCommands {
	return &creditUseCaseImpl{uow: uow}
}

func (u *creditUseCaseImpl) GrantCredits(ctx context.Context, businessID uuid.UUID, amount int64, reason credit.Reason, reference *uuid.UUID) (*GrantCreditsResult, error) {
	// Domain validation up front: positive amount, grant-capable reason.
	if _, err := credit.NewGrant(businessID, amount, reason, reference); err != nil {
		if errors.Is(err, credit.ErrInvalidReason) {
			return nil, errs.Mark(err, errs.ErrInvalidReason)
		}
		return nil, errs.Mark(err, errs.ErrInvalidAmount)
	}

	var txID uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Ledger().Grant(ctx, businessID, amount, reason, reference)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		txID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &GrantCreditsResult{TransactionID: txID}, nil
}
