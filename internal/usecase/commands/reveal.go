package commands

import (
	"context"

	"leadgate/internal/infra"
	"leadgate/internal/pkg/clock"
	"leadgate/internal/pkg/errs"
	"leadgate/internal/usecase/queries"
	"leadgate/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reveal.go -destination=../../../tests/mock/commands/reveal_mock.go -package=commandsmock

// RevealCostCredits is charged once per (lead, business) pair.
const RevealCostCredits = 1

type RevealResult struct {
	Lead             *queries.LeadView
	CreditsRemaining int64
	// AlreadyRevealed marks the idempotent short-circuit: the caller had
	// revealed this lead before and was not charged again.
	AlreadyRevealed bool
}

type RevealCommands interface {
	Reveal(ctx context.Context, leadID, businessID uuid.UUID) (*RevealResult, error)
}

type revealUseCaseImpl struct {
	uow           shared.UnitOfWork
	leadQueries   queries.LeadQueries
	creditQueries queries.CreditQueries
	clock         clock.Clock
}

func NewRevealCommands(
	uow shared.UnitOfWork,
	leadQueries queries.LeadQueries,
	creditQueries queries.CreditQueries,
	clock clock.Clock,
) RevealCommands {
	return &revealUseCaseImpl{
		uow:           uow,
		leadQueries:   leadQueries,
		creditQueries: creditQueries,
		clock:         clock,
	}
}

// Reveal spends exactly one credit to unmask a lead's contact fields for the
// calling business.
//
// The debit and the flag-set run in one transaction, and each is idempotent
// on its own: the ledger keys reveal spends by (business, lead) and
// MarkRevealed absorbs a second call as a no-op. A retry of the whole
// operation after a partial failure therefore never double-charges: the
// debit step finds the existing transaction and the flag step converges.
// Concurrent calls serialize on the balance row lock inside TryDebit.
func (u *revealUseCaseImpl) Reveal(ctx context.Context, leadID, businessID uuid.UUID) (*RevealResult, error) {
	alreadyRevealed := false

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		assignment, err := tx.Assignments().Find(ctx, leadID, businessID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNotAssigned)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if assignment.Revealed() {
			alreadyRevealed = true
			return nil
		}

		if _, err := tx.Ledger().TryDebit(ctx, businessID, RevealCostCredits, leadID); err != nil {
			if infra.IsKind(err, infra.KindConditionNotMet) {
				return errs.Mark(err, errs.ErrInsufficientCredits)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if _, err := tx.Assignments().MarkRevealed(ctx, leadID, businessID, u.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: the committed assignment flag makes the view unmasked.
	view, err := u.leadQueries.GetForBusiness(ctx, leadID, businessID)
	if err != nil {
		return nil, err
	}

	balance, err := u.creditQueries.GetBalance(ctx, businessID)
	if err != nil {
		return nil, err
	}

	return &RevealResult{
		Lead:             view,
		CreditsRemaining: balance.Balance,
		AlreadyRevealed:  alreadyRevealed,
	}, nil
}
