package commands

import (
	"context"

	"leadgate/internal/domain/lead"
	"leadgate/internal/infra"
	"leadgate/internal/pkg/errs"
	"leadgate/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=lifecycle.go -destination=../../../tests/mock/commands/lifecycle_mock.go -package=commandsmock

type LifecycleCommands interface {
	SetStatus(ctx context.Context, leadID, businessID uuid.UUID, newStatus lead.Status) error
}

type lifecycleUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewLifecycleCommands(uow shared.UnitOfWork) LifecycleCommands {
	return &lifecycleUseCaseImpl{uow: uow}
}

// SetStatus applies a lifecycle transition requested by a business.
//
// The business must hold a revealed assignment: without the contact path it
// cannot have contacted the consumer, so un-revealed leads reject every
// transition with ErrNotRevealed. Transitions never consume credits.
func (u *lifecycleUseCaseImpl) SetStatus(ctx context.Context, leadID, businessID uuid.UUID, newStatus lead.Status) error {
	if !newStatus.IsValid() {
		return errs.ErrInvalidTransition
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		assignment, err := tx.Assignments().Find(ctx, leadID, businessID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNotAssigned)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !assignment.Revealed() {
			return errs.ErrNotRevealed
		}

		current, err := tx.Leads().FindByID(ctx, leadID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrLeadNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := lead.ValidateTransition(current.Status, newStatus); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		if err := tx.Leads().SetStatus(ctx, leadID, newStatus); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
