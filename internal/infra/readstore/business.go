package readstore

import (
	"context"
	"errors"

	"leadgate/internal/infra"
	"leadgate/internal/infra/db"
	"leadgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const selectBusinessColumns = `id, name, email, role, category, zipcode, is_active, password_hash`

type BusinessReadStore struct {
	q db.Querier
}

func NewBusinessReadStore(q db.Querier) *BusinessReadStore {
	return &BusinessReadStore{q: q}
}

func (r *BusinessReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedBusinessView, error) {
	return r.findOne(ctx,
		`SELECT `+selectBusinessColumns+` FROM businesses WHERE email = $1`,
		email,
	)
}

func (r *BusinessReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedBusinessView, error) {
	return r.findOne(ctx,
		`SELECT `+selectBusinessColumns+` FROM businesses WHERE id = $1`,
		id,
	)
}

func (r *BusinessReadStore) findOne(ctx context.Context, query string, arg any) (*queries.AuthorizedBusinessView, error) {
	var view queries.AuthorizedBusinessView
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&view.ID, &view.Name, &view.Email, &view.Role,
		&view.Category, &view.Zipcode, &view.IsActive, &view.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("business not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find business", err)
	}
	return &view, nil
}
