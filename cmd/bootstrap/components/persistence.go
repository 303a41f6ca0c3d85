package components

import (
	"leadgate/internal/infra/db"
	"leadgate/internal/infra/matching"
	"leadgate/internal/infra/readstore"
	"leadgate/internal/infra/uow"
	"leadgate/internal/usecase/commands"
	"leadgate/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewPoolQuerier,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Lead
		fx.Annotate(
			readstore.NewLeadReadStore,
			fx.As(new(queries.LeadReadStore)),
		),
		// Credit
		fx.Annotate(
			readstore.NewCreditReadStore,
			fx.As(new(queries.CreditReadStore)),
		),
		// Business
		fx.Annotate(
			readstore.NewBusinessReadStore,
			fx.As(new(queries.BusinessReadStore)),
		),
		// Matching
		fx.Annotate(
			matching.NewZipPrefixMatcher,
			fx.As(new(commands.LocationMatcher)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork owns the write-side repositories; they are reached
		// through the transaction, never injected directly.
		uow.NewPostgresUoW,
	),
)

func NewPoolQuerier(pool *pgxpool.Pool) db.Querier {
	return pool
}
