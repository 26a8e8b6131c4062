package components

import (
	"fittingroom/internal/infra/db"
	"fittingroom/internal/infra/readstore"
	"fittingroom/internal/infra/uow"
	"fittingroom/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the unit of work.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		// Read-side store for queries
		fx.Annotate(
			readstore.NewOccupancyReadStore,
			fx.As(new(queries.OccupancyReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
