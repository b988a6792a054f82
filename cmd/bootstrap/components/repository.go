package components

import (
	repo_impl "autofin/internal/infra/repository"
	"autofin/internal/usecase/commands"
	"autofin/internal/usecase/queries"
	"autofin/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewCarRepository,
			fx.As(new(commands.CarReadStore)),
			fx.As(new(queries.CarReader)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewOfferRepository,
			fx.As(new(shared.OfferRepository)),
		),
	),
)
