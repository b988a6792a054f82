package bootstrap

import (
	"autofin/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	QuoteModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
