package bootstrap

import (
	"fittingroom/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// InfraModule is everything below the usecases except the database pool.
var InfraModule = fx.Options(
	LoggerModule,
	JWTModule,
	ChangeFeedModule,
	NotifierModule,
	MetricsModule,
	TelemetryModule,
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	InfraModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
