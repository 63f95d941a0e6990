package components

import (
	"log/slog"

	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/config"
	"bookstore-api/internal/usecase"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"
	"bookstore-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseAuthModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookCommands,
		commands.NewReservationCommands,
		func(
			uow shared.UnitOfWork,
			cache commands.CacheInvalidator,
			clock clock.Clock,
			logger *slog.Logger,
			cfg config.Config,
		) commands.CustomerCommands {
			return commands.NewCustomerCommands(uow, cache, clock, logger, cfg.Reservation.DefaultMaxReservations)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookQueries,
		queries.NewCustomerQueries,
		queries.NewReservationQueries,
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewAuthenticator,
	),
)
