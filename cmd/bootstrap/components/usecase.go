package components

import (
	"car-rental-system/internal/pkg/clock"
	"car-rental-system/internal/usecase/commands"
	"car-rental-system/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRentalCommands,
		commands.NewRegistrationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFleetQueries,
		queries.NewRentalQueries,
	),
)
