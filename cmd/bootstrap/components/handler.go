package components

import (
	"log/slog"
	"os"

	"car-rental-system/internal/handler/cli"
	"car-rental-system/internal/usecase/commands"
	"car-rental-system/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewMenu,
	),
)

func NewMenu(
	rentals commands.RentalCommands,
	registration commands.RegistrationCommands,
	fleet queries.FleetQueries,
	rentalViews queries.RentalQueries,
	logger *slog.Logger,
) *cli.Menu {
	return cli.NewMenu(rentals, registration, fleet, rentalViews, logger, os.Stdin, os.Stdout)
}
