package components

import (
	"car-rental-system/internal/infra/memstore"
	"car-rental-system/internal/usecase/commands"
	"car-rental-system/internal/usecase/queries"

	"go.uber.org/fx"
)

// Each store backs both the write-side port and the read-side port, so
// commands and queries observe the same process-lifetime state.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			memstore.NewFleetStore,
			fx.As(new(commands.FleetRepository)),
			fx.As(new(queries.FleetReadStore)),
		),
		fx.Annotate(
			memstore.NewCustomerStore,
			fx.As(new(commands.CustomerRepository)),
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			memstore.NewLedgerStore,
			fx.As(new(commands.LedgerRepository)),
			fx.As(new(queries.LedgerReadStore)),
		),
	),
)
