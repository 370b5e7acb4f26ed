package bootstrap

import (
	"context"
	"log/slog"

	"car-rental-system/internal/domain/vehicle"
	"car-rental-system/internal/pkg/config"
	"car-rental-system/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(
		SeedFleet,
	),
)

// SeedFleet loads the fixed demo fleet at startup.
func SeedFleet(cfg config.Config, registration commands.RegistrationCommands, logger *slog.Logger) error {
	if !cfg.Seed.Fleet {
		return nil
	}

	seeds := []struct {
		id    string
		brand string
		model string
		price float64
		kind  vehicle.Kind
	}{
		{"C001", "Toyota", "Camry", 60.0, vehicle.KindStandard},
		{"C002", "Honda", "Accord", 70.0, vehicle.KindStandard},
		{"LC001", "Mercedes", "S-Class", 200.0, vehicle.KindLuxury},
		{"LC002", "BMW", "7 Series", 250.0, vehicle.KindLuxury},
	}

	ctx := context.Background()
	for _, s := range seeds {
		if err := registration.AddVehicle(ctx, s.id, s.brand, s.model, s.price, s.kind); err != nil {
			return err
		}
	}

	logger.Info("seeded demo fleet", "vehicles", len(seeds))
	return nil
}
