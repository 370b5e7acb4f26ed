package commands

import (
	"context"

	"car-rental-system/internal/domain/customer"
	"car-rental-system/internal/domain/rental"
	"car-rental-system/internal/domain/vehicle"
)

// Write-side ports, implemented by internal/infra/memstore.

type FleetRepository interface {
	Add(ctx context.Context, v *vehicle.Vehicle) error
	FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error)
}

type CustomerRepository interface {
	Register(ctx context.Context, name string) (*customer.Customer, error)
	FindByID(ctx context.Context, id string) (*customer.Customer, error)
}

type LedgerRepository interface {
	Open(ctx context.Context, r *rental.Rental) error
	CloseByVehicle(ctx context.Context, vehicleID string) error
}
