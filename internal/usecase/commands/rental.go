package commands

import (
	"context"
	"log/slog"

	"car-rental-system/internal/domain/rental"
	"car-rental-system/internal/pkg/clock"
	"car-rental-system/internal/pkg/errs"
)

// RentalReceipt carries everything the presentation layer needs to
// report a successful rental.
type RentalReceipt struct {
	VehicleID    string
	Brand        string
	Model        string
	CustomerName string
	Days         int
	TotalPrice   float64
}

type RentalCommands interface {
	RentVehicle(ctx context.Context, vehicleID, customerID string, days int) (*RentalReceipt, error)
	ReturnVehicle(ctx context.Context, vehicleID string) error
	MarkForMaintenance(ctx context.Context, vehicleID string) error
	ClearMaintenance(ctx context.Context, vehicleID string) error
}

type rentalCommandsImpl struct {
	fleet     FleetRepository
	customers CustomerRepository
	ledger    LedgerRepository
	clock     clock.Clock
}

func NewRentalCommands(
	fleet FleetRepository,
	customers CustomerRepository,
	ledger LedgerRepository,
	clock clock.Clock,
) RentalCommands {
	return &rentalCommandsImpl{
		fleet:     fleet,
		customers: customers,
		ledger:    ledger,
		clock:     clock,
	}
}

func (r *rentalCommandsImpl) RentVehicle(ctx context.Context, vehicleID, customerID string, days int) (*RentalReceipt, error) {
	cust, err := r.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCustomerNotFound)
	}

	// An unknown ID and a vehicle that is rented out or under maintenance
	// are reported the same way: not available.
	v, err := r.fleet.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrVehicleUnavailable)
	}
	if !v.IsRentable() {
		return nil, errs.ErrVehicleUnavailable
	}

	agreement, err := rental.NewRental(v.ID(), cust.ID(), days, r.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRentalDays)
	}

	v.MarkRented()
	if err := r.ledger.Open(ctx, agreement); err != nil {
		return nil, err
	}
	cust.AddRental(*agreement)

	slog.Debug("rental opened",
		"rental_id", agreement.ID(),
		"vehicle_id", v.ID(),
		"customer_id", cust.ID(),
		"days", days,
	)

	return &RentalReceipt{
		VehicleID:    v.ID(),
		Brand:        v.Brand(),
		Model:        v.Model(),
		CustomerName: cust.Name(),
		Days:         days,
		TotalPrice:   v.Price(days),
	}, nil
}

// ReturnVehicle succeeds even for a vehicle that was never rented:
// availability is restored unconditionally and the ledger sweep simply
// removes nothing. A maintenance flag survives the return.
func (r *rentalCommandsImpl) ReturnVehicle(ctx context.Context, vehicleID string) error {
	v, err := r.fleet.FindByID(ctx, vehicleID)
	if err != nil {
		return errs.Mark(err, errs.ErrVehicleNotFound)
	}

	v.MarkReturned()
	return r.ledger.CloseByVehicle(ctx, v.ID())
}

// MarkForMaintenance makes the vehicle unrentable immediately. A vehicle
// that is currently rented out keeps its active agreement; the flag only
// blocks new rentals.
func (r *rentalCommandsImpl) MarkForMaintenance(ctx context.Context, vehicleID string) error {
	return r.setMaintenance(ctx, vehicleID, true)
}

func (r *rentalCommandsImpl) ClearMaintenance(ctx context.Context, vehicleID string) error {
	return r.setMaintenance(ctx, vehicleID, false)
}

func (r *rentalCommandsImpl) setMaintenance(ctx context.Context, vehicleID string, flag bool) error {
	v, err := r.fleet.FindByID(ctx, vehicleID)
	if err != nil {
		return errs.Mark(err, errs.ErrVehicleNotFound)
	}
	v.SetMaintenance(flag)
	return nil
}
