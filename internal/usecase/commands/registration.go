package commands

import (
	"context"

	"car-rental-system/internal/domain/vehicle"
	"car-rental-system/internal/pkg/errs"
)

type CustomerReceipt struct {
	ID   string
	Name string
}

type RegistrationCommands interface {
	AddVehicle(ctx context.Context, id, brand, model string, basePricePerDay float64, kind vehicle.Kind) error
	RegisterCustomer(ctx context.Context, name string) (*CustomerReceipt, error)
}

type registrationCommandsImpl struct {
	fleet     FleetRepository
	customers CustomerRepository
}

func NewRegistrationCommands(fleet FleetRepository, customers CustomerRepository) RegistrationCommands {
	return &registrationCommandsImpl{
		fleet:     fleet,
		customers: customers,
	}
}

func (r *registrationCommandsImpl) AddVehicle(ctx context.Context, id, brand, model string, basePricePerDay float64, kind vehicle.Kind) error {
	v, err := vehicle.NewVehicle(id, brand, model, basePricePerDay, kind)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	return r.fleet.Add(ctx, v)
}

func (r *registrationCommandsImpl) RegisterCustomer(ctx context.Context, name string) (*CustomerReceipt, error) {
	cust, err := r.customers.Register(ctx, name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return &CustomerReceipt{ID: cust.ID(), Name: cust.Name()}, nil
}
