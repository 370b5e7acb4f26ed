//go:build unit

package builder

import (
	"car-rental-system/internal/domain/vehicle"
)

type VehicleBuilder struct {
	ID              string
	Brand           string
	Model           string
	BasePricePerDay float64
	Kind            vehicle.Kind
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		ID:              "C001",
		Brand:           "Toyota",
		Model:           "Camry",
		BasePricePerDay: 60.0,
		Kind:            vehicle.KindStandard,
	}
}

func (b *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(b)
	return b
}

func (b *VehicleBuilder) BuildDomain() (*vehicle.Vehicle, error) {
	return vehicle.NewVehicle(b.ID, b.Brand, b.Model, b.BasePricePerDay, b.Kind)
}

// Fluent builder methods
func (b *VehicleBuilder) WithID(id string) *VehicleBuilder {
	b.ID = id
	return b
}

func (b *VehicleBuilder) WithBrand(brand string) *VehicleBuilder {
	b.Brand = brand
	return b
}

func (b *VehicleBuilder) WithModel(model string) *VehicleBuilder {
	b.Model = model
	return b
}

func (b *VehicleBuilder) WithBasePricePerDay(price float64) *VehicleBuilder {
	b.BasePricePerDay = price
	return b
}

func (b *VehicleBuilder) WithKind(kind vehicle.Kind) *VehicleBuilder {
	b.Kind = kind
	return b
}

func (b *VehicleBuilder) AsLuxury() *VehicleBuilder {
	b.ID = "LC001"
	b.Brand = "Mercedes"
	b.Model = "S-Class"
	b.BasePricePerDay = 200.0
	b.Kind = vehicle.KindLuxury
	return b
}
