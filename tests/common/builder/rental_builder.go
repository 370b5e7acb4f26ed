//go:build unit

package builder

import (
	"time"

	"car-rental-system/internal/domain/rental"
)

type RentalBuilder struct {
	VehicleID  string
	CustomerID string
	Days       int
	OpenedAt   time.Time
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		VehicleID:  "C001",
		CustomerID: "CUST1",
		Days:       3,
		OpenedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(b)
	return b
}

func (b *RentalBuilder) BuildDomain() (*rental.Rental, error) {
	return rental.NewRental(b.VehicleID, b.CustomerID, b.Days, b.OpenedAt)
}

// Fluent builder methods
func (b *RentalBuilder) WithVehicleID(id string) *RentalBuilder {
	b.VehicleID = id
	return b
}

func (b *RentalBuilder) WithCustomerID(id string) *RentalBuilder {
	b.CustomerID = id
	return b
}

func (b *RentalBuilder) WithDays(days int) *RentalBuilder {
	b.Days = days
	return b
}
