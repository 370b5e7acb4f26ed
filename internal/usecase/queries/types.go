package queries

import (
	"context"
	"time"

	"car-rental-system/internal/domain/customer"
	"car-rental-system/internal/domain/rental"
	"car-rental-system/internal/domain/vehicle"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type VehicleView struct {
	ID          string  `json:"id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	PricePerDay float64 `json:"price_per_day"`
}

type HistoryItem struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Days  int    `json:"days"`
}

type HistoryView struct {
	CustomerID   string        `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	Items        []HistoryItem `json:"items"`
}

type ActiveRentalView struct {
	RentalID     uuid.UUID `json:"rental_id"`
	VehicleID    string    `json:"vehicle_id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Days         int       `json:"days"`
	OpenedAt     time.Time `json:"opened_at"`
}

// Read-side ports, implemented by internal/infra/memstore.

type FleetReadStore interface {
	FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error)
	FindRentable(ctx context.Context) ([]*vehicle.Vehicle, error)
	Search(ctx context.Context, query string) ([]*vehicle.Vehicle, error)
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id string) (*customer.Customer, error)
}

type LedgerReadStore interface {
	Active(ctx context.Context) ([]*rental.Rental, error)
}
