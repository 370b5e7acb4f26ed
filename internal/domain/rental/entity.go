package rental

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDays = errors.New("rental days must be positive")

// Rental is one agreement between a vehicle and a customer. The entity
// holds non-owning references by ID; vehicle and customer lifecycles are
// managed by their own stores.
type Rental struct {
	id         uuid.UUID
	vehicleID  string
	customerID string
	days       int
	openedAt   time.Time
}

func NewRental(vehicleID, customerID string, days int, now time.Time) (*Rental, error) {
	if days <= 0 {
		return nil, ErrInvalidDays
	}

	return &Rental{
		id:         uuid.New(),
		vehicleID:  vehicleID,
		customerID: customerID,
		days:       days,
		openedAt:   now,
	}, nil
}

func (r *Rental) ID() uuid.UUID       { return r.id }
func (r *Rental) VehicleID() string   { return r.vehicleID }
func (r *Rental) CustomerID() string  { return r.customerID }
func (r *Rental) Days() int           { return r.days }
func (r *Rental) OpenedAt() time.Time { return r.openedAt }
