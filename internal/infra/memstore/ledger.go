package memstore

import (
	"context"

	"car-rental-system/internal/domain/rental"
)

// LedgerStore tracks currently active rental agreements. Closed
// agreements disappear from the ledger; the permanent record lives on
// each customer's history. Not safe for concurrent use.
type LedgerStore struct {
	rentals []*rental.Rental
}

func NewLedgerStore() *LedgerStore {
	return &LedgerStore{}
}

// Open stores an agreement. The caller has already verified the vehicle
// is rentable; the ledger does not re-check.
func (s *LedgerStore) Open(_ context.Context, r *rental.Rental) error {
	s.rentals = append(s.rentals, r)
	return nil
}

// CloseByVehicle removes every agreement referencing the vehicle. Under
// the one-active-rental invariant that is at most one entry, but the
// sweep removes all matches rather than stopping at the first.
func (s *LedgerStore) CloseByVehicle(_ context.Context, vehicleID string) error {
	kept := s.rentals[:0]
	for _, r := range s.rentals {
		if r.VehicleID() != vehicleID {
			kept = append(kept, r)
		}
	}
	s.rentals = kept
	return nil
}

func (s *LedgerStore) Active(_ context.Context) ([]*rental.Rental, error) {
	out := make([]*rental.Rental, len(s.rentals))
	copy(out, s.rentals)
	return out, nil
}
