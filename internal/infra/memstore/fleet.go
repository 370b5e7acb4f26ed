package memstore

import (
	"context"
	"strings"

	"car-rental-system/internal/domain/vehicle"
	"car-rental-system/internal/pkg/errs"
)

// FleetStore holds the vehicle catalog for the lifetime of the process.
// All lookups are linear scans; the fleet is tens of records. Not safe
// for concurrent use: the application drives it from a single menu loop.
type FleetStore struct {
	vehicles []*vehicle.Vehicle
}

func NewFleetStore() *FleetStore {
	return &FleetStore{}
}

// Add appends without a duplicate-ID check; with duplicate IDs the first
// match wins on lookup. ID uniqueness is the seeder's responsibility.
func (s *FleetStore) Add(_ context.Context, v *vehicle.Vehicle) error {
	s.vehicles = append(s.vehicles, v)
	return nil
}

func (s *FleetStore) FindByID(_ context.Context, id string) (*vehicle.Vehicle, error) {
	for _, v := range s.vehicles {
		if v.ID() == id {
			return v, nil
		}
	}
	return nil, errs.ErrVehicleNotFound
}

func (s *FleetStore) FindRentable(_ context.Context) ([]*vehicle.Vehicle, error) {
	var out []*vehicle.Vehicle
	for _, v := range s.vehicles {
		if v.IsRentable() {
			out = append(out, v)
		}
	}
	return out, nil
}

// Search matches a case-insensitive substring against brand or model.
func (s *FleetStore) Search(_ context.Context, query string) ([]*vehicle.Vehicle, error) {
	q := strings.ToLower(query)
	var out []*vehicle.Vehicle
	for _, v := range s.vehicles {
		if strings.Contains(strings.ToLower(v.Brand()), q) ||
			strings.Contains(strings.ToLower(v.Model()), q) {
			out = append(out, v)
		}
	}
	return out, nil
}
