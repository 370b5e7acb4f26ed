package queries

import (
	"context"

	"car-rental-system/internal/domain/vehicle"
)

type FleetQueries interface {
	ListAvailable(ctx context.Context) ([]VehicleView, error)
	Search(ctx context.Context, query string) ([]VehicleView, error)
}

type fleetQueriesImpl struct {
	fleet FleetReadStore
}

func NewFleetQueries(fleet FleetReadStore) FleetQueries {
	return &fleetQueriesImpl{fleet: fleet}
}

func (q *fleetQueriesImpl) ListAvailable(ctx context.Context) ([]VehicleView, error) {
	vehicles, err := q.fleet.FindRentable(ctx)
	if err != nil {
		return nil, err
	}
	return toVehicleViews(vehicles), nil
}

// Search reports matches in any state, rented and maintained included.
func (q *fleetQueriesImpl) Search(ctx context.Context, query string) ([]VehicleView, error) {
	vehicles, err := q.fleet.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return toVehicleViews(vehicles), nil
}

func toVehicleViews(vehicles []*vehicle.Vehicle) []VehicleView {
	views := make([]VehicleView, 0, len(vehicles))
	for _, v := range vehicles {
		views = append(views, VehicleView{
			ID:    v.ID(),
			Brand: v.Brand(),
			Model: v.Model(),
			// The displayed day rate is the one-day rental price, so a
			// luxury vehicle's rate includes its flat surcharge.
			PricePerDay: v.Price(1),
		})
	}
	return views
}
