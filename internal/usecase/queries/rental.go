package queries

import (
	"context"

	"car-rental-system/internal/pkg/errs"
)

type RentalQueries interface {
	RentalHistory(ctx context.Context, customerID string) (*HistoryView, error)
	ActiveRentals(ctx context.Context) ([]ActiveRentalView, error)
}

type rentalQueriesImpl struct {
	fleet     FleetReadStore
	customers CustomerReadStore
	ledger    LedgerReadStore
}

func NewRentalQueries(fleet FleetReadStore, customers CustomerReadStore, ledger LedgerReadStore) RentalQueries {
	return &rentalQueriesImpl{
		fleet:     fleet,
		customers: customers,
		ledger:    ledger,
	}
}

// RentalHistory resolves the customer's permanent history, independent of
// what is currently open on the ledger.
func (q *rentalQueriesImpl) RentalHistory(ctx context.Context, customerID string) (*HistoryView, error) {
	cust, err := q.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCustomerNotFound)
	}

	history := cust.History()
	items := make([]HistoryItem, 0, len(history))
	for _, r := range history {
		// Vehicles are never removed from the catalog, so the lookup
		// cannot miss for an entry the system itself created.
		v, err := q.fleet.FindByID(ctx, r.VehicleID())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrVehicleNotFound)
		}
		items = append(items, HistoryItem{
			Brand: v.Brand(),
			Model: v.Model(),
			Days:  r.Days(),
		})
	}

	return &HistoryView{
		CustomerID:   cust.ID(),
		CustomerName: cust.Name(),
		Items:        items,
	}, nil
}

func (q *rentalQueriesImpl) ActiveRentals(ctx context.Context) ([]ActiveRentalView, error) {
	active, err := q.ledger.Active(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ActiveRentalView, 0, len(active))
	for _, r := range active {
		v, err := q.fleet.FindByID(ctx, r.VehicleID())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrVehicleNotFound)
		}
		cust, err := q.customers.FindByID(ctx, r.CustomerID())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrCustomerNotFound)
		}
		views = append(views, ActiveRentalView{
			RentalID:     r.ID(),
			VehicleID:    v.ID(),
			Brand:        v.Brand(),
			Model:        v.Model(),
			CustomerID:   cust.ID(),
			CustomerName: cust.Name(),
			Days:         r.Days(),
			OpenedAt:     r.OpenedAt(),
		})
	}
	return views, nil
}
