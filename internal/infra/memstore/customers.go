package memstore

import (
	"context"
	"fmt"

	"car-rental-system/internal/domain/customer"
	"car-rental-system/internal/pkg/errs"
)

// CustomerStore is the in-memory customer roster. IDs are generated
// sequentially at registration and never reused; removal is unsupported.
// Not safe for concurrent use.
type CustomerStore struct {
	customers []*customer.Customer
}

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{}
}

// Register creates a customer under the next sequential "CUSTn" label.
func (s *CustomerStore) Register(_ context.Context, name string) (*customer.Customer, error) {
	id := fmt.Sprintf("CUST%d", len(s.customers)+1)
	c, err := customer.NewCustomer(id, name)
	if err != nil {
		return nil, err
	}
	s.customers = append(s.customers, c)
	return c, nil
}

func (s *CustomerStore) FindByID(_ context.Context, id string) (*customer.Customer, error) {
	for _, c := range s.customers {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, errs.ErrCustomerNotFound
}
