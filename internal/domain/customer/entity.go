package customer

import (
	"errors"
	"strings"

	"car-rental-system/internal/domain/rental"
)

var ErrEmptyCustomerName = errors.New("customer name cannot be empty")

type Customer struct {
	id      string
	name    string
	history []rental.Rental
}

func NewCustomer(id, name string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyCustomerName
	}

	return &Customer{
		id:   id,
		name: strings.TrimSpace(name),
	}, nil
}

// AddRental appends to the customer's permanent history. Entries are
// never reordered or removed, even after the rental itself is closed.
func (c *Customer) AddRental(r rental.Rental) {
	c.history = append(c.history, r)
}

// History returns the rentals in chronological (insertion) order.
func (c *Customer) History() []rental.Rental {
	out := make([]rental.Rental, len(c.history))
	copy(out, c.history)
	return out
}

func (c *Customer) ID() string   { return c.id }
func (c *Customer) Name() string { return c.name }
