package cli

import (
	"errors"
	"fmt"

	"car-rental-system/internal/pkg/errs"
)

const (
	colorReset  = "[0m"
	colorGreen  = "[32m"
	colorRed    = "[31m"
	colorBlue   = "[34m"
	colorYellow = "[33m"
)

// reportError maps usecase errors to the messages the menu shows.
// Nothing propagates past this boundary; unexpected errors are logged
// with their stack and shown generically.
func (m *Menu) reportError(err error) {
	switch {
	case errors.Is(err, errs.ErrCustomerNotFound):
		m.printError("Customer not found.")
	case errors.Is(err, errs.ErrVehicleUnavailable):
		m.printError("Vehicle is not available for rent.")
	case errors.Is(err, errs.ErrVehicleNotFound):
		m.printError("Vehicle not found.")
	case errors.Is(err, errs.ErrInvalidRentalDays):
		m.printError("Rental days must be a positive number.")
	case errors.Is(err, errs.ErrDomainValidation):
		m.printError(fmt.Sprintf("Invalid input: %v.", err))
	default:
		m.logger.Error("unexpected error", "stack", errs.ExtractStackLines(err, 5))
		m.printError("Something went wrong. Please try again.")
	}
}

func (m *Menu) printError(msg string) {
	fmt.Fprintf(m.out, "%s%s%s\n", colorRed, msg, colorReset)
}
