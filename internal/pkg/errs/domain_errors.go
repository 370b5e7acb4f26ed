package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Vehicle errors
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleUnavailable = errors.New("vehicle not available for rent")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")

	// Rental errors
	ErrInvalidRentalDays = errors.New("rental days must be positive")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
