//go:build unit

package commands_test

import (
	"context"
	"testing"

	"car-rental-system/internal/domain/vehicle"
	"car-rental-system/internal/infra/memstore"
	"car-rental-system/internal/pkg/errs"
	"car-rental-system/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationCommands(t *testing.T) {
	ctx := context.Background()

	newRegistration := func() (commands.RegistrationCommands, *memstore.FleetStore) {
		fleet := memstore.NewFleetStore()
		return commands.NewRegistrationCommands(fleet, memstore.NewCustomerStore()), fleet
	}

	t.Run("add vehicle lands in the fleet", func(t *testing.T) {
		registration, fleet := newRegistration()

		require.NoError(t, registration.AddVehicle(ctx, "C010", "Mazda", "3", 55.0, vehicle.KindStandard))

		v, err := fleet.FindByID(ctx, "C010")
		require.NoError(t, err)
		assert.Equal(t, "Mazda", v.Brand())
	})

	t.Run("invalid vehicle is a validation error", func(t *testing.T) {
		registration, _ := newRegistration()

		err := registration.AddVehicle(ctx, "C010", "Mazda", "3", -5.0, vehicle.KindStandard)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
		require.ErrorIs(t, err, vehicle.ErrNonPositivePrice)
	})

	t.Run("register customer returns the generated id", func(t *testing.T) {
		registration, _ := newRegistration()

		receipt, err := registration.RegisterCustomer(ctx, "Alice")
		require.NoError(t, err)
		assert.Equal(t, "CUST1", receipt.ID)
		assert.Equal(t, "Alice", receipt.Name)
	})

	t.Run("blank customer name is a validation error", func(t *testing.T) {
		registration, _ := newRegistration()

		receipt, err := registration.RegisterCustomer(ctx, "  ")
		require.Nil(t, receipt)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}
