//go:build unit

package memstore_test

import (
	"context"
	"testing"

	"car-rental-system/internal/infra/memstore"
	"car-rental-system/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerStore(t *testing.T) {
	ctx := context.Background()

	t.Run("open and list active", func(t *testing.T) {
		store := memstore.NewLedgerStore()

		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Open(ctx, r))

		active, err := store.Active(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, r.ID(), active[0].ID())
	})

	t.Run("close removes every entry for the vehicle", func(t *testing.T) {
		store := memstore.NewLedgerStore()

		// Two entries for the same vehicle should never exist under the
		// rentable-check invariant; the sweep still removes both.
		first, err := builder.NewRentalBuilder().WithVehicleID("C001").BuildDomain()
		require.NoError(t, err)
		second, err := builder.NewRentalBuilder().WithVehicleID("C001").WithCustomerID("CUST2").BuildDomain()
		require.NoError(t, err)
		other, err := builder.NewRentalBuilder().WithVehicleID("LC001").BuildDomain()
		require.NoError(t, err)

		require.NoError(t, store.Open(ctx, first))
		require.NoError(t, store.Open(ctx, second))
		require.NoError(t, store.Open(ctx, other))

		require.NoError(t, store.CloseByVehicle(ctx, "C001"))

		active, err := store.Active(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "LC001", active[0].VehicleID())
	})

	t.Run("close with no matching entry is a no-op", func(t *testing.T) {
		store := memstore.NewLedgerStore()
		require.NoError(t, store.CloseByVehicle(ctx, "C001"))

		active, err := store.Active(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)
	})
}
