//go:build unit

package memstore_test

import (
	"context"
	"testing"

	"car-rental-system/internal/infra/memstore"
	"car-rental-system/internal/pkg/errs"
	"car-rental-system/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFleet(t *testing.T) *memstore.FleetStore {
	t.Helper()
	ctx := context.Background()
	store := memstore.NewFleetStore()

	standard, err := builder.NewVehicleBuilder().BuildDomain()
	require.NoError(t, err)
	luxury, err := builder.NewVehicleBuilder().AsLuxury().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, store.Add(ctx, standard))
	require.NoError(t, store.Add(ctx, luxury))
	return store
}

func TestFleetStoreFindByID(t *testing.T) {
	ctx := context.Background()
	store := seedFleet(t)

	t.Run("existing id", func(t *testing.T) {
		v, err := store.FindByID(ctx, "LC001")
		require.NoError(t, err)
		assert.Equal(t, "Mercedes", v.Brand())
	})

	t.Run("unknown id", func(t *testing.T) {
		v, err := store.FindByID(ctx, "C999")
		require.Nil(t, v)
		require.ErrorIs(t, err, errs.ErrVehicleNotFound)
	})

	t.Run("duplicate ids resolve to the first added", func(t *testing.T) {
		dup, err := builder.NewVehicleBuilder().WithBrand("Nissan").WithModel("Altima").BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Add(ctx, dup))

		v, err := store.FindByID(ctx, "C001")
		require.NoError(t, err)
		assert.Equal(t, "Toyota", v.Brand())
	})
}

func TestFleetStoreFindRentable(t *testing.T) {
	ctx := context.Background()
	store := seedFleet(t)

	rentable, err := store.FindRentable(ctx)
	require.NoError(t, err)
	require.Len(t, rentable, 2)

	v, err := store.FindByID(ctx, "C001")
	require.NoError(t, err)
	v.MarkRented()

	lux, err := store.FindByID(ctx, "LC001")
	require.NoError(t, err)
	lux.SetMaintenance(true)

	rentable, err = store.FindRentable(ctx)
	require.NoError(t, err)
	assert.Empty(t, rentable)
}

func TestFleetStoreSearch(t *testing.T) {
	ctx := context.Background()
	store := seedFleet(t)

	t.Run("case-insensitive brand match", func(t *testing.T) {
		found, err := store.Search(ctx, "toYOta")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "C001", found[0].ID())
	})

	t.Run("substring model match", func(t *testing.T) {
		found, err := store.Search(ctx, "clas")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "LC001", found[0].ID())
	})

	t.Run("matches regardless of rental state", func(t *testing.T) {
		v, err := store.FindByID(ctx, "C001")
		require.NoError(t, err)
		v.MarkRented()

		found, err := store.Search(ctx, "camry")
		require.NoError(t, err)
		require.Len(t, found, 1)
	})

	t.Run("no match", func(t *testing.T) {
		found, err := store.Search(ctx, "tesla")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
