//go:build unit

package vehicle_test

import (
	"testing"

	"car-rental-system/internal/domain/vehicle"
	"car-rental-system/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.VehicleBuilder)
	errIs  error
}

func TestVehicle(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewVehicleBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "C001", actual.ID())
		assert.Equal(t, "Toyota", actual.Brand())
		assert.Equal(t, "Camry", actual.Model())
		assert.Equal(t, vehicle.KindStandard, actual.Kind())
		assert.True(t, actual.IsAvailable())
		assert.False(t, actual.IsUnderMaintenance())
		assert.True(t, actual.IsRentable())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty id",
				mutate: func(b *builder.VehicleBuilder) { b.WithID("  ") },
				errIs:  vehicle.ErrEmptyVehicleID,
			},
			{
				name:   "empty brand",
				mutate: func(b *builder.VehicleBuilder) { b.WithBrand("") },
				errIs:  vehicle.ErrEmptyBrand,
			},
			{
				name:   "empty model",
				mutate: func(b *builder.VehicleBuilder) { b.WithModel("") },
				errIs:  vehicle.ErrEmptyModel,
			},
			{
				name:   "zero price",
				mutate: func(b *builder.VehicleBuilder) { b.WithBasePricePerDay(0) },
				errIs:  vehicle.ErrNonPositivePrice,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.VehicleBuilder) { b.WithBasePricePerDay(-10) },
				errIs:  vehicle.ErrNonPositivePrice,
			},
			{
				name:   "unknown kind",
				mutate: func(b *builder.VehicleBuilder) { b.WithKind(vehicle.Kind("sports")) },
				errIs:  vehicle.ErrInvalidKind,
			},
			{
				name:   "luxury kind ok",
				mutate: func(b *builder.VehicleBuilder) { b.AsLuxury() },
			},
		})
	})
}

func TestVehiclePrice(t *testing.T) {
	t.Run("standard price is base times days", func(t *testing.T) {
		v, err := builder.NewVehicleBuilder().WithBasePricePerDay(60.0).BuildDomain()
		require.NoError(t, err)

		assert.InDelta(t, 180.0, v.Price(3), 1e-9)
		assert.InDelta(t, 60.0, v.Price(1), 1e-9)
	})

	t.Run("luxury price adds the flat surcharge", func(t *testing.T) {
		v, err := builder.NewVehicleBuilder().AsLuxury().WithBasePricePerDay(200.0).BuildDomain()
		require.NoError(t, err)

		assert.InDelta(t, 650.0, v.Price(3), 1e-9)
		assert.InDelta(t, 250.0, v.Price(1), 1e-9)
	})

	t.Run("no clamping for zero or negative days", func(t *testing.T) {
		standard, err := builder.NewVehicleBuilder().WithBasePricePerDay(60.0).BuildDomain()
		require.NoError(t, err)
		luxury, err := builder.NewVehicleBuilder().AsLuxury().WithBasePricePerDay(200.0).BuildDomain()
		require.NoError(t, err)

		assert.InDelta(t, 0.0, standard.Price(0), 1e-9)
		assert.InDelta(t, -60.0, standard.Price(-1), 1e-9)
		assert.InDelta(t, vehicle.LuxurySurcharge, luxury.Price(0), 1e-9)
	})
}

func TestVehicleRentability(t *testing.T) {
	cases := []struct {
		name        string
		rented      bool
		maintenance bool
		rentable    bool
	}{
		{"available and sound", false, false, true},
		{"available but under maintenance", false, true, false},
		{"rented out", true, false, false},
		{"rented out and under maintenance", true, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := builder.NewVehicleBuilder().BuildDomain()
			require.NoError(t, err)

			if c.rented {
				v.MarkRented()
			}
			v.SetMaintenance(c.maintenance)

			assert.Equal(t, c.rentable, v.IsRentable())
		})
	}

	t.Run("return restores availability but not maintenance", func(t *testing.T) {
		v, err := builder.NewVehicleBuilder().BuildDomain()
		require.NoError(t, err)

		v.MarkRented()
		v.SetMaintenance(true)
		v.MarkReturned()

		assert.True(t, v.IsAvailable())
		assert.True(t, v.IsUnderMaintenance())
		assert.False(t, v.IsRentable())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewVehicleBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
