package vehicle

import (
	"errors"
	"strings"
)

var (
	ErrEmptyVehicleID   = errors.New("vehicle id cannot be empty")
	ErrEmptyBrand       = errors.New("vehicle brand cannot be empty")
	ErrEmptyModel       = errors.New("vehicle model cannot be empty")
	ErrNonPositivePrice = errors.New("base price per day must be positive")
	ErrInvalidKind      = errors.New("invalid vehicle kind")
)

// LuxurySurcharge is a flat addition applied to luxury rentals
// regardless of duration.
const LuxurySurcharge = 50.0

type Vehicle struct {
	id               string
	brand            string
	model            string
	basePricePerDay  float64
	kind             Kind
	available        bool
	underMaintenance bool
}

func NewVehicle(id, brand, model string, basePricePerDay float64, kind Kind) (*Vehicle, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyVehicleID
	}
	if strings.TrimSpace(brand) == "" {
		return nil, ErrEmptyBrand
	}
	if strings.TrimSpace(model) == "" {
		return nil, ErrEmptyModel
	}
	if basePricePerDay <= 0 {
		return nil, ErrNonPositivePrice
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}

	return &Vehicle{
		id:              strings.TrimSpace(id),
		brand:           strings.TrimSpace(brand),
		model:           strings.TrimSpace(model),
		basePricePerDay: basePricePerDay,
		kind:            kind,
		available:       true,
	}, nil
}

// Price is pure arithmetic: days may be zero or negative, no clamping.
func (v *Vehicle) Price(days int) float64 {
	base := v.basePricePerDay * float64(days)
	if v.kind == KindLuxury {
		return base + LuxurySurcharge
	}
	return base
}

// IsRentable reports whether the vehicle can be handed out right now.
// A vehicle under maintenance is never rentable, even while marked available.
func (v *Vehicle) IsRentable() bool {
	return v.available && !v.underMaintenance
}

func (v *Vehicle) MarkRented() {
	v.available = false
}

// MarkReturned restores availability only; the maintenance flag is a
// separate concern and survives a return.
func (v *Vehicle) MarkReturned() {
	v.available = true
}

func (v *Vehicle) SetMaintenance(flag bool) {
	v.underMaintenance = flag
}

func (v *Vehicle) ID() string               { return v.id }
func (v *Vehicle) Brand() string            { return v.brand }
func (v *Vehicle) Model() string            { return v.model }
func (v *Vehicle) BasePricePerDay() float64 { return v.basePricePerDay }
func (v *Vehicle) Kind() Kind               { return v.kind }
func (v *Vehicle) IsAvailable() bool        { return v.available }
func (v *Vehicle) IsUnderMaintenance() bool { return v.underMaintenance }
