package storage

import (
	"fmt"

	"github.com/eugenenazirov/moving-manager/internal/item"
	"github.com/eugenenazirov/moving-manager/internal/packable"
)

const (
	truckMultiplier = 4
	// CabLength is the part of a truck's length taken by the driver's cab.
	CabLength = 1500
)

// MovingTruck carries furniture and anything else. Once furniture is on
// board nothing else may be loaded in front of it, and while any furniture
// remains the truck unloads from the back.
type MovingTruck struct {
	container
}

// NewMovingTruck creates an empty truck whose length includes the cab.
// Trucks are large unless WithSize says otherwise.
func NewMovingTruck(width, height, length float64, opts ...Option) (*MovingTruck, error) {
	o := resolveOptions(packable.Large, opts)
	base, err := newContainer(KindMovingTruck, width, height, length, o.size)
	if err != nil {
		return nil, fmt.Errorf("new moving truck: %w", err)
	}
	if length < CabLength {
		return nil, fmt.Errorf("new moving truck: %w: length %v is below %d", ErrTruckTooShort, length, CabLength)
	}

	t := &MovingTruck{container: base}
	t.self = t
	t.policy = t
	return t, nil
}

// Volume returns the cargo volume, excluding the cab.
func (t *MovingTruck) Volume() float64 {
	return t.Width() * t.Height() * (t.Length() - CabLength)
}

// HasFurniture reports whether any furniture is on board.
func (t *MovingTruck) HasFurniture() bool {
	for _, element := range t.elements {
		if isFurniture(element) {
			return true
		}
	}
	return false
}

func (t *MovingTruck) multiplier() int {
	return truckMultiplier
}

func (t *MovingTruck) admit(candidate packable.Packable) error {
	if t.HasFurniture() && !isFurniture(candidate) {
		return fmt.Errorf("%w: %s cannot be loaded behind furniture", ErrPackingOrder, label(candidate))
	}

	length := candidate.Length()
	for _, element := range t.elements {
		length += element.Length()
	}
	if cargo := t.Length() - CabLength; length > cargo {
		return fmt.Errorf("%w: cargo length %.2f would exceed %.2f", ErrStorageFull, length, cargo)
	}
	return nil
}

func (t *MovingTruck) packed(packable.Packable) {}

// take unloads from the back while any furniture is on board and from the
// front otherwise.
func (t *MovingTruck) take() int {
	if t.HasFurniture() {
		return len(t.elements) - 1
	}
	return t.fifo()
}

func (t *MovingTruck) describe() string {
	return fmt.Sprintf("%s (%d/%d)", t.kind, t.OccupiedCapacity(), t.Capacity())
}

func isFurniture(p packable.Packable) bool {
	_, ok := p.(*item.Furniture)
	return ok
}
