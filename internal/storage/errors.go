package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrPacking is the parent of every error returned by Pack.
	ErrPacking = errors.New("packing failed")
	// ErrStorageFull is returned when the container has no room for the item.
	ErrStorageFull = fmt.Errorf("%w: storage full", ErrPacking)
	// ErrBadItem is returned when the container does not accept this kind of item.
	ErrBadItem = fmt.Errorf("%w: bad item", ErrPacking)
	// ErrPackingOrder is returned when an item is packed out of the required order.
	ErrPackingOrder = fmt.Errorf("%w: packing order violated", ErrPacking)
)

var (
	// ErrInvalidArgument is the parent of every construction and rendering error.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidDimensions is returned when a dimension is not strictly positive.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be greater than zero", ErrInvalidArgument)
	// ErrInvalidSize is returned for an unknown size category.
	ErrInvalidSize = fmt.Errorf("%w: unknown size", ErrInvalidArgument)
	// ErrInvalidKind is returned for an unknown container kind.
	ErrInvalidKind = fmt.Errorf("%w: unknown container kind", ErrInvalidArgument)
	// ErrTruckTooShort is returned when a truck is not longer than its cab.
	ErrTruckTooShort = fmt.Errorf("%w: truck shorter than cab", ErrInvalidArgument)
	// ErrInvalidLevel is returned when a tree is rendered at a negative level.
	ErrInvalidLevel = fmt.Errorf("%w: level must be non-negative", ErrInvalidArgument)
)
