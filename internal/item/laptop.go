package item

import (
	"errors"
	"fmt"

	"github.com/eugenenazirov/moving-manager/internal/packable"
)

var laptopDimensions = packable.Dimensions{W: 35, H: 20, L: 2}

// Laptop is a portable computer. Boxes holding one are marked fragile.
type Laptop struct {
	personalItem
	age int
}

// NewLaptop creates a laptop that is age years old.
func NewLaptop(owner string, age int) (*Laptop, error) {
	base, ownerErr := newPersonalItem(owner)
	var ageErr error
	if age < 0 {
		ageErr = newInvalidError("age", fmt.Errorf("%d is negative", age))
	}
	if err := errors.Join(ownerErr, ageErr); err != nil {
		return nil, err
	}

	base.dims = laptopDimensions
	return &Laptop{personalItem: base, age: age}, nil
}

// Age returns the laptop age in years.
func (l *Laptop) Age() int {
	return l.age
}

func (l *Laptop) String() string {
	return fmt.Sprintf("Laptop (%s) - %d", l.owner, l.age)
}
