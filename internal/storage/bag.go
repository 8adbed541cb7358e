package storage

import (
	"fmt"

	"github.com/eugenenazirov/moving-manager/internal/item"
	"github.com/eugenenazirov/moving-manager/internal/packable"
)

const (
	bagMultiplier = 1
	// MaxBagWeight is the heaviest load a bag carries, in grams.
	MaxBagWeight = 1500
)

// Bag holds personal items only.
type Bag struct {
	container
}

// NewBag creates an empty bag. Bags are medium-sized unless WithSize says otherwise.
func NewBag(width, height, length float64, opts ...Option) (*Bag, error) {
	o := resolveOptions(packable.Medium, opts)
	base, err := newContainer(KindBag, width, height, length, o.size)
	if err != nil {
		return nil, fmt.Errorf("new bag: %w", err)
	}

	b := &Bag{container: base}
	b.self = b
	b.policy = b
	return b, nil
}

func (b *Bag) multiplier() int {
	return bagMultiplier
}

// admit accepts personal items while the bag stays under MaxBagWeight.
// Every held item counts as item.BaseWeight regardless of what it is.
func (b *Bag) admit(candidate packable.Packable) error {
	if _, ok := candidate.(item.Personal); !ok {
		return fmt.Errorf("%w: bags hold personal items only, got %s", ErrBadItem, label(candidate))
	}

	weight := len(b.elements)*item.BaseWeight + item.BaseWeight
	if weight > MaxBagWeight {
		return fmt.Errorf("%w: %d g would exceed the %d g bag limit", ErrStorageFull, weight, MaxBagWeight)
	}
	return nil
}

func (b *Bag) packed(packable.Packable) {}

func (b *Bag) take() int {
	return b.fifo()
}

func (b *Bag) describe() string {
	return b.flat()
}
