package item

import (
	"fmt"
	"strings"

	"github.com/eugenenazirov/moving-manager/internal/packable"
)

// BaseWeight is the flat weight in grams attributed to every personal item.
const BaseWeight = 250

// Personal is implemented only by the personal belongings in this package.
// Bags accept nothing else.
type Personal interface {
	packable.Packable
	fmt.Stringer
	Owner() string

	personal()
}

type personalItem struct {
	dims  packable.Dimensions
	owner string
}

func newPersonalItem(owner string) (personalItem, error) {
	if strings.TrimSpace(owner) == "" {
		return personalItem{}, newRequiredError("owner")
	}
	return personalItem{owner: owner}, nil
}

// Owner returns the name of the person the item belongs to.
func (p personalItem) Owner() string {
	return p.owner
}

// Width returns the item width.
func (p personalItem) Width() float64 { return p.dims.Width() }

// Height returns the item height.
func (p personalItem) Height() float64 { return p.dims.Height() }

// Length returns the item length.
func (p personalItem) Length() float64 { return p.dims.Length() }

// Volume returns the item volume.
func (p personalItem) Volume() float64 { return p.dims.Volume() }

func (personalItem) personal() {}
