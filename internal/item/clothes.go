package item

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eugenenazirov/moving-manager/internal/packable"
)

// ClothesType is the kind of garment.
type ClothesType int

const (
	Pants ClothesType = iota + 1
	Shirt
	Shorts
	Socks
)

var clothesTypeNames = map[ClothesType]string{
	Pants:  "PANTS",
	Shirt:  "SHIRT",
	Shorts: "SHORTS",
	Socks:  "SOCKS",
}

func (t ClothesType) String() string {
	if name, ok := clothesTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ClothesType(%d)", int(t))
}

// ParseClothesType converts a case-insensitive garment name.
func ParseClothesType(raw string) (ClothesType, error) {
	needle := strings.ToUpper(strings.TrimSpace(raw))
	for t, name := range clothesTypeNames {
		if name == needle {
			return t, nil
		}
	}
	return 0, newInvalidError("clothes type", fmt.Errorf("unknown type %q", raw))
}

// Folded dimensions per garment size.
var clothesDimensions = map[packable.Size]packable.Dimensions{
	packable.Small:  {W: 40, H: 65, L: 10},
	packable.Medium: {W: 50, H: 70, L: 10},
	packable.Large:  {W: 55, H: 75, L: 10},
}

// Clothes is a folded garment.
type Clothes struct {
	personalItem
	size        packable.Size
	clothesType ClothesType
}

// NewClothes creates a garment of the given size and type.
func NewClothes(owner string, size packable.Size, clothesType ClothesType) (*Clothes, error) {
	base, ownerErr := newPersonalItem(owner)

	dims, known := clothesDimensions[size]
	var sizeErr, typeErr error
	if !known {
		sizeErr = newInvalidError("size", fmt.Errorf("%w: %s", packable.ErrUnknownSize, size))
	}
	if _, ok := clothesTypeNames[clothesType]; !ok {
		typeErr = newInvalidError("clothes type", fmt.Errorf("unknown type %s", clothesType))
	}
	if err := errors.Join(ownerErr, sizeErr, typeErr); err != nil {
		return nil, err
	}

	base.dims = dims
	return &Clothes{personalItem: base, size: size, clothesType: clothesType}, nil
}

// Size returns the garment size.
func (c *Clothes) Size() packable.Size {
	return c.size
}

// Type returns the garment type.
func (c *Clothes) Type() ClothesType {
	return c.clothesType
}

func (c *Clothes) String() string {
	return fmt.Sprintf("Clothes (%s) (%s, %s)", c.owner, c.size, c.clothesType)
}
