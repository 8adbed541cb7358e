package item

import (
	"fmt"
	"strings"

	"github.com/eugenenazirov/moving-manager/internal/packable"
)

// conversionRatio turns the furniture table (metres) into container units.
const conversionRatio = 100

// FurnitureType is a kind of furniture with fixed dimensions.
type FurnitureType int

const (
	Bed FurnitureType = iota + 1
	Chair
	Desk
	Table
	Television
)

type furnitureSpec struct {
	name   string
	width  float64
	height float64
	length float64
}

var furnitureTable = map[FurnitureType]furnitureSpec{
	Bed:        {name: "BED", width: 1.5, height: 2.0, length: 0.5},
	Chair:      {name: "CHAIR", width: 0.5, height: 1.5, length: 0.5},
	Desk:       {name: "DESK", width: 1.2, height: 2.0, length: 1.0},
	Table:      {name: "TABLE", width: 3.0, height: 5.0, length: 1.0},
	Television: {name: "TELEVISION", width: 1.3, height: 0.75, length: 0.1},
}

func (t FurnitureType) String() string {
	if spec, ok := furnitureTable[t]; ok {
		return spec.name
	}
	return fmt.Sprintf("FurnitureType(%d)", int(t))
}

// ParseFurnitureType converts a case-insensitive furniture name.
func ParseFurnitureType(raw string) (FurnitureType, error) {
	needle := strings.ToUpper(strings.TrimSpace(raw))
	for t, spec := range furnitureTable {
		if spec.name == needle {
			return t, nil
		}
	}
	return 0, newInvalidError("furniture type", fmt.Errorf("unknown type %q", raw))
}

// Furniture is a single piece of furniture.
type Furniture struct {
	dims          packable.Dimensions
	furnitureType FurnitureType
}

// NewFurniture creates a piece of furniture of the given type.
func NewFurniture(furnitureType FurnitureType) (*Furniture, error) {
	spec, ok := furnitureTable[furnitureType]
	if !ok {
		return nil, newInvalidError("furniture type", fmt.Errorf("unknown type %s", furnitureType))
	}
	return &Furniture{
		dims: packable.Dimensions{
			W: spec.width * conversionRatio,
			H: spec.height * conversionRatio,
			L: spec.length * conversionRatio,
		},
		furnitureType: furnitureType,
	}, nil
}

func (f *Furniture) Width() float64  { return f.dims.Width() }
func (f *Furniture) Height() float64 { return f.dims.Height() }
func (f *Furniture) Length() float64 { return f.dims.Length() }
func (f *Furniture) Volume() float64 { return f.dims.Volume() }

// Type returns the furniture type.
func (f *Furniture) Type() FurnitureType {
	return f.furnitureType
}

func (f *Furniture) String() string {
	return fmt.Sprintf("Furniture (%s)", f.furnitureType)
}
