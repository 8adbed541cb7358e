package packable

// Packable is anything with a width, height and length.
type Packable interface {
	Width() float64
	Height() float64
	Length() float64
	Volume() float64
}

// Dimensions is an embeddable implementation of Packable.
type Dimensions struct {
	W float64
	H float64
	L float64
}

// Width returns the width.
func (d Dimensions) Width() float64 { return d.W }

// Height returns the height.
func (d Dimensions) Height() float64 { return d.H }

// Length returns the length.
func (d Dimensions) Length() float64 { return d.L }

// Volume returns width * height * length.
func (d Dimensions) Volume() float64 {
	return d.W * d.H * d.L
}
