package storage

import (
	"fmt"

	"github.com/eugenenazirov/moving-manager/internal/item"
	"github.com/eugenenazirov/moving-manager/internal/packable"
)

const (
	boxMultiplier = 2
	// EmptyCommentMarker stands in for an empty box comment when rendering.
	// It is four visible characters, not a NUL byte.
	EmptyCommentMarker = `'\0'`
)

// Box holds anything and remembers whether it ever held something fragile.
type Box struct {
	container
	comment string
	fragile bool
}

// NewBox creates an empty box labelled with comment, which may be empty.
// Boxes are medium-sized unless WithSize says otherwise.
func NewBox(width, height, length float64, comment string, opts ...Option) (*Box, error) {
	o := resolveOptions(packable.Medium, opts)
	base, err := newContainer(KindBox, width, height, length, o.size)
	if err != nil {
		return nil, fmt.Errorf("new box: %w", err)
	}

	b := &Box{container: base, comment: comment}
	b.self = b
	b.policy = b
	return b, nil
}

// Comment returns the label written on the box.
func (b *Box) Comment() string {
	return b.comment
}

// IsFragile reports whether a laptop or a television has ever been packed
// into this box. Unpacking does not clear the flag.
func (b *Box) IsFragile() bool {
	return b.fragile
}

func (b *Box) multiplier() int {
	return boxMultiplier
}

func (b *Box) admit(packable.Packable) error {
	return nil
}

func (b *Box) packed(p packable.Packable) {
	switch v := p.(type) {
	case *item.Laptop:
		b.fragile = true
	case *item.Furniture:
		if v.Type() == item.Television {
			b.fragile = true
		}
	}
}

func (b *Box) take() int {
	return b.fifo()
}

func (b *Box) describe() string {
	out := b.flat() + " - " + b.comment
	if b.comment == "" {
		out += EmptyCommentMarker
	}
	if b.fragile {
		out += " FRAGILE"
	}
	return out
}
