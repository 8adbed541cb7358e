package storage

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/eugenenazirov/moving-manager/internal/packable"
)

// indent is one level of tree indentation.
const indent = "    "

// baseCapacity is the number of items a container of multiplier one holds.
var baseCapacity = map[packable.Size]int{
	packable.Small:  3,
	packable.Medium: 5,
	packable.Large:  10,
}

// Storage is the behaviour shared by every container.
type Storage interface {
	packable.Packable
	fmt.Stringer

	Kind() Kind
	Size() packable.Size

	// Pack appends item to the container or returns an error wrapping
	// ErrPacking. A failed Pack leaves the container unchanged. A leaf item
	// may be packed into several containers; a container sits in at most one.
	Pack(item packable.Packable) error
	// Unpack removes the next item in the order of the container kind.
	// It reports false when the container is empty.
	Unpack() (packable.Packable, bool)

	Elements() []packable.Packable
	ElementsOfType(reference packable.Packable) []packable.Packable
	Capacity() int
	OccupiedCapacity() int

	// Tree renders the container and its contents, one line per item,
	// starting level indentation units deep.
	Tree(level int) (string, error)
}

// policy is the per-kind behaviour plugged into a container.
type policy interface {
	multiplier() int
	// admit runs before the shared capacity and dimension checks.
	admit(item packable.Packable) error
	// packed runs after item has been appended.
	packed(item packable.Packable)
	// take picks the index of the next item to unpack from a non-empty container.
	take() int
	describe() string
}

// container carries the state and rules common to all kinds.
type container struct {
	dims     packable.Dimensions
	kind     Kind
	size     packable.Size
	elements []packable.Packable

	self   Storage
	policy policy
	// holder is the container this one is packed in, if any.
	holder Storage
}

// containerBase is satisfied by every kind through the embedded container.
type containerBase interface {
	base() *container
}

func (c *container) base() *container { return c }

// Option customises container construction.
type Option func(*options)

type options struct {
	size    packable.Size
	comment string
}

// WithSize sets the size category of the container.
func WithSize(size packable.Size) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithComment sets the comment of a box built through New. Other kinds ignore it.
func WithComment(comment string) Option {
	return func(o *options) {
		o.comment = comment
	}
}

func resolveOptions(defaultSize packable.Size, opts []Option) options {
	o := options{size: defaultSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New builds a container of the given kind.
func New(kind Kind, width, height, length float64, opts ...Option) (Storage, error) {
	switch kind {
	case KindBag:
		bag, err := NewBag(width, height, length, opts...)
		if err != nil {
			return nil, err
		}
		return bag, nil
	case KindBox:
		o := resolveOptions(packable.Medium, opts)
		box, err := NewBox(width, height, length, o.comment, opts...)
		if err != nil {
			return nil, err
		}
		return box, nil
	case KindMovingTruck:
		truck, err := NewMovingTruck(width, height, length, opts...)
		if err != nil {
			return nil, err
		}
		return truck, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
}

func newContainer(kind Kind, width, height, length float64, size packable.Size) (container, error) {
	if err := errors.Join(
		validateDimension("width", width),
		validateDimension("height", height),
		validateDimension("length", length),
		validateSize(size),
	); err != nil {
		return container{}, err
	}

	return container{
		dims: packable.Dimensions{W: width, H: height, L: length},
		kind: kind,
		size: size,
	}, nil
}

func validateDimension(name string, value float64) error {
	if !(value > 0) {
		return fmt.Errorf("%w: %s is %v", ErrInvalidDimensions, name, value)
	}
	return nil
}

func validateSize(size packable.Size) error {
	if !size.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}
	return nil
}

// Width returns the declared width.
func (c *container) Width() float64 { return c.dims.Width() }

// Height returns the declared height.
func (c *container) Height() float64 { return c.dims.Height() }

// Length returns the declared length.
func (c *container) Length() float64 { return c.dims.Length() }

// Volume returns the declared volume.
func (c *container) Volume() float64 { return c.dims.Volume() }

// Kind returns the container variant.
func (c *container) Kind() Kind { return c.kind }

// Size returns the size category.
func (c *container) Size() packable.Size { return c.size }

// Capacity is the base capacity of the size multiplied by the kind multiplier.
func (c *container) Capacity() int {
	return baseCapacity[c.size] * c.policy.multiplier()
}

// OccupiedCapacity returns the number of items held.
func (c *container) OccupiedCapacity() int {
	return len(c.elements)
}

// Elements returns a copy of the held items in insertion order.
func (c *container) Elements() []packable.Packable {
	out := make([]packable.Packable, len(c.elements))
	copy(out, c.elements)
	return out
}

// ElementsOfType returns a copy of the held items whose concrete type is
// exactly that of reference. It returns nil when reference is nil.
func (c *container) ElementsOfType(reference packable.Packable) []packable.Packable {
	if isNil(reference) {
		return nil
	}

	want := reflect.TypeOf(reference)
	out := make([]packable.Packable, 0, len(c.elements))
	for _, element := range c.elements {
		if reflect.TypeOf(element) == want {
			out = append(out, element)
		}
	}
	return out
}

// Pack runs the kind-specific checks, then the shared admission rule, and
// appends item on success.
func (c *container) Pack(item packable.Packable) error {
	if isNil(item) {
		return fmt.Errorf("%w: nothing to pack", ErrBadItem)
	}
	if err := c.checkCycle(item); err != nil {
		return err
	}
	if err := c.policy.admit(item); err != nil {
		return err
	}
	if err := c.fits(item); err != nil {
		return err
	}

	c.elements = append(c.elements, item)
	if inner, ok := item.(containerBase); ok {
		inner.base().holder = c.self
	}
	c.policy.packed(item)
	return nil
}

// fits applies the capacity check and the rule that the running totals may
// overflow at most one of the three dimensions.
func (c *container) fits(item packable.Packable) error {
	capacity := c.Capacity()
	if len(c.elements) >= capacity {
		return fmt.Errorf("%w: all %d slots of %s are taken", ErrStorageFull, capacity, c.kind)
	}

	width, height, length := item.Width(), item.Height(), item.Length()
	for _, element := range c.elements {
		width += element.Width()
		height += element.Height()
		length += element.Length()
	}

	overflowed := 0
	if width > c.Width() {
		overflowed++
	}
	if height > c.Height() {
		overflowed++
	}
	if length > c.Length() {
		overflowed++
	}
	if overflowed > 1 {
		return fmt.Errorf("%w: %s would overflow %d of 3 dimensions of %s", ErrStorageFull, label(item), overflowed, c.kind)
	}
	return nil
}

// checkCycle rejects packing a container into itself, into anything it
// already holds, or into a second container while it is still packed.
func (c *container) checkCycle(item packable.Packable) error {
	inner, ok := item.(Storage)
	if !ok {
		return nil
	}
	if inner == c.self || holds(inner, c.self) {
		return fmt.Errorf("%w: %s cannot be packed inside itself", ErrBadItem, c.kind)
	}
	if n, ok := inner.(containerBase); ok && n.base().holder != nil {
		return fmt.Errorf("%w: %s is already packed in %s", ErrBadItem, inner.Kind(), n.base().holder.Kind())
	}
	return nil
}

func holds(outer Storage, target Storage) bool {
	for _, element := range outer.Elements() {
		nested, ok := element.(Storage)
		if !ok {
			continue
		}
		if nested == target || holds(nested, target) {
			return true
		}
	}
	return false
}

// Unpack removes the item chosen by the kind and returns it.
func (c *container) Unpack() (packable.Packable, bool) {
	if len(c.elements) == 0 {
		return nil, false
	}

	idx := c.policy.take()
	removed := c.elements[idx]
	c.elements = slices.Delete(c.elements, idx, idx+1)
	if inner, ok := removed.(containerBase); ok {
		inner.base().holder = nil
	}
	return removed, true
}

// String renders the one-line description of the container.
func (c *container) String() string {
	return c.policy.describe()
}

// flat is the description shared by bags and boxes.
func (c *container) flat() string {
	return fmt.Sprintf("%s (%.2f, %.2f, %.2f) %s", c.kind, c.Width(), c.Height(), c.Length(), c.size)
}

// Tree renders the container at level and every held item one level deeper.
// Non-empty nested containers are expanded; empty ones print as a single line.
func (c *container) Tree(level int) (string, error) {
	if level < 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(indent, level))
	b.WriteString(c.self.String())

	for _, element := range c.elements {
		b.WriteByte('\n')
		if nested, ok := element.(Storage); ok && nested.OccupiedCapacity() > 0 {
			subtree, err := nested.Tree(level + 1)
			if err != nil {
				return "", err
			}
			b.WriteString(subtree)
			continue
		}
		b.WriteString(strings.Repeat(indent, level+1))
		b.WriteString(label(element))
	}

	return b.String(), nil
}

// fifo takes from the front.
func (c *container) fifo() int {
	return 0
}

func label(item packable.Packable) string {
	return fmt.Sprint(item)
}

func isNil(item packable.Packable) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
