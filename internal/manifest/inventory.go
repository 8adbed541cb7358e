package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eugenenazirov/moving-manager/internal/item"
	"github.com/eugenenazirov/moving-manager/internal/packable"
	"github.com/eugenenazirov/moving-manager/internal/storage"
)

// ErrUnknownKind is returned for an item kind the manifest cannot build.
var ErrUnknownKind = errors.New("unknown item kind")

// NamedContainer pairs a container with its manifest name.
type NamedContainer struct {
	Name    string
	Storage storage.Storage
}

// Inventory holds the domain objects built from a manifest, by name.
type Inventory struct {
	containers []NamedContainer
	byName     map[string]packable.Packable
}

// Build constructs every declared container and item.
func (m *Manifest) Build() (*Inventory, error) {
	inv := &Inventory{
		containers: make([]NamedContainer, 0, len(m.Containers)),
		byName:     make(map[string]packable.Packable, len(m.Containers)+len(m.Items)),
	}

	var errs []error
	for _, spec := range m.Containers {
		s, err := buildContainer(spec)
		if err != nil {
			errs = append(errs, fmt.Errorf("container %q: %w", spec.Name, err))
			continue
		}
		inv.containers = append(inv.containers, NamedContainer{Name: spec.Name, Storage: s})
		inv.byName[spec.Name] = s
	}
	for _, spec := range m.Items {
		p, err := buildItem(spec)
		if err != nil {
			errs = append(errs, fmt.Errorf("item %q: %w", spec.Name, err))
			continue
		}
		inv.byName[spec.Name] = p
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return inv, nil
}

func buildContainer(spec ContainerSpec) (storage.Storage, error) {
	opts := []storage.Option{storage.WithComment(spec.Comment)}
	if spec.Size != 0 {
		opts = append(opts, storage.WithSize(spec.Size))
	}
	return storage.New(spec.Kind, spec.Width, spec.Height, spec.Length, opts...)
}

func buildItem(spec ItemSpec) (packable.Packable, error) {
	switch strings.ToLower(strings.TrimSpace(spec.Kind)) {
	case "book":
		return item.NewBook(spec.Owner, spec.Title, spec.Fiction)
	case "laptop":
		return item.NewLaptop(spec.Owner, spec.Age)
	case "clothes":
		clothesType, err := item.ParseClothesType(spec.Type)
		if err != nil {
			return nil, err
		}
		return item.NewClothes(spec.Owner, spec.Size, clothesType)
	case "furniture":
		furnitureType, err := item.ParseFurnitureType(spec.Type)
		if err != nil {
			return nil, err
		}
		return item.NewFurniture(furnitureType)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
}

// Lookup returns the container or item declared under name.
func (inv *Inventory) Lookup(name string) (packable.Packable, bool) {
	p, ok := inv.byName[name]
	return p, ok
}

// Container returns the container declared under name.
func (inv *Inventory) Container(name string) (storage.Storage, bool) {
	s, ok := inv.byName[name].(storage.Storage)
	return s, ok
}

// Containers returns every container in declaration order.
func (inv *Inventory) Containers() []NamedContainer {
	out := make([]NamedContainer, len(inv.containers))
	copy(out, inv.containers)
	return out
}

// Roots returns the containers not currently held by another container,
// in declaration order.
func (inv *Inventory) Roots() []NamedContainer {
	held := make(map[storage.Storage]struct{})
	for _, nc := range inv.containers {
		for _, element := range nc.Storage.Elements() {
			if nested, ok := element.(storage.Storage); ok {
				held[nested] = struct{}{}
			}
		}
	}

	roots := make([]NamedContainer, 0, len(inv.containers))
	for _, nc := range inv.containers {
		if _, ok := held[nc.Storage]; !ok {
			roots = append(roots, nc)
		}
	}
	return roots
}
