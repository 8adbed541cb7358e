package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/moving-manager/internal/packable"
	"github.com/eugenenazirov/moving-manager/internal/storage"
)

var (
	// ErrInvalidManifest is returned when a manifest is structurally wrong.
	ErrInvalidManifest = errors.New("invalid manifest")
	// ErrUnknownName is returned when a step refers to an undeclared name.
	ErrUnknownName = errors.New("unknown name")
)

// Manifest is the decoded moving plan.
type Manifest struct {
	Containers []ContainerSpec `yaml:"containers"`
	Items      []ItemSpec      `yaml:"items"`
	Steps      []Step          `yaml:"steps"`
}

// ContainerSpec declares a bag, box or moving truck.
// An omitted size leaves the kind's default in place.
type ContainerSpec struct {
	Name    string        `yaml:"name"`
	Kind    storage.Kind  `yaml:"kind"`
	Width   float64       `yaml:"width"`
	Height  float64       `yaml:"height"`
	Length  float64       `yaml:"length"`
	Size    packable.Size `yaml:"size"`
	Comment string        `yaml:"comment"`
}

// ItemSpec declares a book, clothes, laptop or piece of furniture.
type ItemSpec struct {
	Name    string        `yaml:"name"`
	Kind    string        `yaml:"kind"`
	Owner   string        `yaml:"owner"`
	Title   string        `yaml:"title"`
	Fiction bool          `yaml:"fiction"`
	Size    packable.Size `yaml:"size"`
	Type    string        `yaml:"type"`
	Age     int           `yaml:"age"`
}

// Step is either a pack of one named thing into a named container, or an
// unpack of a named container.
type Step struct {
	Pack   string `yaml:"pack"`
	Into   string `yaml:"into"`
	Unpack string `yaml:"unpack"`
}

// IsPack reports whether the step packs something.
func (s Step) IsPack() bool {
	return s.Pack != ""
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks names are unique and declared, and that every step is
// well formed. All problems are reported together.
func (m *Manifest) Validate() error {
	var errs []error
	containers := make(map[string]struct{}, len(m.Containers))
	names := make(map[string]struct{}, len(m.Containers)+len(m.Items))

	declare := func(section string, idx int, name string) {
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("%w: %s[%d] has no name", ErrInvalidManifest, section, idx))
		case contains(names, name):
			errs = append(errs, fmt.Errorf("%w: duplicate name %q", ErrInvalidManifest, name))
		default:
			names[name] = struct{}{}
		}
	}

	for i, c := range m.Containers {
		declare("containers", i, c.Name)
		containers[c.Name] = struct{}{}
	}
	for i, it := range m.Items {
		declare("items", i, it.Name)
	}

	for i, step := range m.Steps {
		switch {
		case step.Pack != "" && step.Unpack != "":
			errs = append(errs, fmt.Errorf("%w: step %d both packs and unpacks", ErrInvalidManifest, i))
		case step.Pack != "":
			if step.Into == "" {
				errs = append(errs, fmt.Errorf("%w: step %d packs %q into nothing", ErrInvalidManifest, i, step.Pack))
				continue
			}
			if !contains(names, step.Pack) {
				errs = append(errs, fmt.Errorf("%w: step %d packs %q", ErrUnknownName, i, step.Pack))
			}
			if !contains(containers, step.Into) {
				errs = append(errs, fmt.Errorf("%w: step %d packs into container %q", ErrUnknownName, i, step.Into))
			}
		case step.Unpack != "":
			if !contains(containers, step.Unpack) {
				errs = append(errs, fmt.Errorf("%w: step %d unpacks container %q", ErrUnknownName, i, step.Unpack))
			}
		default:
			errs = append(errs, fmt.Errorf("%w: step %d does nothing", ErrInvalidManifest, i))
		}
	}

	return errors.Join(errs...)
}

func contains(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}
