package packable

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSize is returned when a size name cannot be parsed.
var ErrUnknownSize = errors.New("unknown size")

// Size is the coarse size category of a container or a piece of clothing.
type Size int

const (
	Small Size = iota + 1
	Medium
	Large
)

var sizeNames = map[Size]string{
	Small:  "SMALL",
	Medium: "MEDIUM",
	Large:  "LARGE",
}

func (s Size) String() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

// Valid reports whether s is one of the declared sizes.
func (s Size) Valid() bool {
	_, ok := sizeNames[s]
	return ok
}

// ParseSize converts a case-insensitive size name into a Size.
func ParseSize(raw string) (Size, error) {
	needle := strings.ToUpper(strings.TrimSpace(raw))
	for size, name := range sizeNames {
		if name == needle {
			return size, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSize, raw)
}

// UnmarshalText lets sizes be decoded directly from YAML and flag values.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
