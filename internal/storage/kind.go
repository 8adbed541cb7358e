package storage

import (
	"fmt"
	"strings"
)

// Kind enumerates the container variants. The set is closed.
type Kind int

const (
	KindBag Kind = iota + 1
	KindBox
	KindMovingTruck
)

var kindNames = map[Kind]string{
	KindBag:         "Bag",
	KindBox:         "Box",
	KindMovingTruck: "MovingTruck",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts "bag", "box" and "moving_truck" (or "movingtruck", "truck"),
// ignoring case.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "bag":
		return KindBag, nil
	case "box":
		return KindBox, nil
	case "moving_truck", "movingtruck", "truck":
		return KindMovingTruck, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, raw)
}

// UnmarshalText lets kinds be decoded from YAML.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
