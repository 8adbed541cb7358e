package item

import (
	"errors"
	"fmt"
)

var (
	// ErrValueIsRequired is returned when a mandatory attribute is empty.
	ErrValueIsRequired = errors.New("value is required")
	// ErrValueIsInvalid is returned when an attribute is outside its domain.
	ErrValueIsInvalid = errors.New("value is invalid")
)

// ValueError describes which constructor parameter was rejected and why.
type ValueError struct {
	Param string
	Cause error

	kind error
}

func newRequiredError(param string) *ValueError {
	return &ValueError{Param: param, kind: ErrValueIsRequired}
}

func newInvalidError(param string, cause error) *ValueError {
	return &ValueError{Param: param, Cause: cause, kind: ErrValueIsInvalid}
}

func (e *ValueError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %s (cause: %v)", e.kind, e.Param, e.Cause)
	}
	return fmt.Sprintf("%v: %s", e.kind, e.Param)
}

func (e *ValueError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.kind, e.Cause}
	}
	return []error{e.kind}
}
