package xerrors

import (
	"errors"
	"fmt"
)

var (
	ErrColumnNotFound = errors.New("diwata: column not found")
	ErrNilDestination = errors.New("diwata: destination is nil")
	ErrNotStruct      = errors.New("diwata: not a struct")
)

// NotSupportedError reports a coercion the conversion protocol refuses.
// Actual names the stored variant's native type, Requested names the
// native type the caller asked for; both are ready for diagnostics
// without re-deriving anything from the value itself.
type NotSupportedError struct {
	Actual    string
	Requested string
}

func NotSupported(actual, requested string) *NotSupportedError {
	return &NotSupportedError{Actual: actual, Requested: requested}
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("diwata: cannot convert %s to %s", e.Actual, e.Requested)
}
