package codec

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrDecode is matched by every DecodeError.
var ErrDecode = ierrors.New("failed to decode refined value")

// DecodeError is returned if a decoded wire value does not satisfy the predicate of the refined type it was decoded
// as. It names the type and carries the rejected wire value; the underlying construction error is available through
// Unwrap.
type DecodeError struct {
	typeName string
	value    any
	err      error
}

// NewDecodeError creates a DecodeError for the given type name, rejected wire value and cause.
func NewDecodeError(typeName string, value any, err error) *DecodeError {
	return &DecodeError{
		typeName: typeName,
		value:    value,
		err:      err,
	}
}

// TypeName returns the declared name of the codec that rejected the value.
func (d *DecodeError) TypeName() string {
	return d.typeName
}

// Value returns the rejected wire value.
func (d *DecodeError) Value() any {
	return d.value
}

func (d *DecodeError) Error() string {
	return fmt.Sprintf("unable to deserialize '%s' from %v", d.typeName, d.value)
}

// Unwrap returns the error of the validator that rejected the value.
func (d *DecodeError) Unwrap() error {
	return d.err
}

// Is makes DecodeErrors match ErrDecode.
func (d *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
