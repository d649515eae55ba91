package refinement

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrConstruction is matched by every ConstructionError.
var ErrConstruction = ierrors.New("refinement violated")

// ConstructionError is returned by the factories of a refined type if the input does not satisfy the predicate of the
// type.
type ConstructionError struct {
	typeName  string
	value     any
	predicate string
}

// NewConstructionError creates a ConstructionError for the given target type, rejected input and predicate.
func NewConstructionError(typeName string, value any, predicate string) *ConstructionError {
	return &ConstructionError{
		typeName:  typeName,
		value:     value,
		predicate: predicate,
	}
}

// TypeName returns the name of the refined type that rejected the input.
func (c *ConstructionError) TypeName() string {
	return c.typeName
}

// Value returns the rejected input.
func (c *ConstructionError) Value() any {
	return c.value
}

// Predicate returns the human-readable description of the predicate that was violated.
func (c *ConstructionError) Predicate() string {
	return c.predicate
}

func (c *ConstructionError) Error() string {
	return fmt.Sprintf("invalid %s: %v should be %s", c.typeName, c.value, c.predicate)
}

// Is makes ConstructionErrors match ErrConstruction.
func (c *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}
