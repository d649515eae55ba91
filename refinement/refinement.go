// Package refinement contains the construction contract shared by all refined types.
//
// Every refined type offers three construction surfaces over the same validator:
//
//	NewX(value)    (X, error)  result surface
//	MustX(value)   X           strict surface, panics with the ConstructionError
//	XOrNone(value) (X, bool)   option surface
//
// Must and OrNone derive the strict and option surfaces from the result surface.
package refinement

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// Must returns the value or panics with the error.
func Must[T any](value T, err error) T {
	return lo.PanicOnErr(value, err)
}

// OrNone returns the value and true, or the zero value and false if err is a ConstructionError. Any other error is
// not a legal outcome of a factory and causes a panic.
func OrNone[T any](value T, err error) (T, bool) {
	if err == nil {
		return value, true
	}

	if !ierrors.Is(err, ErrConstruction) {
		panic(err)
	}

	var none T

	return none, false
}
