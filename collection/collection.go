// Package collection contains refinements of lists, sets and maps that always hold at least one element.
//
// All collections are immutable and never share storage with their callers: constructors copy their input and every
// method that returns a slice or a map returns a fresh one. Their zero values are empty, bypass construction and must
// not be used.
package collection

import (
	"github.com/iotaledger/hive.go/ds/orderedmap"
	"github.com/iotaledger/hive.go/ds/types"

	"github.com/bodiam/types/refinement"
)

const notEmpty = "not empty"

func emptyError(typeName string, source any) error {
	return refinement.NewConstructionError(typeName, source, notEmpty)
}

// distinct returns the distinct elements of the given slice in the order they were first seen.
func distinct[E comparable](elements []E) []E {
	seen := orderedmap.New[E, types.Empty]()
	for _, element := range elements {
		seen.Set(element, types.Void)
	}

	distinctElements := make([]E, 0, seen.Size())
	seen.ForEach(func(element E, _ types.Empty) bool {
		distinctElements = append(distinctElements, element)

		return true
	})

	return distinctElements
}
