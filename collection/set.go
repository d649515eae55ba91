package collection

import (
	"encoding/json"
	"fmt"

	"github.com/iotaledger/hive.go/ds/types"
	"github.com/iotaledger/hive.go/lo"

	"github.com/bodiam/types/codec"
	"github.com/bodiam/types/number"
	"github.com/bodiam/types/refinement"
)

// NotEmptySet is a set that contains at least one element. It iterates its elements in the order they were first
// added.
type NotEmptySet[E comparable] struct {
	elements []E
	members  map[E]types.Empty
}

// SetOf creates a NotEmptySet from the given head and tail. Duplicates are dropped.
func SetOf[E comparable](head E, tail ...E) NotEmptySet[E] {
	return newSet(distinct(append([]E{head}, tail...)))
}

// NewSet creates a NotEmptySet from the distinct elements of the given slice or returns a ConstructionError if it is
// empty.
func NewSet[E comparable](elements []E) (NotEmptySet[E], error) {
	if len(elements) == 0 {
		return NotEmptySet[E]{}, emptyError("NotEmptySet", elements)
	}

	return newSet(distinct(elements)), nil
}

// MustSet creates a NotEmptySet from the distinct elements of the given slice and panics if it is empty.
func MustSet[E comparable](elements []E) NotEmptySet[E] {
	return refinement.Must(NewSet(elements))
}

// SetOrNone creates a NotEmptySet from the distinct elements of the given slice and returns false if it is empty.
func SetOrNone[E comparable](elements []E) (NotEmptySet[E], bool) {
	return refinement.OrNone(NewSet(elements))
}

// newSet takes ownership of the given distinct elements.
func newSet[E comparable](distinctElements []E) NotEmptySet[E] {
	members := make(map[E]types.Empty, len(distinctElements))
	for _, element := range distinctElements {
		members[element] = types.Void
	}

	return NotEmptySet[E]{
		elements: distinctElements,
		members:  members,
	}
}

// Head returns the first element.
func (s NotEmptySet[E]) Head() E {
	return s.elements[0]
}

// Tail returns all elements but the first one, or false if the set only contains its head.
func (s NotEmptySet[E]) Tail() (tail NotEmptySet[E], exists bool) {
	if len(s.elements) == 1 {
		return tail, false
	}

	return newSet(lo.CopySlice(s.elements[1:])), true
}

// Has returns true if the set contains the given element.
func (s NotEmptySet[E]) Has(element E) bool {
	_, has := s.members[element]

	return has
}

// ForEach calls the consumer for every element in order. The iteration can be aborted by returning false in the
// consumer.
func (s NotEmptySet[E]) ForEach(consumer func(element E) bool) bool {
	for _, element := range s.elements {
		if !consumer(element) {
			return false
		}
	}

	return true
}

// ToSlice returns a copy of the elements in order.
func (s NotEmptySet[E]) ToSlice() []E {
	return lo.CopySlice(s.elements)
}

// Len returns the number of elements.
func (s NotEmptySet[E]) Len() int {
	return len(s.elements)
}

// Size returns the number of elements.
func (s NotEmptySet[E]) Size() number.StrictlyPositiveInt {
	return number.MustStrictlyPositiveInt(len(s.elements))
}

// Equal returns true if both sets contain the same elements, regardless of their order.
func (s NotEmptySet[E]) Equal(other NotEmptySet[E]) bool {
	if len(s.elements) != len(other.elements) {
		return false
	}

	for _, element := range s.elements {
		if !other.Has(element) {
			return false
		}
	}

	return true
}

// MarshalJSON encodes the set as a JSON array.
func (s NotEmptySet[E]) MarshalJSON() ([]byte, error) {
	return setCodec[E]().MarshalJSON(s)
}

// UnmarshalJSON decodes a JSON array, drops duplicates and fails if it is empty.
func (s *NotEmptySet[E]) UnmarshalJSON(bytes []byte) error {
	decoded, err := setCodec[E]().UnmarshalJSON(bytes)
	if err != nil {
		return err
	}

	*s = decoded

	return nil
}

// String renders the set like the slice of its elements.
func (s NotEmptySet[E]) String() string {
	return fmt.Sprint(s.elements)
}

func setCodec[E comparable]() *codec.Codec[NotEmptySet[E], []E] {
	return codec.New("NotEmptySet", NotEmptySet[E].ToSlice, NewSet[E])
}

// code contract (make sure the type implements all required methods).
var (
	_ json.Marshaler   = NotEmptySet[int]{}
	_ json.Unmarshaler = &NotEmptySet[int]{}
	_ fmt.Stringer     = NotEmptySet[int]{}
)
