package collection

import (
	"encoding/json"
	"fmt"

	"github.com/iotaledger/hive.go/lo"

	"github.com/bodiam/types/codec"
	"github.com/bodiam/types/number"
	"github.com/bodiam/types/refinement"
)

// NotEmptyList is an ordered list that contains at least one element.
type NotEmptyList[E any] struct {
	elements []E
}

// ListOf creates a NotEmptyList from the given head and tail.
func ListOf[E any](head E, tail ...E) NotEmptyList[E] {
	return NotEmptyList[E]{elements: append([]E{head}, tail...)}
}

// NewList creates a NotEmptyList from a copy of the given slice or returns a ConstructionError if it is empty.
func NewList[E any](elements []E) (NotEmptyList[E], error) {
	if len(elements) == 0 {
		return NotEmptyList[E]{}, emptyError("NotEmptyList", elements)
	}

	return NotEmptyList[E]{elements: lo.CopySlice(elements)}, nil
}

// MustList creates a NotEmptyList from a copy of the given slice and panics if it is empty.
func MustList[E any](elements []E) NotEmptyList[E] {
	return refinement.Must(NewList(elements))
}

// ListOrNone creates a NotEmptyList from a copy of the given slice and returns false if it is empty.
func ListOrNone[E any](elements []E) (NotEmptyList[E], bool) {
	return refinement.OrNone(NewList(elements))
}

// Head returns the first element.
func (l NotEmptyList[E]) Head() E {
	return l.elements[0]
}

// Tail returns all elements but the first one, or false if the list only contains its head.
func (l NotEmptyList[E]) Tail() (tail NotEmptyList[E], exists bool) {
	if len(l.elements) == 1 {
		return tail, false
	}

	return NotEmptyList[E]{elements: lo.CopySlice(l.elements[1:])}, true
}

// Get returns the element at the given index.
func (l NotEmptyList[E]) Get(index int) (element E, err error) {
	if err = l.checkIndex(index); err != nil {
		return element, err
	}

	return l.elements[index], nil
}

// Set returns a copy of the list with the element at the given index replaced.
func (l NotEmptyList[E]) Set(index int, element E) (NotEmptyList[E], error) {
	if err := l.checkIndex(index); err != nil {
		return NotEmptyList[E]{}, err
	}

	elements := lo.CopySlice(l.elements)
	elements[index] = element

	return NotEmptyList[E]{elements: elements}, nil
}

// RemoveAt returns a copy of the list without the element at the given index. It refuses to remove the only element
// of the list.
func (l NotEmptyList[E]) RemoveAt(index int) (NotEmptyList[E], error) {
	if err := l.checkIndex(index); err != nil {
		return NotEmptyList[E]{}, err
	}

	if len(l.elements) == 1 {
		return NotEmptyList[E]{}, NewIndexError(index, 1, true)
	}

	elements := make([]E, 0, len(l.elements)-1)
	elements = append(elements, l.elements[:index]...)

	return NotEmptyList[E]{elements: append(elements, l.elements[index+1:]...)}, nil
}

// Plus returns a copy of the list with the given elements appended.
func (l NotEmptyList[E]) Plus(elements ...E) NotEmptyList[E] {
	combined := make([]E, 0, len(l.elements)+len(elements))
	combined = append(combined, l.elements...)

	return NotEmptyList[E]{elements: append(combined, elements...)}
}

// ForEach calls the consumer for every element in order. The iteration can be aborted by returning false in the
// consumer.
func (l NotEmptyList[E]) ForEach(consumer func(element E) bool) bool {
	for _, element := range l.elements {
		if !consumer(element) {
			return false
		}
	}

	return true
}

// ToSlice returns a copy of the elements.
func (l NotEmptyList[E]) ToSlice() []E {
	return lo.CopySlice(l.elements)
}

// Len returns the number of elements.
func (l NotEmptyList[E]) Len() int {
	return len(l.elements)
}

// Size returns the number of elements.
func (l NotEmptyList[E]) Size() number.StrictlyPositiveInt {
	return number.MustStrictlyPositiveInt(len(l.elements))
}

// MarshalJSON encodes the list as a JSON array.
func (l NotEmptyList[E]) MarshalJSON() ([]byte, error) {
	return listCodec[E]().MarshalJSON(l)
}

// UnmarshalJSON decodes a JSON array and fails if it is empty.
func (l *NotEmptyList[E]) UnmarshalJSON(bytes []byte) error {
	decoded, err := listCodec[E]().UnmarshalJSON(bytes)
	if err != nil {
		return err
	}

	*l = decoded

	return nil
}

// String renders the list like the equivalent slice.
func (l NotEmptyList[E]) String() string {
	return fmt.Sprint(l.elements)
}

func (l NotEmptyList[E]) checkIndex(index int) error {
	if index < 0 || index >= len(l.elements) {
		return NewIndexError(index, len(l.elements), false)
	}

	return nil
}

// EqualLists returns true if both lists contain the same elements in the same order.
func EqualLists[E comparable](a, b NotEmptyList[E]) bool {
	return lo.Equal(a.elements, b.elements)
}

func listCodec[E any]() *codec.Codec[NotEmptyList[E], []E] {
	return codec.New("NotEmptyList", NotEmptyList[E].ToSlice, NewList[E])
}

// code contract (make sure the type implements all required methods).
var (
	_ json.Marshaler   = NotEmptyList[int]{}
	_ json.Unmarshaler = &NotEmptyList[int]{}
	_ fmt.Stringer     = NotEmptyList[int]{}
)
