package collection

import (
	"fmt"
)

// Entry is a key-value pair of a NotEmptyMap.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// NewEntry creates an Entry from the given key and value.
func NewEntry[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// String renders the Entry the way fmt renders the elements of a map.
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v:%v", e.Key, e.Value)
}
