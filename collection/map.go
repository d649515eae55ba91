package collection

import (
	"encoding/json"
	"fmt"

	"github.com/iotaledger/hive.go/ds/orderedmap"
	"github.com/iotaledger/hive.go/lo"

	"github.com/bodiam/types/codec"
	"github.com/bodiam/types/number"
	"github.com/bodiam/types/refinement"
)

// NotEmptyMap is a map that contains at least one entry. It iterates its entries in the order their keys were first
// added.
type NotEmptyMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// MapOf creates a NotEmptyMap from the given head and tail entries. If a key occurs more than once, its last value
// is kept at the position of its first occurrence.
func MapOf[K comparable, V any](head Entry[K, V], tail ...Entry[K, V]) NotEmptyMap[K, V] {
	return newMap(append([]Entry[K, V]{head}, tail...))
}

// NewMap creates a NotEmptyMap from a copy of the given map or returns a ConstructionError if it is empty. The order
// of the entries is the iteration order of the given map, use NewMapFromEntries for a defined order.
func NewMap[K comparable, V any](source map[K]V) (NotEmptyMap[K, V], error) {
	if len(source) == 0 {
		return NotEmptyMap[K, V]{}, emptyError("NotEmptyMap", source)
	}

	entries := make([]Entry[K, V], 0, len(source))
	for key, value := range source {
		entries = append(entries, NewEntry(key, value))
	}

	return newMap(entries), nil
}

// MustMap creates a NotEmptyMap from a copy of the given map and panics if it is empty.
func MustMap[K comparable, V any](source map[K]V) NotEmptyMap[K, V] {
	return refinement.Must(NewMap(source))
}

// MapOrNone creates a NotEmptyMap from a copy of the given map and returns false if it is empty.
func MapOrNone[K comparable, V any](source map[K]V) (NotEmptyMap[K, V], bool) {
	return refinement.OrNone(NewMap(source))
}

// NewMapFromEntries creates a NotEmptyMap from the given entries or returns a ConstructionError if there are none.
// If a key occurs more than once, its last value is kept at the position of its first occurrence.
func NewMapFromEntries[K comparable, V any](entries []Entry[K, V]) (NotEmptyMap[K, V], error) {
	if len(entries) == 0 {
		return NotEmptyMap[K, V]{}, emptyError("NotEmptyMap", entries)
	}

	return newMap(entries), nil
}

func newMap[K comparable, V any](entries []Entry[K, V]) NotEmptyMap[K, V] {
	ordered := orderedmap.New[K, V]()
	for _, entry := range entries {
		ordered.Set(entry.Key, entry.Value)
	}

	notEmptyMap := NotEmptyMap[K, V]{
		keys:   make([]K, 0, ordered.Size()),
		values: make(map[K]V, ordered.Size()),
	}
	ordered.ForEach(func(key K, value V) bool {
		notEmptyMap.keys = append(notEmptyMap.keys, key)
		notEmptyMap.values[key] = value

		return true
	})

	return notEmptyMap
}

// Head returns the first entry.
func (m NotEmptyMap[K, V]) Head() Entry[K, V] {
	return m.entry(m.keys[0])
}

// Tail returns all entries but the first one, or false if the map only contains its head.
func (m NotEmptyMap[K, V]) Tail() (tail NotEmptyMap[K, V], exists bool) {
	if len(m.keys) == 1 {
		return tail, false
	}

	return newMap(lo.Map(m.keys[1:], m.entry)), true
}

// Get returns the value mapped to the given key.
func (m NotEmptyMap[K, V]) Get(key K) (value V, exists bool) {
	value, exists = m.values[key]

	return value, exists
}

// Has returns true if the map contains the given key.
func (m NotEmptyMap[K, V]) Has(key K) bool {
	_, has := m.values[key]

	return has
}

// ForEach calls the consumer for every entry in order. The iteration can be aborted by returning false in the
// consumer.
func (m NotEmptyMap[K, V]) ForEach(consumer func(key K, value V) bool) bool {
	for _, key := range m.keys {
		if !consumer(key, m.values[key]) {
			return false
		}
	}

	return true
}

// ToMap returns a copy of the entries as a plain map.
func (m NotEmptyMap[K, V]) ToMap() map[K]V {
	plain := make(map[K]V, len(m.keys))
	for key, value := range m.values {
		plain[key] = value
	}

	return plain
}

// Keys returns the keys in order.
func (m NotEmptyMap[K, V]) Keys() NotEmptySet[K] {
	return newSet(lo.CopySlice(m.keys))
}

// Values returns the values in the order of their keys.
func (m NotEmptyMap[K, V]) Values() NotEmptyList[V] {
	return NotEmptyList[V]{elements: lo.Map(m.keys, func(key K) V { return m.values[key] })}
}

// EntryList returns the entries in order.
func (m NotEmptyMap[K, V]) EntryList() NotEmptyList[Entry[K, V]] {
	return NotEmptyList[Entry[K, V]]{elements: lo.Map(m.keys, m.entry)}
}

// Len returns the number of entries.
func (m NotEmptyMap[K, V]) Len() int {
	return len(m.keys)
}

// Size returns the number of entries.
func (m NotEmptyMap[K, V]) Size() number.StrictlyPositiveInt {
	return number.MustStrictlyPositiveInt(len(m.keys))
}

// MarshalJSON encodes the map as a JSON object whose members follow the order of the entries.
func (m NotEmptyMap[K, V]) MarshalJSON() ([]byte, error) {
	return marshalEntries(mapCodec[K, V]().Encode(m))
}

// UnmarshalJSON decodes a JSON object in the order of its members and fails if it is empty.
func (m *NotEmptyMap[K, V]) UnmarshalJSON(bytes []byte) error {
	entries, err := unmarshalEntries[K, V](bytes)
	if err != nil {
		return err
	}

	decoded, err := mapCodec[K, V]().Decode(entries)
	if err != nil {
		return err
	}

	*m = decoded

	return nil
}

// String renders the map like the equivalent plain map.
func (m NotEmptyMap[K, V]) String() string {
	return fmt.Sprint(m.values)
}

func (m NotEmptyMap[K, V]) entry(key K) Entry[K, V] {
	return NewEntry(key, m.values[key])
}

// EntriesOf returns the entries of the given map as a set.
func EntriesOf[K comparable, V comparable](m NotEmptyMap[K, V]) NotEmptySet[Entry[K, V]] {
	return newSet(lo.Map(m.keys, m.entry))
}

// EqualMaps returns true if both maps contain the same entries, regardless of their order.
func EqualMaps[K comparable, V comparable](a, b NotEmptyMap[K, V]) bool {
	if len(a.keys) != len(b.keys) {
		return false
	}

	for key, value := range a.values {
		if otherValue, exists := b.values[key]; !exists || otherValue != value {
			return false
		}
	}

	return true
}

func mapCodec[K comparable, V any]() *codec.Codec[NotEmptyMap[K, V], []Entry[K, V]] {
	return codec.New("NotEmptyMap", func(m NotEmptyMap[K, V]) []Entry[K, V] {
		return lo.Map(m.keys, m.entry)
	}, NewMapFromEntries[K, V])
}

// code contract (make sure the type implements all required methods).
var (
	_ json.Marshaler   = NotEmptyMap[string, int]{}
	_ json.Unmarshaler = &NotEmptyMap[string, int]{}
	_ fmt.Stringer     = NotEmptyMap[string, int]{}
)
