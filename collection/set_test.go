package collection_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bodiam/types/codec"
	"github.com/bodiam/types/collection"
	"github.com/bodiam/types/number"
	"github.com/bodiam/types/refinement"
)

func TestNewSet(t *testing.T) {
	_, err := collection.NewSet([]string{})
	require.ErrorIs(t, err, refinement.ErrConstruction)

	_, ok := collection.SetOrNone[int](nil)
	require.False(t, ok)

	for _, testCase := range []struct {
		source   []int
		expected []int
	}{
		{source: []int{1}, expected: []int{1}},
		{source: []int{1, 1, 1}, expected: []int{1}},
		{source: []int{3, 1, 3, 2, 1}, expected: []int{3, 1, 2}},
	} {
		set := collection.MustSet(testCase.source)
		require.Equal(t, testCase.expected, set.ToSlice())
		require.Equal(t, len(testCase.expected), set.Len())
		require.Equal(t, number.MustStrictlyPositiveInt(len(testCase.expected)), set.Size())
	}
}

func TestSet_Tail(t *testing.T) {
	set := collection.SetOf("a", "b", "a", "c", "b")
	require.Equal(t, "a", set.Head())

	tail, exists := set.Tail()
	require.True(t, exists)
	require.Equal(t, []string{"b", "c"}, tail.ToSlice())
	require.False(t, tail.Has("a"))

	_, exists = collection.SetOf("a", "a").Tail()
	require.False(t, exists)
}

func TestSet_MutationIsolation(t *testing.T) {
	source := []int{1, 2}
	set := collection.MustSet(source)
	source[0] = 3
	require.True(t, set.Has(1))
	require.False(t, set.Has(3))

	plain := set.ToSlice()
	plain[0] = 3
	require.Equal(t, []int{1, 2}, set.ToSlice())
}

func TestSet_Equal(t *testing.T) {
	require.True(t, collection.SetOf(1, 2, 3).Equal(collection.SetOf(3, 2, 1, 1)))
	require.False(t, collection.SetOf(1, 2).Equal(collection.SetOf(1, 2, 3)))
	require.False(t, collection.SetOf(1, 2).Equal(collection.SetOf(1, 3)))
}

func TestSet_ForEach(t *testing.T) {
	var visited []string
	require.True(t, collection.SetOf("x", "y", "x").ForEach(func(element string) bool {
		visited = append(visited, element)

		return true
	}))
	require.Equal(t, []string{"x", "y"}, visited)
}

func TestSet_String(t *testing.T) {
	require.Equal(t, fmt.Sprint([]string{"b", "a"}), collection.SetOf("b", "a", "b").String())
}

func TestSet_JSON(t *testing.T) {
	set := collection.SetOf(2, 1, 2)

	encoded, err := json.Marshal(set)
	require.NoError(t, err)
	require.Equal(t, "[2,1]", string(encoded))

	var decoded collection.NotEmptySet[int]
	require.NoError(t, json.Unmarshal([]byte("[2,1,1,2]"), &decoded))
	require.Equal(t, set, decoded)

	err = json.Unmarshal([]byte("[]"), &decoded)
	require.ErrorIs(t, err, codec.ErrDecode)
	require.EqualError(t, err, "unable to deserialize 'NotEmptySet' from []")
}
