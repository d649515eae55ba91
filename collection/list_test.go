package collection_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/bodiam/types/codec"
	"github.com/bodiam/types/collection"
	"github.com/bodiam/types/number"
	"github.com/bodiam/types/refinement"
)

func TestNewList(t *testing.T) {
	_, err := collection.NewList([]int{})
	require.ErrorIs(t, err, refinement.ErrConstruction)
	require.EqualError(t, err, "invalid NotEmptyList: [] should be not empty")

	_, err = collection.NewList[int](nil)
	require.ErrorIs(t, err, refinement.ErrConstruction)

	_, ok := collection.ListOrNone([]string{})
	require.False(t, ok)

	require.Panics(t, func() {
		collection.MustList([]string{})
	})

	list, ok := collection.ListOrNone([]string{"a", "b", "a"})
	require.True(t, ok)
	require.Equal(t, 3, list.Len())
	require.Equal(t, number.MustStrictlyPositiveInt(3), list.Size())
	require.Equal(t, "a", list.Head())
}

func TestList_Tail(t *testing.T) {
	for n := 1; n <= 5; n++ {
		elements := make([]int, n)
		for i := range elements {
			elements[i] = i
		}

		list := collection.MustList(elements)

		tail, exists := list.Tail()
		if n == 1 {
			require.False(t, exists)

			continue
		}

		require.True(t, exists)
		require.Equal(t, n-1, tail.Len())
		require.Equal(t, 1, tail.Head())
		require.Equal(t, elements[1:], tail.ToSlice())
	}
}

func TestList_MutationIsolation(t *testing.T) {
	source := []int{1, 2, 3}
	list := collection.MustList(source)
	source[0] = 42
	require.Equal(t, []int{1, 2, 3}, list.ToSlice())

	plain := list.ToSlice()
	plain[1] = 42
	require.Equal(t, []int{1, 2, 3}, list.ToSlice())

	tail := []int{2, 3}
	list = collection.ListOf(1, tail...)
	tail[0] = 42
	require.Equal(t, []int{1, 2, 3}, list.ToSlice())
}

func TestList_Positional(t *testing.T) {
	list := collection.ListOf("a", "b", "c")

	element, err := list.Get(1)
	require.NoError(t, err)
	require.Equal(t, "b", element)

	_, err = list.Get(3)
	require.ErrorIs(t, err, collection.ErrIndex)
	require.EqualError(t, err, "index 3 out of bounds for size 3")

	updated, err := list.Set(2, "z")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "z"}, updated.ToSlice())
	require.Equal(t, []string{"a", "b", "c"}, list.ToSlice())

	_, err = list.Set(-1, "z")
	require.ErrorIs(t, err, collection.ErrIndex)

	removed, err := list.RemoveAt(0)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, removed.ToSlice())

	removed, err = list.RemoveAt(1)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, removed.ToSlice())
	require.Equal(t, []string{"a", "b", "c"}, list.ToSlice())

	_, err = list.RemoveAt(5)
	require.ErrorIs(t, err, collection.ErrIndex)

	_, err = collection.ListOf("a").RemoveAt(0)
	require.ErrorIs(t, err, collection.ErrIndex)
	require.EqualError(t, err, "removing index 0 would empty the collection of size 1")

	var indexErr *collection.IndexError
	require.True(t, ierrors.As(err, &indexErr))
	require.True(t, indexErr.Empties())
	require.Equal(t, 0, indexErr.Index())
	require.Equal(t, 1, indexErr.Size())
}

func TestList_Plus(t *testing.T) {
	list := collection.ListOf(1)
	extended := list.Plus(2, 3)

	require.Equal(t, []int{1, 2, 3}, extended.ToSlice())
	require.Equal(t, []int{1}, list.ToSlice())
	require.True(t, collection.EqualLists(extended, collection.ListOf(1, 2, 3)))
	require.False(t, collection.EqualLists(extended, collection.ListOf(3, 2, 1)))
	require.False(t, collection.EqualLists(extended, list))
}

func TestList_ForEach(t *testing.T) {
	var visited []int
	require.False(t, collection.ListOf(1, 2, 3).ForEach(func(element int) bool {
		visited = append(visited, element)

		return element < 2
	}))
	require.Equal(t, []int{1, 2}, visited)
}

func TestList_String(t *testing.T) {
	require.Equal(t, fmt.Sprint([]int{1, 2, 3}), collection.ListOf(1, 2, 3).String())
	require.Equal(t, fmt.Sprint([]string{"a"}), fmt.Sprint(collection.ListOf("a")))
}

func TestList_JSON(t *testing.T) {
	type document struct {
		Tags   collection.NotEmptyList[string]             `json:"tags"`
		Counts collection.NotEmptyList[number.PositiveInt] `json:"counts"`
	}

	original := document{
		Tags:   collection.ListOf("b", "a", "b"),
		Counts: collection.ListOf(number.MustPositiveInt(0), number.MustPositiveInt(7)),
	}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)
	require.JSONEq(t, `{"tags":["b","a","b"],"counts":[0,7]}`, string(encoded))

	var decoded document
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	require.Equal(t, original, decoded)

	err = json.Unmarshal([]byte(`{"tags":[],"counts":[1]}`), &decoded)
	require.ErrorIs(t, err, codec.ErrDecode)
	require.EqualError(t, err, "unable to deserialize 'NotEmptyList' from []")

	err = json.Unmarshal([]byte(`{"tags":["a"],"counts":[1,-1]}`), &decoded)
	require.ErrorIs(t, err, codec.ErrDecode)
	require.Contains(t, err.Error(), "PositiveInt")
}
