package refinement_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/bodiam/types/refinement"
)

func TestConstructionError(t *testing.T) {
	err := refinement.NewConstructionError("PositiveInt", -3, "greater than or equal to zero")

	require.EqualError(t, err, "invalid PositiveInt: -3 should be greater than or equal to zero")
	require.True(t, ierrors.Is(err, refinement.ErrConstruction))
	require.True(t, ierrors.Is(ierrors.Wrap(err, "failed to build"), refinement.ErrConstruction))

	var constructionErr *refinement.ConstructionError
	require.True(t, ierrors.As(ierrors.Wrap(err, "failed to build"), &constructionErr))
	require.Equal(t, "PositiveInt", constructionErr.TypeName())
	require.Equal(t, -3, constructionErr.Value())
	require.Equal(t, "greater than or equal to zero", constructionErr.Predicate())
}

func TestMust(t *testing.T) {
	require.Equal(t, 7, refinement.Must(7, nil))

	err := refinement.NewConstructionError("PositiveInt", -3, "greater than or equal to zero")
	require.PanicsWithError(t, err.Error(), func() {
		refinement.Must(0, err)
	})
}

func TestOrNone(t *testing.T) {
	value, ok := refinement.OrNone(7, nil)
	require.True(t, ok)
	require.Equal(t, 7, value)

	value, ok = refinement.OrNone(7, refinement.NewConstructionError("ZeroInt", 7, "zero"))
	require.False(t, ok)
	require.Zero(t, value)

	require.Panics(t, func() {
		refinement.OrNone(7, ierrors.New("unrelated"))
	})
}
