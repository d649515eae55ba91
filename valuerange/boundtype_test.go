package valuerange

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundType_String(t *testing.T) {
	require.Equal(t, "BoundTypeInclusive", BoundTypeInclusive.String())
	require.Equal(t, "BoundTypeExclusive", BoundTypeExclusive.String())
	require.Equal(t, "BoundType(11)", BoundType(17).String())
}
