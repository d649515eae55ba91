package number_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/bodiam/types/number"
	"github.com/bodiam/types/refinement"
)

func TestDivision(t *testing.T) {
	for _, testCase := range []struct {
		name     string
		divide   func() (number.Int, error)
		expected number.Int
	}{
		{
			name:     "positive by strictly positive",
			divide:   func() (number.Int, error) { return number.MustPositiveInt(7).DivByStrictlyPositive(number.MustStrictlyPositiveInt(2)) },
			expected: number.MustPositiveInt(3),
		},
		{
			name:     "positive by strictly negative",
			divide:   func() (number.Int, error) { return number.MustPositiveInt(7).DivByStrictlyNegative(number.MustStrictlyNegativeInt(-2)) },
			expected: number.MustNegativeInt(-3),
		},
		{
			name:     "negative by strictly positive",
			divide:   func() (number.Int, error) { return number.MustNegativeInt(-7).DivByStrictlyPositive(number.MustStrictlyPositiveInt(2)) },
			expected: number.MustNegativeInt(-3),
		},
		{
			name:     "negative by strictly negative",
			divide:   func() (number.Int, error) { return number.MustNegativeInt(-7).DivByStrictlyNegative(number.MustStrictlyNegativeInt(-2)) },
			expected: number.MustPositiveInt(3),
		},
		{
			name:     "zero by strictly negative",
			divide:   func() (number.Int, error) { return number.PositiveIntMin().DivByStrictlyNegative(number.MustStrictlyNegativeInt(-2)) },
			expected: number.NegativeIntMax(),
		},
		{
			name:     "positive remainder by strictly positive",
			divide:   func() (number.Int, error) { return number.MustPositiveInt(7).RemByStrictlyPositive(number.MustStrictlyPositiveInt(2)) },
			expected: number.MustPositiveInt(1),
		},
		{
			name:     "positive remainder by strictly negative",
			divide:   func() (number.Int, error) { return number.MustPositiveInt(7).RemByStrictlyNegative(number.MustStrictlyNegativeInt(-2)) },
			expected: number.MustPositiveInt(1),
		},
		{
			name:     "positive remainder by non zero",
			divide:   func() (number.Int, error) { return number.MustPositiveInt(7).RemByNonZero(number.MustNonZeroInt(-4)) },
			expected: number.MustPositiveInt(3),
		},
		{
			name:     "negative remainder by strictly positive",
			divide:   func() (number.Int, error) { return number.MustNegativeInt(-7).RemByStrictlyPositive(number.MustStrictlyPositiveInt(2)) },
			expected: number.MustNegativeInt(-1),
		},
		{
			name:     "negative remainder by strictly negative",
			divide:   func() (number.Int, error) { return number.MustNegativeInt(-7).RemByStrictlyNegative(number.MustStrictlyNegativeInt(-2)) },
			expected: number.MustNegativeInt(-1),
		},
		{
			name:     "negative remainder by non zero",
			divide:   func() (number.Int, error) { return number.MustNegativeInt(-7).RemByNonZero(number.MustNonZeroInt(4)) },
			expected: number.MustNegativeInt(-3),
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			result, err := testCase.divide()
			require.NoError(t, err)
			require.Equal(t, testCase.expected, result)
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := number.MustPositiveInt(7).DivByStrictlyPositive(number.StrictlyPositiveInt{})
	require.ErrorIs(t, err, number.ErrDivisionByZero)
	require.EqualError(t, err, "unable to compute 7 / 0")

	_, err = number.MustNegativeInt(-7).DivByStrictlyNegative(number.StrictlyNegativeInt{})
	require.ErrorIs(t, err, number.ErrDivisionByZero)

	_, err = number.MustPositiveInt(7).RemByNonZero(number.NonZeroInt{})
	require.ErrorIs(t, err, number.ErrDivisionByZero)

	_, err = number.MustNegativeInt(-7).RemByStrictlyPositive(number.StrictlyPositiveInt{})
	require.ErrorIs(t, err, number.ErrDivisionByZero)

	var divisionErr *number.DivisionDomainError
	require.True(t, ierrors.As(err, &divisionErr))
	require.Equal(t, "%", divisionErr.Operator())
	require.Equal(t, int32(-7), divisionErr.Dividend())
}

func TestDivisionOverflow(t *testing.T) {
	_, err := number.NegativeIntMin().DivByStrictlyNegative(number.MustStrictlyNegativeInt(-1))
	require.ErrorIs(t, err, refinement.ErrConstruction)

	remainder, err := number.NegativeIntMin().RemByStrictlyNegative(number.MustStrictlyNegativeInt(-1))
	require.NoError(t, err)
	require.Equal(t, number.NegativeIntMax(), remainder)

	quotient, err := number.NegativeIntMin().DivByStrictlyPositive(number.StrictlyPositiveIntMax())
	require.NoError(t, err)
	require.Equal(t, number.MustNegativeInt(-1), quotient)

	quotient, err = number.MustNegativeInt(math.MinInt32+1).DivByStrictlyPositive(number.StrictlyPositiveIntMax())
	require.NoError(t, err)
	require.Equal(t, number.MustNegativeInt(-1), quotient)
}
