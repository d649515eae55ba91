package valuerange

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
)

// ValueRange defines the boundaries around a contiguous span of values (i.e. "integers from 1 to 100 inclusive").
//
// It is not possible to iterate over the contained values. Both sides are always bounded and each bound is either
// inclusive (contains the endpoint) or exclusive (does not contain the endpoint):
//
// Notation         Definition          Factory
// [a .. b]         {x | a <= x <= b}   New(Inclusive(a), Inclusive(b)) / Closed(a, b)
// (a .. b)         {x | a < x < b}     New(Exclusive(a), Exclusive(b))
// (a .. b]         {x | a < x <= b}    New(Exclusive(a), Inclusive(b))
// [a .. b)         {x | a <= x < b}    New(Inclusive(a), Exclusive(b))
//
// The upper endpoint may not be less than the lower. The endpoints may be equal only if both bounds are inclusive,
// which makes a ValueRange never empty.
type ValueRange[T constraints.Ordered] struct {
	lower EndPoint[T]
	upper EndPoint[T]
}

// New returns a ValueRange between the given EndPoints or an error if no value can satisfy both of them.
func New[T constraints.Ordered](lower, upper EndPoint[T]) (*ValueRange[T], error) {
	switch {
	case lower.value > upper.value:
		return nil, ierrors.Wrapf(ErrEmptyRange, "lower end point %v is greater than upper end point %v", lower.value, upper.value)
	case lower.value == upper.value && (!lower.IsInclusive() || !upper.IsInclusive()):
		return nil, ierrors.Wrapf(ErrEmptyRange, "end points on %v need to be inclusive on both sides", lower.value)
	}

	return &ValueRange[T]{
		lower: lower,
		upper: upper,
	}, nil
}

// Closed returns a ValueRange that contains all values greater than or equal to lower and less than or equal to upper.
func Closed[T constraints.Ordered](lower, upper T) (*ValueRange[T], error) {
	return New(Inclusive(lower), Inclusive(upper))
}

// Lower returns the lower EndPoint of the ValueRange.
func (v *ValueRange[T]) Lower() EndPoint[T] {
	return v.lower
}

// Upper returns the upper EndPoint of the ValueRange.
func (v *ValueRange[T]) Upper() EndPoint[T] {
	return v.upper
}

// Compare returns 0 if the ValueRange contains the given value, -1 if its contained values are smaller and 1 if they
// are bigger.
func (v *ValueRange[T]) Compare(value T) int {
	if !v.lower.admitsLower(value) {
		return 1
	}

	if !v.upper.admitsUpper(value) {
		return -1
	}

	return 0
}

// Contains returns true if value is within the bounds of this ValueRange.
func (v *ValueRange[T]) Contains(value T) bool {
	return v.Compare(value) == 0
}

// String returns a human-readable version of the ValueRange.
func (v *ValueRange[T]) String() string {
	lowerEndPoint := "("
	if v.lower.IsInclusive() {
		lowerEndPoint = "["
	}

	upperEndPoint := ")"
	if v.upper.IsInclusive() {
		upperEndPoint = "]"
	}

	return "ValueRange" + lowerEndPoint + fmt.Sprint(v.lower.value) + " ... " + fmt.Sprint(v.upper.value) + upperEndPoint
}
