package valuerange

import (
	"fmt"

	"github.com/iotaledger/hive.go/constraints"
)

// EndPoint contains information about where ValueRanges start and end. It combines a threshold value with a BoundType.
type EndPoint[T constraints.Ordered] struct {
	value     T
	boundType BoundType
}

// Inclusive returns an EndPoint that contains the given value.
func Inclusive[T constraints.Ordered](value T) EndPoint[T] {
	return EndPoint[T]{value: value, boundType: BoundTypeInclusive}
}

// Exclusive returns an EndPoint that excludes the given value.
func Exclusive[T constraints.Ordered](value T) EndPoint[T] {
	return EndPoint[T]{value: value, boundType: BoundTypeExclusive}
}

// Value returns the threshold value of the EndPoint.
func (e EndPoint[T]) Value() T {
	return e.value
}

// BoundType returns the BoundType of the EndPoint.
func (e EndPoint[T]) BoundType() BoundType {
	return e.boundType
}

// IsInclusive returns true if the threshold value is part of the range.
func (e EndPoint[T]) IsInclusive() bool {
	return e.boundType == BoundTypeInclusive
}

// String returns a human-readable version of the EndPoint.
func (e EndPoint[T]) String() string {
	return fmt.Sprintf("EndPoint(%v, %s)", e.value, e.boundType)
}

// admitsLower returns true if value lies on the inner side of the EndPoint when used as a lower bound.
func (e EndPoint[T]) admitsLower(value T) bool {
	if e.IsInclusive() {
		return value >= e.value
	}

	return value > e.value
}

// admitsUpper returns true if value lies on the inner side of the EndPoint when used as an upper bound.
func (e EndPoint[T]) admitsUpper(value T) bool {
	if e.IsInclusive() {
		return value <= e.value
	}

	return value < e.value
}
