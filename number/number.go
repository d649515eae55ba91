// Package number contains the integer refinement lattice.
//
// Every member wraps an int32 and can only be obtained through a factory that validates the sign of the value:
//
//	ZeroInt               value == 0
//	NonZeroInt            value != 0
//	PositiveInt           value >= 0
//	NegativeInt           value <= 0
//	StrictlyPositiveInt   value > 0
//	StrictlyNegativeInt   value < 0
//
// The zero value of each struct holds 0, which is only a member of ZeroInt, PositiveInt and NegativeInt. The zero
// values of NonZeroInt, StrictlyPositiveInt and StrictlyNegativeInt bypass construction and are rejected by the
// operations that depend on their predicate.
package number

import (
	"github.com/iotaledger/hive.go/lo"
)

// Int is implemented by every member of the lattice.
type Int interface {
	// Int32 returns the wrapped value.
	Int32() int32

	// Compare returns -1, 0 or 1 if the wrapped value is smaller than, equal to or bigger than the other one.
	Compare(other Int) int

	// String returns the decimal representation of the wrapped value.
	String() string
}

// Compare orders two members of the lattice by their wrapped values.
func Compare(a, b Int) int {
	return lo.Comparator(a.Int32(), b.Int32())
}

// Add returns the sum of the wrapped values. The result is not refined.
func Add(a, b Int) int64 {
	return int64(a.Int32()) + int64(b.Int32())
}

// Sub returns the difference of the wrapped values. The result is not refined.
func Sub(a, b Int) int64 {
	return int64(a.Int32()) - int64(b.Int32())
}

// Mul returns the product of the wrapped values. The result is not refined.
func Mul(a, b Int) int64 {
	return int64(a.Int32()) * int64(b.Int32())
}

// ToZero converts the given member of the lattice to a ZeroInt.
func ToZero(n Int) (ZeroInt, error) {
	return NewZeroInt(n.Int32())
}

// ToNonZero converts the given member of the lattice to a NonZeroInt.
func ToNonZero(n Int) (NonZeroInt, error) {
	return NewNonZeroInt(n.Int32())
}

// ToPositive converts the given member of the lattice to a PositiveInt.
func ToPositive(n Int) (PositiveInt, error) {
	return NewPositiveInt(n.Int32())
}

// ToNegative converts the given member of the lattice to a NegativeInt.
func ToNegative(n Int) (NegativeInt, error) {
	return NewNegativeInt(n.Int32())
}

// ToStrictlyPositive converts the given member of the lattice to a StrictlyPositiveInt.
func ToStrictlyPositive(n Int) (StrictlyPositiveInt, error) {
	return NewStrictlyPositiveInt(n.Int32())
}

// ToStrictlyNegative converts the given member of the lattice to a StrictlyNegativeInt.
func ToStrictlyNegative(n Int) (StrictlyNegativeInt, error) {
	return NewStrictlyNegativeInt(n.Int32())
}
