package number

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/iotaledger/hive.go/constraints"

	"github.com/bodiam/types/codec"
	"github.com/bodiam/types/refinement"
	"github.com/bodiam/types/valuerange"
)

// PositiveInt represents an integer that is greater than or equal to zero.
type PositiveInt struct {
	value int32
}

var (
	positiveIntKind  = newKind("PositiveInt", "positive", [2]int32{0, math.MaxInt32})
	positiveIntCodec = codec.New("PositiveInt", PositiveInt.Int32, NewPositiveInt[int32])
)

// NewPositiveInt returns the given integer as a PositiveInt or a ConstructionError if it is negative or does not fit
// into an int32.
func NewPositiveInt[N constraints.Integer](n N) (PositiveInt, error) {
	return refine(positiveIntKind, n, func(value int32) PositiveInt { return PositiveInt{value: value} })
}

// MustPositiveInt returns the given integer as a PositiveInt and panics if that is not possible.
func MustPositiveInt[N constraints.Integer](n N) PositiveInt {
	return refinement.Must(NewPositiveInt(n))
}

// PositiveIntOrNone returns the given integer as a PositiveInt and true, or false if that is not possible.
func PositiveIntOrNone[N constraints.Integer](n N) (PositiveInt, bool) {
	return refinement.OrNone(NewPositiveInt(n))
}

// PositiveIntMin returns the smallest PositiveInt.
func PositiveIntMin() PositiveInt {
	return PositiveInt{}
}

// PositiveIntMax returns the biggest PositiveInt.
func PositiveIntMax() PositiveInt {
	return PositiveInt{value: math.MaxInt32}
}

// PositiveIntRange returns the range of values admitted by PositiveInt.
func PositiveIntRange() *valuerange.ValueRange[int32] {
	return positiveIntKind.ranges[0]
}

// RandomPositiveInt returns a PositiveInt drawn uniformly from its range.
func RandomPositiveInt() PositiveInt {
	return PositiveInt{value: positiveIntKind.random()}
}

// Int32 returns the wrapped value.
func (p PositiveInt) Int32() int32 {
	return p.value
}

// Compare orders the PositiveInt against any other member of the lattice.
func (p PositiveInt) Compare(other Int) int {
	return Compare(p, other)
}

// Negate returns the NegativeInt with the opposite sign.
func (p PositiveInt) Negate() (NegativeInt, error) {
	return NewNegativeInt(-int64(p.value))
}

// DivByStrictlyPositive returns the truncated quotient of the division by the given divisor.
func (p PositiveInt) DivByStrictlyPositive(divisor StrictlyPositiveInt) (PositiveInt, error) {
	return divide(p.value, divisor, NewPositiveInt[int64])
}

// DivByStrictlyNegative returns the truncated quotient of the division by the given divisor.
func (p PositiveInt) DivByStrictlyNegative(divisor StrictlyNegativeInt) (NegativeInt, error) {
	return divide(p.value, divisor, NewNegativeInt[int64])
}

// RemByStrictlyPositive returns the remainder of the truncated division by the given divisor.
func (p PositiveInt) RemByStrictlyPositive(divisor StrictlyPositiveInt) (PositiveInt, error) {
	return remainder(p.value, divisor, NewPositiveInt[int64])
}

// RemByStrictlyNegative returns the remainder of the truncated division by the given divisor.
func (p PositiveInt) RemByStrictlyNegative(divisor StrictlyNegativeInt) (PositiveInt, error) {
	return remainder(p.value, divisor, NewPositiveInt[int64])
}

// RemByNonZero returns the remainder of the truncated division by the given divisor.
func (p PositiveInt) RemByNonZero(divisor NonZeroInt) (PositiveInt, error) {
	return remainder(p.value, divisor, NewPositiveInt[int64])
}

// Bytes returns the serialized version of the PositiveInt.
func (p PositiveInt) Bytes() ([]byte, error) {
	return codec.EncodeNum(positiveIntCodec, p)
}

// FromBytes deserializes the PositiveInt from the given bytes and returns the number of consumed bytes.
func (p *PositiveInt) FromBytes(bytes []byte) (int, error) {
	decoded, consumedBytes, err := codec.DecodeNum(positiveIntCodec, bytes)
	if err != nil {
		return 0, err
	}

	*p = decoded

	return consumedBytes, nil
}

// MarshalJSON encodes the PositiveInt as a plain JSON number.
func (p PositiveInt) MarshalJSON() ([]byte, error) {
	return positiveIntCodec.MarshalJSON(p)
}

// UnmarshalJSON decodes a plain JSON number and validates it.
func (p *PositiveInt) UnmarshalJSON(bytes []byte) error {
	decoded, err := positiveIntCodec.UnmarshalJSON(bytes)
	if err != nil {
		return err
	}

	*p = decoded

	return nil
}

// String returns the decimal representation of the PositiveInt.
func (p PositiveInt) String() string {
	return strconv.FormatInt(int64(p.value), 10)
}

// code contract (make sure the type implements all required methods).
var (
	_ Int                        = PositiveInt{}
	_ constraints.Serializable   = PositiveInt{}
	_ constraints.Deserializable = &PositiveInt{}
	_ json.Marshaler             = PositiveInt{}
	_ json.Unmarshaler           = &PositiveInt{}
)
