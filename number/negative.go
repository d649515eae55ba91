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

// NegativeInt represents an integer that is less than or equal to zero.
type NegativeInt struct {
	value int32
}

var (
	negativeIntKind  = newKind("NegativeInt", "negative", [2]int32{math.MinInt32, 0})
	negativeIntCodec = codec.New("NegativeInt", NegativeInt.Int32, NewNegativeInt[int32])
)

// NewNegativeInt returns the given integer as a NegativeInt or a ConstructionError if it is strictly positive or does
// not fit into an int32.
func NewNegativeInt[N constraints.Integer](n N) (NegativeInt, error) {
	return refine(negativeIntKind, n, func(value int32) NegativeInt { return NegativeInt{value: value} })
}

// MustNegativeInt returns the given integer as a NegativeInt and panics if that is not possible.
func MustNegativeInt[N constraints.Integer](n N) NegativeInt {
	return refinement.Must(NewNegativeInt(n))
}

// NegativeIntOrNone returns the given integer as a NegativeInt and true, or false if that is not possible.
func NegativeIntOrNone[N constraints.Integer](n N) (NegativeInt, bool) {
	return refinement.OrNone(NewNegativeInt(n))
}

// NegativeIntMin returns the smallest NegativeInt.
func NegativeIntMin() NegativeInt {
	return NegativeInt{value: math.MinInt32}
}

// NegativeIntMax returns the biggest NegativeInt.
func NegativeIntMax() NegativeInt {
	return NegativeInt{}
}

// NegativeIntRange returns the range of values admitted by NegativeInt.
func NegativeIntRange() *valuerange.ValueRange[int32] {
	return negativeIntKind.ranges[0]
}

// RandomNegativeInt returns a NegativeInt drawn uniformly from its range.
func RandomNegativeInt() NegativeInt {
	return NegativeInt{value: negativeIntKind.random()}
}

// Int32 returns the wrapped value.
func (n NegativeInt) Int32() int32 {
	return n.value
}

// Compare orders the NegativeInt against any other member of the lattice.
func (n NegativeInt) Compare(other Int) int {
	return Compare(n, other)
}

// Negate returns the PositiveInt with the opposite sign. It fails for NegativeIntMin, whose opposite does not fit
// into an int32.
func (n NegativeInt) Negate() (PositiveInt, error) {
	return NewPositiveInt(-int64(n.value))
}

// DivByStrictlyPositive returns the truncated quotient of the division by the given divisor.
func (n NegativeInt) DivByStrictlyPositive(divisor StrictlyPositiveInt) (NegativeInt, error) {
	return divide(n.value, divisor, NewNegativeInt[int64])
}

// DivByStrictlyNegative returns the truncated quotient of the division by the given divisor. It fails for
// NegativeIntMin divided by -1, whose quotient does not fit into an int32.
func (n NegativeInt) DivByStrictlyNegative(divisor StrictlyNegativeInt) (PositiveInt, error) {
	return divide(n.value, divisor, NewPositiveInt[int64])
}

// RemByStrictlyPositive returns the remainder of the truncated division by the given divisor.
func (n NegativeInt) RemByStrictlyPositive(divisor StrictlyPositiveInt) (NegativeInt, error) {
	return remainder(n.value, divisor, NewNegativeInt[int64])
}

// RemByStrictlyNegative returns the remainder of the truncated division by the given divisor.
func (n NegativeInt) RemByStrictlyNegative(divisor StrictlyNegativeInt) (NegativeInt, error) {
	return remainder(n.value, divisor, NewNegativeInt[int64])
}

// RemByNonZero returns the remainder of the truncated division by the given divisor.
func (n NegativeInt) RemByNonZero(divisor NonZeroInt) (NegativeInt, error) {
	return remainder(n.value, divisor, NewNegativeInt[int64])
}

// Bytes returns the serialized version of the NegativeInt.
func (n NegativeInt) Bytes() ([]byte, error) {
	return codec.EncodeNum(negativeIntCodec, n)
}

// FromBytes deserializes the NegativeInt from the given bytes and returns the number of consumed bytes.
func (n *NegativeInt) FromBytes(bytes []byte) (int, error) {
	decoded, consumedBytes, err := codec.DecodeNum(negativeIntCodec, bytes)
	if err != nil {
		return 0, err
	}

	*n = decoded

	return consumedBytes, nil
}

// MarshalJSON encodes the NegativeInt as a plain JSON number.
func (n NegativeInt) MarshalJSON() ([]byte, error) {
	return negativeIntCodec.MarshalJSON(n)
}

// UnmarshalJSON decodes a plain JSON number and validates it.
func (n *NegativeInt) UnmarshalJSON(bytes []byte) error {
	decoded, err := negativeIntCodec.UnmarshalJSON(bytes)
	if err != nil {
		return err
	}

	*n = decoded

	return nil
}

// String returns the decimal representation of the NegativeInt.
func (n NegativeInt) String() string {
	return strconv.FormatInt(int64(n.value), 10)
}

// code contract (make sure the type implements all required methods).
var (
	_ Int                        = NegativeInt{}
	_ constraints.Serializable   = NegativeInt{}
	_ constraints.Deserializable = &NegativeInt{}
	_ json.Marshaler             = NegativeInt{}
	_ json.Unmarshaler           = &NegativeInt{}
)
