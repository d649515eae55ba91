package number

import (
	"encoding/json"

	"github.com/iotaledger/hive.go/constraints"

	"github.com/bodiam/types/codec"
	"github.com/bodiam/types/refinement"
	"github.com/bodiam/types/valuerange"
)

// ZeroInt represents the integer zero. It is the smallest PositiveInt and the biggest NegativeInt.
type ZeroInt struct{}

var (
	zeroIntKind  = newKind("ZeroInt", "zero", [2]int32{0, 0})
	zeroIntCodec = codec.New("ZeroInt", ZeroInt.Int32, NewZeroInt[int32])
)

// NewZeroInt returns a ZeroInt or a ConstructionError if the given integer is not zero.
func NewZeroInt[N constraints.Integer](n N) (ZeroInt, error) {
	return refine(zeroIntKind, n, func(int32) ZeroInt { return ZeroInt{} })
}

// MustZeroInt returns a ZeroInt and panics if the given integer is not zero.
func MustZeroInt[N constraints.Integer](n N) ZeroInt {
	return refinement.Must(NewZeroInt(n))
}

// ZeroIntOrNone returns a ZeroInt and true, or false if the given integer is not zero.
func ZeroIntOrNone[N constraints.Integer](n N) (ZeroInt, bool) {
	return refinement.OrNone(NewZeroInt(n))
}

// ZeroIntMin returns the only ZeroInt.
func ZeroIntMin() ZeroInt {
	return ZeroInt{}
}

// ZeroIntMax returns the only ZeroInt.
func ZeroIntMax() ZeroInt {
	return ZeroInt{}
}

// ZeroIntRange returns the range of values admitted by ZeroInt.
func ZeroIntRange() *valuerange.ValueRange[int32] {
	return zeroIntKind.ranges[0]
}

// RandomZeroInt returns the only ZeroInt.
func RandomZeroInt() ZeroInt {
	return ZeroInt{}
}

// Int32 returns 0.
func (z ZeroInt) Int32() int32 {
	return 0
}

// Compare orders the ZeroInt against any other member of the lattice.
func (z ZeroInt) Compare(other Int) int {
	return Compare(z, other)
}

// Negate returns the ZeroInt itself.
func (z ZeroInt) Negate() ZeroInt {
	return z
}

// Bytes returns the serialized version of the ZeroInt.
func (z ZeroInt) Bytes() ([]byte, error) {
	return codec.EncodeNum(zeroIntCodec, z)
}

// FromBytes deserializes the ZeroInt from the given bytes and returns the number of consumed bytes.
func (z *ZeroInt) FromBytes(bytes []byte) (int, error) {
	_, consumedBytes, err := codec.DecodeNum(zeroIntCodec, bytes)
	if err != nil {
		return 0, err
	}

	return consumedBytes, nil
}

// MarshalJSON encodes the ZeroInt as the JSON number 0.
func (z ZeroInt) MarshalJSON() ([]byte, error) {
	return zeroIntCodec.MarshalJSON(z)
}

// UnmarshalJSON decodes a plain JSON number and validates that it is zero.
func (z *ZeroInt) UnmarshalJSON(bytes []byte) error {
	_, err := zeroIntCodec.UnmarshalJSON(bytes)

	return err
}

// String returns "0".
func (z ZeroInt) String() string {
	return "0"
}

// code contract (make sure the type implements all required methods).
var (
	_ Int                        = ZeroInt{}
	_ constraints.Serializable   = ZeroInt{}
	_ constraints.Deserializable = &ZeroInt{}
	_ json.Marshaler             = ZeroInt{}
	_ json.Unmarshaler           = &ZeroInt{}
)
