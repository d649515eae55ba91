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

// NonZeroInt represents an integer that is not zero. Its domain is the union of the domains of StrictlyNegativeInt
// and StrictlyPositiveInt.
type NonZeroInt struct {
	value int32
}

var (
	nonZeroIntKind  = newKind("NonZeroInt", "other than zero", [2]int32{math.MinInt32, -1}, [2]int32{1, math.MaxInt32})
	nonZeroIntCodec = codec.New("NonZeroInt", NonZeroInt.Int32, NewNonZeroInt[int32])
)

// NewNonZeroInt returns the given integer as a NonZeroInt or a ConstructionError if it is zero or does not fit into an
// int32.
func NewNonZeroInt[N constraints.Integer](n N) (NonZeroInt, error) {
	return refine(nonZeroIntKind, n, func(value int32) NonZeroInt { return NonZeroInt{value: value} })
}

// MustNonZeroInt returns the given integer as a NonZeroInt and panics if that is not possible.
func MustNonZeroInt[N constraints.Integer](n N) NonZeroInt {
	return refinement.Must(NewNonZeroInt(n))
}

// NonZeroIntOrNone returns the given integer as a NonZeroInt and true, or false if that is not possible.
func NonZeroIntOrNone[N constraints.Integer](n N) (NonZeroInt, bool) {
	return refinement.OrNone(NewNonZeroInt(n))
}

// NonZeroIntMin returns the smallest NonZeroInt.
func NonZeroIntMin() NonZeroInt {
	return NonZeroInt{value: math.MinInt32}
}

// NonZeroIntMax returns the biggest NonZeroInt.
func NonZeroIntMax() NonZeroInt {
	return NonZeroInt{value: math.MaxInt32}
}

// NonZeroIntRanges returns the negative and the positive range of values admitted by NonZeroInt.
func NonZeroIntRanges() (negativeRange, positiveRange *valuerange.ValueRange[int32]) {
	return nonZeroIntKind.ranges[0], nonZeroIntKind.ranges[1]
}

// RandomNonZeroInt returns a NonZeroInt drawn uniformly from both of its ranges.
func RandomNonZeroInt() NonZeroInt {
	return NonZeroInt{value: nonZeroIntKind.random()}
}

// Int32 returns the wrapped value.
func (n NonZeroInt) Int32() int32 {
	return n.value
}

// Compare orders the NonZeroInt against any other member of the lattice.
func (n NonZeroInt) Compare(other Int) int {
	return Compare(n, other)
}

// Negate returns the NonZeroInt with the opposite sign. It fails for NonZeroIntMin, whose opposite does not fit into
// an int32.
func (n NonZeroInt) Negate() (NonZeroInt, error) {
	return NewNonZeroInt(-int64(n.value))
}

// Bytes returns the serialized version of the NonZeroInt.
func (n NonZeroInt) Bytes() ([]byte, error) {
	return codec.EncodeNum(nonZeroIntCodec, n)
}

// FromBytes deserializes the NonZeroInt from the given bytes and returns the number of consumed bytes.
func (n *NonZeroInt) FromBytes(bytes []byte) (int, error) {
	decoded, consumedBytes, err := codec.DecodeNum(nonZeroIntCodec, bytes)
	if err != nil {
		return 0, err
	}

	*n = decoded

	return consumedBytes, nil
}

// MarshalJSON encodes the NonZeroInt as a plain JSON number.
func (n NonZeroInt) MarshalJSON() ([]byte, error) {
	return nonZeroIntCodec.MarshalJSON(n)
}

// UnmarshalJSON decodes a plain JSON number and validates it.
func (n *NonZeroInt) UnmarshalJSON(bytes []byte) error {
	decoded, err := nonZeroIntCodec.UnmarshalJSON(bytes)
	if err != nil {
		return err
	}

	*n = decoded

	return nil
}

// String returns the decimal representation of the NonZeroInt.
func (n NonZeroInt) String() string {
	return strconv.FormatInt(int64(n.value), 10)
}

// code contract (make sure the type implements all required methods).
var (
	_ Int                        = NonZeroInt{}
	_ constraints.Serializable   = NonZeroInt{}
	_ constraints.Deserializable = &NonZeroInt{}
	_ json.Marshaler             = NonZeroInt{}
	_ json.Unmarshaler           = &NonZeroInt{}
)
