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

// StrictlyPositiveInt represents an integer that is greater than zero.
type StrictlyPositiveInt struct {
	value int32
}

var (
	strictlyPositiveIntKind  = newKind("StrictlyPositiveInt", "strictly positive", [2]int32{1, math.MaxInt32})
	strictlyPositiveIntCodec = codec.New("StrictlyPositiveInt", StrictlyPositiveInt.Int32, NewStrictlyPositiveInt[int32])
)

// NewStrictlyPositiveInt returns the given integer as a StrictlyPositiveInt or a ConstructionError if it is negative,
// zero or does not fit into an int32.
func NewStrictlyPositiveInt[N constraints.Integer](n N) (StrictlyPositiveInt, error) {
	return refine(strictlyPositiveIntKind, n, func(value int32) StrictlyPositiveInt { return StrictlyPositiveInt{value: value} })
}

// MustStrictlyPositiveInt returns the given integer as a StrictlyPositiveInt and panics if that is not possible.
func MustStrictlyPositiveInt[N constraints.Integer](n N) StrictlyPositiveInt {
	return refinement.Must(NewStrictlyPositiveInt(n))
}

// StrictlyPositiveIntOrNone returns the given integer as a StrictlyPositiveInt and true, or false if that is not
// possible.
func StrictlyPositiveIntOrNone[N constraints.Integer](n N) (StrictlyPositiveInt, bool) {
	return refinement.OrNone(NewStrictlyPositiveInt(n))
}

// StrictlyPositiveIntMin returns the smallest StrictlyPositiveInt.
func StrictlyPositiveIntMin() StrictlyPositiveInt {
	return StrictlyPositiveInt{value: 1}
}

// StrictlyPositiveIntMax returns the biggest StrictlyPositiveInt.
func StrictlyPositiveIntMax() StrictlyPositiveInt {
	return StrictlyPositiveInt{value: math.MaxInt32}
}

// StrictlyPositiveIntRange returns the range of values admitted by StrictlyPositiveInt.
func StrictlyPositiveIntRange() *valuerange.ValueRange[int32] {
	return strictlyPositiveIntKind.ranges[0]
}

// RandomStrictlyPositiveInt returns a StrictlyPositiveInt drawn uniformly from its range.
func RandomStrictlyPositiveInt() StrictlyPositiveInt {
	return StrictlyPositiveInt{value: strictlyPositiveIntKind.random()}
}

// Int32 returns the wrapped value.
func (s StrictlyPositiveInt) Int32() int32 {
	return s.value
}

// Compare orders the StrictlyPositiveInt against any other member of the lattice.
func (s StrictlyPositiveInt) Compare(other Int) int {
	return Compare(s, other)
}

// Negate returns the StrictlyNegativeInt with the opposite sign.
func (s StrictlyPositiveInt) Negate() (StrictlyNegativeInt, error) {
	return NewStrictlyNegativeInt(-int64(s.value))
}

// Bytes returns the serialized version of the StrictlyPositiveInt.
func (s StrictlyPositiveInt) Bytes() ([]byte, error) {
	return codec.EncodeNum(strictlyPositiveIntCodec, s)
}

// FromBytes deserializes the StrictlyPositiveInt from the given bytes and returns the number of consumed bytes.
func (s *StrictlyPositiveInt) FromBytes(bytes []byte) (int, error) {
	decoded, consumedBytes, err := codec.DecodeNum(strictlyPositiveIntCodec, bytes)
	if err != nil {
		return 0, err
	}

	*s = decoded

	return consumedBytes, nil
}

// MarshalJSON encodes the StrictlyPositiveInt as a plain JSON number.
func (s StrictlyPositiveInt) MarshalJSON() ([]byte, error) {
	return strictlyPositiveIntCodec.MarshalJSON(s)
}

// UnmarshalJSON decodes a plain JSON number and validates it.
func (s *StrictlyPositiveInt) UnmarshalJSON(bytes []byte) error {
	decoded, err := strictlyPositiveIntCodec.UnmarshalJSON(bytes)
	if err != nil {
		return err
	}

	*s = decoded

	return nil
}

// String returns the decimal representation of the StrictlyPositiveInt.
func (s StrictlyPositiveInt) String() string {
	return strconv.FormatInt(int64(s.value), 10)
}

// code contract (make sure the type implements all required methods).
var (
	_ Int                        = StrictlyPositiveInt{}
	_ constraints.Serializable   = StrictlyPositiveInt{}
	_ constraints.Deserializable = &StrictlyPositiveInt{}
	_ json.Marshaler             = StrictlyPositiveInt{}
	_ json.Unmarshaler           = &StrictlyPositiveInt{}
)
