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

// StrictlyNegativeInt represents an integer that is less than zero.
type StrictlyNegativeInt struct {
	value int32
}

var (
	strictlyNegativeIntKind  = newKind("StrictlyNegativeInt", "strictly negative", [2]int32{math.MinInt32, -1})
	strictlyNegativeIntCodec = codec.New("StrictlyNegativeInt", StrictlyNegativeInt.Int32, NewStrictlyNegativeInt[int32])
)

// NewStrictlyNegativeInt returns the given integer as a StrictlyNegativeInt or a ConstructionError if it is positive,
// zero or does not fit into an int32.
func NewStrictlyNegativeInt[N constraints.Integer](n N) (StrictlyNegativeInt, error) {
	return refine(strictlyNegativeIntKind, n, func(value int32) StrictlyNegativeInt { return StrictlyNegativeInt{value: value} })
}

// MustStrictlyNegativeInt returns the given integer as a StrictlyNegativeInt and panics if that is not possible.
func MustStrictlyNegativeInt[N constraints.Integer](n N) StrictlyNegativeInt {
	return refinement.Must(NewStrictlyNegativeInt(n))
}

// StrictlyNegativeIntOrNone returns the given integer as a StrictlyNegativeInt and true, or false if that is not
// possible.
func StrictlyNegativeIntOrNone[N constraints.Integer](n N) (StrictlyNegativeInt, bool) {
	return refinement.OrNone(NewStrictlyNegativeInt(n))
}

// StrictlyNegativeIntMin returns the smallest StrictlyNegativeInt.
func StrictlyNegativeIntMin() StrictlyNegativeInt {
	return StrictlyNegativeInt{value: math.MinInt32}
}

// StrictlyNegativeIntMax returns the biggest StrictlyNegativeInt.
func StrictlyNegativeIntMax() StrictlyNegativeInt {
	return StrictlyNegativeInt{value: -1}
}

// StrictlyNegativeIntRange returns the range of values admitted by StrictlyNegativeInt.
func StrictlyNegativeIntRange() *valuerange.ValueRange[int32] {
	return strictlyNegativeIntKind.ranges[0]
}

// RandomStrictlyNegativeInt returns a StrictlyNegativeInt drawn uniformly from its range.
func RandomStrictlyNegativeInt() StrictlyNegativeInt {
	return StrictlyNegativeInt{value: strictlyNegativeIntKind.random()}
}

// Int32 returns the wrapped value.
func (s StrictlyNegativeInt) Int32() int32 {
	return s.value
}

// Compare orders the StrictlyNegativeInt against any other member of the lattice.
func (s StrictlyNegativeInt) Compare(other Int) int {
	return Compare(s, other)
}

// Negate returns the StrictlyPositiveInt with the opposite sign. It fails for StrictlyNegativeIntMin, whose opposite
// does not fit into an int32.
func (s StrictlyNegativeInt) Negate() (StrictlyPositiveInt, error) {
	return NewStrictlyPositiveInt(-int64(s.value))
}

// Bytes returns the serialized version of the StrictlyNegativeInt.
func (s StrictlyNegativeInt) Bytes() ([]byte, error) {
	return codec.EncodeNum(strictlyNegativeIntCodec, s)
}

// FromBytes deserializes the StrictlyNegativeInt from the given bytes and returns the number of consumed bytes.
func (s *StrictlyNegativeInt) FromBytes(bytes []byte) (int, error) {
	decoded, consumedBytes, err := codec.DecodeNum(strictlyNegativeIntCodec, bytes)
	if err != nil {
		return 0, err
	}

	*s = decoded

	return consumedBytes, nil
}

// MarshalJSON encodes the StrictlyNegativeInt as a plain JSON number.
func (s StrictlyNegativeInt) MarshalJSON() ([]byte, error) {
	return strictlyNegativeIntCodec.MarshalJSON(s)
}

// UnmarshalJSON decodes a plain JSON number and validates it.
func (s *StrictlyNegativeInt) UnmarshalJSON(bytes []byte) error {
	decoded, err := strictlyNegativeIntCodec.UnmarshalJSON(bytes)
	if err != nil {
		return err
	}

	*s = decoded

	return nil
}

// String returns the decimal representation of the StrictlyNegativeInt.
func (s StrictlyNegativeInt) String() string {
	return strconv.FormatInt(int64(s.value), 10)
}

// code contract (make sure the type implements all required methods).
var (
	_ Int                        = StrictlyNegativeInt{}
	_ constraints.Serializable   = StrictlyNegativeInt{}
	_ constraints.Deserializable = &StrictlyNegativeInt{}
	_ json.Marshaler             = StrictlyNegativeInt{}
	_ json.Unmarshaler           = &StrictlyNegativeInt{}
)
