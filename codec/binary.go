package codec

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
)

// FixedWidth is a constraint that permits the numeric types that have a fixed size on the binary wire.
type FixedWidth interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// EncodeNum encodes the given refined value as the little-endian bytes of its numeric wire representation.
func EncodeNum[R any, W FixedWidth](c *Codec[R, W], refined R) ([]byte, error) {
	return serializer.NewSerializer().WriteNum(c.Encode(refined), func(err error) error {
		return ierrors.Wrapf(err, "failed to write %s", c.name)
	}).Serialize()
}

// DecodeNum reads a numeric wire value from the given bytes and refines it. It returns the number of consumed bytes.
func DecodeNum[R any, W FixedWidth](c *Codec[R, W], data []byte) (refined R, consumedBytes int, err error) {
	var wire W
	if consumedBytes, err = serializer.NewDeserializer(data).ReadNum(&wire, func(err error) error {
		return ierrors.Wrapf(err, "failed to read %s", c.name)
	}).Done(); err != nil {
		return refined, 0, err
	}

	if refined, err = c.Decode(wire); err != nil {
		return refined, 0, err
	}

	return refined, consumedBytes, nil
}
