// Package codec translates refined values to and from their unrefined wire representation.
//
// Encoding never adds an envelope: a refined value is written exactly like the value it wraps. Decoding reads the
// unrefined value first and then runs the same validator the refined type uses for construction, so invalid wire data
// can never produce a refined value.
package codec

import (
	"encoding/json"

	"github.com/iotaledger/hive.go/ierrors"
)

// Codec translates between a refined type R and its wire representation W.
type Codec[R any, W any] struct {
	name   string
	unwrap func(R) W
	refine func(W) (R, error)
}

// New creates a Codec with the given declared type name. The unwrap function returns the wire value of a refined
// value and the refine function is the validating constructor of the refined type.
func New[R any, W any](name string, unwrap func(R) W, refine func(W) (R, error)) *Codec[R, W] {
	return &Codec[R, W]{
		name:   name,
		unwrap: unwrap,
		refine: refine,
	}
}

// Name returns the declared type name of the Codec.
func (c *Codec[R, W]) Name() string {
	return c.name
}

// Encode returns the wire representation of the given refined value.
func (c *Codec[R, W]) Encode(refined R) W {
	return c.unwrap(refined)
}

// Decode refines the given wire value or returns a DecodeError if it violates the predicate of the refined type.
func (c *Codec[R, W]) Decode(wire W) (refined R, err error) {
	if refined, err = c.refine(wire); err != nil {
		return refined, NewDecodeError(c.name, wire, err)
	}

	return refined, nil
}

// MarshalJSON encodes the given refined value as the JSON of its wire representation.
func (c *Codec[R, W]) MarshalJSON(refined R) ([]byte, error) {
	return json.Marshal(c.Encode(refined))
}

// UnmarshalJSON decodes the wire representation from JSON and refines it.
func (c *Codec[R, W]) UnmarshalJSON(data []byte) (refined R, err error) {
	var wire W
	if err = json.Unmarshal(data, &wire); err != nil {
		return refined, ierrors.Wrapf(err, "failed to unmarshal %s", c.name)
	}

	return c.Decode(wire)
}
