// Package checker validates JSON documents against the refinements of this module by name.
package checker

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"

	"github.com/bodiam/types/collection"
	"github.com/bodiam/types/number"
)

// ErrUnknownRefinement is returned if no decoder is registered under the requested name.
var ErrUnknownRefinement = ierrors.New("unknown refinement")

// Decoder decodes a JSON document into a refined value.
type Decoder func(payload []byte) (fmt.Stringer, error)

// Registry maps refinement names to their Decoders.
type Registry struct {
	decoders map[string]Decoder
}

// NewRegistry returns a Registry that knows all refinements of this module.
func NewRegistry() *Registry {
	r := &Registry{
		decoders: make(map[string]Decoder),
	}

	r.Register("zero-int", JSONDecoder[number.ZeroInt]())
	r.Register("non-zero-int", JSONDecoder[number.NonZeroInt]())
	r.Register("positive-int", JSONDecoder[number.PositiveInt]())
	r.Register("negative-int", JSONDecoder[number.NegativeInt]())
	r.Register("strictly-positive-int", JSONDecoder[number.StrictlyPositiveInt]())
	r.Register("strictly-negative-int", JSONDecoder[number.StrictlyNegativeInt]())
	r.Register("not-empty-list", JSONDecoder[collection.NotEmptyList[RawElement]]())
	r.Register("not-empty-set", JSONDecoder[collection.NotEmptySet[RawElement]]())
	r.Register("not-empty-map", JSONDecoder[collection.NotEmptyMap[string, RawElement]]())

	return r
}

// Register adds the Decoder under the given name and replaces any Decoder that was registered before.
func (r *Registry) Register(name string, decoder Decoder) {
	r.decoders[name] = decoder
}

// Names returns the names of all registered refinements in sorted order.
func (r *Registry) Names() []string {
	names := lo.Keys(r.decoders)
	sort.Strings(names)

	return names
}

// Check decodes the payload as the named refinement and returns the string representation of the refined value.
func (r *Registry) Check(name string, payload []byte) (string, error) {
	decoder, exists := r.decoders[name]
	if !exists {
		return "", ierrors.Wrapf(ErrUnknownRefinement, "no refinement named %s", name)
	}

	refined, err := decoder(payload)
	if err != nil {
		return "", err
	}

	return refined.String(), nil
}

// JSONDecoder returns a Decoder that unmarshals the payload into T.
func JSONDecoder[T fmt.Stringer]() Decoder {
	return func(payload []byte) (fmt.Stringer, error) {
		var refined T
		if err := json.Unmarshal(payload, &refined); err != nil {
			return nil, err
		}

		return refined, nil
	}
}
