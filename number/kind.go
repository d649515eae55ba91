package number

import (
	"math"
	"math/rand"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"

	"github.com/bodiam/types/refinement"
	"github.com/bodiam/types/valuerange"
)

// kind describes a member of the lattice by its name, its predicate and the closed ranges that make up its domain.
type kind struct {
	name      string
	predicate string
	ranges    []*valuerange.ValueRange[int32]
}

func newKind(name, predicate string, ranges ...[2]int32) *kind {
	return &kind{
		name:      name,
		predicate: predicate,
		ranges: lo.Map(ranges, func(bounds [2]int32) *valuerange.ValueRange[int32] {
			return lo.PanicOnErr(valuerange.Closed(bounds[0], bounds[1]))
		}),
	}
}

func (k *kind) admits(value int32) bool {
	for _, valueRange := range k.ranges {
		if valueRange.Contains(value) {
			return true
		}
	}

	return false
}

// random draws uniformly from the union of the ranges of the kind.
func (k *kind) random() int32 {
	offset := rand.Int63n(lo.Sum(lo.Map(k.ranges, width)...))
	for _, valueRange := range k.ranges {
		if w := width(valueRange); offset >= w {
			offset -= w

			continue
		}

		return int32(int64(valueRange.Lower().Value()) + offset)
	}

	panic("random offset exceeds the domain of " + k.name)
}

func width(valueRange *valuerange.ValueRange[int32]) int64 {
	return int64(valueRange.Upper().Value()) - int64(valueRange.Lower().Value()) + 1
}

// refine validates the given integer against the kind and wraps it if it is admitted.
func refine[T any, N constraints.Integer](k *kind, n N, wrap func(int32) T) (refined T, err error) {
	value, fits := toInt32(n)
	if !fits || !k.admits(value) {
		return refined, refinement.NewConstructionError(k.name, n, k.predicate)
	}

	return wrap(value), nil
}

// toInt32 converts n to an int32 and reports whether it fits without truncation.
func toInt32[N constraints.Integer](n N) (int32, bool) {
	if n < 0 {
		return int32(int64(n)), int64(n) >= math.MinInt32
	}

	return int32(uint64(n)), uint64(n) <= math.MaxInt32
}
