package valuerange

import (
	"fmt"
)

// BoundType indicates whether an EndPoint of some ValueRange is contained in the ValueRange itself ("inclusive") or
// not ("exclusive").
type BoundType uint8

const (
	// BoundTypeInclusive indicates that the EndPoint value is considered part of the ValueRange.
	BoundTypeInclusive BoundType = iota

	// BoundTypeExclusive indicates that the EndPoint value is not considered part of the ValueRange.
	BoundTypeExclusive
)

// BoundTypeNames contains a dictionary of the names of BoundTypes.
var BoundTypeNames = [...]string{
	"BoundTypeInclusive",
	"BoundTypeExclusive",
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if int(b) >= len(BoundTypeNames) {
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}

	return BoundTypeNames[b]
}
