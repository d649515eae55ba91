package checker

import (
	"bytes"
	"encoding/json"

	"github.com/iotaledger/hive.go/ierrors"
)

// RawElement is an arbitrary JSON value kept in its compact textual form, so that collections of any JSON values can
// be compared and deduplicated.
type RawElement string

// UnmarshalJSON stores the compacted JSON value.
func (r *RawElement) UnmarshalJSON(data []byte) error {
	var compacted bytes.Buffer
	if err := json.Compact(&compacted, data); err != nil {
		return ierrors.Wrap(err, "failed to compact JSON value")
	}

	*r = RawElement(compacted.String())

	return nil
}

// MarshalJSON returns the stored JSON value.
func (r RawElement) MarshalJSON() ([]byte, error) {
	return []byte(r), nil
}

// String returns the stored JSON value.
func (r RawElement) String() string {
	return string(r)
}
