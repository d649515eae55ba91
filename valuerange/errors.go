package valuerange

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrEmptyRange is returned if no value satisfies the given combination of EndPoints.
	ErrEmptyRange = ierrors.New("range is empty")
)
