package collection

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrIndex is matched by every IndexError.
var ErrIndex = ierrors.New("invalid index")

// IndexError is returned by positional operations that get an index outside of the collection or that would leave
// the collection empty.
type IndexError struct {
	index   int
	size    int
	empties bool
}

// NewIndexError creates an IndexError for the given index and collection size.
func NewIndexError(index, size int, empties bool) *IndexError {
	return &IndexError{
		index:   index,
		size:    size,
		empties: empties,
	}
}

// Index returns the rejected index.
func (i *IndexError) Index() int {
	return i.index
}

// Size returns the size of the collection the index was applied to.
func (i *IndexError) Size() int {
	return i.size
}

// Empties returns true if the index was valid but the operation would have emptied the collection.
func (i *IndexError) Empties() bool {
	return i.empties
}

func (i *IndexError) Error() string {
	if i.empties {
		return fmt.Sprintf("removing index %d would empty the collection of size %d", i.index, i.size)
	}

	return fmt.Sprintf("index %d out of bounds for size %d", i.index, i.size)
}

// Is makes IndexErrors match ErrIndex.
func (i *IndexError) Is(target error) bool {
	return target == ErrIndex
}
