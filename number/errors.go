package number

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrDivisionByZero is matched by every DivisionDomainError.
var ErrDivisionByZero = ierrors.New("division by zero")

// DivisionDomainError is returned by the refined division and remainder operations if the divisor holds zero.
type DivisionDomainError struct {
	operator string
	dividend int32
}

// NewDivisionDomainError creates a DivisionDomainError for the given operator and dividend.
func NewDivisionDomainError(operator string, dividend int32) *DivisionDomainError {
	return &DivisionDomainError{
		operator: operator,
		dividend: dividend,
	}
}

// Operator returns the operator that was applied ("/" or "%").
func (d *DivisionDomainError) Operator() string {
	return d.operator
}

// Dividend returns the value that was divided.
func (d *DivisionDomainError) Dividend() int32 {
	return d.dividend
}

func (d *DivisionDomainError) Error() string {
	return fmt.Sprintf("unable to compute %d %s 0", d.dividend, d.operator)
}

// Is makes DivisionDomainErrors match ErrDivisionByZero.
func (d *DivisionDomainError) Is(target error) bool {
	return target == ErrDivisionByZero
}
