package number

// divide returns the quotient of the given values truncated toward zero, refined by the given factory.
func divide[T any](dividend int32, divisor Int, refine func(int64) (T, error)) (quotient T, err error) {
	if divisor.Int32() == 0 {
		return quotient, NewDivisionDomainError("/", dividend)
	}

	return refine(int64(dividend) / int64(divisor.Int32()))
}

// remainder returns the remainder of the truncated division of the given values, refined by the given factory. The
// remainder always carries the sign of the dividend.
func remainder[T any](dividend int32, divisor Int, refine func(int64) (T, error)) (rem T, err error) {
	if divisor.Int32() == 0 {
		return rem, NewDivisionDomainError("%", dividend)
	}

	return refine(int64(dividend) % int64(divisor.Int32()))
}
