package checked

import "golang.org/x/exp/constraints"

func (o Ops[T]) checkRounding(op string, x, d T) error {
	if x < 0 {
		return fail(o.contract(), DomainError, op, "negative operand %d", x)
	}
	if d == 0 {
		return fail(o.contract(), DivideByZero, op, "zero divisor")
	}
	if d < 0 {
		return fail(o.contract(), DomainError, op, "negative divisor %d", d)
	}
	return nil
}

// FloorMultiple returns the largest multiple of d that is <= x. x must be
// >= 0 and d > 0. It cannot overflow.
func (o Ops[T]) FloorMultiple(x, d T) (T, error) {
	if err := o.checkRounding("floormul", x, d); err != nil {
		return 0, err
	}
	return x - x%d, nil
}

// CeilMultiple returns the smallest multiple of d that is >= x, with the same
// contract as FloorMultiple. It overflows only if that multiple is above
// Max[T]().
func (o Ops[T]) CeilMultiple(x, d T) (T, error) {
	if err := o.checkRounding("ceilmul", x, d); err != nil {
		return 0, err
	}
	if x == 0 {
		return 0, nil
	}
	r := x % d
	if r == 0 {
		return x, nil
	}
	v, ok := addRaw(x-r, d)
	if !ok {
		return 0, fail(o.overflow(), Overflow, "ceilmul", "next multiple of %d above %d", d, x)
	}
	return v, nil
}

// RatioFloor returns floor(n / d) for n >= 0, d > 0.
func (o Ops[T]) RatioFloor(n, d T) (T, error) {
	if err := o.checkRounding("ratiofloor", n, d); err != nil {
		return 0, err
	}
	return n / d, nil
}

// RatioCeil returns ceil(n / d) for n >= 0, d > 0. It is computed as
// (n-1)/d + 1, which cannot overflow, rather than (n+d-1)/d, which can.
func (o Ops[T]) RatioCeil(n, d T) (T, error) {
	if err := o.checkRounding("ratioceil", n, d); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	return (n-1)/d + 1, nil
}

func FloorMultiple[T constraints.Integer](x, d T) (T, error) { return Ops[T]{}.FloorMultiple(x, d) }
func CeilMultiple[T constraints.Integer](x, d T) (T, error)  { return Ops[T]{}.CeilMultiple(x, d) }
func RatioFloor[T constraints.Integer](n, d T) (T, error)    { return Ops[T]{}.RatioFloor(n, d) }
func RatioCeil[T constraints.Integer](n, d T) (T, error)     { return Ops[T]{}.RatioCeil(n, d) }
