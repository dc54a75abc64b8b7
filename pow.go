package checked

import "golang.org/x/exp/constraints"

// Pow returns base**exp, where exp may be any integer type. See PowWith.
func Pow[T, E constraints.Integer](base T, exp E) (T, error) {
	return PowWith(Ops[T]{}, base, exp)
}

// Pow is PowWith(o, base, exp) for an int exponent.
func (o Ops[T]) Pow(base T, exp int) (T, error) {
	return PowWith(o, base, exp)
}

// PowWith returns base**exp using the policies in o.
//
// A negative exp is a DomainError contract failure. exp == 0 yields 1 for
// every base, including 0; this is checked before base == 0, which yields 0
// for any positive exp.
//
// The accumulator is bounds-checked before every multiplication, so no
// intermediate product ever leaves the range of T. Comparing a truncated
// final product with the operands afterwards would not be sound: uint32 5**14
// truncates to a value that is still larger than 5**13.
func PowWith[T, E constraints.Integer](o Ops[T], base T, exp E) (T, error) {
	if exp < 0 {
		return 0, fail(o.contract(), DomainError, "pow", "negative exponent %d", exp)
	}
	if exp == 0 {
		return 1, nil
	}
	if base == 0 {
		return 0, nil
	}
	e := uint64(exp)

	if !traitsOf[T]().signed {
		v, ok := powMag(uint64(base), e, uint64(Max[T]()))
		if !ok {
			return 0, fail(o.overflow(), Overflow, "pow", "%d ** %d", base, exp)
		}
		return T(v), nil
	}

	// MIN has no positive counterpart, so it cannot go through the magnitude
	// path below.
	if base == Min[T]() {
		if e == 1 {
			return base, nil
		}
		return 0, fail(o.overflow(), Overflow, "pow", "%d ** %d", base, exp)
	}

	neg := base < 0 && e&1 == 1
	mag := uint64(base)
	if base < 0 {
		mag = uint64(-base)
	}
	limit := uint64(Max[T]())
	if neg {
		limit++ // |MIN|
	}
	v, ok := powMag(mag, e, limit)
	if !ok {
		return 0, fail(o.overflow(), Overflow, "pow", "%d ** %d", base, exp)
	}
	if neg {
		return T(-v), nil
	}
	return T(v), nil
}

// powMag returns mag**e, or ok == false if it exceeds limit. mag must be
// non-zero.
func powMag(mag, e, limit uint64) (v uint64, ok bool) {
	if mag == 1 {
		return 1, true
	}
	v = 1
	for ; e > 0; e-- {
		if v > limit/mag {
			return 0, false
		}
		v *= mag
	}
	return v, true
}
