package checked

import "golang.org/x/exp/constraints"

// The functions in this file are the raw strategies behind Ops. Each returns
// the exact result and ok == true, or an unspecified value and ok == false if
// the exact result is not representable by T. Preconditions (zero divisors,
// shift counts) are the caller's problem.
//
// Nothing here ever inspects a value produced by signed wraparound to decide
// whether wraparound happened: 64-bit signed sums are formed on the uint64
// bit pattern, and everything else is decided by comparisons made before the
// operation.

func addRaw[T constraints.Integer](a, b T) (T, bool) {
	t := traitsOf[T]()
	switch {
	case t.class == Widenable && t.signed:
		lo, hi := boundsInt64[T]()
		s := int64(a) + int64(b)
		return T(s), s >= lo && s <= hi

	case t.class == Widenable:
		s := uint64(a) + uint64(b)
		return T(s), s <= uint64(Max[T]())

	case t.signed:
		r := T(uint64(a) + uint64(b))
		neg := a < 0
		return r, neg != (b < 0) || neg == (r < 0)

	default:
		r := a + b
		return r, r >= a
	}
}

func subRaw[T constraints.Integer](a, b T) (T, bool) {
	if !traitsOf[T]().signed {
		return a - b, a >= b
	}
	if b > 0 && a < Min[T]()+b {
		return 0, false
	}
	if b < 0 && a > Max[T]()+b {
		return 0, false
	}
	return T(uint64(a) - uint64(b)), true
}

func mulRaw[T constraints.Integer](a, b T) (T, bool) {
	t := traitsOf[T]()
	switch {
	case t.class == Widenable && t.signed:
		lo, hi := boundsInt64[T]()
		p := int64(a) * int64(b)
		return T(p), p >= lo && p <= hi

	case t.class == Widenable:
		p := uint64(a) * uint64(b)
		return T(p), p <= uint64(Max[T]())

	case t.signed:
		return a * b, !mulOverflowsSigned(a, b)

	default:
		// Do not compare the truncated product against the operands: truncated
		// multiplication is not monotonic, so that gives false negatives.
		if b != 0 && a > Max[T]()/b {
			return 0, false
		}
		return a * b, true
	}
}

// mulOverflowsSigned splits on the operand signs. Dividing by a negative
// divisor flips the inequality, and Go's truncating division rounds the bound
// towards zero, which is exactly the rounding each quadrant needs.
func mulOverflowsSigned[T constraints.Integer](a, b T) bool {
	maxT, minT := Max[T](), Min[T]()
	switch {
	case a == 0 || b == 0:
		return false
	case a > 0 && b > 0:
		return a > maxT/b
	case a > 0: // b < 0
		return b < minT/a
	case b > 0: // a < 0
		return a < minT/b
	default: // a < 0 && b < 0
		return a < maxT/b
	}
}

func negRaw[T constraints.Integer](a T) (T, bool) {
	if !traitsOf[T]().signed {
		return 0, a == 0
	}
	if a == Min[T]() {
		return 0, false
	}
	return -a, true
}

// isMinusOneMin reports whether a / b is the single signed division that
// overflows, MIN / -1.
func isMinusOneMin[T constraints.Integer](a, b T) bool {
	var zero T
	return traitsOf[T]().signed && a == Min[T]() && b == ^zero
}

// shlFits reports whether a << n keeps every significant bit of a. a must be
// non-negative and n in [0, bits).
func shlFits[T constraints.Integer](a T, n uint) bool {
	return a <= Max[T]()>>n
}
