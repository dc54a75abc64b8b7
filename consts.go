package checked

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

const maxUint64 = 1<<64 - 1

// WidthClass reports whether a width has a strictly wider native integer type
// available to compute in.
type WidthClass int

const (
	// Widenable widths (8, 16, 32 bits) are checked by computing exactly in
	// int64/uint64 and range-checking the result.
	Widenable WidthClass = iota

	// Widest widths (64 bits) have nothing wider to compute in, so checks use
	// division bounds and invariants of the wrapped result instead.
	Widest
)

func (w WidthClass) String() string {
	switch w {
	case Widenable:
		return "widenable"
	case Widest:
		return "widest"
	default:
		return "unknown"
	}
}

// traits is the strategy key for a concrete integer type. It only depends on
// T, so the compiler folds most of it away for each instantiation.
type traits struct {
	bits   uint
	signed bool
	class  WidthClass
}

func traitsOf[T constraints.Integer]() traits {
	var zero T
	bits := uint(unsafe.Sizeof(zero)) * 8
	t := traits{bits: bits, signed: ^zero < zero, class: Widenable}
	if bits >= 64 {
		t.class = Widest
	}
	return t
}

// Bits returns the width of T in bits.
func Bits[T constraints.Integer]() uint { return traitsOf[T]().bits }

// Signed reports whether T is a signed integer type.
func Signed[T constraints.Integer]() bool { return traitsOf[T]().signed }

// Class returns the WidthClass used to check arithmetic on T.
func Class[T constraints.Integer]() WidthClass { return traitsOf[T]().class }

// Max returns the largest value representable by T.
func Max[T constraints.Integer]() T {
	t := traitsOf[T]()
	if t.signed {
		return T(uint64(maxUint64) >> (65 - t.bits))
	}
	var zero T
	return ^zero
}

// Min returns the smallest value representable by T.
func Min[T constraints.Integer]() T {
	if traitsOf[T]().signed {
		return ^Max[T]()
	}
	return 0
}

// boundsInt64 returns Min and Max widened to int64, for signed T whose class is
// Widenable.
func boundsInt64[T constraints.Integer]() (lo, hi int64) {
	return int64(Min[T]()), int64(Max[T]())
}
