package checked

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MustNeg is like [Neg] but panics if computing error.
func MustNeg[T constraints.Integer](a T) T {
	v, err := Neg(a)
	if err != nil {
		panic(fmt.Sprintf("MustNeg(%v) failed: %v", a, err))
	}
	return v
}

// MustAdd is like [Add] but panics if computing error.
func MustAdd[T constraints.Integer](a, b T) T {
	v, err := Add(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", a, err))
	}
	return v
}

// MustSub is like [Sub] but panics if computing error.
func MustSub[T constraints.Integer](a, b T) T {
	v, err := Sub(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", a, err))
	}
	return v
}

// MustMul is like [Mul] but panics if computing error.
func MustMul[T constraints.Integer](a, b T) T {
	v, err := Mul(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", a, err))
	}
	return v
}

// MustQuo is like [Quo] but panics if computing error.
func MustQuo[T constraints.Integer](a, b T) T {
	v, err := Quo(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", a, err))
	}
	return v
}

// MustPow is like [Pow] but panics if computing error.
func MustPow[T, E constraints.Integer](base T, exp E) T {
	v, err := Pow(base, exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", base, err))
	}
	return v
}

// MustCast is like [Cast] but panics if computing error.
func MustCast[To, From constraints.Integer](v From) To {
	c, err := Cast[To](v)
	if err != nil {
		panic(fmt.Sprintf("MustCast(%v) failed: %v", v, err))
	}
	return c
}
