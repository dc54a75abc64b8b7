package checked

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Value is an integer whose arithmetic is always checked. The first failure
// in a chain of operations sticks: every later operation is a no-op that
// returns the same failed Value, so a whole expression can be checked once at
// the end:
//
//	x, err := checked.Of(a).Mul(checked.Of(b)).Add(checked.Of(c)).Get()
//
// Plain integers on either side of an operation are wrapped with Of.
//
// Contract violations (zero divisors, bad shift counts, negative exponents)
// also stick as errors rather than panicking.
//
// Value is a value type; all operations return new values.
type Value[T constraints.Integer] struct {
	v   T
	err error
}

var _ fmt.Stringer = Value[int]{}

// Of wraps a plain integer.
func Of[T constraints.Integer](v T) Value[T] { return Value[T]{v: v} }

// valueOps routes everything to a returned error, so failures can be stored.
func valueOps[T constraints.Integer]() Ops[T] {
	return Ops[T]{Overflow: Recoverable, Contract: Recoverable}
}

func (x Value[T]) apply(y Value[T], fn func(a, b T) (T, error)) Value[T] {
	if x.err != nil {
		return x
	}
	if y.err != nil {
		return y
	}
	v, err := fn(x.v, y.v)
	return Value[T]{v: v, err: err}
}

func (x Value[T]) Add(y Value[T]) Value[T] { return x.apply(y, valueOps[T]().Add) }
func (x Value[T]) Sub(y Value[T]) Value[T] { return x.apply(y, valueOps[T]().Sub) }
func (x Value[T]) Mul(y Value[T]) Value[T] { return x.apply(y, valueOps[T]().Mul) }
func (x Value[T]) Quo(y Value[T]) Value[T] { return x.apply(y, valueOps[T]().Quo) }
func (x Value[T]) Rem(y Value[T]) Value[T] { return x.apply(y, valueOps[T]().Rem) }

func (x Value[T]) Neg() Value[T] {
	if x.err != nil {
		return x
	}
	v, err := valueOps[T]().Neg(x.v)
	return Value[T]{v: v, err: err}
}

func (x Value[T]) Shl(n int) Value[T] {
	if x.err != nil {
		return x
	}
	v, err := valueOps[T]().Shl(x.v, n)
	return Value[T]{v: v, err: err}
}

func (x Value[T]) Shr(n int) Value[T] {
	if x.err != nil {
		return x
	}
	v, err := valueOps[T]().Shr(x.v, n)
	return Value[T]{v: v, err: err}
}

func (x Value[T]) Pow(exp int) Value[T] {
	if x.err != nil {
		return x
	}
	v, err := valueOps[T]().Pow(x.v, exp)
	return Value[T]{v: v, err: err}
}

// Get unwraps the Value. If any operation that produced it failed, the first
// failure is returned and v is 0.
func (x Value[T]) Get() (v T, err error) {
	if x.err != nil {
		return 0, x.err
	}
	return x.v, nil
}

// Must is like Get but panics if computing error.
func (x Value[T]) Must() T {
	if x.err != nil {
		panic(fmt.Sprintf("Must() failed: %v", x.err))
	}
	return x.v
}

func (x Value[T]) Err() error { return x.err }

func (x Value[T]) Valid() bool { return x.err == nil }

func (x Value[T]) String() string {
	if x.err != nil {
		return fmt.Sprintf("invalid(%v)", x.err)
	}
	return fmt.Sprintf("%d", x.v)
}
