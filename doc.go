/*
Package checked provides overflow-checked integer arithmetic for every native
Go integer width (8, 16, 32 and 64 bits, signed and unsigned), plus integer
powers, floor/ceiling rounding and one- or two-base factorization and
logarithm searches built on top of it.

No operation ever silently wraps, saturates or truncates. Each either returns
the exact mathematical result or reports a classified *Error:

	Overflow      result above the representable range (add, mul, quo, shl, pow, cast)
	Underflow     result below the representable range (sub, neg)
	DivideByZero  zero divisor
	DomainError   invalid shift count, negative shift operand, negative exponent,
	              or an argument outside a rounding/factorization function's domain

Simple example:

	v, err := checked.Add[int32](math.MaxInt32, 1)
	fmt.Println(v, errors.Is(err, checked.ErrOverflow))
	// Output: 0 true

Failures are routed through a Policy. Data-dependent failures (will this
particular addition overflow?) use the Ops.Overflow policy, which defaults to
Recoverable: the error is returned. Precondition failures that a correct
caller never triggers (zero divisor, bad shift count, negative exponent) use
the Ops.Contract policy, which defaults to Fatal: the *Error is raised as a
panic. Both can be chosen per call site:

	ops := checked.Ops[uint16]{Contract: checked.Recoverable}
	_, err := ops.Quo(10, 0) // err is a DivideByZero *Error, no panic

Widths that have a strictly wider native type (8, 16 and 32 bits) are checked
by widening, computing exactly and range-checking the result. 64-bit types
have no wider type, so they are checked with division-based bounds and
sign/carry invariants computed on the unsigned bit pattern.

Value wraps a single integer so that a chain of operations can be checked
with one error test at the end:

	v, err := checked.Of[uint8](200).Add(checked.Of[uint8](100)).Get()
	// err is an Overflow *Error

All functions are pure and safe for concurrent use.
*/
package checked
