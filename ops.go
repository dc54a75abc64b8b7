package checked

import "golang.org/x/exp/constraints"

// Ops binds the checked operations for one integer type to a pair of
// policies. The zero value is ready to use.
//
// Overflow receives data-dependent failures: Overflow and Underflow results.
// If nil, Recoverable is used.
//
// Contract receives precondition failures that a correct caller never
// triggers: DivideByZero and DomainError. If nil, Fatal is used.
type Ops[T constraints.Integer] struct {
	Overflow Policy
	Contract Policy
}

func (o Ops[T]) overflow() Policy {
	if o.Overflow == nil {
		return Recoverable
	}
	return o.Overflow
}

func (o Ops[T]) contract() Policy {
	if o.Contract == nil {
		return Fatal
	}
	return o.Contract
}

// Neg returns -a. Any non-zero unsigned a and the signed minimum underflow.
func (o Ops[T]) Neg(a T) (T, error) {
	v, ok := negRaw(a)
	if !ok {
		return 0, fail(o.overflow(), Underflow, "neg", "-(%d)", a)
	}
	return v, nil
}

// Add returns a + b.
func (o Ops[T]) Add(a, b T) (T, error) {
	v, ok := addRaw(a, b)
	if !ok {
		return 0, fail(o.overflow(), Overflow, "add", "%d + %d", a, b)
	}
	return v, nil
}

// Sub returns a - b.
func (o Ops[T]) Sub(a, b T) (T, error) {
	v, ok := subRaw(a, b)
	if !ok {
		return 0, fail(o.overflow(), Underflow, "sub", "%d - %d", a, b)
	}
	return v, nil
}

// Mul returns a * b.
func (o Ops[T]) Mul(a, b T) (T, error) {
	v, ok := mulRaw(a, b)
	if !ok {
		return 0, fail(o.overflow(), Overflow, "mul", "%d * %d", a, b)
	}
	return v, nil
}

// Quo returns a / b, truncated towards zero. A zero b is a DivideByZero
// contract failure; MIN / -1 overflows.
func (o Ops[T]) Quo(a, b T) (T, error) {
	if b == 0 {
		return 0, fail(o.contract(), DivideByZero, "quo", "%d / 0", a)
	}
	if isMinusOneMin(a, b) {
		return 0, fail(o.overflow(), Overflow, "quo", "%d / %d", a, b)
	}
	return a / b, nil
}

// Rem returns a % b, with the sign of a. A zero b is a DivideByZero contract
// failure. MIN % -1 is 0, which is representable, so it does not fail.
func (o Ops[T]) Rem(a, b T) (T, error) {
	if b == 0 {
		return 0, fail(o.contract(), DivideByZero, "rem", "%d %% 0", a)
	}
	if isMinusOneMin(a, b) {
		return 0, nil
	}
	return a % b, nil
}

// QuoRem returns a / b and a % b together.
func (o Ops[T]) QuoRem(a, b T) (q, r T, err error) {
	if q, err = o.Quo(a, b); err != nil {
		return 0, 0, err
	}
	return q, a - q*b, nil
}

// Shl returns a << n. n must be in [0, Bits[T]()) and a must not be negative;
// both are contract failures. Losing any set bit of a is an Overflow.
func (o Ops[T]) Shl(a T, n int) (T, error) {
	if err := o.checkShift("shl", a, n); err != nil {
		return 0, err
	}
	if !shlFits(a, uint(n)) {
		return 0, fail(o.overflow(), Overflow, "shl", "%d << %d", a, n)
	}
	return a << uint(n), nil
}

// Shr returns a >> n, with the same contract as Shl. It cannot overflow.
func (o Ops[T]) Shr(a T, n int) (T, error) {
	if err := o.checkShift("shr", a, n); err != nil {
		return 0, err
	}
	return a >> uint(n), nil
}

func (o Ops[T]) checkShift(op string, a T, n int) error {
	bits := Bits[T]()
	if n < 0 || uint(n) >= bits {
		return fail(o.contract(), DomainError, op, "shift count %d outside [0, %d)", n, bits)
	}
	if a < 0 {
		return fail(o.contract(), DomainError, op, "negative operand %d", a)
	}
	return nil
}

func Neg[T constraints.Integer](a T) (T, error)    { return Ops[T]{}.Neg(a) }
func Add[T constraints.Integer](a, b T) (T, error) { return Ops[T]{}.Add(a, b) }
func Sub[T constraints.Integer](a, b T) (T, error) { return Ops[T]{}.Sub(a, b) }
func Mul[T constraints.Integer](a, b T) (T, error) { return Ops[T]{}.Mul(a, b) }
func Quo[T constraints.Integer](a, b T) (T, error) { return Ops[T]{}.Quo(a, b) }
func Rem[T constraints.Integer](a, b T) (T, error) { return Ops[T]{}.Rem(a, b) }

func QuoRem[T constraints.Integer](a, b T) (q, r T, err error) { return Ops[T]{}.QuoRem(a, b) }

func Shl[T constraints.Integer](a T, n int) (T, error) { return Ops[T]{}.Shl(a, n) }
func Shr[T constraints.Integer](a T, n int) (T, error) { return Ops[T]{}.Shr(a, n) }
