package checked

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/shabbyrobe/go-checked/internal/wide"
)

// Factor is Base**Exponent. Exponent is never negative.
type Factor[T constraints.Integer] struct {
	Base     T
	Exponent T
}

func (f Factor[T]) String() string { return fmt.Sprintf("%d^%d", f.Base, f.Exponent) }

// Factorization is the result of a single-base search:
//
//	x == Factor + Remainder    if !Ceil
//	x == Factor - Remainder    if Ceil
//
// with Remainder >= 0 and as small as possible.
type Factorization[T constraints.Integer] struct {
	Remainder T
	Factor    Factor[T]
	Ceil      bool
}

func (f Factorization[T]) String() string {
	sign := "+"
	if f.Ceil {
		sign = "-"
	}
	return fmt.Sprintf("%s %s %d", f.Factor, sign, f.Remainder)
}

// Factorization2 is the result of a dual-base search:
//
//	x == Factors[0] * Factors[1] + Remainder    if !Ceil
//	x == Factors[0] * Factors[1] - Remainder    if Ceil
type Factorization2[T constraints.Integer] struct {
	Remainder T
	Factors   [2]Factor[T]
	Ceil      bool
}

func (f Factorization2[T]) String() string {
	sign := "+"
	if f.Ceil {
		sign = "-"
	}
	return fmt.Sprintf("%s * %s %s %d", f.Factors[0], f.Factors[1], sign, f.Remainder)
}

func (o Ops[T]) checkFactor(op string, x T, bases ...T) error {
	if x <= 0 {
		return fail(o.contract(), DomainError, op, "operand %d is not positive", x)
	}
	for _, b := range bases {
		if b <= 1 {
			return fail(o.contract(), DomainError, op, "base %d is not greater than 1", b)
		}
	}
	if len(bases) == 2 && bases[0] == bases[1] {
		return fail(o.contract(), DomainError, op, "bases are equal (%d)", bases[0])
	}
	return nil
}

// FactorizeFloor finds the largest power of b that is <= x. x must be > 0 and
// b > 1. It cannot overflow.
func (o Ops[T]) FactorizeFloor(x, b T) (Factorization[T], error) {
	if err := o.checkFactor("factorfloor", x, b); err != nil {
		return Factorization[T]{}, err
	}
	acc, e := floorPow(x, b)
	return Factorization[T]{Remainder: x - acc, Factor: Factor[T]{Base: b, Exponent: e}}, nil
}

// FactorizeCeil finds the smallest power of b that is >= x, with the same
// contract as FactorizeFloor. The power itself need not fit in T; only the
// Remainder must, otherwise the result is an Overflow.
func (o Ops[T]) FactorizeCeil(x, b T) (Factorization[T], error) {
	if err := o.checkFactor("factorceil", x, b); err != nil {
		return Factorization[T]{}, err
	}
	acc, e := floorPow(x, b)
	r := x - acc
	if r == 0 {
		return Factorization[T]{Factor: Factor[T]{Base: b, Exponent: e}, Ceil: true}, nil
	}

	// b**(e+1) - x == b**e*(b-1) - r, carried wide so that neither term can
	// overflow on the way.
	p, _ := wide.U128From64(uint64(acc)).Mul64(uint64(b - 1))
	rem, err := o.narrow("factorceil", p.Sub64(uint64(r)), x)
	if err != nil {
		return Factorization[T]{}, err
	}
	return Factorization[T]{Remainder: rem, Factor: Factor[T]{Base: b, Exponent: e + 1}, Ceil: true}, nil
}

// LogFloor returns floor(log_b(x)) for x > 0, b > 1.
func (o Ops[T]) LogFloor(x, b T) (T, error) {
	if err := o.checkFactor("logfloor", x, b); err != nil {
		return 0, err
	}
	_, e := floorPow(x, b)
	return e, nil
}

// LogCeil returns ceil(log_b(x)) for x > 0, b > 1.
func (o Ops[T]) LogCeil(x, b T) (T, error) {
	if err := o.checkFactor("logceil", x, b); err != nil {
		return 0, err
	}
	var (
		acc   T = 1
		e     T
		limit = Max[T]() / b
	)
	for acc < x {
		if acc > limit {
			// acc*b > Max >= x, so the next power is the answer.
			return e + 1, nil
		}
		acc *= b
		e++
	}
	return e, nil
}

// FactorizeFloor2 finds i, j such that a**i * b**j is as close as possible
// to x without exceeding it. x must be > 0, a and b > 1, and a != b.
//
// The search starts from the largest power of a alone and repeatedly trades
// one factor of a for as many factors of b as still fit under x. The largest
// feasible j never shrinks as i drops, so every i from the initial exponent
// down to 0 is visited with its largest feasible j, and the best product on
// the trajectory is the optimum.
func (o Ops[T]) FactorizeFloor2(x, a, b T) (Factorization2[T], error) {
	if err := o.checkFactor("factorfloor2", x, a, b); err != nil {
		return Factorization2[T]{}, err
	}

	acc, i := floorPow(x, a)
	var (
		j     T
		limit = x / b
	)
	// a**i alone may still leave room for some factors of b.
	for acc <= limit {
		acc *= b
		j++
	}
	best, bi, bj := acc, i, j
	for i > 0 && best != x {
		acc /= a
		i--
		for acc <= limit {
			acc *= b
			j++
		}
		if acc > best {
			best, bi, bj = acc, i, j
		}
	}
	return Factorization2[T]{
		Remainder: x - best,
		Factors:   [2]Factor[T]{{Base: a, Exponent: bi}, {Base: b, Exponent: bj}},
	}, nil
}

// FactorizeCeil2 is the ceiling counterpart of FactorizeFloor2: it finds
// a**i * b**j >= x as close to x as possible. Candidate products can exceed
// Max[T](), so they are carried in 128 bits; only the Remainder must fit in T.
func (o Ops[T]) FactorizeCeil2(x, a, b T) (Factorization2[T], error) {
	if err := o.checkFactor("factorceil2", x, a, b); err != nil {
		return Factorization2[T]{}, err
	}

	xu, au, bu := uint64(x), uint64(a), uint64(b)

	acc, e := floorPow(x, a)
	p, i := wide.U128From64(uint64(acc)), uint64(e)
	if p.Cmp64(xu) < 0 {
		p, _ = p.Mul64(au) // p < x, so p*a < 2**128
		i++
	}

	var (
		j      uint64
		best   = p
		bi, bj = i, j
	)
	for i > 0 && best.Cmp64(xu) != 0 {
		p = p.Quo64(au) // exact, p holds at least one factor of a
		i--
		for p.Cmp64(xu) < 0 {
			p, _ = p.Mul64(bu)
			j++
		}
		if p.Cmp(best) < 0 {
			best, bi, bj = p, i, j
		}
	}

	rem, err := o.narrow("factorceil2", best.Sub64(xu), x)
	if err != nil {
		return Factorization2[T]{}, err
	}
	return Factorization2[T]{
		Remainder: rem,
		Factors:   [2]Factor[T]{{Base: a, Exponent: T(bi)}, {Base: b, Exponent: T(bj)}},
		Ceil:      true,
	}, nil
}

// narrow converts a wide, non-negative remainder back to T.
func (o Ops[T]) narrow(op string, v wide.U128, x T) (T, error) {
	if !v.IsUint64() || v.AsUint64() > uint64(Max[T]()) {
		return 0, fail(o.overflow(), Overflow, op, "remainder %s for %d does not fit in %d bits", v, x, Bits[T]())
	}
	return T(v.AsUint64()), nil
}

// floorPow returns the largest b**e <= x, and e. x > 0, b > 1.
func floorPow[T constraints.Integer](x, b T) (acc, e T) {
	limit := Max[T]() / b
	acc = 1
	// Once acc > Max/b, acc*b > Max >= x: acc is already the answer.
	for acc <= limit && acc*b <= x {
		acc *= b
		e++
	}
	return acc, e
}

func FactorizeFloor[T constraints.Integer](x, b T) (Factorization[T], error) {
	return Ops[T]{}.FactorizeFloor(x, b)
}

func FactorizeCeil[T constraints.Integer](x, b T) (Factorization[T], error) {
	return Ops[T]{}.FactorizeCeil(x, b)
}

func FactorizeFloor2[T constraints.Integer](x, a, b T) (Factorization2[T], error) {
	return Ops[T]{}.FactorizeFloor2(x, a, b)
}

func FactorizeCeil2[T constraints.Integer](x, a, b T) (Factorization2[T], error) {
	return Ops[T]{}.FactorizeCeil2(x, a, b)
}

func LogFloor[T constraints.Integer](x, b T) (T, error) { return Ops[T]{}.LogFloor(x, b) }
func LogCeil[T constraints.Integer](x, b T) (T, error)  { return Ops[T]{}.LogCeil(x, b) }
