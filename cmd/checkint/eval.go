package main

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	checked "github.com/shabbyrobe/go-checked"
)

// evaluator runs named operations at one concrete integer type.
type evaluator interface {
	Type() string
	Eval(op string, args []string) (result interface{}, err error)
}

func newEvaluator(typ string, fatal bool) (evaluator, error) {
	switch typ {
	case "int8":
		return newTypedEvaluator[int8](typ, fatal), nil
	case "int16":
		return newTypedEvaluator[int16](typ, fatal), nil
	case "int32":
		return newTypedEvaluator[int32](typ, fatal), nil
	case "int64":
		return newTypedEvaluator[int64](typ, fatal), nil
	case "uint8":
		return newTypedEvaluator[uint8](typ, fatal), nil
	case "uint16":
		return newTypedEvaluator[uint16](typ, fatal), nil
	case "uint32":
		return newTypedEvaluator[uint32](typ, fatal), nil
	case "uint64":
		return newTypedEvaluator[uint64](typ, fatal), nil
	default:
		return nil, fmt.Errorf("checkint: unknown type %q", typ)
	}
}

type typedEvaluator[T constraints.Integer] struct {
	typ string
	ops checked.Ops[T]
}

func newTypedEvaluator[T constraints.Integer](typ string, fatal bool) *typedEvaluator[T] {
	ev := &typedEvaluator[T]{typ: typ}
	ev.ops.Overflow = checked.Recoverable
	if fatal {
		ev.ops.Contract = checked.Fatal
	} else {
		ev.ops.Contract = checked.Recoverable
	}
	return ev
}

func (ev *typedEvaluator[T]) Type() string { return ev.typ }

func (ev *typedEvaluator[T]) parse(s string) (T, error) {
	bits := int(checked.Bits[T]())
	if checked.Signed[T]() {
		v, err := strconv.ParseInt(s, 0, bits)
		if err != nil {
			return 0, fmt.Errorf("checkint: invalid %s operand %q: %w", ev.typ, s, err)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("checkint: invalid %s operand %q: %w", ev.typ, s, err)
	}
	return T(v), nil
}

func (ev *typedEvaluator[T]) parseAll(args []string, n ...int) ([]T, error) {
	ok := false
	for _, c := range n {
		ok = ok || len(args) == c
	}
	if !ok {
		return nil, fmt.Errorf("checkint: expected %v operands, found %d", n, len(args))
	}
	out := make([]T, len(args))
	for i, a := range args {
		v, err := ev.parse(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("checkint: invalid count %q: %w", s, err)
	}
	return n, nil
}

// Eval runs op. Arithmetic failures are returned as *checked.Error; with
// fatal set, contract violations panic inside the library and are recovered
// here into the same error.
func (ev *typedEvaluator[T]) Eval(op string, args []string) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			cerr, ok := r.(*checked.Error)
			if !ok {
				panic(r)
			}
			result, err = nil, &fatalError{cerr}
		}
	}()

	switch op {
	case "neg":
		v, err := ev.parseAll(args, 1)
		if err != nil {
			return nil, err
		}
		return ev.ops.Neg(v[0])

	case "add", "sub", "mul", "quo", "rem", "floormul", "ceilmul", "ratiofloor", "ratioceil", "logfloor", "logceil":
		v, err := ev.parseAll(args, 2)
		if err != nil {
			return nil, err
		}
		return ev.binary(op, v[0], v[1])

	case "shl", "shr", "pow":
		if len(args) != 2 {
			return nil, fmt.Errorf("checkint: %s expects 2 operands, found %d", op, len(args))
		}
		a, err := ev.parse(args[0])
		if err != nil {
			return nil, err
		}
		n, err := parseCount(args[1])
		if err != nil {
			return nil, err
		}
		switch op {
		case "shl":
			return ev.ops.Shl(a, n)
		case "shr":
			return ev.ops.Shr(a, n)
		default:
			return ev.ops.Pow(a, n)
		}

	case "factorfloor", "factorceil":
		v, err := ev.parseAll(args, 2, 3)
		if err != nil {
			return nil, err
		}
		return ev.factor(op == "factorceil", v)

	case "cast":
		if len(args) != 2 {
			return nil, fmt.Errorf("checkint: cast expects <to> <value>, found %d operands", len(args))
		}
		v, err := ev.parse(args[1])
		if err != nil {
			return nil, err
		}
		return castTo(args[0], v)

	default:
		return nil, fmt.Errorf("checkint: unknown op %q", op)
	}
}

func (ev *typedEvaluator[T]) binary(op string, a, b T) (T, error) {
	o := ev.ops
	switch op {
	case "add":
		return o.Add(a, b)
	case "sub":
		return o.Sub(a, b)
	case "mul":
		return o.Mul(a, b)
	case "quo":
		return o.Quo(a, b)
	case "rem":
		return o.Rem(a, b)
	case "floormul":
		return o.FloorMultiple(a, b)
	case "ceilmul":
		return o.CeilMultiple(a, b)
	case "ratiofloor":
		return o.RatioFloor(a, b)
	case "ratioceil":
		return o.RatioCeil(a, b)
	case "logfloor":
		return o.LogFloor(a, b)
	case "logceil":
		return o.LogCeil(a, b)
	}
	panic("unreachable")
}

func (ev *typedEvaluator[T]) factor(ceil bool, v []T) (interface{}, error) {
	o := ev.ops
	switch {
	case len(v) == 2 && ceil:
		return o.FactorizeCeil(v[0], v[1])
	case len(v) == 2:
		return o.FactorizeFloor(v[0], v[1])
	case ceil:
		return o.FactorizeCeil2(v[0], v[1], v[2])
	default:
		return o.FactorizeFloor2(v[0], v[1], v[2])
	}
}

// castTo converts v to the type named by to. A value that does not fit is an
// Overflow, never a contract violation, so --fatal does not apply.
func castTo[From constraints.Integer](to string, v From) (interface{}, error) {
	p := checked.Recoverable
	switch to {
	case "int8":
		return checked.CastWith[int8](p, v)
	case "int16":
		return checked.CastWith[int16](p, v)
	case "int32":
		return checked.CastWith[int32](p, v)
	case "int64":
		return checked.CastWith[int64](p, v)
	case "uint8":
		return checked.CastWith[uint8](p, v)
	case "uint16":
		return checked.CastWith[uint16](p, v)
	case "uint32":
		return checked.CastWith[uint32](p, v)
	case "uint64":
		return checked.CastWith[uint64](p, v)
	default:
		return nil, fmt.Errorf("checkint: unknown type %q", to)
	}
}

// fatalError is a contract violation that was raised as a panic under
// --fatal and recovered.
type fatalError struct{ err *checked.Error }

func (f *fatalError) Error() string { return "fatal: " + f.err.Error() }
func (f *fatalError) Unwrap() error { return f.err }

// kindOf returns the label for an evaluation failure, or "" if err is not a
// checked arithmetic failure.
func kindOf(err error) string {
	var cerr *checked.Error
	if !errors.As(err, &cerr) {
		return ""
	}
	return cerr.Kind.String()
}
