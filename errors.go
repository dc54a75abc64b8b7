package checked

import "fmt"

// Kind classifies why a checked operation failed.
type Kind int

const (
	// Overflow means the exact result is above the representable range of the
	// destination type, or (for multiply and pow) out of range at all.
	Overflow Kind = iota + 1

	// Underflow means a subtraction or negation left the representable range.
	Underflow

	// DivideByZero means a divisor was zero.
	DivideByZero

	// DomainError means an operand was outside the operation's domain: a bad
	// shift count, a negative shift operand, a negative exponent, or an invalid
	// rounding/factorization argument.
	DomainError
)

func (k Kind) String() string {
	switch k {
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case DivideByZero:
		return "divide by zero"
	case DomainError:
		return "domain error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the only error type returned (or raised, under Fatal) by this
// package.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("checked: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("checked: %s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Is matches any *Error of the same Kind, so that the sentinels below can be
// used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

var (
	ErrOverflow     = &Error{Kind: Overflow}
	ErrUnderflow    = &Error{Kind: Underflow}
	ErrDivideByZero = &Error{Kind: DivideByZero}
	ErrDomain       = &Error{Kind: DomainError}
)

// KindOf returns the Kind of err if it is (or wraps) an *Error, and 0
// otherwise.
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0
		}
		err = u.Unwrap()
	}
	return 0
}

func newError(kind Kind, op string, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}
