package checked

// Policy decides what happens when a check fails.
//
// Report is only called with a non-nil *Error. A policy that returns must
// return the error that the failing operation should hand back to its caller;
// returning nil is not allowed, since there is no valid result to return.
type Policy interface {
	Report(err *Error) error
}

type recoverablePolicy struct{}

func (recoverablePolicy) Report(err *Error) error { return err }

type fatalPolicy struct{}

func (fatalPolicy) Report(err *Error) error { panic(err) }

var (
	// Recoverable returns every failure to the caller as an error. It is the
	// default for data-dependent outcomes (Ops.Overflow).
	Recoverable Policy = recoverablePolicy{}

	// Fatal treats a failure as a programming error and panics with the
	// *Error. It is the default for preconditions (Ops.Contract).
	Fatal Policy = fatalPolicy{}
)

// fail is the single funnel through which every failure leaves the package.
func fail(p Policy, kind Kind, op string, format string, args ...interface{}) error {
	err := p.Report(newError(kind, op, format, args...))
	if err == nil {
		panic("checked: Policy.Report returned nil for " + op)
	}
	return err
}
