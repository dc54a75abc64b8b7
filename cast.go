package checked

import "golang.org/x/exp/constraints"

// Cast converts v to To, failing with Overflow unless v is exactly
// representable in To.
func Cast[To, From constraints.Integer](v From) (To, error) {
	return CastWith[To](Recoverable, v)
}

// CastWith is Cast with an explicit Policy.
//
// The check depends only on the signedness of both types and on whether the
// conversion is narrowing, meaning Max[To]() < Max[From](). Every bound is
// compared in From's own representation, where it is always representable.
func CastWith[To, From constraints.Integer](p Policy, v From) (To, error) {
	src, dst := traitsOf[From](), traitsOf[To]()
	narrowing := uint64(Max[To]()) < uint64(Max[From]())

	var ok bool
	switch {
	case !narrowing && src.signed == dst.signed:
		ok = true
	case !narrowing && !src.signed:
		ok = true // To has at least From's positive range
	case !narrowing:
		ok = v >= 0
	case src.signed && dst.signed:
		ok = v >= From(Min[To]()) && v <= From(Max[To]())
	case !src.signed && !dst.signed:
		ok = v <= From(Max[To]())
	default:
		ok = v >= 0 && v <= From(Max[To]())
	}
	if !ok {
		var zero To
		return 0, fail(p, Overflow, "cast", "%d does not fit in %T", v, zero)
	}
	return To(v), nil
}
