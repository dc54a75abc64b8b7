// Package wide provides just enough of an unsigned 128-bit integer to carry
// products of two 64-bit operands, for searches whose intermediate values can
// exceed the width of the values being searched.
package wide

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

type U128 struct {
	hi, lo uint64
}

func U128From64(v uint64) U128 { return U128{lo: v} }

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool { return u.hi == 0 }

// AsUint64 truncates the U128 to fit in a uint64. See IsUint64() if you want
// to check before you convert.
func (u U128) AsUint64() uint64 { return u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u U128) AsBigInt() *big.Int {
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.lo))
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

// Cmp64 compares u with a uint64 without widening it first.
func (u U128) Cmp64(n uint64) int {
	if u.hi > 0 || u.lo > n {
		return 1
	} else if u.lo < n {
		return -1
	}
	return 0
}

// Sub wraps around if n > u, as per the Go spec.
func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

func (u U128) Sub64(n uint64) (v U128) {
	return u.Sub(U128{lo: n})
}

// Mul64 returns u * n. If the product does not fit in 128 bits, ok is false
// and the truncated product is returned.
func (u U128) Mul64(n uint64) (v U128, ok bool) {
	hiHi, hiLo := bits.Mul64(u.hi, n)
	loHi, loLo := bits.Mul64(u.lo, n)

	var carry uint64
	v.lo = loLo
	v.hi, carry = bits.Add64(hiLo, loHi, 0)
	return v, hiHi == 0 && carry == 0
}

// QuoRem64 returns the quotient and remainder of u / by. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U128) QuoRem64(by uint64) (q U128, r uint64) {
	if by == 0 {
		panic(fmt.Errorf("wide: division by zero"))
	}
	q.hi, r = u.hi/by, u.hi%by
	q.lo, r = bits.Div64(r, u.lo, by)
	return q, r
}

func (u U128) Quo64(by uint64) U128 {
	q, _ := u.QuoRem64(by)
	return q
}
