package checked

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestPowTruncationTrap(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := Pow[uint32](5, 13)
	tt.MustOK(err)
	tt.MustEqual(uint32(0x48C27395), v)

	// 5**14 truncated to 32 bits is 0x6CC8E9E9, which is bigger than 5**13.
	_, err = Pow[uint32](5, 14)
	tt.MustAssert(errors.Is(err, ErrOverflow), "%v", err)
}

func TestPowEdges(t *testing.T) {
	for idx, tc := range []struct {
		base int8
		exp  int
		out  int8
		kind Kind
	}{
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 100, 0, 0},
		{1, math.MaxInt, 1, 0},
		{-1, math.MaxInt, -1, 0},
		{-1, math.MaxInt - 1, 1, 0},
		{2, 6, 64, 0},
		{2, 7, 0, Overflow},
		{-2, 7, -128, 0},
		{-2, 8, 0, Overflow},
		{-128, 0, 1, 0},
		{-128, 1, -128, 0},
		{-128, 2, 0, Overflow},
		{11, 2, 121, 0},
		{-11, 2, 121, 0},
		{-5, 3, -125, 0},
		{-6, 3, 0, Overflow},
		{127, 1, 127, 0},
	} {
		t.Run(fmt.Sprintf("%d/%d**%d", idx, tc.base, tc.exp), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := Pow(tc.base, tc.exp)
			if tc.kind == 0 {
				tt.MustOK(err)
				tt.MustEqual(tc.out, out)
			} else {
				tt.MustEqual(tc.kind, KindOf(err), "%v", err)
			}
		})
	}
}

func TestPowNegativeExponent(t *testing.T) {
	tt := assert.WrapTB(t)

	perr := panicsWith(func() { _, _ = Pow[int32, int8](2, -1) })
	tt.MustAssert(perr != nil, "expected panic")
	tt.MustEqual(DomainError, perr.Kind)

	_, err := recoverable[int32]().Pow(2, -1)
	tt.MustAssert(errors.Is(err, ErrDomain), "%v", err)

	// Checked before base 0 and exponent 0 are considered.
	_, err = PowWith(recoverable[uint8](), 0, int64(-1))
	tt.MustAssert(errors.Is(err, ErrDomain), "%v", err)
}

func TestPowSignedMinimum(t *testing.T) {
	tt := assert.WrapTB(t)

	// (-2)**(bits-1) is exactly MIN for every signed width.
	v8, err := Pow[int8](-2, 7)
	tt.MustOK(err)
	tt.MustEqual(int8(math.MinInt8), v8)

	v16, err := Pow[int16](-2, 15)
	tt.MustOK(err)
	tt.MustEqual(int16(math.MinInt16), v16)

	v32, err := Pow[int32](-2, 31)
	tt.MustOK(err)
	tt.MustEqual(int32(math.MinInt32), v32)

	v64, err := Pow[int64](-2, 63)
	tt.MustOK(err)
	tt.MustEqual(int64(math.MinInt64), v64)

	_, err = Pow[int64](2, 63)
	tt.MustAssert(errors.Is(err, ErrOverflow))
	_, err = Pow[int64](math.MinInt64, 2)
	tt.MustAssert(errors.Is(err, ErrOverflow))

	u64, err := Pow[uint64](2, 63)
	tt.MustOK(err)
	tt.MustEqual(uint64(1<<63), u64)
	_, err = Pow[uint64](2, 64)
	tt.MustAssert(errors.Is(err, ErrOverflow))
}

func TestPowExhaustive8(t *testing.T) {
	testPowExhaustive[int8](t)
	testPowExhaustive[uint8](t)
}

func testPowExhaustive[T int8 | uint8](t *testing.T) {
	tt := assert.WrapTB(t)
	ops := recoverable[T]()
	each8[T](func(base T) {
		for exp := 0; exp <= 9; exp++ {
			want := new(big.Int).Exp(bigOf(base), big.NewInt(int64(exp)), nil)
			got, err := ops.Pow(base, exp)
			if bigFits[T](want) {
				tt.MustOK(err)
				tt.MustEqual(want.String(), bigOf(got).String(), "%d ** %d", base, exp)
			} else {
				tt.MustEqual(Overflow, KindOf(err), "%d ** %d", base, exp)
			}
		}
	})
}
