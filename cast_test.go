package checked

import (
	"errors"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"golang.org/x/exp/constraints"
)

func TestCastScenario(t *testing.T) {
	tt := assert.WrapTB(t)

	_, err := Cast[uint8](int8(-1))
	tt.MustAssert(errors.Is(err, ErrOverflow), "%v", err)
	tt.MustEqual("checked: cast: overflow: -1 does not fit in uint8", err.Error())

	// 200 is exactly representable in 8 unsigned bits; 300 is not.
	u8, err := Cast[uint8](uint16(200))
	tt.MustOK(err)
	tt.MustEqual(uint8(200), u8)
	_, err = Cast[uint8](uint16(300))
	tt.MustAssert(errors.Is(err, ErrOverflow), "%v", err)

	i16, err := Cast[int16](uint16(200))
	tt.MustOK(err)
	tt.MustEqual(int16(200), i16)
}

func TestCast64(t *testing.T) {
	tt := assert.WrapTB(t)

	_, err := Cast[int64](uint64(math.MaxUint64))
	tt.MustAssert(errors.Is(err, ErrOverflow))
	_, err = Cast[int64](uint64(1 << 63))
	tt.MustAssert(errors.Is(err, ErrOverflow))
	i64, err := Cast[int64](uint64(math.MaxInt64))
	tt.MustOK(err)
	tt.MustEqual(int64(math.MaxInt64), i64)

	_, err = Cast[uint64](int64(-1))
	tt.MustAssert(errors.Is(err, ErrOverflow))
	_, err = Cast[uint64](int64(math.MinInt64))
	tt.MustAssert(errors.Is(err, ErrOverflow))
	u64, err := Cast[uint64](int64(math.MaxInt64))
	tt.MustOK(err)
	tt.MustEqual(uint64(math.MaxInt64), u64)

	_, err = Cast[int32](int64(math.MinInt32 - 1))
	tt.MustAssert(errors.Is(err, ErrOverflow))
	i32, err := Cast[int32](int64(math.MinInt32))
	tt.MustOK(err)
	tt.MustEqual(int32(math.MinInt32), i32)

	_, err = Cast[uint32](uint64(math.MaxUint32 + 1))
	tt.MustAssert(errors.Is(err, ErrOverflow))
	_, err = Cast[int8](uint64(math.MaxUint64))
	tt.MustAssert(errors.Is(err, ErrOverflow))

	// Widening between same-signedness types can never fail.
	w, err := Cast[int64](int8(math.MinInt8))
	tt.MustOK(err)
	tt.MustEqual(int64(math.MinInt8), w)
}

func TestCastFatal(t *testing.T) {
	tt := assert.WrapTB(t)
	perr := panicsWith(func() { _, _ = CastWith[uint8](Fatal, -5) })
	tt.MustAssert(perr != nil, "expected panic")
	tt.MustEqual(Overflow, perr.Kind)
	tt.MustEqual("cast", perr.Op)
}

func TestCastExhaustive16(t *testing.T) {
	t.Run("int16", func(t *testing.T) { testCastFrom[int16](t) })
	t.Run("uint16", func(t *testing.T) { testCastFrom[uint16](t) })
}

func testCastFrom[From constraints.Integer](t *testing.T) {
	tt := assert.WrapTB(t)
	for i := int64(Min[From]()); i <= int64(Max[From]()); i++ {
		v := From(i)
		tt.MustOK(checkCast[int8](v))
		tt.MustOK(checkCast[uint8](v))
		tt.MustOK(checkCast[int16](v))
		tt.MustOK(checkCast[uint16](v))
		tt.MustOK(checkCast[int32](v))
		tt.MustOK(checkCast[uint32](v))
		tt.MustOK(checkCast[int64](v))
		tt.MustOK(checkCast[uint64](v))
	}
}
