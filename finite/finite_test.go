package finite_test

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/on-the-ground/isnumber/finite"

	"github.com/stretchr/testify/assert"
)

var allOptions = []finite.Options{
	{},
	{AllowBoxed: true},
	{AllowCoercion: true},
	{AllowBoxed: true, AllowCoercion: true},
}

type stringer struct{}

func (stringer) String() string { return "5" }

type valuer struct{}

func (valuer) ValueOf() float64 { return 5 }
func (valuer) Float64() float64 { return 5 }

type textMarshaler struct{}

func (textMarshaler) MarshalText() ([]byte, error) { return []byte("5"), nil }

type celsius float64

type label string

type cyclic struct {
	self *cyclic
}

func TestIsNumber_Primitives(t *testing.T) {
	finiteValues := []any{
		0, 1, -1, 42, -3.14, 0.5, math.Copysign(0, -1),
		math.SmallestNonzeroFloat64, math.MaxFloat64, math.Nextafter(1, 2) - 1,
		int8(-128), int16(1), int32(1), int64(math.MaxInt64), uint(1), uint8(255),
		uint16(1), uint32(1), uint64(math.MaxUint64), float32(1.5), float32(math.MaxFloat32),
		celsius(21.5), time.Second,
	}
	for _, opts := range allOptions {
		for _, v := range finiteValues {
			assert.True(t, finite.IsNumber(v, opts), "%T(%v) with %+v", v, v, opts)
		}
	}
}

func TestIsNumber_NonFiniteRejectedEverywhere(t *testing.T) {
	nonFinite := []any{
		math.NaN(), math.Inf(1), math.Inf(-1),
		float32(math.NaN()), float32(math.Inf(1)), celsius(math.Inf(-1)),
	}
	for _, opts := range allOptions {
		for _, v := range nonFinite {
			assert.False(t, finite.IsNumber(v, opts), "%v with %+v", v, opts)
		}
	}
}

func TestIsNumber_MatchesFiniteness(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 1e308, -1e-308, math.NaN(), math.Inf(1), math.Inf(-1)} {
		want := !math.IsNaN(f) && !math.IsInf(f, 0)
		for _, opts := range allOptions {
			assert.Equal(t, want, finite.IsNumber(f, opts), "%v with %+v", f, opts)
		}
	}
}

func TestIsNumber_BoxedGating(t *testing.T) {
	five := 5.0
	nan := math.NaN()
	fiveInt := 5
	boxedNaN := finite.Box(math.NaN())

	assert.False(t, finite.IsNumber(finite.Box(5), finite.Options{}))
	assert.True(t, finite.IsNumber(finite.Box(5), finite.Options{AllowBoxed: true}))
	assert.False(t, finite.IsNumber(finite.Box(math.NaN()), finite.Options{AllowBoxed: true}))
	assert.False(t, finite.IsNumber(finite.Box(math.Inf(1)), finite.Options{AllowBoxed: true}))
	assert.False(t, finite.IsNumber(&boxedNaN, finite.Options{AllowBoxed: true}))

	assert.False(t, finite.IsNumber(&five, finite.Options{}))
	assert.False(t, finite.IsNumber(&five, finite.Options{AllowCoercion: true}))
	assert.True(t, finite.IsNumber(&five, finite.Options{AllowBoxed: true}))
	assert.True(t, finite.IsNumber(&fiveInt, finite.Options{AllowBoxed: true}))
	assert.False(t, finite.IsNumber(&nan, finite.Options{AllowBoxed: true}))

	d := decimal.MustParse("1.5")
	assert.False(t, finite.IsNumber(d, finite.Options{}))
	assert.True(t, finite.IsNumber(d, finite.Options{AllowBoxed: true}))
	assert.True(t, finite.IsNumber(&d, finite.Loose))

	var nilBox *finite.Number
	var nilFloat *float64
	var nilDecimal *decimal.Decimal
	for _, opts := range allOptions {
		assert.False(t, finite.IsNumber(nilBox, opts))
		assert.False(t, finite.IsNumber(nilFloat, opts))
		assert.False(t, finite.IsNumber(nilDecimal, opts))
	}
}

func TestIsNumber_CoercionGating(t *testing.T) {
	coerce := finite.Options{AllowCoercion: true}

	assert.False(t, finite.IsNumber("5", finite.Options{}))
	assert.False(t, finite.IsNumber("5", finite.Options{AllowBoxed: true}))
	assert.True(t, finite.IsNumber("5", coerce))

	accepted := []string{
		"5", " 5 ", "\t5\n", "0.5", ".5", "5.", "-3.14", "+1", "1e3", "1e-3", "1E+3",
		"0xff", "0o17", "0b101", "-0", "1e-400", "\u00a05\ufeff",
	}
	for _, s := range accepted {
		assert.True(t, finite.IsNumber(s, coerce), "%q", s)
	}

	rejected := []string{
		"", " ", "\t\n", "NaN", "Infinity", "-Infinity", "+Infinity", "1,000", "1 2 3",
		"abc", "1_000", "1e400", "inf", "5px", "0x", "--1", "\u0085",
	}
	for _, s := range rejected {
		assert.False(t, finite.IsNumber(s, coerce), "%q", s)
	}

	assert.True(t, finite.IsNumber(label("42"), coerce))
	assert.False(t, finite.IsNumber(label("42"), finite.Options{}))
}

func TestIsNumber_NoIntrospection(t *testing.T) {
	var _ fmt.Stringer = stringer{}
	for _, opts := range allOptions {
		assert.False(t, finite.IsNumber(stringer{}, opts))
		assert.False(t, finite.IsNumber(&stringer{}, opts))
		assert.False(t, finite.IsNumber(valuer{}, opts))
		assert.False(t, finite.IsNumber(textMarshaler{}, opts))
	}
}

func TestIsNumber_TypeRejection(t *testing.T) {
	c := &cyclic{}
	c.self = c
	ch := make(chan int)
	values := []any{
		true, false, nil, struct{}{}, map[string]any{}, []any{}, []any{1}, []int{1}, [1]int{1},
		[]byte("5"), complex(1, 2), complex64(1), uintptr(1),
		big.NewInt(5), *big.NewInt(5), big.NewFloat(1.5), big.NewRat(1, 2),
		time.Now(), regexp.MustCompile(`\d`), func() float64 { return 5 }, ch, c,
	}
	for _, opts := range allOptions {
		for _, v := range values {
			assert.False(t, finite.IsNumber(v, opts), "%T with %+v", v, opts)
		}
	}
}

func TestWrappers(t *testing.T) {
	five := 5.0
	values := []any{
		5, -0.0, math.NaN(), math.Inf(1), "5", " 5 ", "", "abc", "Infinity",
		finite.Box(5), finite.Box(math.NaN()), &five, true, nil, []any{1}, stringer{},
	}
	for _, v := range values {
		assert.Equal(t, finite.IsNumber(v, finite.Options{}), finite.IsNumberStrict(v), "%v", v)
		assert.Equal(t,
			finite.IsNumber(v, finite.Options{AllowBoxed: true, AllowCoercion: true}),
			finite.IsNumberLoose(v), "%v", v)
	}

	assert.True(t, finite.IsNumberStrict(5))
	assert.False(t, finite.IsNumberStrict("5"))
	assert.False(t, finite.IsNumberStrict(finite.Box(5)))
	assert.True(t, finite.IsNumberLoose("5"))
	assert.True(t, finite.IsNumberLoose(finite.Box(5)))
	assert.False(t, finite.IsNumberLoose("abc"))
}

func TestIsNumber_Idempotent(t *testing.T) {
	for _, v := range []any{5, "5", " ", finite.Box(5), math.NaN()} {
		for _, opts := range allOptions {
			first := finite.IsNumber(v, opts)
			for i := 0; i < 3; i++ {
				assert.Equal(t, first, finite.IsNumber(v, opts))
			}
		}
	}
}

func TestBox(t *testing.T) {
	assert.Equal(t, 2.5, finite.Box(2.5).Float64())
	assert.True(t, math.IsNaN(finite.Box(math.NaN()).Float64()))
}
