package finite

import (
	"math"
	"reflect"

	"github.com/govalues/decimal"
)

// Number is an explicit box around a float64, distinct from the float64 itself.
// Boxed values are only accepted when Options.AllowBoxed is set.
type Number struct {
	v float64
}

func Box(x float64) Number {
	return Number{v: x}
}

func (n Number) Float64() float64 {
	return n.v
}

// unboxFinite reports whether the boxed value v holds a finite number.
// v must be of KindBoxed.
func unboxFinite(v any) bool {
	switch b := v.(type) {
	case Number:
		return isFiniteFloat(b.v)
	case *Number:
		return isFiniteFloat(b.v)
	case decimal.Decimal, *decimal.Decimal:
		// decimals cannot represent NaN or infinities
		return true
	}
	return finiteValue(reflect.ValueOf(v).Elem())
}

func isFiniteFloat(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// finiteValue reports whether rv, of a numeric kind, is finite.
func finiteValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return isFiniteFloat(rv.Float())
	}
	return true
}
