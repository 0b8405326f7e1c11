package finite

import (
	"math/big"
	"reflect"
	"regexp"
	"time"

	"github.com/govalues/decimal"
)

// Kind is the closed set of shapes a classified value can take.
type Kind int

const (
	KindOther Kind = iota
	KindNumber
	KindBoxed
	KindString
	KindBool
	KindNull
	KindStructured
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBoxed:
		return "boxed"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindStructured:
		return "structured"
	}
	return "other"
}

// KindOf reports the shape of v. It never calls methods on v.
func KindOf(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindNull
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case string:
		return KindString
	case bool:
		return KindBool
	case Number, decimal.Decimal:
		return KindBoxed
	case *Number:
		if x == nil {
			return KindNull
		}
		return KindBoxed
	case *decimal.Decimal:
		if x == nil {
			return KindNull
		}
		return KindBoxed
	case big.Int, *big.Int, big.Float, *big.Float, big.Rat, *big.Rat,
		time.Time, *time.Time, regexp.Regexp, *regexp.Regexp:
		return KindOther
	}

	return kindOfValue(reflect.ValueOf(v))
}

func kindOfValue(rv reflect.Value) Kind {
	switch rk := rv.Kind(); {
	case isNumericKind(rk):
		return KindNumber
	case rk == reflect.String:
		return KindString
	case rk == reflect.Bool:
		return KindBool
	case rk == reflect.Pointer:
		if rv.IsNil() {
			return KindNull
		}
		if isNumericKind(rv.Elem().Kind()) {
			return KindBoxed
		}
		return KindStructured
	case rk == reflect.Map, rk == reflect.Slice, rk == reflect.Array, rk == reflect.Struct:
		return KindStructured
	}
	return KindOther
}

// isNumericKind excludes uintptr and complex kinds: the former is an address,
// the latter has no single real value.
func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
