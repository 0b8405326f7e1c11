package finite

import (
	"math"
	"reflect"

	"github.com/on-the-ground/isnumber/internal/coerce"
)

// Options relaxes what IsNumber accepts. The zero value is the strictest setting.
type Options struct {
	// AllowBoxed accepts boxed numbers such as Box(5) or a *float64.
	AllowBoxed bool
	// AllowCoercion accepts numeric text such as "5", "0.5" or "1e3".
	AllowCoercion bool
}

var (
	// Strict accepts finite primitive numbers only.
	Strict = Options{}
	// Loose accepts finite primitive numbers, boxed numbers and numeric text.
	Loose = Options{AllowBoxed: true, AllowCoercion: true}
)

// IsNumber reports whether value is a finite number under opts.
//
// Primitive numbers are accepted regardless of opts when they are neither NaN
// nor infinite. Boxed numbers need opts.AllowBoxed and text needs
// opts.AllowCoercion. Every other value, including values whose methods would
// yield a number or numeric text, is rejected.
func IsNumber(value any, opts Options) bool {
	return isNumber(value, opts, coerce.ToNumber)
}

// IsNumberStrict is IsNumber with Strict options.
func IsNumberStrict(value any) bool {
	return isNumber(value, Strict, coerce.ToNumber)
}

// IsNumberLoose is IsNumber with Loose options.
func IsNumberLoose(value any) bool {
	return isNumber(value, Loose, coerce.ToNumber)
}

func isNumber(value any, opts Options, toNumber func(string) float64) bool {
	switch v := value.(type) {
	case float64:
		return isFiniteFloat(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
	case string:
		return opts.AllowCoercion && isNumericText(v, toNumber)
	}

	switch KindOf(value) {
	case KindNumber:
		return finiteValue(reflect.ValueOf(value))
	case KindBoxed:
		return opts.AllowBoxed && unboxFinite(value)
	case KindString:
		return opts.AllowCoercion && isNumericText(reflect.ValueOf(value).String(), toNumber)
	}
	return false
}

func isNumericText(s string, toNumber func(string) float64) bool {
	s = coerce.TrimSpace(s)
	if s == "" {
		return false
	}
	return isFiniteFloat(toNumber(s))
}
