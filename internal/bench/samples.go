// Package bench measures the throughput of the finite classifiers against
// rival implementations over a fixed table of sample values.
package bench

import (
	"math"

	"github.com/on-the-ground/isnumber/finite"
	"github.com/on-the-ground/isnumber/internal/coerce"
)

type Sample struct {
	Name  string
	Value any
}

// Samples returns the fixed table of values every contender is measured against.
func Samples() []Sample {
	return []Sample{
		{"primitive number", 42},
		{"zero", 0},
		{"negative number", -3.14},
		{"string number", "123"},
		{"string float", "3.14"},
		{"string scientific", "1e10"},
		{"empty string", ""},
		{"non-numeric string", "abc"},
		{"NaN", math.NaN()},
		{"Infinity", math.Inf(1)},
		{"boxed number", finite.Box(5)},
		{"boolean true", true},
		{"boolean false", false},
		{"null", (*float64)(nil)},
		{"undefined", nil},
		{"empty object", map[string]any{}},
		{"empty array", []any{}},
		{"array with number", []any{1}},
	}
}

type Contender struct {
	Name string
	Fn   func(any) bool
}

// Contenders returns the three classifier presets followed by the rivals.
func Contenders() []Contender {
	return []Contender{
		{"isnumber (strict)", finite.IsNumberStrict},
		{"isnumber (default)", func(v any) bool { return finite.IsNumber(v, finite.Options{}) }},
		{"isnumber (loose)", finite.IsNumberLoose},
		{"lodash.isNumber", lodashIsNumber},
		{"is-number (npm)", npmIsNumber},
	}
}

// lodashIsNumber accepts finite float64 and int values only.
func lodashIsNumber(v any) bool {
	switch n := v.(type) {
	case float64:
		return !math.IsNaN(n) && !math.IsInf(n, 0)
	case int:
		return true
	}
	return false
}

// npmIsNumber accepts finite numbers and non-blank numeric strings.
func npmIsNumber(v any) bool {
	switch n := v.(type) {
	case float64:
		return n-n == 0
	case int:
		return true
	case string:
		if coerce.TrimSpace(n) == "" {
			return false
		}
		f := coerce.ToNumber(n)
		return f-f == 0
	}
	return false
}
