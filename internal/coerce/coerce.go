// Package coerce converts text to numbers following the ECMAScript
// StringToNumber rules, the conversion performed by Number("...").
package coerce

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// IsSpace reports whether r is WhiteSpace or a LineTerminator in ECMAScript terms.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// TrimSpace behaves like String.prototype.trim.
// Unlike strings.TrimSpace it strips U+FEFF and keeps U+0085.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// ToNumber converts s the way Number(s) does.
// Text that is not a numeric literal yields NaN.
// Whitespace-only text yields 0.
func ToNumber(s string) float64 {
	s = TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return radix(s[2:], 16)
		case 'o', 'O':
			return radix(s[2:], 8)
		case 'b', 'B':
			return radix(s[2:], 2)
		}
	}

	if !isDecimalLiteral(s) {
		return math.NaN()
	}

	// the literal is well formed, so the only possible error is ErrRange,
	// for which f is already ±Inf (overflow) or 0 (underflow)
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// radix parses an unsigned integer literal without prefix.
func radix(digits string, base int) float64 {
	if digits == "" {
		return math.NaN()
	}
	for i := 0; i < len(digits); i++ {
		if digitVal(digits[i]) >= base {
			return math.NaN()
		}
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

// isDecimalLiteral matches StrDecimalLiteral minus the Infinity forms:
//
//	[+-]? ( digits ( "." digits? )? | "." digits ) ( [eE] [+-]? digits )?
func isDecimalLiteral(s string) bool {
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}

	intDigits := skipDigits(s, i)
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		fracDigits = skipDigits(s, i)
		i += fracDigits
	}
	if intDigits == 0 && fracDigits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := skipDigits(s, i)
		if expDigits == 0 {
			return false
		}
		i += expDigits
	}

	return i == len(s)
}

func skipDigits(s string, from int) int {
	n := 0
	for from+n < len(s) && '0' <= s[from+n] && s[from+n] <= '9' {
		n++
	}
	return n
}
