// Package finite classifies arbitrary values as finite numbers.
//
// IsNumber is the single predicate of the package. It never converts,
// never fails and never panics: every input yields a bool.
//
// Three strictness levels are available:
//   - IsNumberStrict: finite primitive numbers only (int, uint, float kinds).
//   - IsNumber with Options: opt into boxed numbers, numeric text, or both.
//   - IsNumberLoose: primitive numbers, boxed numbers and numeric text.
//
// Boxed numbers are explicit wrappers around a number: Box(x), non-nil
// pointers to numbers, and decimal.Decimal values.
//
// Numeric text is converted the way JavaScript's Number("...") converts it
// after trimming surrounding whitespace. Signs, fractions, exponents and
// 0x/0o/0b integers are accepted; thousands separators, several tokens,
// "NaN" and the infinities are not.
//
// Values are never introspected through their methods: a type whose String
// method returns "5" is rejected even with AllowCoercion set, because its
// runtime type is not textual.
//
// Example:
//
//	finite.IsNumber(5, finite.Options{})                             // true
//	finite.IsNumber("5", finite.Options{})                           // false
//	finite.IsNumber("5", finite.Options{AllowCoercion: true})        // true
//	finite.IsNumber(finite.Box(5), finite.Options{})                 // false
//	finite.IsNumber(finite.Box(5), finite.Options{AllowBoxed: true}) // true
//	finite.IsNumber(math.NaN(), finite.Loose)                        // false
package finite
