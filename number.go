package strictjson

import (
	"errors"
	"math"
	"strconv"
)

// parseNumber decodes the number spanning text[start:end]. With
// EnforceValidNumber the whole span must match the JSON number grammar;
// otherwise anything strconv.ParseFloat accepts is a number.
func (c *parseContext) parseNumber(start, end int) (Value, error) {
	s := c.text[start:end]
	if c.cfg.EnforceValidNumber && !validNumber(s) {
		return Value{}, c.errorf(ErrorNumberFormat, start, "invalid number %q", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range values round to ±Inf or ±0 like any IEEE-754
		// conversion.
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return Value{}, c.errorf(ErrorNumberFormat, start, "invalid number %q", s)
		}
	}
	return numberWithText(f, s), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// validNumber reports whether all of s is
//
//	-? (0 | [1-9][0-9]*) (\.[0-9]+)? ([eE][+-]?[0-9]+)?
func validNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	if i >= len(s) {
		return false
	}
	switch {
	case s[i] == '0':
		i++
	case s[i] >= '1' && s[i] <= '9':
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i == len(s)
}

type intConversionError int

const (
	notAnInteger intConversionError = iota
	outOfRange
)

func (e intConversionError) Error() string {
	switch e {
	case notAnInteger:
		return "not an integer"
	case outOfRange:
		return "out of range"
	}
	return "unknown IntConversionError"
}

// IsNonIntegerDecodeError Returns true iff err results from an attempt to
// convert a non-integer numeric value to an integer.
func IsNonIntegerDecodeError(err error) bool {
	var e intConversionError
	return errors.As(err, &e) && e == notAnInteger
}

// IsOutOfRangeDecodeError returns true iff err results from an attempt to
// convert a numeric value that does not fit the requested integer type.
func IsOutOfRangeDecodeError(err error) bool {
	var e intConversionError
	return errors.As(err, &e) && e == outOfRange
}

// Maximum integer value x s.t. all y s.t. 0 <= y <= x can be exactly
// represented as a float64. Also works for negative values (no two's complement
// asymmetry for floats).
// https://stackoverflow.com/a/1848762
const float64ExactIntMax = 9007199254740992

// AsInt returns a number as an int. Integers written without a fraction or
// exponent are converted exactly from their source text, so values beyond
// 2^53 survive. In-range integer values written using floating point syntax
// (e.g. '1.5e1', which evaluates to 15) convert without error. Otherwise the
// returned value approximates the number as closely as possible and the
// error satisfies IsNonIntegerDecodeError or IsOutOfRangeDecodeError.
func (v Value) AsInt() (int, error) {
	if math.MaxUint == 0xFFFFFFFF {
		i, err := v.AsInt32()
		return int(i), err
	}
	if math.MaxUint == 0xFFFFFFFFFFFFFFFF {
		i, err := v.AsInt64()
		return int(i), err
	}
	panic("unsupported int size")
}

// AsInt64 is like AsInt, but for int64.
func (v Value) AsInt64() (int64, error) {
	if v.kind != KindNumber {
		panic("strictjson: AsInt64 called on non-Number value")
	}

	text := v.str
	if text == "" {
		return floatToInt64(v.num)
	}

	var tot int64
	if text[0] == '-' {
		for i := 1; i < len(text); i++ {
			if !isDigit(text[i]) {
				return floatToInt64(v.num)
			}
			tot -= int64(text[i] - '0')
			if tot > 0 {
				return math.MinInt64, outOfRange
			}
			if i+1 < len(text) {
				tot *= 10
				if tot > 0 {
					return math.MinInt64, outOfRange
				}
			}
		}
	} else {
		for i := 0; i < len(text); i++ {
			if !isDigit(text[i]) {
				return floatToInt64(v.num)
			}
			tot += int64(text[i] - '0')
			if tot < 0 {
				return math.MaxInt64, outOfRange
			}
			if i+1 < len(text) {
				tot *= 10
				if tot < 0 {
					return math.MaxInt64, outOfRange
				}
			}
		}
	}
	return tot, nil
}

// The source text contains something other than an optional '-' and digits
// (e.g. 1.0, 1.5e3). It still converts if the float is integer valued and in
// range.
func floatToInt64(f float64) (int64, error) {
	if math.IsNaN(f) {
		return 0, notAnInteger
	}
	if math.Floor(f) == f { // redundant with next check, but makes it possible to give distinct 'out of range' vs. 'not an int' errors
		if f >= -float64ExactIntMax && f <= float64ExactIntMax {
			return int64(f), nil
		}
		// If we get here, then the value may not exactly correspond to the
		// written value.
		if f >= 9223372036854776000 {
			return math.MaxInt64, outOfRange
		}
		if f < -9223372036854776000 {
			return math.MinInt64, outOfRange
		}
		return int64(f), outOfRange
	}

	rounded := math.Round(f)
	if rounded >= 9223372036854776000 {
		return math.MaxInt64, outOfRange
	}
	if rounded < -9223372036854776000 {
		return math.MinInt64, outOfRange
	}
	return int64(rounded), notAnInteger
}

// AsInt32 is like AsInt, but for int32.
func (v Value) AsInt32() (int32, error) {
	i, err := v.AsInt64()
	switch {
	case i > math.MaxInt32:
		return math.MaxInt32, outOfRange
	case i < math.MinInt32:
		return math.MinInt32, outOfRange
	}
	return int32(i), err
}
