package strictjson

import (
	"bytes"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }

func isLowSurrogate(r rune) bool { return r >= 0xDC00 && r <= 0xDFFF }

// AppendUTF8 appends the UTF-8 encoding of cp to dst. Surrogates and values
// outside the Unicode range are written as U+FFFD.
func AppendUTF8(dst []byte, cp rune) []byte {
	return utf8.AppendRune(dst, cp)
}

// EncodeUTF8 returns the UTF-8 encoding of cp.
func EncodeUTF8(cp rune) []byte {
	return AppendUTF8(make([]byte, 0, utf8.UTFMax), cp)
}

// EncodeUTF16 returns cp as one UTF-16 code unit, or as a surrogate pair for
// codepoints above U+FFFF. Values outside the Unicode range encode as U+FFFD;
// surrogate values are passed through as a single unit.
func EncodeUTF16(cp rune) []uint16 {
	switch {
	case cp >= 0x10000 && cp <= utf8.MaxRune:
		hi, lo := utf16.EncodeRune(cp)
		return []uint16{uint16(hi), uint16(lo)}
	case cp < 0 || cp > utf8.MaxRune:
		return []uint16{utf8.RuneError}
	}
	return []uint16{uint16(cp)}
}

// DecodeUTF16 converts UTF-16 code units to codepoints, combining surrogate
// pairs. An unpaired surrogate fails with ErrorInvalidSurrogate; the error's
// Offset is the index of the offending unit.
func DecodeUTF16(units []uint16) ([]rune, error) {
	out := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		switch {
		case isHighSurrogate(u):
			if i+1 >= len(units) || !isLowSurrogate(rune(units[i+1])) {
				return nil, &Error{Kind: ErrorInvalidSurrogate, Offset: i, Msg: fmt.Sprintf("high surrogate %#04x is not followed by a low surrogate", u)}
			}
			out = append(out, utf16.DecodeRune(u, rune(units[i+1])))
			i++
		case isLowSurrogate(u):
			return nil, &Error{Kind: ErrorInvalidSurrogate, Offset: i, Msg: fmt.Sprintf("low surrogate %#04x without a preceding high surrogate", u)}
		default:
			out = append(out, u)
		}
	}
	return out, nil
}

// CodepointsToString converts codepoints to a string. Invalid codepoints
// become U+FFFD.
func CodepointsToString(cps []rune) string {
	return string(cps)
}

// StringToCodepoints returns the codepoints of s and whether s was valid
// UTF-8.
func StringToCodepoints(s string) ([]rune, bool) {
	return []rune(s), utf8.ValidString(s)
}

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16BEBOM = []byte{0xFE, 0xFF}
	utf16LEBOM = []byte{0xFF, 0xFE}
)

// DecodeText converts encoded text to a UTF-8 string. A leading byte order
// mark selects UTF-8, UTF-16BE or UTF-16LE and is dropped; without one the
// input is taken as UTF-8. Undecodable sequences become U+FFFD. The boolean
// reports whether the input was genuinely in the detected encoding.
func DecodeText(b []byte) (string, bool) {
	utf16BOM := bytes.HasPrefix(b, utf16BEBOM) || bytes.HasPrefix(b, utf16LEBOM)
	if !utf16BOM && !bytes.HasPrefix(b, utf8BOM) && utf8.Valid(b) {
		return string(b), true
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), b)
	if err != nil {
		return replaceInvalid(b), false
	}
	if utf16BOM {
		units := make([]uint16, 0, len(b)/2)
		order := func(p []byte) uint16 { return uint16(p[0])<<8 | uint16(p[1]) }
		if bytes.HasPrefix(b, utf16LEBOM) {
			order = func(p []byte) uint16 { return uint16(p[1])<<8 | uint16(p[0]) }
		}
		for i := 2; i+1 < len(b); i += 2 {
			units = append(units, order(b[i:i+2]))
		}
		_, err := DecodeUTF16(units)
		return string(out), err == nil && len(b)%2 == 0
	}
	return string(out), utf8.Valid(bytes.TrimPrefix(b, utf8BOM))
}

// replaceInvalid drops any byte order mark from b and replaces invalid UTF-8
// with U+FFFD.
func replaceInvalid(b []byte) string {
	for _, bom := range [][]byte{utf8BOM, utf16BEBOM, utf16LEBOM} {
		if bytes.HasPrefix(b, bom) {
			b = b[len(bom):]
			break
		}
	}
	return string(bytes.ToValidUTF8(b, []byte("\uFFFD")))
}
