package strictjson

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// simpleEscapes maps the character after '\' to the byte it stands for.
var simpleEscapes = map[byte]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// parseString unescapes the string literal spanning text[start:end], quotes
// included.
func (c *parseContext) parseString(start, end int) (string, error) {
	s := c.text[start:end]
	if s == "" || s[0] != '"' {
		return "", c.errorAt(ErrorUnterminatedString, start, "string is not enclosed in '\"'")
	}
	closing := closingQuote(s)
	lit := s
	if closing > 0 {
		lit = s[:closing+1]
	}
	for i := 0; i < len(lit); i++ {
		if lit[i] < 0x20 {
			return "", c.errorf(ErrorUnescapedControlChar, start+i, "illegal control char U+%04X inside string", lit[i])
		}
	}
	switch {
	case closing < 0:
		return "", c.errorAt(ErrorUnterminatedString, start, "string is not enclosed in '\"'")
	case closing < len(s)-1:
		return "", c.errorAt(ErrorSyntax, start+closing+1, "unexpected content after complete value")
	}

	body := s[1 : len(s)-1]
	bodyStart := start + 1
	if strings.IndexByte(body, '\\') < 0 {
		return body, nil
	}

	val := make([]byte, 0, len(body))
	for i := 0; i < len(body); {
		switch body[i] {
		case '\\':
			if b, ok := simpleEscapes[body[i+1]]; ok {
				val = append(val, b)
				i += 2
				continue
			}
			if body[i+1] != 'u' {
				r, _ := utf8.DecodeRuneInString(body[i+1:])
				return "", c.errorf(ErrorEscape, bodyStart+i, "unexpected character %q after '\\' in string", r)
			}
			cp, ok := hex4(body, i+2)
			if !ok {
				return "", c.errorAt(ErrorEscape, bodyStart+i, "bad '\\uXXXX' escape in string")
			}
			at := i
			i += 6
			if isHighSurrogate(cp) && i+1 < len(body) && body[i] == '\\' && body[i+1] == 'u' {
				if lo, ok := hex4(body, i+2); ok && isLowSurrogate(lo) {
					cp = utf16.DecodeRune(cp, lo)
					i += 6
				}
			}
			if utf16.IsSurrogate(cp) && c.cfg.RejectLoneSurrogates {
				return "", c.errorf(ErrorInvalidSurrogate, bodyStart+at, "unpaired surrogate \\u%04X in string", cp)
			}
			val = AppendUTF8(val, cp)
		default:
			val = append(val, body[i])
			i++
		}
	}
	return string(val), nil
}

// closingQuote returns the index of the quote that ends the string literal
// opening at s[0], or -1 if it is never closed.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

func hexVal(d byte) int {
	if d >= '0' && d <= '9' {
		return int(d) - '0'
	}
	if d >= 'a' && d <= 'f' {
		return int(d) - 'a' + 10
	}
	if d >= 'A' && d <= 'F' {
		return int(d) - 'A' + 10
	}
	return -1
}

// hex4 decodes the four hex digits at s[i:i+4].
func hex4(s string, i int) (rune, bool) {
	if i+4 > len(s) {
		return 0, false
	}
	var r rune
	for k := i; k < i+4; k++ {
		v := hexVal(s[k])
		if v < 0 {
			return 0, false
		}
		r = r<<4 | rune(v)
	}
	return r, true
}
