package strictjson

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a decode failure. ErrorKind values implement error so
// that errors.Is(err, ErrorNumberFormat) matches any *Error of that kind
// anywhere in a wrap chain.
type ErrorKind int

const (
	// Malformed structure: an empty span, an unexpected leading character or
	// content left over after a complete value.
	ErrorSyntax ErrorKind = iota + 1
	// A closing '}' or ']' without an opener, or an opener that is never closed.
	ErrorUnbalancedDelimiters
	// An object member without a top-level ':'.
	ErrorMissingColon
	// An object key that is not a well-formed string.
	ErrorInvalidKey
	// An object member value failed to decode. The cause is wrapped.
	ErrorInvalidValue
	// An array with an empty element (leading, trailing or doubled comma).
	ErrorEmptyElement
	// A string that does not begin and end with an unescaped '"'.
	ErrorUnterminatedString
	// A string containing a character below U+0020.
	ErrorUnescapedControlChar
	// An unknown escape sequence or a bad "\uXXXX" escape.
	ErrorEscape
	// A malformed UTF-16 surrogate pairing.
	ErrorInvalidSurrogate
	// A number that does not match the JSON number grammar.
	ErrorNumberFormat
	// Something starting with 't', 'f' or 'n' that is not exactly true, false
	// or null.
	ErrorLiteralMismatch
	// Nesting deeper than Config.MaxRecursionDepth.
	ErrorRecursionLimit
	// DecodeInput was given a type it cannot treat as text.
	ErrorUnsupportedInputType
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorSyntax:
		return "SyntaxError"
	case ErrorUnbalancedDelimiters:
		return "UnbalancedDelimiters"
	case ErrorMissingColon:
		return "MissingColon"
	case ErrorInvalidKey:
		return "InvalidKey"
	case ErrorInvalidValue:
		return "InvalidValue"
	case ErrorEmptyElement:
		return "EmptyElement"
	case ErrorUnterminatedString:
		return "UnterminatedString"
	case ErrorUnescapedControlChar:
		return "UnescapedControlChar"
	case ErrorEscape:
		return "EscapeError"
	case ErrorInvalidSurrogate:
		return "InvalidSurrogate"
	case ErrorNumberFormat:
		return "NumberFormat"
	case ErrorLiteralMismatch:
		return "LiteralMismatch"
	case ErrorRecursionLimit:
		return "RecursionLimit"
	case ErrorUnsupportedInputType:
		return "UnsupportedInputType"
	}
	return "<unknown ErrorKind>"
}

func (k ErrorKind) Error() string {
	return k.String()
}

// Error is a structured decode failure. Offset, Line and Col locate the
// failure in the text passed to the decoder (Line and Col are 1-based, Col
// counts bytes). Errors raised while decoding a member or element are wrapped
// by an Error carrying that context; Unwrap returns the cause.
type Error struct {
	Kind   ErrorKind
	Msg    string
	Offset int
	Line   int
	Col    int
	Err    error

	// location of the wrapped cause relative to this error's value
	key      string
	index    int
	hasIndex bool
	hasKey   bool
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&sb, "%v:%v ", e.Line, e.Col)
	}
	sb.WriteString(e.Kind.String())
	sb.WriteString(": ")
	sb.WriteString(e.Msg)
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// Cause returns the innermost *Error of the wrap chain, which is e itself
// when nothing is wrapped.
func (e *Error) Cause() *Error {
	c := e
	for {
		var next *Error
		if !errors.As(c.Err, &next) {
			return c
		}
		c = next
	}
}

// Path returns the location of the innermost failure relative to the value
// this error was raised for. For an error returned by Decode this is the
// path from the document root.
func (e *Error) Path() Path {
	var elems []any
	for c := e; c != nil; {
		switch {
		case c.hasKey:
			elems = append(elems, c.key)
		case c.hasIndex:
			elems = append(elems, c.index)
		}
		var next *Error
		if !errors.As(c.Err, &next) {
			break
		}
		c = next
	}
	return SliceToPath(elems)
}

// KindOf returns the kind of the innermost *Error in err's chain, or 0 if err
// is not a decode error.
func KindOf(err error) ErrorKind {
	var e *Error
	if !errors.As(err, &e) {
		return 0
	}
	return e.Cause().Kind
}

func (c *parseContext) errorAt(kind ErrorKind, pos int, msg string) *Error {
	off := c.originalOffset(pos)
	line, col := lineCol(c.src, off)
	return &Error{Kind: kind, Msg: msg, Offset: off, Line: line, Col: col}
}

func (c *parseContext) errorf(kind ErrorKind, pos int, format string, args ...any) *Error {
	return c.errorAt(kind, pos, fmt.Sprintf(format, args...))
}

func (c *parseContext) wrapMember(kind ErrorKind, pos int, msg, key string, cause error) *Error {
	err := c.errorAt(kind, pos, msg)
	err.Err = cause
	err.key = key
	err.hasKey = true
	return err
}

func (c *parseContext) wrapElement(kind ErrorKind, pos int, msg string, index int, cause error) *Error {
	err := c.errorAt(kind, pos, msg)
	err.Err = cause
	err.index = index
	err.hasIndex = true
	return err
}

func lineCol(src string, off int) (line, col int) {
	if off > len(src) {
		off = len(src)
	}
	line = 1
	lineStart := 0
	for i := 0; i < off; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, off - lineStart + 1
}
