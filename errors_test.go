package strictjson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorPosition(t *testing.T) {
	const input = "{\n  \"a\": tru\n}"
	_, err := Decode(input)
	require.Error(t, err)

	var e *Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, ErrorInvalidValue, e.Kind)

	cause := e.Cause()
	require.Equal(t, ErrorLiteralMismatch, cause.Kind)
	require.Equal(t, 9, cause.Offset)
	require.Equal(t, 2, cause.Line)
	require.Equal(t, 8, cause.Col)
	require.Equal(t, "tru", input[cause.Offset:cause.Offset+3])

	require.EqualError(t, err, `2:8 InvalidValue: invalid value in object definition for key "a": 2:8 LiteralMismatch: expected "true", found "tru"`)
}

func TestErrorIs(t *testing.T) {
	_, err := Decode(`{"a":[1,"\q"]}`)
	require.ErrorIs(t, err, ErrorInvalidValue)
	require.ErrorIs(t, err, ErrorEscape)
	require.NotErrorIs(t, err, ErrorSyntax)
	require.Equal(t, ErrorEscape, KindOf(err))

	require.Equal(t, ErrorKind(0), KindOf(nil))
	require.Equal(t, ErrorKind(0), KindOf(errors.New("other")))
}

func TestErrorPath(t *testing.T) {
	for _, tc := range []struct {
		input string
		path  string
	}{
		{`tru`, ``},
		{`[1,x]`, `[1]`},
		{`{"a":x}`, `["a"]`},
		{`{"a b":x}`, `["aB"]`},
		{`{"a":1,"a":x}`, `["a_1"]`},
		{`{"a":{"b":[1,x]}}`, `["a"]["b"][1]`},
		{
			`[1,2,3,[4,5,{"baz": 99, "foo": [{"bar": "amp", "x": {"yy": [999, tru]}, "baz": "foo"}]}],5]`,
			`[3][2]["foo"][0]["x"]["yy"][1]`,
		},
	} {
		t.Run(tc.input, func(t *testing.T) {
			_, err := Decode(tc.input)
			var e *Error
			require.True(t, errors.As(err, &e))
			require.Equal(t, tc.path, e.Path().String())
		})
	}
}

func TestErrorKindString(t *testing.T) {
	for k, want := range map[ErrorKind]string{
		ErrorSyntax:               "SyntaxError",
		ErrorUnbalancedDelimiters: "UnbalancedDelimiters",
		ErrorMissingColon:         "MissingColon",
		ErrorInvalidKey:           "InvalidKey",
		ErrorInvalidValue:         "InvalidValue",
		ErrorEmptyElement:         "EmptyElement",
		ErrorUnterminatedString:   "UnterminatedString",
		ErrorUnescapedControlChar: "UnescapedControlChar",
		ErrorEscape:               "EscapeError",
		ErrorInvalidSurrogate:     "InvalidSurrogate",
		ErrorNumberFormat:         "NumberFormat",
		ErrorLiteralMismatch:      "LiteralMismatch",
		ErrorRecursionLimit:       "RecursionLimit",
		ErrorUnsupportedInputType: "UnsupportedInputType",
		ErrorKind(99):             "<unknown ErrorKind>",
	} {
		require.Equal(t, want, k.String())
		require.Equal(t, want, k.Error())
	}
}

func TestLineCol(t *testing.T) {
	const src = "ab\ncd\n\nef"
	for off, want := range map[int][2]int{
		0: {1, 1},
		2: {1, 3},
		3: {2, 1},
		6: {3, 1},
		7: {4, 1},
		8: {4, 2},
		9: {4, 3},
	} {
		line, col := lineCol(src, off)
		require.Equal(t, want, [2]int{line, col}, "offset %d", off)
	}
}
