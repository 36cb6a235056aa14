package strictjson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func matchedContext(t *testing.T, input string) *parseContext {
	t.Helper()
	c := newParseContext(input, DefaultConfig())
	require.NoError(t, c.matchDelimiters())
	return c
}

func TestMatchDelimitersPairs(t *testing.T) {
	c := matchedContext(t, `{"a":[[1],[2]],"b":{}}`)
	require.Equal(t, `{"a":[[1],[2]],"b":{}}`, c.text)

	want := make([]int, len(c.text))
	want[0], want[21] = 1, -1   // outer braces
	want[19], want[20] = 2, -2  // "b" object
	want[5], want[13] = 1, -1   // outer brackets
	want[6], want[8] = 2, -2    // [1]
	want[10], want[12] = 3, -3  // [2]
	require.Equal(t, want, c.pairs)
}

func TestMatchDelimitersIgnoresStrings(t *testing.T) {
	c := matchedContext(t, `["]", "{", "\"]"]`)
	require.Equal(t, 1, c.pairs[0])
	require.Equal(t, -1, c.pairs[len(c.text)-1])
	for i := 1; i < len(c.text)-1; i++ {
		require.Zero(t, c.pairs[i], "position %d", i)
	}
}

func TestArrayOfArraysFlag(t *testing.T) {
	c := matchedContext(t, `{"a":[[1],[2]],"b":[3]}`)
	for i := range c.text {
		inOuter := i >= 5 && i <= 13
		require.Equal(t, inOuter, c.aoa[i], "position %d", i)
	}

	c = matchedContext(t, `[1,[2]]`)
	require.True(t, c.aoa[0])

	c = matchedContext(t, `[{"a":[1]}]`)
	require.False(t, c.aoa[0])
	require.False(t, c.aoa[6])

	c = matchedContext(t, `[[]]`)
	require.Equal(t, []bool{true, true, true, true}, c.aoa)
}

func TestUnbalancedDelimiters(t *testing.T) {
	for _, tc := range []struct {
		input  string
		offset int
		msg    string
	}{
		{`{"a":1`, 0, "unclosed '{'"},
		{`[1,2`, 0, "unclosed '['"},
		{`]`, 0, "unexpected ']' without matching '['"},
		{`{"a":1}}`, 7, "unexpected '}' without matching '{'"},
		{`[{]`, 1, "unclosed '{'"},
		{`{[}`, 1, "unclosed '['"},
		{`[[1], [2]`, 0, "unclosed '['"},
		{"[\n  1,\n  [2\n]", 0, "unclosed '['"},
	} {
		t.Run(tc.input, func(t *testing.T) {
			c := newParseContext(tc.input, DefaultConfig())
			err := c.matchDelimiters()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrorUnbalancedDelimiters))

			var e *Error
			require.True(t, errors.As(err, &e))
			require.Equal(t, tc.offset, e.Offset)
			require.Equal(t, tc.msg, e.Msg)
		})
	}
}

func TestSplitTopLevel(t *testing.T) {
	c := matchedContext(t, `[1,[2,3],{"a":4,"b":5},"x,y",]`)
	spans := c.splitTopLevel(1, len(c.text)-1, ',')
	var parts []string
	for _, s := range spans {
		parts = append(parts, c.text[s.start:s.end])
	}
	require.Equal(t, []string{`1`, `[2,3]`, `{"a":4,"b":5}`, `"x,y"`, ``}, parts)
}
