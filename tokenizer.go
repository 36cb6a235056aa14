package strictjson

import "strings"

// parseContext is the shared state of one decode call. It is built once by
// newParseContext and only read afterwards; the parsers work on [start, end)
// spans of text.
type parseContext struct {
	src    string // the caller's text, for error positions
	text   string // src with insignificant whitespace removed
	origin []int  // origin[i] is the offset in src of text[i]; len(text)+1 entries
	tokens []bool // structural characters outside string literals
	pairs  []int  // delimiter pairing, see matchDelimiters
	aoa    []bool // positions inside an array-of-arrays
	cfg    Config
}

func newParseContext(src string, cfg Config) *parseContext {
	c := &parseContext{src: src, cfg: cfg}
	c.text, c.origin, c.tokens = normalize(src)
	return c
}

func (c *parseContext) originalOffset(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos >= len(c.origin) {
		return len(c.src)
	}
	return c.origin[pos]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isStructural(b byte) bool {
	switch b {
	case '{', '}', '[', ']', ':', ',':
		return true
	}
	return false
}

// stringMask marks every byte of src that belongs to a string literal,
// delimiting quotes included. Escaped quotes do not end a literal.
func stringMask(src string) []bool {
	mask := make([]bool, len(src))
	inStr := false
	for i := 0; i < len(src); i++ {
		b := src[i]
		if !inStr {
			if b == '"' {
				inStr = true
				mask[i] = true
			}
			continue
		}
		mask[i] = true
		switch b {
		case '\\':
			if i+1 < len(src) {
				mask[i+1] = true
			}
			i++
		case '"':
			inStr = false
		}
	}
	return mask
}

// normalize trims src and deletes every whitespace run outside string
// literals that touches a structural character. Whitespace between two
// non-structural characters is kept so that inputs like "1 2" or "tr ue" fail
// later instead of silently merging. It returns the normalized text, the
// offset map back into src and the structural-token mask.
func normalize(src string) (string, []int, []bool) {
	lo, hi := 0, len(src)
	for lo < hi && isSpace(src[lo]) {
		lo++
	}
	for hi > lo && isSpace(src[hi-1]) {
		hi--
	}
	trimmed := src[lo:hi]
	inStr := stringMask(trimmed)
	structural := func(i int) bool {
		return !inStr[i] && isStructural(trimmed[i])
	}

	var sb strings.Builder
	sb.Grow(len(trimmed))
	origin := make([]int, 0, len(trimmed)+1)
	tokens := make([]bool, 0, len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		if !inStr[i] && isSpace(trimmed[i]) {
			// trimmed has no leading or trailing whitespace, so the run has
			// neighbours on both sides.
			j := i
			for j < len(trimmed) && !inStr[j] && isSpace(trimmed[j]) {
				j++
			}
			if structural(i-1) || structural(j) {
				i = j - 1
				continue
			}
			for k := i; k < j; k++ {
				sb.WriteByte(trimmed[k])
				origin = append(origin, lo+k)
				tokens = append(tokens, false)
			}
			i = j - 1
			continue
		}
		sb.WriteByte(trimmed[i])
		origin = append(origin, lo+i)
		tokens = append(tokens, structural(i))
	}
	origin = append(origin, hi)
	return sb.String(), origin, tokens
}
