package strictjson

import (
	"strconv"
	"strings"
	"unicode"
)

// parseObject decodes the object spanning text[start:end], braces included.
func (c *parseContext) parseObject(start, end, depth int) (Value, error) {
	if end-start == 2 {
		return ObjectValue(), nil
	}

	segs := c.splitTopLevel(start+1, end-1, ',')
	members := make([]Member, 0, len(segs))
	seen := make(map[string]struct{}, len(segs))
	for _, seg := range segs {
		colon, n := c.topLevelColon(seg.start, seg.end)
		switch {
		case n == 0:
			return Value{}, c.errorAt(ErrorMissingColon, seg.start, "missing ':' in object member")
		case n > 1:
			return Value{}, c.errorAt(ErrorSyntax, colon, "unexpected ':' in object member")
		}

		raw, err := c.parseString(seg.start, colon)
		if err != nil {
			keyErr := c.errorAt(ErrorInvalidKey, seg.start, "invalid key in object definition")
			keyErr.Err = err
			return Value{}, keyErr
		}
		key := uniqueKey(NormalizeKey(raw), seen)

		v, err := c.parseValue(colon+1, seg.end, depth+1)
		if err != nil {
			return Value{}, c.wrapMember(ErrorInvalidValue, colon+1, "invalid value in object definition for key "+strconv.Quote(key), key, err)
		}
		members = append(members, Member{Key: key, Value: v})
	}
	return ObjectValue(members...), nil
}

// topLevelColon returns the position of the second top-level ':' in
// text[start:end] if there is one, else the first, together with the number
// of top-level colons (counting stops at two).
func (c *parseContext) topLevelColon(start, end int) (pos, n int) {
	level := 0
	pos = -1
	for i := start; i < end; i++ {
		if !c.tokens[i] {
			continue
		}
		switch p := c.pairs[i]; {
		case p > 0:
			level++
		case p < 0:
			level--
		case level == 0 && c.text[i] == ':':
			pos = i
			n++
			if n == 2 {
				return pos, n
			}
		}
	}
	return pos, n
}

func isKeySpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	}
	return false
}

func isKeyChar(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// NormalizeKey turns an object key into an identifier:
//   - a whitespace run followed by a character is replaced by that character
//     upper-cased ("first name" becomes "firstName");
//   - remaining whitespace is removed;
//   - everything from the first NUL on is dropped;
//   - characters outside [A-Za-z0-9_] become '_';
//   - an empty result, or one starting with a digit or '_', gets an "x"
//     prefix.
func NormalizeKey(key string) string {
	var sb strings.Builder
	sb.Grow(len(key) + 1)
	rs := []rune(key)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r == 0 {
			break
		}
		if isKeySpace(r) {
			j := i
			for j < len(rs) && isKeySpace(rs[j]) {
				j++
			}
			if j == len(rs) || rs[j] == 0 {
				break
			}
			r = unicode.ToUpper(rs[j])
			i = j
		}
		if !isKeyChar(r) {
			r = '_'
		}
		sb.WriteRune(r)
	}
	out := sb.String()
	if out == "" || out[0] == '_' || isDigit(out[0]) {
		out = "x" + out
	}
	return out
}

// uniqueKey returns key, or key suffixed with "_N" for the smallest N >= 1
// not yet in seen, and records the result in seen.
func uniqueKey(key string, seen map[string]struct{}) string {
	if _, dup := seen[key]; dup {
		for n := 1; ; n++ {
			candidate := key + "_" + strconv.Itoa(n)
			if _, dup := seen[candidate]; !dup {
				key = candidate
				break
			}
		}
	}
	seen[key] = struct{}{}
	return key
}
