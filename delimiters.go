package strictjson

type opener struct {
	pos          int
	id           int
	arrayOfArray bool // an '[' immediately followed by another '['
}

// matchDelimiters pairs braces and brackets with one stack per kind. An
// opener gets a positive id (braces and brackets are numbered
// independently); its closer gets the negated id. Positions spanned by an
// array whose next delimiter is another '[' are flagged as array-of-arrays.
func (c *parseContext) matchDelimiters() error {
	n := len(c.text)
	c.pairs = make([]int, n)
	var braces, brackets []opener
	braceID, bracketID := 0, 0
	var last byte // previous brace or bracket seen
	aoaDiff := make([]int, n+1)

	for i := 0; i < n; i++ {
		if !c.tokens[i] {
			continue
		}
		b := c.text[i]
		switch b {
		case '{':
			braceID++
			c.pairs[i] = braceID
			braces = append(braces, opener{pos: i, id: braceID})
		case '}':
			if len(braces) == 0 {
				return c.errorAt(ErrorUnbalancedDelimiters, i, "unexpected '}' without matching '{'")
			}
			top := braces[len(braces)-1]
			braces = braces[:len(braces)-1]
			c.pairs[i] = -top.id
		case '[':
			if last == '[' {
				brackets[len(brackets)-1].arrayOfArray = true
			}
			bracketID++
			c.pairs[i] = bracketID
			brackets = append(brackets, opener{pos: i, id: bracketID})
		case ']':
			if len(brackets) == 0 {
				return c.errorAt(ErrorUnbalancedDelimiters, i, "unexpected ']' without matching '['")
			}
			top := brackets[len(brackets)-1]
			brackets = brackets[:len(brackets)-1]
			c.pairs[i] = -top.id
			if top.arrayOfArray {
				aoaDiff[top.pos]++
				aoaDiff[i+1]--
			}
		default:
			continue
		}
		last = b
	}

	if len(braces) > 0 || len(brackets) > 0 {
		// report the innermost unclosed opener
		var open opener
		var what byte
		if len(braces) > 0 {
			open, what = braces[len(braces)-1], '{'
		}
		if len(brackets) > 0 && (what == 0 || brackets[len(brackets)-1].pos > open.pos) {
			open, what = brackets[len(brackets)-1], '['
		}
		return c.errorf(ErrorUnbalancedDelimiters, open.pos, "unclosed '%c'", what)
	}

	c.aoa = make([]bool, n)
	level := 0
	for i := 0; i < n; i++ {
		level += aoaDiff[i]
		c.aoa[i] = level > 0
	}
	return nil
}

// matches reports whether the delimiters at start and end-1 form one pair.
func (c *parseContext) matches(start, end int, closer byte) bool {
	last := end - 1
	return last > start && c.tokens[last] && c.text[last] == closer && c.pairs[last] == -c.pairs[start]
}

type span struct {
	start, end int
}

// splitTopLevel splits text[start:end] at every sep that is a structural
// token at nesting level zero.
func (c *parseContext) splitTopLevel(start, end int, sep byte) []span {
	var spans []span
	level := 0
	segStart := start
	for i := start; i < end; i++ {
		if !c.tokens[i] {
			continue
		}
		switch p := c.pairs[i]; {
		case p > 0:
			level++
		case p < 0:
			level--
		case level == 0 && c.text[i] == sep:
			spans = append(spans, span{segStart, i})
			segStart = i + 1
		}
	}
	return append(spans, span{segStart, end})
}
