package strictjson

// parseValue decodes text[start:end], which must hold exactly one value.
// depth is 1 for the document and grows by one for every member value or
// array element descended into.
func (c *parseContext) parseValue(start, end, depth int) (Value, error) {
	if limit := c.cfg.MaxRecursionDepth; limit > 0 && depth > limit {
		return Value{}, c.errorf(ErrorRecursionLimit, start, "maximum recursion depth of %d exceeded", limit)
	}
	if start >= end {
		return Value{}, c.errorAt(ErrorSyntax, start, "expected a value")
	}

	switch b := c.text[start]; b {
	case '{':
		if !c.matches(start, end, '}') {
			return Value{}, c.trailingContent(start, end)
		}
		return c.parseObject(start, end, depth)
	case '[':
		if !c.matches(start, end, ']') {
			return Value{}, c.trailingContent(start, end)
		}
		return c.parseArray(start, end, depth)
	case '"':
		s, err := c.parseString(start, end)
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return c.parseNumber(start, end)
	case 't':
		return c.parseLiteral(start, end, "true", BoolValue(true))
	case 'f':
		return c.parseLiteral(start, end, "false", BoolValue(false))
	case 'n':
		return c.parseLiteral(start, end, "null", NullValue())
	default:
		return Value{}, c.errorf(ErrorSyntax, start, "unexpected character %q", rune(b))
	}
}

func (c *parseContext) parseLiteral(start, end int, lit string, v Value) (Value, error) {
	if c.text[start:end] != lit {
		return Value{}, c.errorf(ErrorLiteralMismatch, start, "expected %q, found %q", lit, c.text[start:end])
	}
	return v, nil
}

// trailingContent reports the error for a container at start whose partner is
// not the last character of the span.
func (c *parseContext) trailingContent(start, end int) error {
	for i := start + 1; i < end; i++ {
		if c.tokens[i] && c.pairs[i] == -c.pairs[start] && c.text[i] == closerOf(c.text[start]) {
			if i+1 < end {
				return c.errorAt(ErrorSyntax, i+1, "unexpected content after complete value")
			}
			break
		}
	}
	return c.errorf(ErrorSyntax, start, "'%c' is not closed within its value", c.text[start])
}

func closerOf(b byte) byte {
	if b == '{' {
		return '}'
	}
	return ']'
}
