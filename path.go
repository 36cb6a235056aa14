package strictjson

import (
	"fmt"
	"strconv"
	"strings"
)

// Path represents a sequence of strings and integers >= 0 that gives the path
// to a value inside a decoded document. For example, the sequence {1, "foo", 0}
// is the path to document[1]["foo"][0]. Object keys in a path are normalized
// keys, as they appear in the decoded Value.
type Path struct {
	end *pathNode
}

const notAnIndex int = -2

type pathNode struct {
	previous *pathNode
	index    int // = notAnIndex if key
	key      string
}

// PathToSlice converts a Path to a slice of int and string values.
func PathToSlice(p Path) []any {
	var result []any
	for n := p.end; n != nil; n = n.previous {
		if n.index == notAnIndex {
			result = append(result, n.key)
		} else {
			result = append(result, n.index)
		}
	}
	var i, j int
	for j = len(result) - 1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// SliceToPath converts a slice of int and string values to a Path.
func SliceToPath(elems []any) Path {
	var end *pathNode
	pool := make([]pathNode, len(elems))
	for i, elem := range elems {
		n := &pool[i]
		n.previous = end
		switch e := elem.(type) {
		case int:
			n.index = e
		case string:
			n.index = notAnIndex
			n.key = e
		default:
			panic("SliceToPath: invalid element type; must be int or string")
		}
		end = n
	}
	return Path{end}
}

// PathEquals returns true iff the given path is equivalent to the given
// sequence of int and string values.
func PathEquals(path Path, elems []any) bool {
	p := path.end
	for i := len(elems) - 1; i >= 0; i-- {
		if p == nil {
			return false
		}
		elem := elems[i]
		switch e := elem.(type) {
		case int:
			if p.index < 0 || p.index != e {
				return false
			}
		case string:
			if p.index >= 0 || p.key != e {
				return false
			}
		default:
			panic("PathEquals: invalid element type; must be int or string")
		}
		p = p.previous
	}
	return p == nil
}

// Len returns the number of elements in the path.
func (p Path) Len() int {
	n := 0
	for e := p.end; e != nil; e = e.previous {
		n++
	}
	return n
}

// String() returns a string representation of the path. The string is a
// sequence of JavaScript indexation operators that can be used to access the
// value (e.g. [0]["foo"][1]]).
func (p Path) String() string {
	var sb strings.Builder
	var rec func(*pathNode)
	rec = func(p *pathNode) {
		if p == nil {
			return
		}
		rec(p.previous)
		if p.index == notAnIndex {
			sb.WriteString(fmt.Sprintf("[%v]", strconv.Quote(p.key)))
		} else {
			sb.WriteString(fmt.Sprintf("[%v]", p.index))
		}
	}
	rec(p.end)
	return sb.String()
}
