package strictjson

import "math"

// parseArray decodes the array spanning text[start:end], brackets included.
func (c *parseContext) parseArray(start, end, depth int) (Value, error) {
	switch c.text[start+1 : end-1] {
	case "":
		return EmptyArray(), nil
	case "[]":
		return EmptyArrayOfArrays(), nil
	}

	segs := c.splitTopLevel(start+1, end-1, ',')
	elems := make([]Value, len(segs))
	for i, seg := range segs {
		if seg.start == seg.end {
			return Value{}, c.errorf(ErrorEmptyElement, seg.start, "empty element at index %d in array", i)
		}
		v, err := c.parseValue(seg.start, seg.end, depth+1)
		if err != nil {
			return Value{}, c.wrapElement(ErrorInvalidValue, seg.start, "invalid element in array definition", i, err)
		}
		elems[i] = v
	}

	if !c.cfg.PromoteArrays {
		return ArrayValue(elems...), nil
	}
	return promote(elems, c.aoa[start]), nil
}

// promote replaces a decoded element list with the densest representation
// that holds it without loss, trying in order: rows of an array-of-arrays
// stacked into a matrix, a numeric column (nulls become NaN), a boolean
// column, and a record list. Anything else stays a plain array.
func promote(elems []Value, arrayOfArrays bool) Value {
	if arrayOfArrays {
		if m, ok := stackRows(elems); ok {
			return MatrixValue(m)
		}
	}
	if m, ok := numericColumn(elems); ok {
		return MatrixValue(m)
	}
	if m, ok := boolColumn(elems); ok {
		return MatrixValue(m)
	}
	if r, ok := recordList(elems); ok {
		return RecordListValue(r)
	}
	return ArrayValue(elems...)
}

// stackRows concatenates vectors of one element kind and one length into a
// row-major matrix with one row per element.
func stackRows(elems []Value) (*Matrix, bool) {
	first := elems[0]
	if first.kind != KindMatrix || !first.matrix.vector {
		return nil, false
	}
	cols, elem := first.matrix.Rows, first.matrix.Elem
	for _, e := range elems[1:] {
		if e.kind != KindMatrix || !e.matrix.vector || e.matrix.Rows != cols || e.matrix.Elem != elem {
			return nil, false
		}
	}

	m := &Matrix{Rows: len(elems), Cols: cols, Elem: elem}
	if elem == KindBool {
		m.Bools = make([]bool, 0, len(elems)*cols)
		for _, e := range elems {
			m.Bools = append(m.Bools, e.matrix.Bools...)
		}
	} else {
		m.Floats = make([]float64, 0, len(elems)*cols)
		for _, e := range elems {
			m.Floats = append(m.Floats, e.matrix.Floats...)
		}
	}
	return m, true
}

func numericColumn(elems []Value) (*Matrix, bool) {
	for _, e := range elems {
		if e.kind != KindNumber && e.kind != KindNull {
			return nil, false
		}
	}
	floats := make([]float64, len(elems))
	for i, e := range elems {
		if e.kind == KindNull {
			floats[i] = math.NaN()
		} else {
			floats[i] = e.num
		}
	}
	return NumberVector(floats...).matrix, true
}

func boolColumn(elems []Value) (*Matrix, bool) {
	bools := make([]bool, len(elems))
	for i, e := range elems {
		if e.kind != KindBool {
			return nil, false
		}
		bools[i] = e.boolean
	}
	return BoolVector(bools...).matrix, true
}

// recordList merges objects that have exactly the same keys, with values of
// the same kind per key. Key order follows the first object.
func recordList(elems []Value) (*RecordList, bool) {
	first := elems[0]
	if first.kind != KindObject {
		return nil, false
	}
	fields := make([]string, len(first.members))
	index := make(map[string]int, len(first.members))
	for j, m := range first.members {
		fields[j] = m.Key
		index[m.Key] = j
	}

	records := make([][]Value, len(elems))
	for i, e := range elems {
		if e.kind != KindObject || len(e.members) != len(fields) {
			return nil, false
		}
		rec := make([]Value, len(fields))
		for _, m := range e.members {
			j, ok := index[m.Key]
			if !ok || m.Value.kind != first.members[j].Value.kind {
				return nil, false
			}
			rec[j] = m.Value
		}
		records[i] = rec
	}
	return &RecordList{Fields: fields, Records: records}, true
}
