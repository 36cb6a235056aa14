package strictjson

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind represents the kind of a decoded value.
type Kind int

const (
	// null
	KindNull Kind = iota
	// true or false
	KindBool
	// A number, held as a float64
	KindNumber
	// A string
	KindString
	// An ordered sequence of values
	KindArray
	// An ordered mapping from normalized keys to values
	KindObject
	// A dense numeric or boolean grid promoted from an array
	KindMatrix
	// A sequence of objects sharing one field set, promoted from an array
	KindRecordList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	case KindMatrix:
		return "Matrix"
	case KindRecordList:
		return "RecordList"
	}
	return "<unknown Kind>"
}

// Value is a decoded JSON value. The zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	num     float64
	str     string // the string, or the source text of a number
	elems   []Value
	members []Member
	matrix  *Matrix
	records *RecordList
}

// Member is a key-value pair in an object. Key is the normalized key.
type Member struct {
	Key   string
	Value Value
}

// Matrix is a dense row-major grid. Elem is KindNumber (Floats is set) or
// KindBool (Bools is set).
type Matrix struct {
	Rows, Cols int
	Elem       Kind
	Floats     []float64
	Bools      []bool

	vector bool // a promoted one-dimensional array, Rows x 1
}

// At returns the element at row i, column j as a scalar Value.
func (m *Matrix) At(i, j int) Value {
	k := i*m.Cols + j
	if m.Elem == KindBool {
		return BoolValue(m.Bools[k])
	}
	return NumberValue(m.Floats[k])
}

// row returns row i as a vector sharing m's storage.
func (m *Matrix) row(i int) *Matrix {
	r := &Matrix{Rows: m.Cols, Cols: 1, Elem: m.Elem, vector: true}
	if m.Elem == KindBool {
		r.Bools = m.Bools[i*m.Cols : (i+1)*m.Cols]
	} else {
		r.Floats = m.Floats[i*m.Cols : (i+1)*m.Cols]
	}
	return r
}

// RecordList is a sequence of objects that all have the field set Fields,
// with per-field values of the same kind. Records[i][j] is the value of
// Fields[j] in record i.
type RecordList struct {
	Fields  []string
	Records [][]Value
}

// NullValue returns null.
func NullValue() Value { return Value{} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{kind: KindBool, boolean: b} }

// NumberValue returns a number value.
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// ArrayValue returns an array holding elems.
func ArrayValue(elems ...Value) Value { return Value{kind: KindArray, elems: elems} }

// ObjectValue returns an object holding members. Keys are used as given.
func ObjectValue(members ...Member) Value { return Value{kind: KindObject, members: members} }

// MatrixValue wraps m. Index on the result yields the rows of m.
func MatrixValue(m *Matrix) Value { return Value{kind: KindMatrix, matrix: m} }

// NumberVector returns the matrix an array of numbers promotes to. NaN
// stands for null.
func NumberVector(fs ...float64) Value {
	return MatrixValue(&Matrix{Rows: len(fs), Cols: 1, Elem: KindNumber, Floats: fs, vector: true})
}

// BoolVector returns the matrix an array of booleans promotes to.
func BoolVector(bs ...bool) Value {
	return MatrixValue(&Matrix{Rows: len(bs), Cols: 1, Elem: KindBool, Bools: bs, vector: true})
}

// RecordListValue wraps r.
func RecordListValue(r *RecordList) Value { return Value{kind: KindRecordList, records: r} }

// EmptyArray is the value of "[]".
func EmptyArray() Value { return Value{kind: KindArray} }

// EmptyArrayOfArrays is the value of "[[]]": a one-element array holding
// EmptyArray. It is not equal to EmptyArray.
func EmptyArrayOfArrays() Value { return ArrayValue(EmptyArray()) }

func numberWithText(f float64, text string) Value {
	return Value{kind: KindNumber, num: f, str: text}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsEmptyArray reports whether v is EmptyArray.
func (v Value) IsEmptyArray() bool { return v.kind == KindArray && len(v.elems) == 0 }

// Bool returns the value of a KindBool value.
func (v Value) Bool() bool {
	if v.kind != KindBool {
		panic("strictjson: Bool called on non-Bool value")
	}
	return v.boolean
}

// Float returns the value of a KindNumber value.
func (v Value) Float() float64 {
	if v.kind != KindNumber {
		panic("strictjson: Float called on non-Number value")
	}
	return v.num
}

// Str returns the value of a KindString value.
func (v Value) Str() string {
	if v.kind != KindString {
		panic("strictjson: Str called on non-String value")
	}
	return v.str
}

// Len returns the number of elements of an array, rows of a matrix, records
// of a record list or members of an object. It returns 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.elems)
	case KindObject:
		return len(v.members)
	case KindMatrix:
		return v.matrix.Rows
	case KindRecordList:
		return len(v.records.Records)
	}
	return 0
}

// Index returns element i of a sequence. For a matrix promoted from a flat
// array this is the scalar in row i, otherwise row i as such a vector. For a
// record list it is record i as an object.
func (v Value) Index(i int) Value {
	switch v.kind {
	case KindArray:
		return v.elems[i]
	case KindMatrix:
		if i < 0 || i >= v.matrix.Rows {
			panic(fmt.Sprintf("strictjson: matrix row %d out of range [0,%d)", i, v.matrix.Rows))
		}
		if v.matrix.vector {
			return v.matrix.At(i, 0)
		}
		return MatrixValue(v.matrix.row(i))
	case KindRecordList:
		rec := v.records.Records[i]
		members := make([]Member, len(rec))
		for j, f := range v.records.Fields {
			members[j] = Member{Key: f, Value: rec[j]}
		}
		return ObjectValue(members...)
	}
	panic("strictjson: Index called on " + v.kind.String() + " value")
}

// Elems returns the elements of a KindArray value.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		panic("strictjson: Elems called on non-Array value")
	}
	return v.elems
}

// Members returns the members of an object in first-occurrence order.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		panic("strictjson: Members called on non-Object value")
	}
	return v.members
}

// Keys returns the normalized keys of an object in order.
func (v Value) Keys() []string {
	keys := make([]string, len(v.Members()))
	for i, m := range v.members {
		keys[i] = m.Key
	}
	return keys
}

// Get returns the value of key in an object.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Matrix returns the grid of a KindMatrix value.
func (v Value) Matrix() *Matrix {
	if v.kind != KindMatrix {
		panic("strictjson: Matrix called on non-Matrix value")
	}
	return v.matrix
}

// Records returns the records of a KindRecordList value.
func (v Value) Records() *RecordList {
	if v.kind != KindRecordList {
		panic("strictjson: Records called on non-RecordList value")
	}
	return v.records
}

// Lookup follows path (ints index sequences, strings select object members)
// from v.
func (v Value) Lookup(path ...any) (Value, bool) {
	cur := v
	for _, elem := range path {
		switch e := elem.(type) {
		case int:
			switch cur.kind {
			case KindArray, KindMatrix, KindRecordList:
			default:
				return Value{}, false
			}
			if e < 0 || e >= cur.Len() {
				return Value{}, false
			}
			cur = cur.Index(e)
		case string:
			next, ok := cur.Get(e)
			if !ok {
				return Value{}, false
			}
			cur = next
		default:
			panic("Lookup: invalid element type; must be int or string")
		}
	}
	return cur, true
}

// LookupPath is Lookup for a Path.
func (v Value) LookupPath(p Path) (Value, bool) {
	return v.Lookup(PathToSlice(p)...)
}

// Equal reports whether a and b are structurally equal. NaN equals NaN.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindNumber:
		return floatEqual(a.num, b.num)
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.members) != len(b.members) {
			return false
		}
		for i := range a.members {
			if a.members[i].Key != b.members[i].Key || !Equal(a.members[i].Value, b.members[i].Value) {
				return false
			}
		}
		return true
	case KindMatrix:
		return matrixEqual(a.matrix, b.matrix)
	case KindRecordList:
		ra, rb := a.records, b.records
		if len(ra.Fields) != len(rb.Fields) || len(ra.Records) != len(rb.Records) {
			return false
		}
		for i := range ra.Fields {
			if ra.Fields[i] != rb.Fields[i] {
				return false
			}
		}
		for i := range ra.Records {
			for j := range ra.Records[i] {
				if !Equal(ra.Records[i][j], rb.Records[i][j]) {
					return false
				}
			}
		}
		return true
	}
	return false
}

func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func matrixEqual(a, b *Matrix) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols || a.Elem != b.Elem || a.vector != b.vector {
		return false
	}
	if a.Elem == KindBool {
		for i := range a.Bools {
			if a.Bools[i] != b.Bools[i] {
				return false
			}
		}
		return true
	}
	for i := range a.Floats {
		if !floatEqual(a.Floats[i], b.Floats[i]) {
			return false
		}
	}
	return true
}

// String returns a compact human-readable rendering of v for debugging. It
// is not JSON.
func (v Value) String() string {
	var sb strings.Builder
	v.writeTo(&sb)
	return sb.String()
}

func (v Value) writeTo(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.boolean))
	case KindNumber:
		sb.WriteString(formatFloat(v.num))
	case KindString:
		sb.WriteString(strconv.Quote(v.str))
	case KindArray:
		sb.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.writeTo(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.Key)
			sb.WriteString(": ")
			m.Value.writeTo(sb)
		}
		sb.WriteByte('}')
	case KindMatrix:
		m := v.matrix
		fmt.Fprintf(sb, "matrix(%dx%d)[", m.Rows, m.Cols)
		for i := 0; i < m.Rows; i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('[')
			for j := 0; j < m.Cols; j++ {
				if j > 0 {
					sb.WriteByte(' ')
				}
				m.At(i, j).writeTo(sb)
			}
			sb.WriteByte(']')
		}
		sb.WriteByte(']')
	case KindRecordList:
		r := v.records
		fmt.Fprintf(sb, "records(%s)[", strings.Join(r.Fields, ","))
		for i := range r.Records {
			if i > 0 {
				sb.WriteByte(' ')
			}
			v.Index(i).writeTo(sb)
		}
		sb.WriteByte(']')
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
