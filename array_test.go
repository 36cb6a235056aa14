package strictjson

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func grid(rows, cols int, floats ...float64) Value {
	return MatrixValue(&Matrix{Rows: rows, Cols: cols, Elem: KindNumber, Floats: floats})
}

func TestArrayPromotion(t *testing.T) {
	nan := math.NaN()
	for _, tc := range []struct {
		name  string
		input string
		want  Value
	}{
		{"numbers", `[1, 2.5, -3]`, NumberVector(1, 2.5, -3)},
		{"single null", `[null]`, NumberVector(nan)},
		{"numbers and nulls", `[1,null,3]`, NumberVector(1, nan, 3)},
		{"booleans", `[true,false,true]`, BoolVector(true, false, true)},
		{"square matrix", `[[1,2],[3,4]]`, grid(2, 2, 1, 2, 3, 4)},
		{"matrix with null", `[[1,null],[3,4]]`, grid(2, 2, 1, nan, 3, 4)},
		{"single row", `[[1,2,3]]`, grid(1, 3, 1, 2, 3)},
		{"column", `[[1],[2]]`, grid(2, 1, 1, 2)},
		{
			"boolean matrix",
			`[[true],[false]]`,
			MatrixValue(&Matrix{Rows: 2, Cols: 1, Elem: KindBool, Bools: []bool{true, false}}),
		},
		{
			"ragged rows",
			`[[1,2],[3]]`,
			ArrayValue(NumberVector(1, 2), NumberVector(3)),
		},
		{
			"mixed row kinds",
			`[[1,2],[true,false]]`,
			ArrayValue(NumberVector(1, 2), BoolVector(true, false)),
		},
		{
			"string rows",
			`[["a"],["b"]]`,
			ArrayValue(ArrayValue(StringValue("a")), ArrayValue(StringValue("b"))),
		},
		{
			"three dimensions",
			`[[[1],[2]],[[3],[4]]]`,
			ArrayValue(grid(2, 1, 1, 2), grid(2, 1, 3, 4)),
		},
		{
			"heterogeneous",
			`[1,"a",true,null]`,
			ArrayValue(NumberValue(1), StringValue("a"), BoolValue(true), NullValue()),
		},
		{
			"number then array",
			`[1,[2]]`,
			ArrayValue(NumberValue(1), NumberVector(2)),
		},
		{
			"records",
			`[{"a":1,"b":"x"},{"b":"y","a":2}]`,
			RecordListValue(&RecordList{
				Fields:  []string{"a", "b"},
				Records: [][]Value{{NumberValue(1), StringValue("x")}, {NumberValue(2), StringValue("y")}},
			}),
		},
		{
			"records with normalized keys",
			`[{"first name":"a"},{"first  name":"b"}]`,
			RecordListValue(&RecordList{
				Fields:  []string{"firstName"},
				Records: [][]Value{{StringValue("a")}, {StringValue("b")}},
			}),
		},
		{
			"records with different field kinds",
			`[{"a":1},{"a":"x"}]`,
			ArrayValue(
				ObjectValue(Member{"a", NumberValue(1)}),
				ObjectValue(Member{"a", StringValue("x")}),
			),
		},
		{
			"records with overlapping fields",
			`[{"a":1},{"a":1,"b":2}]`,
			ArrayValue(
				ObjectValue(Member{"a", NumberValue(1)}),
				ObjectValue(Member{"a", NumberValue(1)}, Member{"b", NumberValue(2)}),
			),
		},
		{
			"records with different fields",
			`[{"a":1},{"b":1}]`,
			ArrayValue(
				ObjectValue(Member{"a", NumberValue(1)}),
				ObjectValue(Member{"b", NumberValue(1)}),
			),
		},
		{
			"object and number",
			`[{"a":1},1]`,
			ArrayValue(ObjectValue(Member{"a", NumberValue(1)}), NumberValue(1)),
		},
		{"empty", `[]`, EmptyArray()},
		{"empty of empty", `[[]]`, EmptyArrayOfArrays()},
		{"empty of empty with spaces", `[ [ ] ]`, EmptyArrayOfArrays()},
		{"two empties", `[[],[]]`, ArrayValue(EmptyArray(), EmptyArray())},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got, cmp.Comparer(Equal)); diff != "" {
				t.Errorf("unexpected value (-want +got):\n%s\ngot: %v", diff, got)
			}
		})
	}
}

func TestPromotionDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PromoteArrays = false
	dec, err := NewDecoder(cfg, nil)
	require.NoError(t, err)

	got, err := dec.Decode(`[[1,2],[null,4],[{"a":true}]]`)
	require.NoError(t, err)
	want := ArrayValue(
		ArrayValue(NumberValue(1), NumberValue(2)),
		ArrayValue(NullValue(), NumberValue(4)),
		ArrayValue(ObjectValue(Member{"a", BoolValue(true)})),
	)
	require.True(t, Equal(want, got), "got %v", got)

	got, err = dec.Decode(`[[]]`)
	require.NoError(t, err)
	require.True(t, Equal(EmptyArrayOfArrays(), got))
}

func TestEmptyArraySentinels(t *testing.T) {
	empty := MustDecode(`[]`)
	nested := MustDecode(`[[]]`)
	require.True(t, empty.IsEmptyArray())
	require.False(t, nested.IsEmptyArray())
	require.False(t, Equal(empty, nested))
	require.Equal(t, 1, nested.Len())
	require.True(t, nested.Index(0).IsEmptyArray())
}

func TestNullInsideArray(t *testing.T) {
	require.True(t, MustDecode(`null`).IsNull())

	v := MustDecode(`[null]`)
	require.Equal(t, 1, v.Len())
	require.True(t, math.IsNaN(v.Index(0).Float()))

	// nulls stay null where no numeric promotion happens
	v = MustDecode(`[null,"a"]`)
	require.True(t, v.Index(0).IsNull())
}

func TestMatrixAccess(t *testing.T) {
	v := MustDecode(`[[1,2,3],[4,5,6]]`)
	require.Equal(t, KindMatrix, v.Kind())
	m := v.Matrix()
	require.Equal(t, 2, m.Rows)
	require.Equal(t, 3, m.Cols)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Floats)
	require.Equal(t, 6.0, m.At(1, 2).Float())

	row := v.Index(1)
	require.True(t, Equal(NumberVector(4, 5, 6), row), "got %v", row)

	cell, ok := v.Lookup(1, 0)
	require.True(t, ok)
	require.Equal(t, 4.0, cell.Float())

	_, ok = v.Lookup(2)
	require.False(t, ok)

	col := MustDecode(`[7,8]`)
	require.Equal(t, 8.0, col.Index(1).Float())
	require.Equal(t, "matrix(2x3)[[1 2 3] [4 5 6]]", v.String())
}

func TestArrayErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"initial comma", "[,1,2,3]", ErrorEmptyElement},
		{"trailing comma 3 elems", "[1,2,3,]", ErrorEmptyElement},
		{"trailing comma 2 elems", "[1,2,]", ErrorEmptyElement},
		{"trailing comma 1 elem", "[1,]", ErrorEmptyElement},
		{"comma only", "[,]", ErrorEmptyElement},
		{"double comma", "[1,,2]", ErrorEmptyElement},
		{"bad element", "[1,2,x]", ErrorSyntax},
		{"colon in array", "[1:2]", ErrorNumberFormat},
		{"interleaved", "[{]}", ErrorSyntax},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.input)
			require.Equal(t, tc.kind, KindOf(err))
		})
	}
}
