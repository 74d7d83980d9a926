package attic

import (
	"testing"

	"github.com/danmuck/welllog/internal/fingerprint"
	"github.com/danmuck/welllog/internal/record"
	"github.com/danmuck/welllog/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var toolLike = &Schema{
	Type: "TOOL",
	Fields: []FieldSpec{
		Scalar("DESCRIPTION", Text),
		Scalar("STATUS", Bool),
		Vector("CHANNELS", Link),
	},
}

func kinds(ds []Discrepancy, label string) []DiscrepancyKind {
	var out []DiscrepancyKind
	for _, d := range ds {
		if d.Label == label {
			out = append(out, d.Kind)
		}
	}
	return out
}

func TestLoadCardinalityAndTypeMismatch(t *testing.T) {
	testlog.Start(t)
	res := Load(toolLike, "", record.Attic{
		"DESCRIPTION": {record.Text("Description"), record.Text("Unexpected description")},
		"STATUS":      {record.Text("Yes"), record.Int(0)},
	})

	assert.Equal(t, "Description", res.Text("DESCRIPTION"))
	status, ok := res.Bool("STATUS")
	require.True(t, ok)
	assert.True(t, status)

	ds := res.Discrepancies()
	assert.Equal(t, []DiscrepancyKind{CardinalityMismatch}, kinds(ds, "DESCRIPTION"))
	statusKinds := kinds(ds, "STATUS")
	assert.Contains(t, statusKinds, TypeMismatch)
	n := 0
	for _, k := range statusKinds {
		if k == TypeMismatch {
			n++
		}
	}
	assert.Equal(t, 1, n)

	for _, d := range ds {
		if d.Kind == CardinalityMismatch && d.Label == "DESCRIPTION" {
			assert.Equal(t, "1", d.Expected)
			assert.Equal(t, "2", d.Observed)
			assert.Contains(t, d.Error(), "1 value in the attribute DESCRIPTION")
		}
	}
}

func TestLoadOneCardinalityRecordPerField(t *testing.T) {
	testlog.Start(t)
	res := Load(toolLike, "", record.Attic{
		"DESCRIPTION": {record.Text("a"), record.Text("b"), record.Text("c"), record.Text("d")},
	})
	ds := res.Discrepancies()
	require.Len(t, ds, 1)
	assert.Equal(t, "4", ds[0].Observed)
	assert.Equal(t, "a", res.Text("DESCRIPTION"))
}

func TestLoadAbsentLabelsUseDefaults(t *testing.T) {
	testlog.Start(t)
	schema := &Schema{
		Type: "X",
		Fields: []FieldSpec{
			Scalar("A", Text),
			Scalar("B", Int).WithDefault(record.Int(7)),
			Vector("C", Float),
			Scalar("D", Text).Required(),
		},
	}
	res := Load(schema, "obj", record.Attic{"C": {}})

	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Labels())
	assert.True(t, res.Value("A").IsNone())
	b, ok := res.Int("B")
	assert.True(t, ok)
	assert.Equal(t, int64(7), b)
	assert.Empty(t, res.Values("C"))

	ds := res.Discrepancies()
	require.Len(t, ds, 1)
	assert.Equal(t, MissingAttribute, ds[0].Kind)
	assert.Equal(t, "D", ds[0].Label)
	assert.Equal(t, "obj", ds[0].Object)

	for _, f := range res.Fields() {
		assert.False(t, f.Present, f.Label)
	}
}

func TestLoadListCoercesElementsIndependently(t *testing.T) {
	testlog.Start(t)
	schema := &Schema{Type: "X", Fields: []FieldSpec{Vector("DIMENSION", Int)}}
	res := Load(schema, "", record.Attic{
		"DIMENSION": {record.Int(3), record.Text("4"), record.Text("four"), record.Float(5)},
	})

	values := res.Values("DIMENSION")
	require.Len(t, values, 4)
	assert.Equal(t, record.Int(3), values[0])
	assert.Equal(t, record.Int(4), values[1])
	assert.True(t, values[2].IsNone())
	assert.Equal(t, record.Int(5), values[3])
	assert.Equal(t, []int64{3, 4, 0, 5}, res.Ints("DIMENSION"))

	ds := res.Discrepancies()
	require.Len(t, ds, 3)
	for _, d := range ds {
		assert.Equal(t, TypeMismatch, d.Kind)
	}
	assert.Equal(t, "element 2", ds[1].Detail)
}

func TestLoadLinks(t *testing.T) {
	testlog.Start(t)
	schema := &Schema{
		Type: "FRAME",
		Fields: []FieldSpec{
			VectorLink("CHANNELS", "CHANNEL"),
			Scalar("SOURCE", Link),
		},
	}
	res := Load(schema, "", record.Attic{
		"CHANNELS": {
			record.RefTo(record.Ref{Name: "CHANN1", Origin: 10}),
			record.Text("not a ref"),
			record.RefTo(record.Ref{Type: "CHANNEL", Name: "CHANN2", Origin: 10}),
		},
		"SOURCE": {record.RefTo(record.Ref{Name: "TOOL1", Origin: 10})},
	})

	assert.Equal(t, []fingerprint.Fingerprint{
		fingerprint.Of("CHANNEL", "CHANN1", 10, 0),
		fingerprint.Of("CHANNEL", "CHANN2", 10, 0),
	}, res.Links("CHANNELS"))
	_, ok := res.Link("SOURCE")
	assert.False(t, ok, "untyped reference without a schema target")
	assert.Len(t, res.Discrepancies(), 2)
}

func TestLoadBooleanLiterals(t *testing.T) {
	testlog.Start(t)
	schema := &Schema{Type: "X", Fields: []FieldSpec{Vector("FLAGS", Bool)}}
	res := Load(schema, "", record.Attic{
		"FLAGS": {
			record.Bool(true), record.Int(0), record.Int(1),
			record.Text("FALSE"), record.Text("true"),
			record.Int(5), record.Text(""), record.Float(0.5),
		},
	})
	var got []bool
	for _, v := range res.Values("FLAGS") {
		got = append(got, v.Bool)
	}
	assert.Equal(t, []bool{true, false, true, false, true, true, false, true}, got)
	assert.Len(t, res.Discrepancies(), 3, "only the truthiness conversions are flagged")
}

func TestLoadUnknownLabels(t *testing.T) {
	testlog.Start(t)
	res := Load(toolLike, "", record.Attic{
		"ZETA":        {record.Int(1)},
		"DESCRIPTION": {record.Text("d")},
		"ALPHA":       {},
	})
	assert.Equal(t, []string{"ALPHA", "ZETA"}, res.Unknown())
	assert.Empty(t, res.Discrepancies())
}

func TestLoadIsRepeatable(t *testing.T) {
	testlog.Start(t)
	bag := record.Attic{
		"DESCRIPTION": {record.Text("Description"), record.Text("x")},
		"STATUS":      {record.Int(1)},
		"CHANNELS":    {record.RefTo(record.Ref{Type: "CHANNEL", Name: "C", Origin: 1})},
	}
	assert.Equal(t, Load(toolLike, "t", bag), Load(toolLike, "t", bag))
}

func TestInferSchema(t *testing.T) {
	testlog.Start(t)
	bag := record.Attic{"B": {record.Int(1)}, "A": {record.Text("x"), record.Float(2)}}
	s := InferSchema("VENDOR-THING", bag)
	require.Len(t, s.Fields, 2)
	assert.Equal(t, "A", s.Fields[0].Label)
	assert.Equal(t, List, s.Fields[0].Card)

	res := Load(s, "", bag)
	assert.Equal(t, bag["A"], res.Values("A"))
	assert.Empty(t, res.Discrepancies())
}

func TestLoadMixedValueOrLink(t *testing.T) {
	testlog.Start(t)
	schema := &Schema{
		Type: "PATH",
		Fields: []FieldSpec{
			Mixed("BOREHOLE-DEPTH", "CHANNEL"),
			Mixed("TIME", "CHANNEL"),
		},
	}
	res := Load(schema, "", record.Attic{
		"BOREHOLE-DEPTH": {record.Float(1500.5)},
		"TIME":           {record.RefTo(record.Ref{Name: "TDEP", Origin: 2})},
	})
	assert.Equal(t, record.Float(1500.5), res.Value("BOREHOLE-DEPTH"))
	assert.Empty(t, res.Links("BOREHOLE-DEPTH"))
	assert.Equal(t, []fingerprint.Fingerprint{fingerprint.Of("CHANNEL", "TDEP", 2, 0)}, res.Links("TIME"))
	assert.Empty(t, res.Discrepancies())
}
