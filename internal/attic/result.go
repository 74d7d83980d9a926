package attic

import (
	"github.com/danmuck/welllog/internal/fingerprint"
	"github.com/danmuck/welllog/internal/record"
)

// Field is one loaded schema field. Single fields always hold exactly one
// value (the default when absent); list fields hold one value per raw
// element.
type Field struct {
	Label   string
	Kind    Kind
	Card    Cardinality
	Present bool
	Values  []record.Value
	Links   []fingerprint.Fingerprint
}

// Slot is one position of a GroupSpec. Named is false when the label fell
// back to the slot index.
type Slot struct {
	Label string
	Value record.Value
	Named bool
}

// Result is the complete field set produced by Load.
type Result struct {
	Type          string
	fields        map[string]*Field
	order         []string
	groups        map[string][]Slot
	groupOrder    []string
	unknown       []string
	discrepancies []Discrepancy
}

// Labels lists the schema labels in declaration order.
func (r *Result) Labels() []string {
	return append([]string(nil), r.order...)
}

// Fields returns copies of every field in declaration order.
func (r *Result) Fields() []Field {
	out := make([]Field, 0, len(r.order))
	for _, label := range r.order {
		f, _ := r.Field(label)
		out = append(out, f)
	}
	return out
}

// Field returns a copy of the field loaded for label.
func (r *Result) Field(label string) (Field, bool) {
	f, ok := r.fields[label]
	if !ok {
		return Field{}, false
	}
	cp := *f
	cp.Values = append([]record.Value(nil), f.Values...)
	cp.Links = append([]fingerprint.Fingerprint(nil), f.Links...)
	return cp, true
}

// Value returns the value of a single field, or the first element of a
// list field. Unknown labels and empty lists yield None.
func (r *Result) Value(label string) record.Value {
	f, ok := r.fields[label]
	if !ok || len(f.Values) == 0 {
		return record.None()
	}
	return f.Values[0]
}

func (r *Result) Values(label string) []record.Value {
	f, ok := r.fields[label]
	if !ok {
		return nil
	}
	return append([]record.Value(nil), f.Values...)
}

func (r *Result) Text(label string) string {
	v := r.Value(label)
	if v.Kind != record.KindText {
		return ""
	}
	return v.Text
}

func (r *Result) Int(label string) (int64, bool) {
	v := r.Value(label)
	return v.Int, v.Kind == record.KindInt
}

func (r *Result) Float(label string) (float64, bool) {
	v := r.Value(label)
	return v.Float, v.Kind == record.KindFloat
}

func (r *Result) Bool(label string) (bool, bool) {
	v := r.Value(label)
	return v.Bool, v.Kind == record.KindBool
}

// Texts returns a list field as strings; defaulted elements read as "".
func (r *Result) Texts(label string) []string {
	values := r.Values(label)
	out := make([]string, len(values))
	for i, v := range values {
		if v.Kind == record.KindText {
			out[i] = v.Text
		}
	}
	return out
}

// Ints returns a list field as integers; defaulted elements read as 0.
func (r *Result) Ints(label string) []int64 {
	values := r.Values(label)
	out := make([]int64, len(values))
	for i, v := range values {
		if v.Kind == record.KindInt {
			out[i] = v.Int
		}
	}
	return out
}

// Floats returns a list field as floats; defaulted elements read as 0.
func (r *Result) Floats(label string) []float64 {
	values := r.Values(label)
	out := make([]float64, len(values))
	for i, v := range values {
		if v.Kind == record.KindFloat {
			out[i] = v.Float
		}
	}
	return out
}

func (r *Result) Link(label string) (fingerprint.Fingerprint, bool) {
	f, ok := r.fields[label]
	if !ok || len(f.Links) == 0 {
		return "", false
	}
	return f.Links[0], true
}

func (r *Result) Links(label string) []fingerprint.Fingerprint {
	f, ok := r.fields[label]
	if !ok {
		return nil
	}
	return append([]fingerprint.Fingerprint(nil), f.Links...)
}

// Group returns the slots of a positional group, always GroupSpec.Slots long.
func (r *Result) Group(name string) []Slot {
	return append([]Slot(nil), r.groups[name]...)
}

// GroupMap keys a group's slot values by slot label. When two slots share
// a label the later slot wins.
func (r *Result) GroupMap(name string) map[string]record.Value {
	slots := r.groups[name]
	out := make(map[string]record.Value, len(slots))
	for _, s := range slots {
		out[s.Label] = s.Value
	}
	return out
}

func (r *Result) GroupNames() []string {
	return append([]string(nil), r.groupOrder...)
}

// Unknown lists raw labels the schema does not consume, sorted.
func (r *Result) Unknown() []string {
	return append([]string(nil), r.unknown...)
}

func (r *Result) Discrepancies() []Discrepancy {
	return append([]Discrepancy(nil), r.discrepancies...)
}
