package attic

import (
	"fmt"
	"sort"

	"github.com/danmuck/welllog/internal/record"
)

// Kind is the value kind a field is coerced to.
type Kind uint8

const (
	Any Kind = iota
	Text
	Int
	Float
	Bool
	Bytes
	Link
)

func (k Kind) String() string {
	switch k {
	case Any:
		return "any"
	case Text:
		return "text"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Bytes:
		return "bytes"
	case Link:
		return "link"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

type Cardinality uint8

const (
	Single Cardinality = iota
	List
)

func (c Cardinality) String() string {
	if c == List {
		return "list"
	}
	return "single"
}

// FieldSpec declares one schema field keyed by its raw label.
type FieldSpec struct {
	Label     string
	Kind      Kind
	Card      Cardinality
	Default   record.Value
	Mandatory bool
	// LinkType is the target object type for Link fields whose raw values
	// are bare object names. Empty means values must carry their own type.
	LinkType string
}

func Scalar(label string, kind Kind) FieldSpec {
	return FieldSpec{Label: label, Kind: kind, Card: Single}
}

func Vector(label string, kind Kind) FieldSpec {
	return FieldSpec{Label: label, Kind: kind, Card: List}
}

func ScalarLink(label, target string) FieldSpec {
	return FieldSpec{Label: label, Kind: Link, Card: Single, LinkType: target}
}

func VectorLink(label, target string) FieldSpec {
	return FieldSpec{Label: label, Kind: Link, Card: List, LinkType: target}
}

// Mixed declares a single field holding either a plain value or a
// reference to an object of type target.
func Mixed(label, target string) FieldSpec {
	return FieldSpec{Label: label, Kind: Any, Card: Single, LinkType: target}
}

func (f FieldSpec) Required() FieldSpec {
	f.Mandatory = true
	return f
}

func (f FieldSpec) WithDefault(v record.Value) FieldSpec {
	f.Default = v
	return f
}

// GroupSpec declares a fixed number of positional slots. Slot i reads its
// label from <Prefix>-<i>-<NameSuffix> and its value from
// <Prefix>-<i>-<ValueSuffix>; an unnamed slot is labelled <Prefix>-<i>.
type GroupSpec struct {
	Name        string
	Prefix      string
	Slots       int
	NameSuffix  string
	ValueSuffix string
	Kind        Kind
}

func (g GroupSpec) NameLabel(i int) string {
	return fmt.Sprintf("%s-%d-%s", g.Prefix, i, g.NameSuffix)
}

func (g GroupSpec) ValueLabel(i int) string {
	return fmt.Sprintf("%s-%d-%s", g.Prefix, i, g.ValueSuffix)
}

func (g GroupSpec) FallbackLabel(i int) string {
	return fmt.Sprintf("%s-%d", g.Prefix, i)
}

// Schema is the ordered field set of one object type.
type Schema struct {
	Type   string
	Fields []FieldSpec
	Groups []GroupSpec
}

// Field returns the spec for a raw label.
func (s *Schema) Field(label string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Label == label {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Knows reports whether label is consumed by a field or a group slot.
func (s *Schema) Knows(label string) bool {
	if _, ok := s.Field(label); ok {
		return true
	}
	for _, g := range s.Groups {
		for i := 1; i <= g.Slots; i++ {
			if label == g.NameLabel(i) || label == g.ValueLabel(i) {
				return true
			}
		}
	}
	return false
}

// InferSchema builds a schema for an object type nobody declared: every
// label of bag becomes a list field that keeps its raw values.
func InferSchema(typ string, bag record.Attic) *Schema {
	labels := make([]string, 0, len(bag))
	for label := range bag {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	s := &Schema{Type: typ, Fields: make([]FieldSpec, 0, len(labels))}
	for _, label := range labels {
		s.Fields = append(s.Fields, Vector(label, Any))
	}
	return s
}
