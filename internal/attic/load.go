package attic

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/danmuck/welllog/internal/fingerprint"
	"github.com/danmuck/welllog/internal/record"
	"github.com/rs/zerolog/log"
)

// Load coerces bag against schema. object names the owner in discrepancy
// records and may be empty.
func Load(schema *Schema, object string, bag record.Attic) *Result {
	l := loader{object: object}
	res := &Result{
		Type:   schema.Type,
		fields: make(map[string]*Field, len(schema.Fields)),
		groups: make(map[string][]Slot, len(schema.Groups)),
	}

	for _, spec := range schema.Fields {
		res.fields[spec.Label] = l.field(spec, bag[spec.Label])
		res.order = append(res.order, spec.Label)
	}
	for _, g := range schema.Groups {
		res.groups[g.Name] = l.group(g, bag)
		res.groupOrder = append(res.groupOrder, g.Name)
	}
	for label := range bag {
		if !schema.Knows(label) {
			res.unknown = append(res.unknown, label)
		}
	}
	sort.Strings(res.unknown)

	res.discrepancies = l.discrepancies
	for _, d := range l.discrepancies {
		log.Debug().Msgf("attic.Load type=%s %v", schema.Type, d)
	}
	return res
}

type loader struct {
	object        string
	discrepancies []Discrepancy
}

func (l *loader) record(d Discrepancy) {
	d.Object = l.object
	l.discrepancies = append(l.discrepancies, d)
}

func (l *loader) field(spec FieldSpec, raw []record.Value) *Field {
	f := &Field{Label: spec.Label, Kind: spec.Kind, Card: spec.Card}
	if len(raw) == 0 {
		if spec.Mandatory {
			l.record(Discrepancy{Kind: MissingAttribute, Label: spec.Label})
		}
		if spec.Card == Single {
			f.Values = []record.Value{spec.Default}
		}
		return f
	}

	f.Present = true
	if spec.Card == Single {
		if len(raw) > 1 {
			l.record(Discrepancy{
				Kind:     CardinalityMismatch,
				Label:    spec.Label,
				Expected: "1",
				Observed: strconv.Itoa(len(raw)),
			})
		}
		raw = raw[:1]
	}

	f.Values = make([]record.Value, 0, len(raw))
	for i, v := range raw {
		detail := ""
		if spec.Card == List {
			detail = "element " + strconv.Itoa(i)
		}
		out := l.coerce(spec.Label, spec.Kind, spec.Default, v, detail)
		f.Values = append(f.Values, out)
		if out.Kind == record.KindRef && (spec.Kind == Link || spec.LinkType != "") {
			if fp, ok := l.link(spec, out.Ref, detail); ok {
				f.Links = append(f.Links, fp)
			}
		}
	}
	return f
}

func (l *loader) coerce(label string, kind Kind, def, v record.Value, detail string) record.Value {
	if v.IsNone() {
		return def
	}
	conv, ok := coercions[kind]
	if !ok {
		conv = asAny
	}
	out, exact, ok := conv(v)
	if !exact {
		l.record(Discrepancy{
			Kind:     TypeMismatch,
			Label:    label,
			Expected: kind.String(),
			Observed: fmt.Sprintf("%s %q", v.Kind, v.String()),
			Detail:   detail,
		})
	}
	if !ok {
		return def
	}
	return out
}

func (l *loader) link(spec FieldSpec, ref record.Ref, detail string) (fingerprint.Fingerprint, bool) {
	typ := ref.Type
	if typ == "" {
		typ = spec.LinkType
	}
	if typ == "" {
		l.record(Discrepancy{
			Kind:     TypeMismatch,
			Label:    spec.Label,
			Expected: "typed object reference",
			Observed: "bare object name " + ref.String(),
			Detail:   detail,
		})
		return "", false
	}
	return fingerprint.Of(typ, ref.Name, ref.Origin, ref.Copy), true
}

func (l *loader) group(g GroupSpec, bag record.Attic) []Slot {
	slots := make([]Slot, 0, g.Slots)
	for i := 1; i <= g.Slots; i++ {
		slot := Slot{Label: g.FallbackLabel(i)}
		if names := bag[g.NameLabel(i)]; len(names) > 0 {
			first := l.first(g.NameLabel(i), names)
			if name := l.coerce(g.NameLabel(i), Text, record.None(), first, ""); name.Kind == record.KindText {
				slot.Label = name.Text
				slot.Named = true
			}
		}
		if values := bag[g.ValueLabel(i)]; len(values) > 0 {
			first := l.first(g.ValueLabel(i), values)
			slot.Value = l.coerce(g.ValueLabel(i), g.Kind, record.None(), first, "")
		}
		slots = append(slots, slot)
	}
	return slots
}

func (l *loader) first(label string, values []record.Value) record.Value {
	if len(values) > 1 {
		l.record(Discrepancy{
			Kind:     CardinalityMismatch,
			Label:    label,
			Expected: "1",
			Observed: strconv.Itoa(len(values)),
		})
	}
	return values[0]
}
