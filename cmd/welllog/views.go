package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/danmuck/welllog/internal/attic"
	"github.com/danmuck/welllog/internal/curves"
	"github.com/danmuck/welllog/internal/logical"
	"github.com/danmuck/welllog/internal/objects"
	"github.com/danmuck/welllog/internal/record"
)

type objectRow struct {
	File           int `yaml:"file"`
	objects.Header `yaml:",inline"`
	Discrepancies  int `yaml:"discrepancies,omitempty"`
}

type fieldView struct {
	Label  string         `yaml:"label"`
	Values []record.Value `yaml:"values,omitempty"`
	Linked []string       `yaml:"linked,omitempty"`
}

type slotView struct {
	Label string       `yaml:"label"`
	Value record.Value `yaml:"value"`
}

type objectView struct {
	File           int `yaml:"file"`
	objects.Header `yaml:",inline"`
	Fields         []fieldView           `yaml:"fields"`
	Groups         map[string][]slotView `yaml:"groups,omitempty"`
	Unknown        []string              `yaml:"unknown,omitempty"`
	Discrepancies  []string              `yaml:"discrepancies,omitempty"`
}

func describeObject(lf *logical.LogicalFile, obj objects.Object, withDiscrepancies bool) objectView {
	res := obj.Fields()
	view := objectView{File: lf.Seq(), Header: obj.Header(), Unknown: res.Unknown()}
	for _, f := range res.Fields() {
		if !f.Present {
			continue
		}
		fv := fieldView{Label: f.Label, Values: f.Values}
		if len(f.Links) > 0 {
			for _, linked := range obj.Linked(f.Label) {
				fv.Linked = append(fv.Linked, linked.Header().String())
			}
		}
		view.Fields = append(view.Fields, fv)
	}
	for _, name := range res.GroupNames() {
		if view.Groups == nil {
			view.Groups = make(map[string][]slotView)
		}
		for _, s := range res.Group(name) {
			view.Groups[name] = append(view.Groups[name], slotView{Label: s.Label, Value: s.Value})
		}
	}
	if withDiscrepancies {
		for _, d := range obj.Discrepancies() {
			view.Discrepancies = append(view.Discrepancies, d.Error())
		}
	}
	return view
}

func writeObjectText(w io.Writer, v objectView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tfile %d\n", v.Header, v.File)
	for _, f := range v.Fields {
		values := make([]string, len(f.Values))
		for i, val := range f.Values {
			values[i] = val.String()
		}
		line := strings.Join(values, ", ")
		if len(f.Linked) > 0 {
			line += " -> " + strings.Join(f.Linked, ", ")
		}
		fmt.Fprintf(tw, "  %s\t%s\n", f.Label, line)
	}
	for name, slots := range v.Groups {
		for _, s := range slots {
			fmt.Fprintf(tw, "  %s.%s\t%s\n", name, s.Label, s.Value)
		}
	}
	for _, label := range v.Unknown {
		fmt.Fprintf(tw, "  %s\t(unknown label)\n", label)
	}
	for _, d := range v.Discrepancies {
		fmt.Fprintf(tw, "  !\t%s\n", d)
	}
	return tw.Flush()
}

type curvesOut struct {
	Frame   string                      `yaml:"frame"`
	Rows    int                         `yaml:"rows"`
	Numbers []int64                     `yaml:"frame_numbers"`
	Columns map[string][][]record.Value `yaml:"columns"`
}

func curvesView(c *curves.Curves, names []string) curvesOut {
	out := curvesOut{
		Frame:   c.Frame().String(),
		Rows:    c.Len(),
		Numbers: c.FrameNumbers(),
		Columns: make(map[string][][]record.Value, len(names)),
	}
	for _, name := range names {
		if col := c.Column(name); col != nil {
			out.Columns[name] = col
		}
	}
	return out
}

func writeCurvesText(w io.Writer, c *curves.Curves, names []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ROW\tFRAME#\t%s\n", strings.Join(names, "\t"))
	numbers := c.FrameNumbers()
	for i := 0; i < c.Len(); i++ {
		row := c.Row(i)
		cells := make([]string, len(names))
		for j, name := range names {
			cells[j] = samples(row[name])
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\n", i, numbers[i], strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func samples(vs []record.Value) string {
	if len(vs) == 1 {
		return vs[0].String()
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

type fieldSpecView struct {
	Label     string `yaml:"label"`
	Kind      string `yaml:"kind"`
	List      bool   `yaml:"list,omitempty"`
	Mandatory bool   `yaml:"mandatory,omitempty"`
	Target    string `yaml:"target,omitempty"`
}

type schemaView struct {
	Type   string          `yaml:"type"`
	Fields []fieldSpecView `yaml:"fields"`
	Groups []string        `yaml:"groups,omitempty"`
}

func newSchemaView(s *attic.Schema) schemaView {
	view := schemaView{Type: s.Type}
	for _, f := range s.Fields {
		view.Fields = append(view.Fields, fieldSpecView{
			Label:     f.Label,
			Kind:      f.Kind.String(),
			List:      f.Card == attic.List,
			Mandatory: f.Mandatory,
			Target:    f.LinkType,
		})
	}
	for _, g := range s.Groups {
		view.Groups = append(view.Groups, fmt.Sprintf("%s (%d x %s-<i>-%s/%s)", g.Name, g.Slots, g.Prefix, g.NameSuffix, g.ValueSuffix))
	}
	return view
}
