package objects

import (
	"github.com/danmuck/welllog/internal/attic"
	"github.com/danmuck/welllog/internal/fingerprint"
	"github.com/danmuck/welllog/internal/record"
)

var zoneSchema = &attic.Schema{
	Type: TypeZone,
	Fields: []attic.FieldSpec{
		attic.Scalar("DESCRIPTION", attic.Text),
		attic.Scalar("DOMAIN", attic.Text),
		attic.Scalar("MAXIMUM", attic.Any),
		attic.Scalar("MINIMUM", attic.Any),
	},
}

// Zone is an interval in depth, time or vertical depth.
type Zone struct{ *Base }

func (z *Zone) Description() string   { return z.fields.Text("DESCRIPTION") }
func (z *Zone) Domain() string        { return z.fields.Text("DOMAIN") }
func (z *Zone) Maximum() record.Value { return z.fields.Value("MAXIMUM") }
func (z *Zone) Minimum() record.Value { return z.fields.Value("MINIMUM") }

var groupSchema = &attic.Schema{
	Type: TypeGroup,
	Fields: []attic.FieldSpec{
		attic.Scalar("DESCRIPTION", attic.Text),
		attic.Scalar("OBJECT-TYPE", attic.Text),
		attic.Vector("OBJECT-LIST", attic.Any),
		attic.VectorLink("GROUP-LIST", TypeGroup),
	},
}

// Group collects objects of one type, and other groups.
type Group struct{ *Base }

func (g *Group) Description() string { return g.fields.Text("DESCRIPTION") }
func (g *Group) ObjectType() string  { return g.fields.Text("OBJECT-TYPE") }
func (g *Group) Groups() []*Group    { return linked[*Group](g.Base, "GROUP-LIST") }

// Objects resolves OBJECT-LIST. Members carrying their own type keep it;
// bare names take the group's OBJECT-TYPE and are skipped when the group
// declares none.
func (g *Group) Objects() []Object {
	typ := g.ObjectType()
	var fps []fingerprint.Fingerprint
	for _, v := range g.fields.Values("OBJECT-LIST") {
		if v.Kind != record.KindRef {
			continue
		}
		refType := v.Ref.Type
		if refType == "" {
			refType = typ
		}
		if refType == "" {
			continue
		}
		fps = append(fps, fingerprint.Of(refType, v.Ref.Name, v.Ref.Origin, v.Ref.Copy))
	}
	return g.resolve("OBJECT-LIST", fps)
}

var messageSchema = &attic.Schema{
	Type: TypeMessage,
	Fields: []attic.FieldSpec{
		attic.Scalar("TYPE", attic.Text),
		attic.Scalar("TIME", attic.Any),
		attic.Scalar("BOREHOLE-DRIFT", attic.Float),
		attic.Scalar("VERTICAL-DEPTH", attic.Float),
		attic.Scalar("RADIAL-DRIFT", attic.Float),
		attic.Scalar("ANGULAR-DRIFT", attic.Float),
		attic.Vector("TEXT", attic.Text),
	},
}

type Message struct{ *Base }

func (m *Message) Kind() string       { return m.fields.Text("TYPE") }
func (m *Message) Time() record.Value { return m.fields.Value("TIME") }
func (m *Message) Text() []string     { return m.fields.Texts("TEXT") }

var commentSchema = &attic.Schema{
	Type: TypeComment,
	Fields: []attic.FieldSpec{
		attic.Vector("TEXT", attic.Text),
	},
}

type Comment struct{ *Base }

func (c *Comment) Text() []string { return c.fields.Texts("TEXT") }

var noFormatSchema = &attic.Schema{
	Type: TypeNoFormat,
	Fields: []attic.FieldSpec{
		attic.Scalar("CONSUMER-NAME", attic.Text),
		attic.Scalar("DESCRIPTION", attic.Text),
	},
}

// NoFormat describes unformatted data carried alongside the logical file.
type NoFormat struct{ *Base }

func (n *NoFormat) ConsumerName() string { return n.fields.Text("CONSUMER-NAME") }
func (n *NoFormat) Description() string  { return n.fields.Text("DESCRIPTION") }
