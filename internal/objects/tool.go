package objects

import (
	"github.com/danmuck/welllog/internal/attic"
	"github.com/danmuck/welllog/internal/record"
)

var toolSchema = &attic.Schema{
	Type: TypeTool,
	Fields: []attic.FieldSpec{
		attic.Scalar("DESCRIPTION", attic.Text),
		attic.Vector("TRADEMARK-NAME", attic.Text),
		attic.Vector("GENERIC-NAME", attic.Text),
		attic.VectorLink("PARTS", TypeEquipment),
		attic.Scalar("STATUS", attic.Bool),
		attic.VectorLink("CHANNELS", TypeChannel),
		attic.VectorLink("PARAMETERS", TypeParameter),
	},
}

// Tool is a logging tool assembled from equipment.
type Tool struct{ *Base }

func (t *Tool) Description() string      { return t.fields.Text("DESCRIPTION") }
func (t *Tool) TrademarkName() []string  { return t.fields.Texts("TRADEMARK-NAME") }
func (t *Tool) GenericName() []string    { return t.fields.Texts("GENERIC-NAME") }
func (t *Tool) Status() (bool, bool)     { return t.fields.Bool("STATUS") }
func (t *Tool) Parts() []*Equipment      { return linked[*Equipment](t.Base, "PARTS") }
func (t *Tool) Channels() []*Channel     { return linked[*Channel](t.Base, "CHANNELS") }
func (t *Tool) Parameters() []*Parameter { return linked[*Parameter](t.Base, "PARAMETERS") }

var equipmentSchema = &attic.Schema{
	Type: TypeEquipment,
	Fields: []attic.FieldSpec{
		attic.Scalar("TRADEMARK-NAME", attic.Text),
		attic.Scalar("STATUS", attic.Bool),
		attic.Scalar("GENERIC-TYPE", attic.Text),
		attic.Scalar("SERIAL-NUMBER", attic.Text),
		attic.Scalar("LOCATION", attic.Text),
		attic.Scalar("HEIGHT", attic.Float),
		attic.Scalar("LENGTH", attic.Float),
		attic.Scalar("MINIMUM-DIAMETER", attic.Float),
		attic.Scalar("MAXIMUM-DIAMETER", attic.Float),
		attic.Scalar("VOLUME", attic.Float),
		attic.Scalar("WEIGHT", attic.Float),
		attic.Scalar("HOLE-SIZE", attic.Float),
		attic.Scalar("PRESSURE", attic.Float),
		attic.Scalar("TEMPERATURE", attic.Float),
		attic.Scalar("VERTICAL-DEPTH", attic.Float),
		attic.Scalar("RADIAL-DRIFT", attic.Float),
		attic.Scalar("ANGULAR-DRIFT", attic.Float),
	},
}

// Equipment is one physical piece of a tool string.
type Equipment struct{ *Base }

func (e *Equipment) TrademarkName() string   { return e.fields.Text("TRADEMARK-NAME") }
func (e *Equipment) Status() (bool, bool)    { return e.fields.Bool("STATUS") }
func (e *Equipment) GenericType() string     { return e.fields.Text("GENERIC-TYPE") }
func (e *Equipment) SerialNumber() string    { return e.fields.Text("SERIAL-NUMBER") }
func (e *Equipment) Location() string        { return e.fields.Text("LOCATION") }
func (e *Equipment) Length() (float64, bool) { return e.fields.Float("LENGTH") }
func (e *Equipment) Weight() (float64, bool) { return e.fields.Float("WEIGHT") }

var parameterSchema = &attic.Schema{
	Type: TypeParameter,
	Fields: []attic.FieldSpec{
		attic.Scalar("LONG-NAME", attic.Text),
		attic.Vector("DIMENSION", attic.Int),
		attic.VectorLink("AXIS", TypeAxis),
		attic.VectorLink("ZONES", TypeZone),
		attic.Vector("VALUES", attic.Any),
	},
}

// Parameter is a constant, optionally zoned, used by a tool or computation.
type Parameter struct{ *Base }

func (p *Parameter) LongName() string       { return p.fields.Text("LONG-NAME") }
func (p *Parameter) Dimension() []int64     { return p.fields.Ints("DIMENSION") }
func (p *Parameter) Axes() []*Axis          { return linked[*Axis](p.Base, "AXIS") }
func (p *Parameter) Zones() []*Zone         { return linked[*Zone](p.Base, "ZONES") }
func (p *Parameter) Values() []record.Value { return p.fields.Values("VALUES") }
