package objects

import (
	"github.com/danmuck/welllog/internal/attic"
	"github.com/danmuck/welllog/internal/record"
)

var computationSchema = &attic.Schema{
	Type: TypeComputation,
	Fields: []attic.FieldSpec{
		attic.Scalar("LONG-NAME", attic.Text),
		attic.Vector("PROPERTIES", attic.Text),
		attic.Vector("DIMENSION", attic.Int),
		attic.VectorLink("AXIS", TypeAxis),
		attic.VectorLink("ZONES", TypeZone),
		attic.Vector("VALUES", attic.Any),
		attic.Scalar("SOURCE", attic.Link),
	},
}

// Computation is a value computed by a process, optionally zoned.
type Computation struct{ *Base }

func (c *Computation) LongName() string       { return c.fields.Text("LONG-NAME") }
func (c *Computation) Properties() []string   { return c.fields.Texts("PROPERTIES") }
func (c *Computation) Dimension() []int64     { return c.fields.Ints("DIMENSION") }
func (c *Computation) Values() []record.Value { return c.fields.Values("VALUES") }
func (c *Computation) Axes() []*Axis          { return linked[*Axis](c.Base, "AXIS") }
func (c *Computation) Zones() []*Zone         { return linked[*Zone](c.Base, "ZONES") }
func (c *Computation) Source() (Object, bool) { return linkedOne[Object](c.Base, "SOURCE") }

var processSchema = &attic.Schema{
	Type: TypeProcess,
	Fields: []attic.FieldSpec{
		attic.Scalar("DESCRIPTION", attic.Text),
		attic.Scalar("TRADEMARK-NAME", attic.Text),
		attic.Scalar("VERSION", attic.Text),
		attic.Vector("PROPERTIES", attic.Text),
		attic.Scalar("STATUS", attic.Text),
		attic.VectorLink("INPUT-CHANNELS", TypeChannel),
		attic.VectorLink("OUTPUT-CHANNELS", TypeChannel),
		attic.VectorLink("INPUT-COMPUTATIONS", TypeComputation),
		attic.VectorLink("OUTPUT-COMPUTATIONS", TypeComputation),
		attic.VectorLink("PARAMETERS", TypeParameter),
		attic.Scalar("COMMENTS", attic.Text),
	},
}

// Process records how channels and computations were derived.
type Process struct{ *Base }

func (p *Process) Description() string   { return p.fields.Text("DESCRIPTION") }
func (p *Process) TrademarkName() string { return p.fields.Text("TRADEMARK-NAME") }
func (p *Process) Version() string       { return p.fields.Text("VERSION") }
func (p *Process) Properties() []string  { return p.fields.Texts("PROPERTIES") }
func (p *Process) Status() string        { return p.fields.Text("STATUS") }
func (p *Process) Comments() string      { return p.fields.Text("COMMENTS") }

func (p *Process) InputChannels() []*Channel {
	return linked[*Channel](p.Base, "INPUT-CHANNELS")
}

func (p *Process) OutputChannels() []*Channel {
	return linked[*Channel](p.Base, "OUTPUT-CHANNELS")
}

func (p *Process) InputComputations() []*Computation {
	return linked[*Computation](p.Base, "INPUT-COMPUTATIONS")
}

func (p *Process) OutputComputations() []*Computation {
	return linked[*Computation](p.Base, "OUTPUT-COMPUTATIONS")
}

func (p *Process) Parameters() []*Parameter {
	return linked[*Parameter](p.Base, "PARAMETERS")
}

var spliceSchema = &attic.Schema{
	Type: TypeSplice,
	Fields: []attic.FieldSpec{
		attic.ScalarLink("OUTPUT-CHANNEL", TypeChannel),
		attic.VectorLink("INPUT-CHANNELS", TypeChannel),
		attic.VectorLink("ZONES", TypeZone),
	},
}

// Splice joins input channels over zones into one output channel.
type Splice struct{ *Base }

func (s *Splice) InputChannels() []*Channel { return linked[*Channel](s.Base, "INPUT-CHANNELS") }
func (s *Splice) Zones() []*Zone            { return linked[*Zone](s.Base, "ZONES") }

func (s *Splice) OutputChannel() (*Channel, bool) {
	return linkedOne[*Channel](s.Base, "OUTPUT-CHANNEL")
}
