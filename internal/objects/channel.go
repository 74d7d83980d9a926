package objects

import (
	"slices"

	"github.com/danmuck/welllog/internal/attic"
	"github.com/danmuck/welllog/internal/record"
)

var axisSchema = &attic.Schema{
	Type: TypeAxis,
	Fields: []attic.FieldSpec{
		attic.Scalar("AXIS-ID", attic.Text),
		attic.Vector("COORDINATES", attic.Any),
		attic.Scalar("SPACING", attic.Any),
	},
}

// Axis describes the coordinate axis of an array-valued channel.
type Axis struct{ *Base }

func (a *Axis) AxisID() string              { return a.fields.Text("AXIS-ID") }
func (a *Axis) Coordinates() []record.Value { return a.fields.Values("COORDINATES") }
func (a *Axis) Spacing() record.Value       { return a.fields.Value("SPACING") }

var channelSchema = &attic.Schema{
	Type: TypeChannel,
	Fields: []attic.FieldSpec{
		attic.Scalar("LONG-NAME", attic.Text),
		attic.Vector("PROPERTIES", attic.Text),
		attic.Scalar("REPRESENTATION-CODE", attic.Int),
		attic.Scalar("UNITS", attic.Text),
		attic.Vector("DIMENSION", attic.Int),
		attic.VectorLink("AXIS", TypeAxis),
		attic.Vector("ELEMENT-LIMIT", attic.Int),
		attic.Scalar("SOURCE", attic.Link),
	},
}

// Channel is one recorded measurement.
type Channel struct{ *Base }

func (c *Channel) LongName() string        { return c.fields.Text("LONG-NAME") }
func (c *Channel) Properties() []string    { return c.fields.Texts("PROPERTIES") }
func (c *Channel) ReprCode() (int64, bool) { return c.fields.Int("REPRESENTATION-CODE") }
func (c *Channel) Units() string           { return c.fields.Text("UNITS") }
func (c *Channel) Dimension() []int64      { return c.fields.Ints("DIMENSION") }
func (c *Channel) ElementLimit() []int64   { return c.fields.Ints("ELEMENT-LIMIT") }
func (c *Channel) Axes() []*Axis           { return linked[*Axis](c.Base, "AXIS") }
func (c *Channel) Source() (Object, bool)  { return linkedOne[Object](c.Base, "SOURCE") }

// Frame returns the first frame listing this channel.
func (c *Channel) Frame() (*Frame, bool) {
	if c.owner == nil {
		return nil, false
	}
	for _, obj := range c.owner.ObjectsOf(TypeFrame) {
		frame, ok := obj.(*Frame)
		if ok && slices.Contains(frame.fields.Links("CHANNELS"), c.fp) {
			return frame, true
		}
	}
	return nil, false
}

var frameSchema = &attic.Schema{
	Type: TypeFrame,
	Fields: []attic.FieldSpec{
		attic.Scalar("DESCRIPTION", attic.Text),
		attic.VectorLink("CHANNELS", TypeChannel),
		attic.Scalar("INDEX-TYPE", attic.Text),
		attic.Scalar("DIRECTION", attic.Text),
		attic.Scalar("SPACING", attic.Any),
		attic.Scalar("ENCRYPTED", attic.Any),
		attic.Scalar("INDEX-MIN", attic.Any),
		attic.Scalar("INDEX-MAX", attic.Any),
	},
}

// Frame groups channels sampled together; its frame-data records are
// indexed by the logical file under the frame's fingerprint.
type Frame struct{ *Base }

func (f *Frame) Description() string    { return f.fields.Text("DESCRIPTION") }
func (f *Frame) IndexType() string      { return f.fields.Text("INDEX-TYPE") }
func (f *Frame) Direction() string      { return f.fields.Text("DIRECTION") }
func (f *Frame) Spacing() record.Value  { return f.fields.Value("SPACING") }
func (f *Frame) IndexMin() record.Value { return f.fields.Value("INDEX-MIN") }
func (f *Frame) IndexMax() record.Value { return f.fields.Value("INDEX-MAX") }
func (f *Frame) Channels() []*Channel   { return linked[*Channel](f.Base, "CHANNELS") }

// Encrypted reports whether the frame declares its data encrypted. The
// attribute is meaningful by presence alone.
func (f *Frame) Encrypted() bool {
	_, ok := f.bag["ENCRYPTED"]
	return ok
}

// ChannelNames lists the names of the frame's channels in declaration
// order, including channels missing from the logical file.
func (f *Frame) ChannelNames() []string {
	links := f.fields.Links("CHANNELS")
	out := make([]string, len(links))
	for i, fp := range links {
		out[i] = fp.Name()
	}
	return out
}

// Index returns the index channel, the first channel of a frame that
// declares an index type.
func (f *Frame) Index() (*Channel, bool) {
	if f.IndexType() == "" {
		return nil, false
	}
	channels := f.Channels()
	if len(channels) == 0 || channels[0].fp != f.fields.Links("CHANNELS")[0] {
		return nil, false
	}
	return channels[0], true
}

var pathSchema = &attic.Schema{
	Type: TypePath,
	Fields: []attic.FieldSpec{
		attic.ScalarLink("FRAME-TYPE", TypeFrame),
		attic.ScalarLink("WELL-REFERENCE-POINT", TypeWellref),
		attic.VectorLink("VALUE", TypeChannel),
		attic.Mixed("BOREHOLE-DEPTH", TypeChannel),
		attic.Mixed("VERTICAL-DEPTH", TypeChannel),
		attic.Mixed("RADIAL-DRIFT", TypeChannel),
		attic.Mixed("ANGULAR-DRIFT", TypeChannel),
		attic.Mixed("TIME", TypeChannel),
		attic.Scalar("DEPTH-OFFSET", attic.Float),
		attic.Scalar("MEASURE-POINT-OFFSET", attic.Float),
		attic.Scalar("TOOL-ZERO-OFFSET", attic.Float),
	},
}

// Path defines the channels of a frame type that make up a data path.
type Path struct{ *Base }

func (p *Path) Frame() (*Frame, bool)                { return linkedOne[*Frame](p.Base, "FRAME-TYPE") }
func (p *Path) WellReferencePoint() (*Wellref, bool) { return linkedOne[*Wellref](p.Base, "WELL-REFERENCE-POINT") }
func (p *Path) Value() []*Channel                    { return linked[*Channel](p.Base, "VALUE") }
func (p *Path) DepthOffset() (float64, bool)         { return p.fields.Float("DEPTH-OFFSET") }
func (p *Path) MeasurePointOffset() (float64, bool)  { return p.fields.Float("MEASURE-POINT-OFFSET") }
func (p *Path) ToolZeroOffset() (float64, bool)      { return p.fields.Float("TOOL-ZERO-OFFSET") }

// Coordinate reads one of BOREHOLE-DEPTH, VERTICAL-DEPTH, RADIAL-DRIFT,
// ANGULAR-DRIFT or TIME. The coordinate is either a constant value or a
// channel; the channel is nil when the value is constant or unresolved.
func (p *Path) Coordinate(label string) (record.Value, *Channel) {
	v := p.fields.Value(label)
	if v.Kind != record.KindRef {
		return v, nil
	}
	ch, _ := linkedOne[*Channel](p.Base, label)
	return v, ch
}
