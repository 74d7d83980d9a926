package objects

import (
	"github.com/danmuck/welllog/internal/attic"
	"github.com/danmuck/welllog/internal/record"
)

var fileHeaderSchema = &attic.Schema{
	Type: TypeFileHeader,
	Fields: []attic.FieldSpec{
		attic.Scalar("SEQUENCE-NUMBER", attic.Text).Required(),
		attic.Scalar("ID", attic.Text).Required(),
	},
}

// FileHeader opens a logical file.
type FileHeader struct{ *Base }

func (h *FileHeader) SequenceNumber() string { return h.fields.Text("SEQUENCE-NUMBER") }
func (h *FileHeader) ID() string             { return h.fields.Text("ID") }

var originSchema = &attic.Schema{
	Type: TypeOrigin,
	Fields: []attic.FieldSpec{
		attic.Scalar("FILE-ID", attic.Text),
		attic.Scalar("FILE-SET-NAME", attic.Text),
		attic.Scalar("FILE-SET-NUMBER", attic.Int),
		attic.Scalar("FILE-NUMBER", attic.Int),
		attic.Scalar("FILE-TYPE", attic.Text),
		attic.Scalar("PRODUCT", attic.Text),
		attic.Scalar("VERSION", attic.Text),
		attic.Vector("PROGRAMS", attic.Text),
		attic.Scalar("CREATION-TIME", attic.Any),
		attic.Scalar("ORDER-NUMBER", attic.Text),
		attic.Vector("DESCENT-NUMBER", attic.Any),
		attic.Vector("RUN-NUMBER", attic.Any),
		attic.Scalar("WELL-ID", attic.Any),
		attic.Scalar("WELL-NAME", attic.Text),
		attic.Scalar("FIELD-NAME", attic.Text),
		attic.Scalar("PRODUCER-CODE", attic.Int),
		attic.Scalar("PRODUCER-NAME", attic.Text),
		attic.Scalar("COMPANY", attic.Text),
		attic.Scalar("NAME-SPACE-NAME", attic.Text),
		attic.Scalar("NAME-SPACE-VERSION", attic.Int),
	},
}

// Origin describes where and how the data in a logical file was produced.
type Origin struct{ *Base }

func (o *Origin) FileID() string               { return o.fields.Text("FILE-ID") }
func (o *Origin) FileSetName() string          { return o.fields.Text("FILE-SET-NAME") }
func (o *Origin) FileSetNumber() (int64, bool) { return o.fields.Int("FILE-SET-NUMBER") }
func (o *Origin) FileNumber() (int64, bool)    { return o.fields.Int("FILE-NUMBER") }
func (o *Origin) FileType() string             { return o.fields.Text("FILE-TYPE") }
func (o *Origin) Product() string              { return o.fields.Text("PRODUCT") }
func (o *Origin) Version() string              { return o.fields.Text("VERSION") }
func (o *Origin) Programs() []string           { return o.fields.Texts("PROGRAMS") }
func (o *Origin) CreationTime() record.Value   { return o.fields.Value("CREATION-TIME") }
func (o *Origin) WellID() record.Value         { return o.fields.Value("WELL-ID") }
func (o *Origin) WellName() string             { return o.fields.Text("WELL-NAME") }
func (o *Origin) FieldName() string            { return o.fields.Text("FIELD-NAME") }
func (o *Origin) ProducerName() string         { return o.fields.Text("PRODUCER-NAME") }
func (o *Origin) Company() string              { return o.fields.Text("COMPANY") }
