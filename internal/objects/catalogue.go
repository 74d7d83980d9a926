package objects

import (
	"sort"

	"github.com/danmuck/welllog/internal/attic"
	"github.com/danmuck/welllog/internal/record"
)

type variant struct {
	schema *attic.Schema
	build  func(*Base) Object
}

var catalogue = map[string]variant{
	TypeFileHeader:             {fileHeaderSchema, func(b *Base) Object { return &FileHeader{b} }},
	TypeOrigin:                 {originSchema, func(b *Base) Object { return &Origin{b} }},
	TypeAxis:                   {axisSchema, func(b *Base) Object { return &Axis{b} }},
	TypeChannel:                {channelSchema, func(b *Base) Object { return &Channel{b} }},
	TypeFrame:                  {frameSchema, func(b *Base) Object { return &Frame{b} }},
	TypePath:                   {pathSchema, func(b *Base) Object { return &Path{b} }},
	TypeWellref:                {wellrefSchema, func(b *Base) Object { return &Wellref{b} }},
	TypeTool:                   {toolSchema, func(b *Base) Object { return &Tool{b} }},
	TypeParameter:              {parameterSchema, func(b *Base) Object { return &Parameter{b} }},
	TypeEquipment:              {equipmentSchema, func(b *Base) Object { return &Equipment{b} }},
	TypeZone:                   {zoneSchema, func(b *Base) Object { return &Zone{b} }},
	TypeCalibration:            {calibrationSchema, func(b *Base) Object { return &Calibration{b} }},
	TypeCalibrationCoefficient: {coefficientSchema, func(b *Base) Object { return &CalibrationCoefficient{b} }},
	TypeCalibrationMeasurement: {measurementSchema, func(b *Base) Object { return &CalibrationMeasurement{b} }},
	TypeComputation:            {computationSchema, func(b *Base) Object { return &Computation{b} }},
	TypeProcess:                {processSchema, func(b *Base) Object { return &Process{b} }},
	TypeSplice:                 {spliceSchema, func(b *Base) Object { return &Splice{b} }},
	TypeGroup:                  {groupSchema, func(b *Base) Object { return &Group{b} }},
	TypeMessage:                {messageSchema, func(b *Base) Object { return &Message{b} }},
	TypeComment:                {commentSchema, func(b *Base) Object { return &Comment{b} }},
	TypeNoFormat:               {noFormatSchema, func(b *Base) Object { return &NoFormat{b} }},
}

// Build materializes one object from its raw bag. Registered types become
// *Custom; any other type outside the catalogue becomes *Unknown with a
// schema inferred from the bag. owner may be nil, in which case every link
// is unresolved.
func Build(h Header, bag record.Attic, owner Resolver) Object {
	v, ok := catalogue[h.Type]
	if !ok {
		v = variant{schema: attic.InferSchema(h.Type, bag), build: func(b *Base) Object { return &Unknown{b} }}
		if s, ok := registeredSchema(h.Type); ok {
			v = variant{schema: s, build: func(b *Base) Object { return &Custom{b} }}
		}
	}
	b := &Base{
		header: h,
		fp:     h.Fingerprint(),
		bag:    bag,
		owner:  owner,
		fields: attic.Load(v.schema, h.String(), bag),
	}
	return v.build(b)
}

// SchemaFor returns the built-in or registered schema of typ.
func SchemaFor(typ string) (*attic.Schema, bool) {
	if v, ok := catalogue[typ]; ok {
		return v.schema, true
	}
	return registeredSchema(typ)
}

// Types lists the object types with a declared schema, sorted.
func Types() []string {
	out := make([]string, 0, len(catalogue))
	for typ := range catalogue {
		out = append(out, typ)
	}
	sort.Strings(out)
	return out
}
