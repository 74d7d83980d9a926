package objects

import (
	"github.com/danmuck/welllog/internal/attic"
	"github.com/danmuck/welllog/internal/record"
)

const coordinatesGroup = "COORDINATES"

var wellrefSchema = &attic.Schema{
	Type: TypeWellref,
	Fields: []attic.FieldSpec{
		attic.Scalar("PERMANENT-DATUM", attic.Text),
		attic.Scalar("VERTICAL-ZERO", attic.Text),
		attic.Scalar("PERMANENT-DATUM-ELEVATION", attic.Float),
		attic.Scalar("ABOVE-PERMANENT-DATUM", attic.Float),
		attic.Scalar("MAGNETIC-DECLINATION", attic.Float),
	},
	Groups: []attic.GroupSpec{{
		Name:        coordinatesGroup,
		Prefix:      "COORDINATE",
		Slots:       3,
		NameSuffix:  "NAME",
		ValueSuffix: "VALUE",
		Kind:        attic.Any,
	}},
}

// Wellref is the well reference point that depths are measured from.
type Wellref struct{ *Base }

func (w *Wellref) PermanentDatum() string                   { return w.fields.Text("PERMANENT-DATUM") }
func (w *Wellref) VerticalZero() string                     { return w.fields.Text("VERTICAL-ZERO") }
func (w *Wellref) PermanentDatumElevation() (float64, bool) { return w.fields.Float("PERMANENT-DATUM-ELEVATION") }
func (w *Wellref) AbovePermanentDatum() (float64, bool)     { return w.fields.Float("ABOVE-PERMANENT-DATUM") }
func (w *Wellref) MagneticDeclination() (float64, bool)     { return w.fields.Float("MAGNETIC-DECLINATION") }

// Coordinates returns the three coordinate slots in positional order.
// Unnamed slots are labelled COORDINATE-<i>.
func (w *Wellref) Coordinates() []attic.Slot {
	return w.fields.Group(coordinatesGroup)
}

// CoordinateMap keys coordinate values by name. A name repeated in two
// slots keeps the later value.
func (w *Wellref) CoordinateMap() map[string]record.Value {
	return w.fields.GroupMap(coordinatesGroup)
}
