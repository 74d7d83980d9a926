package objects

import (
	"github.com/danmuck/welllog/internal/attic"
	"github.com/danmuck/welllog/internal/record"
)

var calibrationSchema = &attic.Schema{
	Type: TypeCalibration,
	Fields: []attic.FieldSpec{
		attic.VectorLink("CALIBRATED-CHANNELS", TypeChannel),
		attic.VectorLink("UNCALIBRATED-CHANNELS", TypeChannel),
		attic.VectorLink("COEFFICIENTS", TypeCalibrationCoefficient),
		attic.VectorLink("MEASUREMENTS", TypeCalibrationMeasurement),
		attic.VectorLink("PARAMETERS", TypeParameter),
		attic.Vector("METHOD", attic.Text),
	},
}

type Calibration struct{ *Base }

func (c *Calibration) Method() []string { return c.fields.Texts("METHOD") }

func (c *Calibration) CalibratedChannels() []*Channel {
	return linked[*Channel](c.Base, "CALIBRATED-CHANNELS")
}

func (c *Calibration) UncalibratedChannels() []*Channel {
	return linked[*Channel](c.Base, "UNCALIBRATED-CHANNELS")
}

func (c *Calibration) Coefficients() []*CalibrationCoefficient {
	return linked[*CalibrationCoefficient](c.Base, "COEFFICIENTS")
}

func (c *Calibration) Measurements() []*CalibrationMeasurement {
	return linked[*CalibrationMeasurement](c.Base, "MEASUREMENTS")
}

func (c *Calibration) Parameters() []*Parameter {
	return linked[*Parameter](c.Base, "PARAMETERS")
}

var coefficientSchema = &attic.Schema{
	Type: TypeCalibrationCoefficient,
	Fields: []attic.FieldSpec{
		attic.Scalar("LABEL", attic.Text),
		attic.Vector("COEFFICIENTS", attic.Float),
		attic.Vector("REFERENCES", attic.Float),
		attic.Vector("PLUS-TOLERANCES", attic.Float),
		attic.Vector("MINUS-TOLERANCES", attic.Float),
	},
}

type CalibrationCoefficient struct{ *Base }

func (c *CalibrationCoefficient) Label() string              { return c.fields.Text("LABEL") }
func (c *CalibrationCoefficient) Coefficients() []float64    { return c.fields.Floats("COEFFICIENTS") }
func (c *CalibrationCoefficient) References() []float64      { return c.fields.Floats("REFERENCES") }
func (c *CalibrationCoefficient) PlusTolerances() []float64  { return c.fields.Floats("PLUS-TOLERANCES") }
func (c *CalibrationCoefficient) MinusTolerances() []float64 { return c.fields.Floats("MINUS-TOLERANCES") }

var measurementSchema = &attic.Schema{
	Type: TypeCalibrationMeasurement,
	Fields: []attic.FieldSpec{
		attic.Scalar("PHASE", attic.Text),
		attic.ScalarLink("MEASUREMENT-SOURCE", TypeChannel),
		attic.Scalar("MEASUREMENT-TYPE", attic.Text),
		attic.Vector("DIMENSION", attic.Int),
		attic.VectorLink("AXIS", TypeAxis),
		attic.Vector("MEASUREMENT", attic.Any),
		attic.Vector("SAMPLE-COUNT", attic.Int),
		attic.Vector("MAXIMUM-DEVIATION", attic.Float),
		attic.Vector("STANDARD-DEVIATION", attic.Float),
		attic.Scalar("BEGIN-TIME", attic.Any),
		attic.Scalar("DURATION", attic.Float),
		attic.Vector("REFERENCE", attic.Any),
		attic.Vector("STANDARD", attic.Any),
		attic.Vector("PLUS-TOLERANCE", attic.Float),
		attic.Vector("MINUS-TOLERANCE", attic.Float),
	},
}

type CalibrationMeasurement struct{ *Base }

func (m *CalibrationMeasurement) Phase() string             { return m.fields.Text("PHASE") }
func (m *CalibrationMeasurement) MeasurementType() string   { return m.fields.Text("MEASUREMENT-TYPE") }
func (m *CalibrationMeasurement) Dimension() []int64        { return m.fields.Ints("DIMENSION") }
func (m *CalibrationMeasurement) Samples() []record.Value   { return m.fields.Values("MEASUREMENT") }
func (m *CalibrationMeasurement) SampleCount() []int64      { return m.fields.Ints("SAMPLE-COUNT") }
func (m *CalibrationMeasurement) Duration() (float64, bool) { return m.fields.Float("DURATION") }
func (m *CalibrationMeasurement) Axes() []*Axis             { return linked[*Axis](m.Base, "AXIS") }

func (m *CalibrationMeasurement) Source() (*Channel, bool) {
	return linkedOne[*Channel](m.Base, "MEASUREMENT-SOURCE")
}
