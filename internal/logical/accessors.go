package logical

import "github.com/danmuck/welllog/internal/objects"

func typed[T objects.Object](lf *LogicalFile, typ string) []T {
	objs := lf.ObjectsOf(typ)
	out := make([]T, 0, len(objs))
	for _, obj := range objs {
		if v, ok := obj.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// FileHeader returns the header that opened the file. The first file of a
// stream may have none.
func (lf *LogicalFile) FileHeader() (*objects.FileHeader, bool) {
	headers := typed[*objects.FileHeader](lf, objects.TypeFileHeader)
	if len(headers) == 0 {
		return nil, false
	}
	return headers[0], true
}

func (lf *LogicalFile) Origins() []*objects.Origin       { return typed[*objects.Origin](lf, objects.TypeOrigin) }
func (lf *LogicalFile) Axes() []*objects.Axis            { return typed[*objects.Axis](lf, objects.TypeAxis) }
func (lf *LogicalFile) Channels() []*objects.Channel     { return typed[*objects.Channel](lf, objects.TypeChannel) }
func (lf *LogicalFile) Frames() []*objects.Frame         { return typed[*objects.Frame](lf, objects.TypeFrame) }
func (lf *LogicalFile) Paths() []*objects.Path           { return typed[*objects.Path](lf, objects.TypePath) }
func (lf *LogicalFile) Wellrefs() []*objects.Wellref     { return typed[*objects.Wellref](lf, objects.TypeWellref) }
func (lf *LogicalFile) Tools() []*objects.Tool           { return typed[*objects.Tool](lf, objects.TypeTool) }
func (lf *LogicalFile) Parameters() []*objects.Parameter { return typed[*objects.Parameter](lf, objects.TypeParameter) }
func (lf *LogicalFile) Equipment() []*objects.Equipment  { return typed[*objects.Equipment](lf, objects.TypeEquipment) }
func (lf *LogicalFile) Zones() []*objects.Zone           { return typed[*objects.Zone](lf, objects.TypeZone) }

func (lf *LogicalFile) Calibrations() []*objects.Calibration {
	return typed[*objects.Calibration](lf, objects.TypeCalibration)
}

func (lf *LogicalFile) Coefficients() []*objects.CalibrationCoefficient {
	return typed[*objects.CalibrationCoefficient](lf, objects.TypeCalibrationCoefficient)
}

func (lf *LogicalFile) Measurements() []*objects.CalibrationMeasurement {
	return typed[*objects.CalibrationMeasurement](lf, objects.TypeCalibrationMeasurement)
}

func (lf *LogicalFile) Computations() []*objects.Computation {
	return typed[*objects.Computation](lf, objects.TypeComputation)
}

func (lf *LogicalFile) Processes() []*objects.Process { return typed[*objects.Process](lf, objects.TypeProcess) }
func (lf *LogicalFile) Splices() []*objects.Splice    { return typed[*objects.Splice](lf, objects.TypeSplice) }
func (lf *LogicalFile) Groups() []*objects.Group      { return typed[*objects.Group](lf, objects.TypeGroup) }
func (lf *LogicalFile) Messages() []*objects.Message  { return typed[*objects.Message](lf, objects.TypeMessage) }
func (lf *LogicalFile) Comments() []*objects.Comment  { return typed[*objects.Comment](lf, objects.TypeComment) }

func (lf *LogicalFile) NoFormats() []*objects.NoFormat {
	return typed[*objects.NoFormat](lf, objects.TypeNoFormat)
}

// Unknown returns the objects whose type has no declared schema.
func (lf *LogicalFile) Unknown() []*objects.Unknown {
	var out []*objects.Unknown
	for _, obj := range lf.Objects() {
		if u, ok := obj.(*objects.Unknown); ok {
			out = append(out, u)
		}
	}
	return out
}
