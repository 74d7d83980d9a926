package objects

// Object types with a declared schema.
const (
	TypeFileHeader             = "FILE-HEADER"
	TypeOrigin                 = "ORIGIN"
	TypeAxis                   = "AXIS"
	TypeChannel                = "CHANNEL"
	TypeFrame                  = "FRAME"
	TypePath                   = "PATH"
	TypeWellref                = "WELL-REFERENCE"
	TypeTool                   = "TOOL"
	TypeParameter              = "PARAMETER"
	TypeEquipment              = "EQUIPMENT"
	TypeZone                   = "ZONE"
	TypeCalibration            = "CALIBRATION"
	TypeCalibrationCoefficient = "CALIBRATION-COEFFICIENT"
	TypeCalibrationMeasurement = "CALIBRATION-MEASUREMENT"
	TypeComputation            = "COMPUTATION"
	TypeProcess                = "PROCESS"
	TypeSplice                 = "SPLICE"
	TypeGroup                  = "GROUP"
	TypeMessage                = "MESSAGE"
	TypeComment                = "COMMENT"
	TypeNoFormat               = "NO-FORMAT"
)
