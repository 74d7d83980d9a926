package attic

import "fmt"

// DiscrepancyKind classifies a recoverable loading anomaly.
type DiscrepancyKind uint8

const (
	CardinalityMismatch DiscrepancyKind = iota + 1
	TypeMismatch
	MissingAttribute
	UnresolvedLink
	EncryptedRecordSkipped
)

func (k DiscrepancyKind) String() string {
	switch k {
	case CardinalityMismatch:
		return "cardinality-mismatch"
	case TypeMismatch:
		return "type-mismatch"
	case MissingAttribute:
		return "missing-attribute"
	case UnresolvedLink:
		return "unresolved-link"
	case EncryptedRecordSkipped:
		return "encrypted-record-skipped"
	default:
		return fmt.Sprintf("discrepancy(%d)", uint8(k))
	}
}

func (k DiscrepancyKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// Discrepancy is attached to the object or logical file it was found in.
// It is reported, never returned as a load failure.
type Discrepancy struct {
	Kind     DiscrepancyKind `yaml:"kind"`
	Object   string          `yaml:"object,omitempty"`
	Label    string          `yaml:"label,omitempty"`
	Expected string          `yaml:"expected,omitempty"`
	Observed string          `yaml:"observed,omitempty"`
	Detail   string          `yaml:"detail,omitempty"`
}

func (d Discrepancy) Error() string {
	var msg string
	switch d.Kind {
	case CardinalityMismatch:
		msg = fmt.Sprintf("expected %s value in the attribute %s, got %s", d.Expected, d.Label, d.Observed)
	case TypeMismatch:
		msg = fmt.Sprintf("attribute %s: expected %s, got %s", d.Label, d.Expected, d.Observed)
	case MissingAttribute:
		msg = fmt.Sprintf("mandatory attribute %s is missing", d.Label)
	case UnresolvedLink:
		msg = fmt.Sprintf("attribute %s: no object %s in this logical file", d.Label, d.Observed)
	default:
		msg = d.Kind.String()
	}
	if d.Detail != "" {
		msg += " (" + d.Detail + ")"
	}
	if d.Object != "" {
		msg = d.Object + ": " + msg
	}
	return msg
}
