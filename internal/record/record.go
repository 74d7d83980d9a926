package record

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// FrameType is the object type owning frame-data records.
const FrameType = "FRAME"

// Role classifies a record as metadata or sample data.
type Role uint8

const (
	Explicit Role = iota
	FrameData
)

func (r Role) String() string {
	switch r {
	case Explicit:
		return "explicit"
	case FrameData:
		return "frame-data"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

var ErrStructural = errors.New("record: structural error")

// StructuralError reports a malformed or truncated record stream. It is
// the only condition that aborts a load.
type StructuralError struct {
	Position int64
	Reason   string
	Err      error
}

func (e *StructuralError) Error() string {
	msg := fmt.Sprintf("record: structural error at position %d: %s", e.Position, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StructuralError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStructural}
	}
	return []error{ErrStructural, e.Err}
}

// Attic is the raw attribute bag of one object: label -> ordered values.
type Attic map[string][]Value

// Clone returns a deep copy of the bag.
func (a Attic) Clone() Attic {
	if a == nil {
		return nil
	}
	out := make(Attic, len(a))
	for label, values := range a {
		out[label] = cloneValues(values)
	}
	return out
}

// RawObject is one object description carried by an explicit record.
type RawObject struct {
	Type   string `cbor:"type"`
	Name   string `cbor:"name"`
	Origin int64  `cbor:"origin"`
	Copy   int64  `cbor:"copy"`
	Attic  Attic  `cbor:"attic,omitempty"`
}

// Record is one decoded unit of the stream.
//
// Explicit records carry a set Type and zero or more Objects. FrameData
// records carry the Frame they belong to, resolved by the decoder, and one
// decoded sample slice per frame channel.
type Record struct {
	Position    int64       `cbor:"pos"`
	Role        Role        `cbor:"role"`
	Encrypted   bool        `cbor:"enc,omitempty"`
	Type        string      `cbor:"type,omitempty"`
	Objects     []RawObject `cbor:"objects,omitempty"`
	Frame       Ref         `cbor:"frame,omitempty"`
	FrameNumber int64       `cbor:"fnum,omitempty"`
	Samples     [][]Value   `cbor:"samples,omitempty"`
}

// Stream is an ordered, immutable sequence of decoded records.
type Stream struct {
	records []Record
	digest  [32]byte
	err     error
}

// NewStream validates records and wraps them in a Stream. Positions must be
// non-negative, unique and strictly increasing. Raw objects without a type
// inherit the set type of their record. The stream owns deep copies of the
// attribute bags and samples, so later changes to records do not reach it.
func NewStream(records []Record) (*Stream, error) {
	out := make([]Record, len(records))
	copy(out, records)
	prev := int64(-1)
	for i := range out {
		rec := &out[i]
		if rec.Position <= prev {
			return nil, &StructuralError{
				Position: rec.Position,
				Reason:   fmt.Sprintf("position not increasing (previous %d)", prev),
			}
		}
		prev = rec.Position
		if rec.Role != Explicit && rec.Role != FrameData {
			return nil, &StructuralError{Position: rec.Position, Reason: fmt.Sprintf("unknown %s", rec.Role)}
		}
		if len(rec.Objects) > 0 {
			objs := make([]RawObject, len(rec.Objects))
			copy(objs, rec.Objects)
			for j := range objs {
				if objs[j].Type == "" {
					objs[j].Type = rec.Type
				}
				objs[j].Attic = objs[j].Attic.Clone()
			}
			rec.Objects = objs
		}
		rec.Samples = cloneSamples(rec.Samples)
	}
	return &Stream{records: out}, nil
}

func cloneSamples(samples [][]Value) [][]Value {
	if samples == nil {
		return nil
	}
	out := make([][]Value, len(samples))
	for i, row := range samples {
		out[i] = cloneValues(row)
	}
	return out
}

func cloneValues(values []Value) []Value {
	if values == nil {
		return nil
	}
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = v.clone()
	}
	return out
}

// Len returns the number of records.
func (s *Stream) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// At returns the record at ordinal i. The returned value shares its slices
// with the stream and must not be modified.
func (s *Stream) At(i int) Record {
	return s.records[i]
}

// Err reports corruption detected by the decoder after the intact prefix.
func (s *Stream) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Digest is the BLAKE3 digest of the encoded stream, zero for streams
// built in memory.
func (s *Stream) Digest() [32]byte {
	return s.digest
}

func (s *Stream) DigestHex() string {
	return hex.EncodeToString(s.digest[:])
}
