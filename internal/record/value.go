package record

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindInt
	KindFloat
	KindText
	KindBool
	KindBytes
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindBytes:
		return "bytes"
	case KindRef:
		return "ref"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Ref names another object. Type is empty for bare object names, whose
// type is implied by the attribute carrying them.
type Ref struct {
	Type   string `cbor:"type,omitempty" yaml:"type,omitempty"`
	Name   string `cbor:"name" yaml:"name"`
	Origin int64  `cbor:"origin" yaml:"origin"`
	Copy   int64  `cbor:"copy" yaml:"copy"`
}

func (r Ref) String() string {
	if r.Type == "" {
		return fmt.Sprintf("%s(%d,%d)", r.Name, r.Origin, r.Copy)
	}
	return fmt.Sprintf("%s:%s(%d,%d)", r.Type, r.Name, r.Origin, r.Copy)
}

// Value is one raw attribute value.
type Value struct {
	Kind  Kind    `cbor:"k"`
	Int   int64   `cbor:"i,omitempty"`
	Float float64 `cbor:"f,omitempty"`
	Text  string  `cbor:"t,omitempty"`
	Bool  bool    `cbor:"b,omitempty"`
	Bytes []byte  `cbor:"x,omitempty"`
	Ref   Ref     `cbor:"r,omitempty"`
}

func Int(v int64) Value     { return Value{Kind: KindInt, Int: v} }
func Float(v float64) Value { return Value{Kind: KindFloat, Float: v} }
func Text(v string) Value   { return Value{Kind: KindText, Text: v} }
func Bool(v bool) Value     { return Value{Kind: KindBool, Bool: v} }
func RefTo(r Ref) Value     { return Value{Kind: KindRef, Ref: r} }
func None() Value           { return Value{} }
func Bytes(v []byte) Value {
	buf := make([]byte, len(v))
	copy(buf, v)
	return Value{Kind: KindBytes, Bytes: buf}
}

func (v Value) clone() Value {
	if v.Bytes != nil {
		v.Bytes = append([]byte(nil), v.Bytes...)
	}
	return v
}

// IsNone reports whether v carries no value.
func (v Value) IsNone() bool {
	return v.Kind == KindNone
}

// Any returns the Go value held by v, nil for KindNone.
func (v Value) Any() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindText:
		return v.Text
	case KindBool:
		return v.Bool
	case KindBytes:
		return v.Bytes
	case KindRef:
		return v.Ref
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindText:
		return v.Text
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindBytes:
		return hex.EncodeToString(v.Bytes)
	case KindRef:
		return v.Ref.String()
	default:
		return "None"
	}
}

// MarshalYAML renders the held value rather than the tagged struct.
func (v Value) MarshalYAML() (any, error) {
	if v.Kind == KindBytes {
		return v.String(), nil
	}
	return v.Any(), nil
}
