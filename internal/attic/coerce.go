package attic

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/danmuck/welllog/internal/record"
)

// coercion converts one raw value to a declared kind. exact is false when
// the raw value had to be converted; ok is false when no conversion exists.
type coercion func(v record.Value) (out record.Value, exact bool, ok bool)

var coercions = map[Kind]coercion{
	Any:   asAny,
	Text:  toText,
	Int:   toInt,
	Float: toFloat,
	Bool:  toBool,
	Bytes: toBytes,
	Link:  toLink,
}

func asAny(v record.Value) (record.Value, bool, bool) {
	return v, true, true
}

func toText(v record.Value) (record.Value, bool, bool) {
	switch v.Kind {
	case record.KindText:
		return v, true, true
	case record.KindInt, record.KindFloat, record.KindBool:
		return record.Text(v.String()), false, true
	case record.KindBytes:
		if !utf8.Valid(v.Bytes) {
			return record.Value{}, false, false
		}
		return record.Text(string(v.Bytes)), false, true
	default:
		return record.Value{}, false, false
	}
}

func toInt(v record.Value) (record.Value, bool, bool) {
	switch v.Kind {
	case record.KindInt:
		return v, true, true
	case record.KindFloat:
		if !integral(v.Float) {
			return record.Value{}, false, false
		}
		return record.Int(int64(v.Float)), false, true
	case record.KindText:
		s := strings.TrimSpace(v.Text)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return record.Int(n), false, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && integral(f) {
			return record.Int(int64(f)), false, true
		}
		return record.Value{}, false, false
	case record.KindBool:
		if v.Bool {
			return record.Int(1), false, true
		}
		return record.Int(0), false, true
	default:
		return record.Value{}, false, false
	}
}

func integral(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) < math.MaxInt64
}

func toFloat(v record.Value) (record.Value, bool, bool) {
	switch v.Kind {
	case record.KindFloat:
		return v, true, true
	case record.KindInt:
		return record.Float(float64(v.Int)), true, true
	case record.KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		if err != nil {
			return record.Value{}, false, false
		}
		return record.Float(f), false, true
	default:
		return record.Value{}, false, false
	}
}

// toBool accepts booleans, the integer status codes 0 and 1 and the
// literals "true"/"false". Everything else goes through truthiness and is
// never exact.
func toBool(v record.Value) (record.Value, bool, bool) {
	switch v.Kind {
	case record.KindBool:
		return v, true, true
	case record.KindInt:
		if v.Int == 0 || v.Int == 1 {
			return record.Bool(v.Int == 1), true, true
		}
		return record.Bool(true), false, true
	case record.KindFloat:
		return record.Bool(v.Float != 0), false, true
	case record.KindText:
		switch strings.ToLower(strings.TrimSpace(v.Text)) {
		case "true":
			return record.Bool(true), true, true
		case "false":
			return record.Bool(false), true, true
		}
		return record.Bool(v.Text != ""), false, true
	case record.KindBytes:
		return record.Bool(len(v.Bytes) > 0), false, true
	case record.KindRef:
		return record.Bool(v.Ref.Name != ""), false, true
	default:
		return record.Value{}, false, false
	}
}

func toBytes(v record.Value) (record.Value, bool, bool) {
	switch v.Kind {
	case record.KindBytes:
		return v, true, true
	case record.KindText:
		return record.Bytes([]byte(v.Text)), false, true
	default:
		return record.Value{}, false, false
	}
}

func toLink(v record.Value) (record.Value, bool, bool) {
	if v.Kind == record.KindRef {
		return v, true, true
	}
	return record.Value{}, false, false
}
