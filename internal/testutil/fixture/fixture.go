// Package fixture builds synthetic record streams for tests. Each builder
// returns one part, a run of records without positions; Stream lays parts
// out back to back the way a decoder would hand them over.
package fixture

import (
	"fmt"
	"testing"

	"github.com/danmuck/welllog/internal/record"
	"github.com/stretchr/testify/require"
)

const (
	// DefiningOrigin is the origin every fixture object is declared under
	// unless a part says otherwise.
	DefiningOrigin = 10

	firstPosition = 80
	recordStride  = 100
)

// Part is a run of records whose positions are assigned by Stream.
type Part []record.Record

// Records concatenates parts and assigns strictly increasing positions.
func Records(parts ...Part) []record.Record {
	var out []record.Record
	for _, p := range parts {
		for _, rec := range p {
			rec.Position = int64(firstPosition + len(out)*recordStride)
			out = append(out, rec)
		}
	}
	return out
}

// Stream builds a validated stream from parts.
func Stream(tb testing.TB, parts ...Part) *record.Stream {
	tb.Helper()
	s, err := record.NewStream(Records(parts...))
	require.NoError(tb, err)
	return s
}

func set(typ string, objs ...record.RawObject) Part {
	return Part{{Role: record.Explicit, Type: typ, Objects: objs}}
}

func obj(name string, origin int64, bag record.Attic) record.RawObject {
	return record.RawObject{Name: name, Origin: origin, Attic: bag}
}

func channelRef(name string) record.Value {
	return record.RefTo(record.Ref{Type: "CHANNEL", Name: name, Origin: DefiningOrigin})
}

func ints(vs ...int64) []record.Value {
	out := make([]record.Value, len(vs))
	for i, v := range vs {
		out[i] = record.Int(v)
	}
	return out
}

// FileHeader opens a logical file: FILE-HEADER N(10,0).
func FileHeader() Part {
	return set("FILE-HEADER", obj("N", DefiningOrigin, record.Attic{
		"SEQUENCE-NUMBER": {record.Text("8")},
		"ID":              {record.Text("some logical file")},
	}))
}

// FileHeader2 opens a logical file: FILE-HEADER N(11,0).
func FileHeader2() Part {
	return set("FILE-HEADER", obj("N", 11, record.Attic{
		"SEQUENCE-NUMBER": {record.Text("10")},
		"ID":              {record.Text("Yet another logical file")},
	}))
}

// Origin declares two origins in one set.
func Origin() Part {
	return set("ORIGIN",
		obj("DEFINING_ORIGIN", DefiningOrigin, record.Attic{
			"FILE-ID":         {record.Text("some file id")},
			"FILE-SET-NAME":   {record.Text("SET-NAME")},
			"FILE-SET-NUMBER": {record.Int(1)},
			"FILE-NUMBER":     {record.Int(8)},
			"WELL-NAME":       {record.Text("CODA")},
		}),
		obj("RANDOM", 127, record.Attic{
			"FILE-ID": {record.Text("another file id")},
		}),
	)
}

// Origin2 declares a single origin.
func Origin2() Part {
	return set("ORIGIN", obj("DEFINING_ORIGIN", DefiningOrigin, record.Attic{
		"FILE-ID":     {record.Text("some other file id")},
		"FILE-NUMBER": {record.Int(9)},
	}))
}

// Channel declares CHANN1 to CHANN4. CHANN1 has a three dimensional sample.
func Channel() Part {
	return set("CHANNEL",
		obj("CHANN1", DefiningOrigin, record.Attic{
			"LONG-NAME":           {record.Text("Channel 1")},
			"REPRESENTATION-CODE": {record.Int(2)},
			"UNITS":               {record.Text("m")},
			"DIMENSION":           ints(3, 2, 1),
		}),
		obj("CHANN2", DefiningOrigin, record.Attic{"DIMENSION": ints(1)}),
		obj("CHANN3", DefiningOrigin, record.Attic{"DIMENSION": ints(1)}),
		obj("CHANN4", DefiningOrigin, record.Attic{"DIMENSION": ints(1)}),
	)
}

// ChannelSameObjects redeclares CHANN1 with a one dimensional sample.
func ChannelSameObjects() Part {
	return set("CHANNEL", obj("CHANN1", DefiningOrigin, record.Attic{
		"DIMENSION": ints(1),
	}))
}

// Frame declares FRAME1 over CHANN1 and CHANN2, and FRAME2 over CHANN3 and
// CHANN4.
func Frame() Part {
	return set("FRAME",
		obj("FRAME1", DefiningOrigin, record.Attic{
			"CHANNELS":   {channelRef("CHANN1"), channelRef("CHANN2")},
			"INDEX-TYPE": {record.Text("BOREHOLE-DEPTH")},
		}),
		obj("FRAME2", DefiningOrigin, record.Attic{
			"CHANNELS": {channelRef("CHANN3"), channelRef("CHANN4")},
		}),
	)
}

// ReprcodeChannels is the number of channels in ChannelReprcode, one per
// representation code.
const ReprcodeChannels = 27

func reprcodeName(i int) string {
	return fmt.Sprintf("CH%02d", i)
}

// ChannelReprcode declares CH01 to CH27 with representation codes 1 to 27.
func ChannelReprcode() Part {
	objs := make([]record.RawObject, 0, ReprcodeChannels)
	for i := 1; i <= ReprcodeChannels; i++ {
		objs = append(objs, obj(reprcodeName(i), DefiningOrigin, record.Attic{
			"REPRESENTATION-CODE": {record.Int(int64(i))},
			"DIMENSION":           ints(1),
		}))
	}
	return set("CHANNEL", objs...)
}

// FrameReprcode declares FRAME-REPRCODE over CH01 to CH27.
func FrameReprcode() Part {
	channels := make([]record.Value, 0, ReprcodeChannels)
	for i := 1; i <= ReprcodeChannels; i++ {
		channels = append(channels, channelRef(reprcodeName(i)))
	}
	return set("FRAME", obj("FRAME-REPRCODE", DefiningOrigin, record.Attic{
		"CHANNELS": channels,
	}))
}

// FdataReprcode is one frame-data record of FRAME-REPRCODE. CH01 reads
// 153.0; the remaining channels read their channel number.
func FdataReprcode() Part {
	samples := make([][]record.Value, ReprcodeChannels)
	samples[0] = []record.Value{record.Float(153.0)}
	for i := 1; i < ReprcodeChannels; i++ {
		samples[i] = []record.Value{record.Int(int64(i + 1))}
	}
	return Part{{
		Role:        record.FrameData,
		Frame:       record.Ref{Type: record.FrameType, Name: "FRAME-REPRCODE", Origin: DefiningOrigin},
		FrameNumber: 1,
		Samples:     samples,
	}}
}

// AxisEncrypted is an encrypted AXIS set whose content is unavailable.
func AxisEncrypted() Part {
	return Part{{Role: record.Explicit, Encrypted: true, Type: "AXIS"}}
}
