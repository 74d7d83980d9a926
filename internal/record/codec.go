package record

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/blake3"
)

const (
	streamMagic   = "welllog.records"
	streamVersion = 1
	maxPrealloc   = 1 << 16
)

// streamHeader opens every encoded stream.
type streamHeader struct {
	Magic   string `cbor:"magic"`
	Version int    `cbor:"version"`
	Count   int    `cbor:"count"`
}

// encMode uses Core Deterministic Encoding so that equal streams encode to
// identical bytes and therefore identical digests.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("record: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("record: CBOR decoder initialization failed: " + err.Error())
	}
}

// Encode writes s as a CBOR sequence: one header item followed by one item
// per record.
func Encode(w io.Writer, s *Stream) error {
	enc := encMode.NewEncoder(w)
	if err := enc.Encode(streamHeader{Magic: streamMagic, Version: streamVersion, Count: s.Len()}); err != nil {
		return fmt.Errorf("record: encode header: %w", err)
	}
	for i := 0; i < s.Len(); i++ {
		if err := enc.Encode(s.records[i]); err != nil {
			return fmt.Errorf("record: encode record %d: %w", i, err)
		}
	}
	return nil
}

// Decode reads a stream written by Encode. Corruption after a valid header
// yields both an error and a Stream holding the intact prefix, whose Err
// reports the same StructuralError.
func Decode(r io.Reader) (*Stream, error) {
	hasher := blake3.New()
	dec := decMode.NewDecoder(io.TeeReader(r, hasher))

	var head streamHeader
	if err := dec.Decode(&head); err != nil {
		return nil, &StructuralError{Position: -1, Reason: "unreadable stream header", Err: err}
	}
	if head.Magic != streamMagic {
		return nil, &StructuralError{Position: -1, Reason: fmt.Sprintf("bad magic %q", head.Magic)}
	}
	if head.Version != streamVersion {
		return nil, &StructuralError{Position: -1, Reason: fmt.Sprintf("unsupported version %d", head.Version)}
	}

	records := make([]Record, 0, min(max(head.Count, 0), maxPrealloc))
	var failure error
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			failure = &StructuralError{Position: nextPosition(records), Reason: "truncated or malformed record", Err: err}
			break
		}
		records = append(records, rec)
	}
	if failure == nil && len(records) != head.Count {
		failure = &StructuralError{
			Position: nextPosition(records),
			Reason:   fmt.Sprintf("header announced %d records, found %d", head.Count, len(records)),
		}
	}

	s, err := NewStream(records)
	if err != nil {
		return nil, err
	}
	copy(s.digest[:], hasher.Sum(nil))
	if failure != nil {
		log.Error().Err(failure).Msgf("record.Decode intact=%d", len(records))
		s.err = failure
		return s, failure
	}
	log.Debug().Msgf("record.Decode records=%d digest=%s", s.Len(), s.DigestHex())
	return s, nil
}

func nextPosition(records []Record) int64 {
	if len(records) == 0 {
		return 0
	}
	return records[len(records)-1].Position + 1
}
