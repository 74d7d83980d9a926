package logical

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/danmuck/welllog/internal/attic"
	"github.com/danmuck/welllog/internal/fingerprint"
	"github.com/danmuck/welllog/internal/objects"
	"github.com/danmuck/welllog/internal/observability"
	"github.com/danmuck/welllog/internal/record"
	"github.com/rs/zerolog/log"
)

// LogicalFile is one contiguous range of the record stream together with
// its indices and its object table. Index values are record ordinals
// relative to the first record of the file.
type LogicalFile struct {
	stream *record.Stream
	seq    int
	start  int
	end    int

	explicit []int
	frames   map[fingerprint.Fingerprint][]int

	entries map[fingerprint.Fingerprint]*entry
	order   []fingerprint.Fingerprint
	byType  map[string][]fingerprint.Fingerprint

	discrepancies []attic.Discrepancy
}

// entry holds the description that wins for one fingerprint and the object
// built from it. bag is fixed before materialization can start.
type entry struct {
	header      objects.Header
	bag         record.Attic
	occurrences int

	once sync.Once
	obj  objects.Object
}

func newLogicalFile(s *record.Stream, seq, start, end int) *LogicalFile {
	return &LogicalFile{
		stream:  s,
		seq:     seq,
		start:   start,
		end:     end,
		frames:  make(map[fingerprint.Fingerprint][]int),
		entries: make(map[fingerprint.Fingerprint]*entry),
		byType:  make(map[string][]fingerprint.Fingerprint),
	}
}

// index classifies every record of the file in stream order. A fingerprint
// declared more than once keeps the attic of its last occurrence and the
// table position of its first.
func (lf *LogicalFile) index() {
	for i := lf.start; i < lf.end; i++ {
		rec := lf.stream.At(i)
		rel := i - lf.start
		if rec.Encrypted {
			d := attic.Discrepancy{
				Kind:   attic.EncryptedRecordSkipped,
				Object: fmt.Sprintf("record %d", rec.Position),
				Detail: rec.Type,
			}
			lf.discrepancies = append(lf.discrepancies, d)
			observability.RecordSkipped("encrypted")
			observability.RecordDiscrepancy(d.Kind.String())
			log.Debug().Msgf("logical.LogicalFile.index file=%d skip position=%d set=%q", lf.seq, rec.Position, rec.Type)
			continue
		}

		switch rec.Role {
		case record.Explicit:
			lf.explicit = append(lf.explicit, rel)
			observability.RecordIndexed(rec.Role.String())
			for _, raw := range rec.Objects {
				lf.declare(objects.HeaderOf(raw), raw.Attic)
			}
		case record.FrameData:
			typ := rec.Frame.Type
			if typ == "" {
				typ = record.FrameType
			}
			fp := fingerprint.Of(typ, rec.Frame.Name, rec.Frame.Origin, rec.Frame.Copy)
			lf.frames[fp] = append(lf.frames[fp], rel)
			observability.RecordIndexed(rec.Role.String())
		}
	}
}

func (lf *LogicalFile) declare(h objects.Header, bag record.Attic) {
	fp := h.Fingerprint()
	if e, ok := lf.entries[fp]; ok {
		e.bag = bag
		e.occurrences++
		observability.RecordSkipped("redeclared")
		log.Debug().Msgf("logical.LogicalFile.declare file=%d redeclared=%s occurrences=%d", lf.seq, h, e.occurrences)
		return
	}
	lf.entries[fp] = &entry{header: h, bag: bag, occurrences: 1}
	lf.order = append(lf.order, fp)
	lf.byType[h.Type] = append(lf.byType[h.Type], fp)
}

// Seq is the position of the file among the files of its stream.
func (lf *LogicalFile) Seq() int {
	return lf.seq
}

// Range returns the stream ordinals [start, end) covered by the file.
func (lf *LogicalFile) Range() (start, end int) {
	return lf.start, lf.end
}

// Len returns the number of records in the file, encrypted ones included.
func (lf *LogicalFile) Len() int {
	return lf.end - lf.start
}

// Record returns the record at ordinal i relative to the file start.
func (lf *LogicalFile) Record(i int) record.Record {
	if i < 0 || i >= lf.Len() {
		panic(fmt.Sprintf("logical: record %d out of range [0,%d)", i, lf.Len()))
	}
	return lf.stream.At(lf.start + i)
}

func (lf *LogicalFile) ExplicitIndices() []int {
	return append([]int(nil), lf.explicit...)
}

// FrameIndex maps each frame fingerprint to the ordinals of its frame-data
// records, in stream order.
func (lf *LogicalFile) FrameIndex() map[fingerprint.Fingerprint][]int {
	out := make(map[fingerprint.Fingerprint][]int, len(lf.frames))
	for fp, idx := range lf.frames {
		out[fp] = append([]int(nil), idx...)
	}
	return out
}

// FrameRecords returns the frame-data ordinals of one frame.
func (lf *LogicalFile) FrameRecords(frame fingerprint.Fingerprint) []int {
	return append([]int(nil), lf.frames[frame]...)
}

// Fingerprints lists every object of the file in order of first
// declaration.
func (lf *LogicalFile) Fingerprints() []fingerprint.Fingerprint {
	return append([]fingerprint.Fingerprint(nil), lf.order...)
}

// Occurrences reports how many times fp was declared in the file.
func (lf *LogicalFile) Occurrences(fp fingerprint.Fingerprint) int {
	e, ok := lf.entries[fp]
	if !ok {
		return 0
	}
	return e.occurrences
}

// Discrepancies returns the file-level discrepancies found while indexing.
// Object discrepancies stay on their objects.
func (lf *LogicalFile) Discrepancies() []attic.Discrepancy {
	return append([]attic.Discrepancy(nil), lf.discrepancies...)
}

// Lookup materializes the object with fingerprint fp if the file declares
// it. Concurrent callers share one build per fingerprint.
func (lf *LogicalFile) Lookup(fp fingerprint.Fingerprint) (objects.Object, bool) {
	e, ok := lf.entries[fp]
	if !ok {
		return nil, false
	}
	return lf.materialize(e), true
}

func (lf *LogicalFile) materialize(e *entry) objects.Object {
	e.once.Do(func() {
		e.obj = objects.Build(e.header, e.bag, lf)
		ds := e.obj.Discrepancies()
		kinds := make([]string, len(ds))
		for i, d := range ds {
			kinds[i] = d.Kind.String()
		}
		observability.RecordMaterialized(e.header.Type, kinds)
		log.Debug().Msgf("logical.LogicalFile.materialize file=%d object=%s discrepancies=%d", lf.seq, e.header, len(ds))
	})
	return e.obj
}

// Object looks an object up by its identity tuple.
func (lf *LogicalFile) Object(typ, name string, origin, copy int64) (objects.Object, error) {
	obj, ok := lf.Lookup(fingerprint.Of(typ, name, origin, copy))
	if !ok {
		return nil, &NotFoundError{Type: typ, Name: name, Origin: origin, Copy: copy}
	}
	return obj, nil
}

// Resolve looks up every fingerprint of fps, omitting those the file does
// not declare.
func (lf *LogicalFile) Resolve(fps []fingerprint.Fingerprint) []objects.Object {
	out := make([]objects.Object, 0, len(fps))
	for _, fp := range fps {
		if obj, ok := lf.Lookup(fp); ok {
			out = append(out, obj)
		}
	}
	return out
}

// ObjectsOf returns the objects of one type in order of first declaration.
func (lf *LogicalFile) ObjectsOf(typ string) []objects.Object {
	return lf.Resolve(lf.byType[typ])
}

// Objects returns every object of the file in order of first declaration.
func (lf *LogicalFile) Objects() []objects.Object {
	return lf.Resolve(lf.order)
}

// Types lists the object types declared in the file in order of first
// appearance.
func (lf *LogicalFile) Types() []string {
	var out []string
	seen := make(map[string]struct{}, len(lf.byType))
	for _, fp := range lf.order {
		typ := lf.entries[fp].header.Type
		if _, ok := seen[typ]; ok {
			continue
		}
		seen[typ] = struct{}{}
		out = append(out, typ)
	}
	return out
}

// Match returns the objects whose type and name fully match the given
// regular expressions, ignoring case. An empty pattern matches anything.
func (lf *LogicalFile) Match(typePattern, namePattern string) ([]objects.Object, error) {
	typeRe, err := compileMatch(typePattern)
	if err != nil {
		return nil, fmt.Errorf("logical.Match type pattern: %w", err)
	}
	nameRe, err := compileMatch(namePattern)
	if err != nil {
		return nil, fmt.Errorf("logical.Match name pattern: %w", err)
	}
	var out []objects.Object
	for _, fp := range lf.order {
		h := lf.entries[fp].header
		if typeRe.MatchString(h.Type) && nameRe.MatchString(h.Name) {
			out = append(out, lf.materialize(lf.entries[fp]))
		}
	}
	return out, nil
}

func compileMatch(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = ".*"
	}
	return regexp.Compile("(?i)^(?:" + pattern + ")$")
}

func (lf *LogicalFile) String() string {
	return fmt.Sprintf("logical file %d [%d,%d)", lf.seq, lf.start, lf.end)
}
