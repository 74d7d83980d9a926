package logical

import (
	"github.com/danmuck/welllog/internal/attic"
	"github.com/danmuck/welllog/internal/fingerprint"
	"github.com/danmuck/welllog/internal/objects"
)

// Summary is a presentation-ready description of one logical file.
type Summary struct {
	Seq            int            `yaml:"seq"`
	ID             string         `yaml:"id,omitempty"`
	SequenceNumber string         `yaml:"sequence_number,omitempty"`
	Start          int            `yaml:"start"`
	End            int            `yaml:"end"`
	Explicit       int            `yaml:"explicit_records"`
	FrameData      map[string]int `yaml:"frame_data,omitempty"`
	Objects        map[string]int `yaml:"objects"`
	Redeclared     []string       `yaml:"redeclared,omitempty"`
	Discrepancies  map[string]int `yaml:"discrepancies,omitempty"`
}

// Describe materializes every object of the file and summarizes it.
// Discrepancy counts cover the file and all of its objects.
func (lf *LogicalFile) Describe() Summary {
	sum := Summary{
		Seq:       lf.seq,
		Start:     lf.start,
		End:       lf.end,
		Explicit:  len(lf.explicit),
		FrameData: make(map[string]int, len(lf.frames)),
		Objects:   make(map[string]int, len(lf.byType)),
	}
	if fh, ok := lf.FileHeader(); ok {
		sum.ID = fh.ID()
		sum.SequenceNumber = fh.SequenceNumber()
	}
	for fp, idx := range lf.frames {
		sum.FrameData[frameKey(fp)] = len(idx)
	}
	for typ, fps := range lf.byType {
		sum.Objects[typ] = len(fps)
	}
	for _, fp := range lf.order {
		if e := lf.entries[fp]; e.occurrences > 1 {
			sum.Redeclared = append(sum.Redeclared, e.header.String())
		}
	}

	counts := make(map[string]int)
	for _, d := range lf.AllDiscrepancies() {
		counts[d.Kind.String()]++
	}
	if len(counts) > 0 {
		sum.Discrepancies = counts
	}
	return sum
}

// frameKey names a frame by its full identity so frames that share a name
// under different origins or copies are counted apart.
func frameKey(fp fingerprint.Fingerprint) string {
	typ, name, origin, copy, err := fingerprint.Parse(fp)
	if err != nil {
		return fp.String()
	}
	return objects.Header{Type: typ, Name: name, Origin: origin, Copy: copy}.String()
}

// AllDiscrepancies materializes every object, resolves its link fields and
// returns the file-level discrepancies followed by those of each object, in
// declaration order.
func (lf *LogicalFile) AllDiscrepancies() []attic.Discrepancy {
	out := lf.Discrepancies()
	for _, obj := range lf.Objects() {
		for _, f := range obj.Fields().Fields() {
			if len(f.Links) > 0 {
				obj.Linked(f.Label)
			}
		}
		out = append(out, obj.Discrepancies()...)
	}
	return out
}

// Summaries describes every file in order.
func Summaries(files []*LogicalFile) []Summary {
	out := make([]Summary, len(files))
	for i, lf := range files {
		out[i] = lf.Describe()
	}
	return out
}
