package logical

import (
	"fmt"

	"github.com/danmuck/welllog/internal/observability"
	"github.com/danmuck/welllog/internal/record"
	"github.com/rs/zerolog/log"
)

// DefaultHeaderType is the set type that opens a logical file.
const DefaultHeaderType = "FILE-HEADER"

type options struct {
	headerType string
}

type Option func(*options)

// WithHeaderType overrides the set type that opens a logical file.
func WithHeaderType(typ string) Option {
	return func(o *options) {
		if typ != "" {
			o.headerType = typ
		}
	}
}

// Partition splits s into logical files and indexes each of them.
//
// A logical file starts at every explicit, readable record whose set type,
// or the type of any object it carries, is the header type. Records before the first header form a headerless
// first file. Encrypted records never open a file and stay in the file
// that contains them. An empty stream yields no files.
//
// The only failure is corruption reported by the stream itself.
func Partition(s *record.Stream, opts ...Option) ([]*LogicalFile, error) {
	o := options{headerType: DefaultHeaderType}
	for _, opt := range opts {
		opt(&o)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("logical.Partition: %w", err)
	}

	bounds := boundaries(s, o.headerType)
	files := make([]*LogicalFile, 0, len(bounds))
	for i, start := range bounds {
		end := s.Len()
		if i+1 < len(bounds) {
			end = bounds[i+1]
		}
		lf := newLogicalFile(s, i, start, end)
		lf.index()
		files = append(files, lf)
		observability.RecordLogicalFile()
		log.Debug().Msgf("logical.Partition file=%d range=[%d,%d) explicit=%d frames=%d objects=%d",
			i, start, end, len(lf.explicit), len(lf.frames), len(lf.order))
	}
	return files, nil
}

func boundaries(s *record.Stream, headerType string) []int {
	var out []int
	for i := 0; i < s.Len(); i++ {
		if i == 0 || opensFile(s.At(i), headerType) {
			out = append(out, i)
		}
	}
	return out
}

func opensFile(rec record.Record, headerType string) bool {
	if rec.Role != record.Explicit || rec.Encrypted {
		return false
	}
	if rec.Type == headerType {
		return true
	}
	for _, obj := range rec.Objects {
		if obj.Type == headerType {
			return true
		}
	}
	return false
}
