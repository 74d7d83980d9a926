// Package curves assembles the frame-data records of one frame into
// addressable curves. Assembly only reads the stream and is safe to run
// concurrently for any number of frames.
package curves

import (
	"errors"
	"fmt"

	"github.com/danmuck/welllog/internal/logical"
	"github.com/danmuck/welllog/internal/objects"
	"github.com/danmuck/welllog/internal/record"
	"github.com/rs/zerolog/log"
)

var ErrSampleCount = errors.New("curves: sample count does not match frame channels")

// Curves holds one row per frame-data record, in stream order. Each row
// holds one sample slice per frame channel.
type Curves struct {
	frame   objects.Header
	names   []string
	index   map[string]int
	numbers []int64
	rows    [][][]record.Value
}

// Assemble collects the frame-data records lf indexed under frame.
// Channels are named by the frame's CHANNELS attribute, whether or not the
// channel objects are present in lf.
func Assemble(lf *logical.LogicalFile, frame *objects.Frame) (*Curves, error) {
	names := frame.ChannelNames()
	c := &Curves{
		frame: frame.Header(),
		names: names,
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if _, ok := c.index[name]; !ok {
			c.index[name] = i
		}
	}

	ordinals := lf.FrameRecords(frame.Fingerprint())
	c.rows = make([][][]record.Value, 0, len(ordinals))
	c.numbers = make([]int64, 0, len(ordinals))
	for _, i := range ordinals {
		rec := lf.Record(i)
		if len(rec.Samples) != len(names) {
			return nil, fmt.Errorf("curves.Assemble %s record %d: %w (got %d, want %d)",
				c.frame, rec.Position, ErrSampleCount, len(rec.Samples), len(names))
		}
		c.rows = append(c.rows, rec.Samples)
		c.numbers = append(c.numbers, rec.FrameNumber)
	}
	log.Debug().Msgf("curves.Assemble frame=%s channels=%d rows=%d", c.frame, len(names), len(c.rows))
	return c, nil
}

func (c *Curves) Frame() objects.Header { return c.frame }
func (c *Curves) Len() int              { return len(c.rows) }

// Channels lists the channel names in frame order.
func (c *Curves) Channels() []string {
	return append([]string(nil), c.names...)
}

// FrameNumbers returns the frame number of every row.
func (c *Curves) FrameNumbers() []int64 {
	return append([]int64(nil), c.numbers...)
}

// Column returns the samples of one channel, one slice per row. It returns
// nil when the frame has no channel of that name.
func (c *Curves) Column(name string) [][]record.Value {
	j, ok := c.index[name]
	if !ok {
		return nil
	}
	out := make([][]record.Value, len(c.rows))
	for i, row := range c.rows {
		out[i] = row[j]
	}
	return out
}

// Row returns row i keyed by channel name. Row panics if i is out of range.
func (c *Curves) Row(i int) map[string][]record.Value {
	row := c.rows[i]
	out := make(map[string][]record.Value, len(c.index))
	for name, j := range c.index {
		out[name] = row[j]
	}
	return out
}
