package logical

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/danmuck/welllog/internal/attic"
	"github.com/danmuck/welllog/internal/fingerprint"
	"github.com/danmuck/welllog/internal/objects"
	"github.com/danmuck/welllog/internal/record"
	"github.com/danmuck/welllog/internal/testutil/fixture"
	"github.com/danmuck/welllog/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manyLogicalFiles is a headerless file, a file with frame data and a file
// holding only its header.
func manyLogicalFiles(t *testing.T) []*LogicalFile {
	t.Helper()
	s := fixture.Stream(t,
		fixture.Origin(),
		fixture.Channel(),
		fixture.Frame(),

		fixture.FileHeader(),
		fixture.Origin2(),
		fixture.ChannelReprcode(),
		fixture.FrameReprcode(),
		fixture.FdataReprcode(),
		fixture.Frame(),
		fixture.FdataReprcode(),

		fixture.FileHeader2(),
	)
	files, err := Partition(s)
	require.NoError(t, err)
	require.Len(t, files, 3)
	return files
}

func TestPartitioning(t *testing.T) {
	testlog.Start(t)
	files := manyLogicalFiles(t)
	f1, f2, f3 := files[0], files[1], files[2]

	assert.Len(t, f1.Objects(), 8)
	assert.Len(t, f2.Objects(), 32)
	assert.Len(t, f3.Objects(), 1)

	key := fingerprint.Of("FRAME", "FRAME-REPRCODE", 10, 0)

	assert.Equal(t, []int{0, 1, 2}, f1.ExplicitIndices())
	assert.Empty(t, f1.FrameIndex())

	assert.Equal(t, []int{0, 1, 2, 3, 5}, f2.ExplicitIndices())
	assert.Equal(t, []int{4, 6}, f2.FrameIndex()[key])
	assert.Equal(t, []int{4, 6}, f2.FrameRecords(key))
	assert.Len(t, f2.FrameIndex(), 1)

	assert.Equal(t, []int{0}, f3.ExplicitIndices())
	assert.Empty(t, f3.FrameIndex())

	start, end := f2.Range()
	assert.Equal(t, 3, start)
	assert.Equal(t, 10, end)
	assert.Equal(t, record.FrameData, f2.Record(4).Role)
}

func TestPartitionCoversStream(t *testing.T) {
	testlog.Start(t)
	files := manyLogicalFiles(t)

	next := 0
	for i, lf := range files {
		start, end := lf.Range()
		assert.Equal(t, next, start, "file %d starts where the previous ended", i)
		assert.Less(t, start, end)
		if i > 0 {
			rec := lf.Record(0)
			assert.Equal(t, "FILE-HEADER", rec.Type)
		}
		next = end

		seen := make(map[int]bool)
		prev := -1
		for _, idx := range lf.ExplicitIndices() {
			assert.Greater(t, idx, prev)
			prev = idx
			seen[idx] = true
		}
		for _, idx := range lf.FrameIndex() {
			prev := -1
			for _, j := range idx {
				assert.Greater(t, j, prev)
				prev = j
				assert.False(t, seen[j], "ordinal %d indexed twice", j)
				seen[j] = true
			}
		}
	}
	assert.Equal(t, 11, next)
}

func TestObjects(t *testing.T) {
	testlog.Start(t)
	files := manyLogicalFiles(t)
	f1, f2, f3 := files[0], files[1], files[2]

	obj, err := f2.Object("FILE-HEADER", "N", 10, 0)
	require.NoError(t, err)
	fh2 := obj.(*objects.FileHeader)
	obj, err = f3.Object("FILE-HEADER", "N", 11, 0)
	require.NoError(t, err)
	fh3 := obj.(*objects.FileHeader)

	_, ok := f1.FileHeader()
	assert.False(t, ok)
	assert.Len(t, f1.Origins(), 2)
	assert.Len(t, f1.Channels(), 4)
	assert.Len(t, f1.Frames(), 2)

	assert.Equal(t, "8", fh2.SequenceNumber())
	assert.Equal(t, "some logical file", fh2.ID())
	f3Header, ok := f3.FileHeader()
	require.True(t, ok)
	assert.NotSame(t, fh2, f3Header)

	assert.Len(t, f2.Origins(), 1)
	assert.Len(t, f2.Channels(), 27)
	assert.Len(t, f2.Frames(), 3)

	assert.Equal(t, "10", fh3.SequenceNumber())
	assert.Equal(t, "Yet another logical file", fh3.ID())
	f2Header, ok := f2.FileHeader()
	require.True(t, ok)
	assert.Same(t, fh2, f2Header)
	assert.NotSame(t, fh3, f2Header)
}

func TestObjectNotFound(t *testing.T) {
	testlog.Start(t)
	files := manyLogicalFiles(t)

	_, err := files[0].Object("FILE-HEADER", "N", 10, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrObjectNotFound)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "N", nf.Name)
	assert.Equal(t, int64(10), nf.Origin)

	_, ok := files[0].Lookup(fingerprint.Of("CHANNEL", "CH01", 10, 0))
	assert.False(t, ok)
}

func TestObjectsWithEncryptedRecords(t *testing.T) {
	testlog.Start(t)
	s := fixture.Stream(t,
		fixture.FileHeader(),
		fixture.Origin(),
		fixture.Channel(),
		fixture.AxisEncrypted(),

		fixture.FileHeader2(),
		fixture.Origin2(),
		fixture.AxisEncrypted(),
		fixture.ChannelSameObjects(),
	)
	files, err := Partition(s)
	require.NoError(t, err)
	require.Len(t, files, 2)
	f1, f2 := files[0], files[1]

	c1, err := f1.Object("CHANNEL", "CHANN1", 10, 0)
	require.NoError(t, err)
	assert.Len(t, c1.(*objects.Channel).Dimension(), 3)
	c2, err := f2.Object("CHANNEL", "CHANN1", 10, 0)
	require.NoError(t, err)
	assert.Len(t, c2.(*objects.Channel).Dimension(), 1)
	assert.Equal(t, c1.Fingerprint(), c2.Fingerprint())
	assert.NotSame(t, c1, c2)

	assert.Equal(t, []int{0, 1, 2}, f1.ExplicitIndices())
	assert.Equal(t, 4, f1.Len())
	assert.Equal(t, []int{0, 1, 3}, f2.ExplicitIndices())

	ds := f1.Discrepancies()
	require.Len(t, ds, 1)
	assert.Equal(t, attic.EncryptedRecordSkipped, ds[0].Kind)
	assert.Equal(t, "AXIS", ds[0].Detail)
}

func TestEncryptedHeaderDoesNotOpenFile(t *testing.T) {
	testlog.Start(t)
	header := fixture.FileHeader()
	header[0].Encrypted = true
	s := fixture.Stream(t, fixture.Origin(), header, fixture.Channel())
	files, err := Partition(s)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, []int{0, 2}, files[0].ExplicitIndices())
}

func TestPartitionEmptyStream(t *testing.T) {
	testlog.Start(t)
	s, err := record.NewStream(nil)
	require.NoError(t, err)
	files, err := Partition(s)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestPartitionHeaderType(t *testing.T) {
	testlog.Start(t)
	s := fixture.Stream(t, fixture.FileHeader(), fixture.Origin(), fixture.Origin2())
	files, err := Partition(s, WithHeaderType("ORIGIN"))
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestPartitionHeaderFromObjectType(t *testing.T) {
	testlog.Start(t)
	untyped := func(p fixture.Part) fixture.Part {
		rec := p[0]
		objs := append([]record.RawObject(nil), rec.Objects...)
		for i := range objs {
			objs[i].Type = rec.Type
		}
		rec.Type = ""
		rec.Objects = objs
		return fixture.Part{rec}
	}
	s := fixture.Stream(t,
		untyped(fixture.Origin()),
		untyped(fixture.FileHeader()),
		untyped(fixture.Channel()),
	)
	files, err := Partition(s)
	require.NoError(t, err)
	require.Len(t, files, 2)
	start, end := files[0].Range()
	assert.Equal(t, []int{0, 1}, []int{start, end})
	start, end = files[1].Range()
	assert.Equal(t, []int{1, 3}, []int{start, end})

	fh, ok := files[1].FileHeader()
	require.True(t, ok)
	assert.Equal(t, "some logical file", fh.ID())
	assert.Len(t, files[1].Channels(), 4)
}

func TestPartitionIgnoresLaterChangesToRecords(t *testing.T) {
	testlog.Start(t)
	recs := fixture.Records(fixture.FileHeader(), fixture.Origin())
	s, err := record.NewStream(recs)
	require.NoError(t, err)
	files, err := Partition(s)
	require.NoError(t, err)
	require.Len(t, files, 1)

	recs[0].Objects[0].Attic["ID"][0] = record.Text("after")
	fh, ok := files[0].FileHeader()
	require.True(t, ok)
	assert.Equal(t, "some logical file", fh.ID())
}

func TestPartitionFailsOnCorruptStream(t *testing.T) {
	testlog.Start(t)
	s := fixture.Stream(t, fixture.FileHeader(), fixture.Origin(), fixture.Channel())
	var buf bytes.Buffer
	require.NoError(t, record.Encode(&buf, s))

	corrupt, err := record.Decode(bytes.NewReader(buf.Bytes()[:buf.Len()-5]))
	require.Error(t, err)
	files, err := Partition(corrupt)
	assert.Nil(t, files)
	assert.ErrorIs(t, err, record.ErrStructural)
}

func TestLinksStayInsideTheirFile(t *testing.T) {
	testlog.Start(t)
	files := manyLogicalFiles(t)
	f1, f2 := files[0], files[1]

	obj, err := f1.Object("FRAME", "FRAME1", 10, 0)
	require.NoError(t, err)
	frame1 := obj.(*objects.Frame)
	obj, err = f2.Object("FRAME", "FRAME1", 10, 0)
	require.NoError(t, err)
	frame2 := obj.(*objects.Frame)
	obj, err = f1.Object("CHANNEL", "CHANN1", 10, 0)
	require.NoError(t, err)
	channel := obj.(*objects.Channel)

	assert.Contains(t, frame1.Channels(), channel)
	assert.NotContains(t, frame2.Channels(), channel)
	assert.Empty(t, frame2.Channels())

	var unresolved int
	for _, d := range frame2.Discrepancies() {
		if d.Kind == attic.UnresolvedLink {
			unresolved++
		}
	}
	assert.Equal(t, 2, unresolved)

	owner, ok := channel.Frame()
	require.True(t, ok)
	assert.Same(t, frame1, owner)
}

func TestMaterializeOncePerFingerprint(t *testing.T) {
	testlog.Start(t)
	files := manyLogicalFiles(t)
	f2 := files[1]
	fp := fingerprint.Of("CHANNEL", "CH07", 10, 0)

	const callers = 16
	got := make([]objects.Object, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i], _ = f2.Lookup(fp)
		}()
	}
	wg.Wait()
	require.NotNil(t, got[0])
	for _, obj := range got[1:] {
		assert.Same(t, got[0], obj)
	}
	again, err := f2.Object("CHANNEL", "CH07", 10, 0)
	require.NoError(t, err)
	assert.Same(t, got[0], again)
	assert.Equal(t, got[0].Fields().Fields(), again.Fields().Fields())
}

func TestRedeclarationKeepsLastOccurrence(t *testing.T) {
	testlog.Start(t)
	s := fixture.Stream(t, fixture.FileHeader(), fixture.Channel(), fixture.ChannelSameObjects())
	files, err := Partition(s)
	require.NoError(t, err)
	require.Len(t, files, 1)
	lf := files[0]

	channels := lf.Channels()
	require.Len(t, channels, 4)
	assert.Equal(t, "CHANN1", channels[0].Name())
	assert.Equal(t, []int64{1}, channels[0].Dimension())
	assert.Empty(t, channels[0].LongName(), "attic replaced in full")
	assert.Equal(t, 2, lf.Occurrences(channels[0].Fingerprint()))
	assert.Equal(t, []string{"CHANNEL:CHANN1(10,0)"}, lf.Describe().Redeclared)
}

func TestMatch(t *testing.T) {
	testlog.Start(t)
	files := manyLogicalFiles(t)

	got, err := files[1].Match("channel", "CH0[1-3]")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "CH01", got[0].Header().Name)

	got, err = files[1].Match("", "FRAME.*")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = files[1].Match("(", "")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	testlog.Start(t)
	files := manyLogicalFiles(t)

	sum := files[1].Describe()
	assert.Equal(t, 1, sum.Seq)
	assert.Equal(t, "some logical file", sum.ID)
	assert.Equal(t, "8", sum.SequenceNumber)
	assert.Equal(t, 5, sum.Explicit)
	assert.Equal(t, map[string]int{"FRAME:FRAME-REPRCODE(10,0)": 2}, sum.FrameData)
	assert.Equal(t, 27, sum.Objects["CHANNEL"])
	assert.Equal(t, 3, sum.Objects["FRAME"])
	assert.Equal(t, map[string]int{"unresolved-link": 4}, sum.Discrepancies)

	sums := Summaries(files)
	require.Len(t, sums, 3)
	assert.Empty(t, sums[0].ID)
	assert.Empty(t, sums[0].Discrepancies)
	assert.Equal(t, []string{"FILE-HEADER"}, files[2].Types())
}

func TestDescribeCountsFramesByIdentity(t *testing.T) {
	testlog.Start(t)
	other := fixture.FdataReprcode()
	other[0].Frame.Origin = 11
	s := fixture.Stream(t,
		fixture.FileHeader(),
		fixture.FdataReprcode(),
		other,
		fixture.FdataReprcode(),
	)
	files, err := Partition(s)
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, map[string]int{
		"FRAME:FRAME-REPRCODE(10,0)": 2,
		"FRAME:FRAME-REPRCODE(11,0)": 1,
	}, files[0].Describe().FrameData)
}

func TestLoadAll(t *testing.T) {
	testlog.Start(t)
	files := manyLogicalFiles(t)

	require.NoError(t, LoadAll(context.Background(), files, 4))
	for _, lf := range files {
		for _, fp := range lf.Fingerprints() {
			first, ok := lf.Lookup(fp)
			require.True(t, ok)
			second, _ := lf.Lookup(fp)
			assert.Same(t, first, second)
		}
	}
}

func TestLoadAllStopsOnCancel(t *testing.T) {
	testlog.Start(t)
	files := manyLogicalFiles(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := LoadAll(ctx, files, 2)
	assert.ErrorIs(t, err, context.Canceled)

	obj, err := files[1].Object("FRAME", "FRAME-REPRCODE", 10, 0)
	require.NoError(t, err)
	assert.Len(t, obj.(*objects.Frame).Channels(), 27)
}
