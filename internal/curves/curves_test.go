package curves

import (
	"sync"
	"testing"

	"github.com/danmuck/welllog/internal/logical"
	"github.com/danmuck/welllog/internal/objects"
	"github.com/danmuck/welllog/internal/record"
	"github.com/danmuck/welllog/internal/testutil/fixture"
	"github.com/danmuck/welllog/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reprcodeFile(t *testing.T, parts ...fixture.Part) *logical.LogicalFile {
	t.Helper()
	base := []fixture.Part{
		fixture.FileHeader(),
		fixture.Origin2(),
		fixture.ChannelReprcode(),
		fixture.FrameReprcode(),
	}
	files, err := logical.Partition(fixture.Stream(t, append(base, parts...)...))
	require.NoError(t, err)
	require.Len(t, files, 1)
	return files[0]
}

func reprcodeFrame(t *testing.T, lf *logical.LogicalFile) *objects.Frame {
	t.Helper()
	obj, err := lf.Object("FRAME", "FRAME-REPRCODE", fixture.DefiningOrigin, 0)
	require.NoError(t, err)
	return obj.(*objects.Frame)
}

func TestAssembleByChannelAndRow(t *testing.T) {
	testlog.Start(t)
	lf := reprcodeFile(t, fixture.FdataReprcode(), fixture.Frame(), fixture.FdataReprcode())

	c, err := Assemble(lf, reprcodeFrame(t, lf))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Len(t, c.Channels(), fixture.ReprcodeChannels)
	assert.Equal(t, []int64{1, 1}, c.FrameNumbers())

	assert.Equal(t, record.Float(153.0), c.Column("CH01")[0][0])
	assert.Equal(t, record.Float(153.0), c.Row(0)["CH01"][0])
	assert.Equal(t, record.Float(153.0), c.Column("CH01")[1][0])
	assert.Equal(t, record.Float(153.0), c.Row(1)["CH01"][0])
	assert.Equal(t, record.Int(27), c.Row(1)["CH27"][0])

	assert.Nil(t, c.Column("CHANN1"))
}

func TestAssembleFrameWithoutData(t *testing.T) {
	testlog.Start(t)
	lf := reprcodeFile(t, fixture.Frame())
	obj, err := lf.Object("FRAME", "FRAME1", fixture.DefiningOrigin, 0)
	require.NoError(t, err)

	c, err := Assemble(lf, obj.(*objects.Frame))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, []string{"CHANN1", "CHANN2"}, c.Channels())
}

func TestAssembleRejectsShortRows(t *testing.T) {
	testlog.Start(t)
	short := fixture.FdataReprcode()
	short[0].Samples = short[0].Samples[:3]
	lf := reprcodeFile(t, short)

	_, err := Assemble(lf, reprcodeFrame(t, lf))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSampleCount)
}

func TestAssembleConcurrently(t *testing.T) {
	testlog.Start(t)
	lf := reprcodeFile(t, fixture.FdataReprcode(), fixture.FdataReprcode(), fixture.FdataReprcode())
	frame := reprcodeFrame(t, lf)

	var wg sync.WaitGroup
	results := make([]*Curves, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := Assemble(lf, frame)
			assert.NoError(t, err)
			results[i] = c
		}()
	}
	wg.Wait()
	for _, c := range results {
		require.NotNil(t, c)
		assert.Equal(t, 3, c.Len())
		assert.Equal(t, results[0].Column("CH05"), c.Column("CH05"))
	}
}
