package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/welllog/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	before := testutil.ToFloat64(discrepancies.WithLabelValues("type-mismatch"))
	RecordLogicalFile()
	RecordIndexed("explicit")
	RecordSkipped("encrypted")
	RecordMaterialized("CHANNEL", []string{"type-mismatch", "type-mismatch"})
	RecordDiscrepancy("unresolved-link")

	after := testutil.ToFloat64(discrepancies.WithLabelValues("type-mismatch"))
	assert.Equal(t, before+2, after)
	assert.GreaterOrEqual(t, testutil.ToFloat64(objectsMaterialized.WithLabelValues("CHANNEL")), 1.0)
}

func TestWriteTextfile(t *testing.T) {
	testlog.Start(t)
	RecordLogicalFile()
	path := filepath.Join(t.TempDir(), "welllog.prom")
	require.NoError(t, WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "welllog_partition_logical_files_total")
}
