package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordLoad(t *testing.T) {
	before := testutil.ToFloat64(loadsCounter.WithLabelValues("teams", OutcomeDecode))
	RecordLoad("teams", OutcomeDecode, 20*time.Millisecond)
	RecordLoad("teams", OutcomeDecode, 0)

	assert.Equal(t, before+2, testutil.ToFloat64(loadsCounter.WithLabelValues("teams", OutcomeDecode)))
	assert.Positive(t, testutil.CollectAndCount(fetchSeconds))
}

func TestMountedGauge(t *testing.T) {
	before := testutil.ToFloat64(mountedGauge.WithLabelValues("users"))
	ViewMounted("users")
	ViewMounted("users")
	ViewUnmounted("users")

	assert.Equal(t, before+1, testutil.ToFloat64(mountedGauge.WithLabelValues("users")))
}
