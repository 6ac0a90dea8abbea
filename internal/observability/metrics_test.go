package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordSignup(t *testing.T) {
	RecordSignup("Metrics Test Club", 3)
	RecordSignup("Metrics Test Club", 4)

	require.Equal(t, 2.0, testutil.ToFloat64(signupCounter.WithLabelValues("Metrics Test Club")))
	require.Equal(t, 4.0, testutil.ToFloat64(rosterSizeGauge.WithLabelValues("Metrics Test Club")))
}

func TestRecordUnregister(t *testing.T) {
	RecordUnregister("Metrics Test Gym", 1)

	require.Equal(t, 1.0, testutil.ToFloat64(unregisterCounter.WithLabelValues("Metrics Test Gym")))
	require.Equal(t, 1.0, testutil.ToFloat64(rosterSizeGauge.WithLabelValues("Metrics Test Gym")))
}

func TestRecordRejected(t *testing.T) {
	RecordRejected("signup", "metrics_test_reason")

	require.Equal(t, 1.0, testutil.ToFloat64(rejectionCounter.WithLabelValues("signup", "metrics_test_reason")))
}
