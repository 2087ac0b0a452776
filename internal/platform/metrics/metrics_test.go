package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordOnInjectedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementDraftsCreated()
	m.IncrementDraftsCreated()
	m.IncrementDraftsDiscarded()
	m.IncrementValidationFailure("missing_child_dob")
	m.ObserveSubmission("success", 120*time.Millisecond)
	m.ObserveSubmission("rejected", 80*time.Millisecond)
	m.ObserveRequest("POST", "/v1/drafts", "201", 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DraftsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DraftsDiscarded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("missing_child_dob")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("rejected")))

	count, err := testutil.GatherAndCount(reg, "registration_submit_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewTwiceOnSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
