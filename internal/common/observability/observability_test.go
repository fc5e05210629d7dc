package observability

import (
	"context"
	"testing"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobsProcessed(t *testing.T, reg *promclient.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]float64)
	for _, f := range families {
		if f.GetName() != "jobs_processed_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			out[labelValue(m, "task_type")+"/"+labelValue(m, "status")] = m.GetCounter().GetValue()
		}
	}
	return out
}

func labelValue(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}

func TestRecordJob_BeforeNewIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordJob(context.Background(), "predict-career-path", "completed", time.Millisecond)
	})
}

func TestNew_RecordsJobsAndSpans(t *testing.T) {
	reg := promclient.NewRegistry()
	obs, err := New(Config{ServiceName: "placement-test", Registerer: reg})
	require.NoError(t, err)
	defer obs.Shutdown(context.Background())

	ctx, span := StartSpan(context.Background(), "predict-career-path")
	RecordJob(ctx, "predict-career-path", "completed", 12*time.Millisecond)
	RecordJob(ctx, "predict-career-path", "completed", 8*time.Millisecond)
	RecordJob(ctx, "apply-to-employer", "SESSION_NOT_FOUND", 3*time.Millisecond)
	span.End()

	assert.True(t, span.SpanContext().IsValid())

	got := jobsProcessed(t, reg)
	assert.Equal(t, 2.0, got["predict-career-path/completed"])
	assert.Equal(t, 1.0, got["apply-to-employer/SESSION_NOT_FOUND"])
}
