package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	// ScoreValue is the distribution of 0-100 scores emitted by each scorer.
	ScoreValue = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "placement_score_value",
			Help:    "Scores produced by placement scorers",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
		[]string{"scorer"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placement_notifications_total",
			Help: "Notifications dispatched by channel and outcome",
		},
		[]string{"channel", "status"},
	)

	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "database_query_duration_seconds",
			Help: "Catalog query latency by query type",
		},
		[]string{"query_type"},
	)

	SearchQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "search_query_duration_seconds",
			Help: "Elasticsearch query latency by index",
		},
		[]string{"index"},
	)
)

// ObserveJob records completion or failure of one job. An empty errorCode means success.
func ObserveJob(taskType, errorCode string, seconds float64) {
	WorkerJobDuration.WithLabelValues(taskType).Observe(seconds)
	if errorCode == "" {
		WorkerJobsCompleted.WithLabelValues(taskType).Inc()
		return
	}
	WorkerJobsFailed.WithLabelValues(taskType, errorCode).Inc()
}
