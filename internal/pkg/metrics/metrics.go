package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sit",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sit",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	WebsocketConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "sit",
		Name:      "websocket_connections",
		Help:      "Open notification websocket connections.",
	})

	NotificationsBroadcast = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sit",
		Name:      "notifications_broadcast_total",
		Help:      "Notifications pushed to websocket clients.",
	})

	UploadedFiles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sit",
		Name:      "uploaded_files_total",
		Help:      "Stored uploads by kind.",
	}, []string{"kind"})

	JobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sit",
		Name:      "job_runs_total",
		Help:      "Background job executions by job and result.",
	}, []string{"job", "result"})

	JobDeletedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sit",
		Name:      "job_deleted_rows_total",
		Help:      "Rows purged by cleanup jobs.",
	}, []string{"job"})
)
