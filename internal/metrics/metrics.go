// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tangbing-xm/tweet-feeds/internal/domain"
)

// Collector aggregates ingestion and HTTP telemetry. It satisfies
// service.Metrics and middleware.Recorder.
type Collector struct {
	ingestRuns      prometheus.Counter
	ingestDuration  prometheus.Histogram
	tweetsFetched   prometheus.Counter
	tweetsInserted  prometheus.Counter
	accountErrors   prometheus.Counter
	upstreamCalls   *prometheus.CounterVec
	upstreamLatency prometheus.Histogram
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// NewCollector registers all metrics on reg and returns the collector.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		ingestRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tweetfeeds_ingest_runs_total",
			Help: "Completed ingestion runs.",
		}),
		ingestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tweetfeeds_ingest_run_duration_seconds",
			Help:    "Wall-clock duration of ingestion runs.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		tweetsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tweetfeeds_tweets_fetched_total",
			Help: "Tweets returned by the upstream API across all runs.",
		}),
		tweetsInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tweetfeeds_tweets_inserted_total",
			Help: "Tweet rows attempted for insert (duplicates included).",
		}),
		accountErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tweetfeeds_account_errors_total",
			Help: "Per-account ingestion failures.",
		}),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tweetfeeds_upstream_requests_total",
			Help: "Upstream API calls by outcome.",
		}, []string{"outcome"}),
		upstreamLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tweetfeeds_upstream_request_duration_seconds",
			Help:    "Upstream API call latency.",
			Buckets: prometheus.DefBuckets,
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tweetfeeds_http_requests_total",
			Help: "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tweetfeeds_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.ingestRuns,
		c.ingestDuration,
		c.tweetsFetched,
		c.tweetsInserted,
		c.accountErrors,
		c.upstreamCalls,
		c.upstreamLatency,
		c.httpRequests,
		c.httpDuration,
	)

	return c
}

func (c *Collector) RecordIngestRun(stats *domain.IngestStats) {
	c.ingestRuns.Inc()
	c.ingestDuration.Observe(stats.Duration.Seconds())
	c.tweetsFetched.Add(float64(stats.Fetched))
	c.tweetsInserted.Add(float64(stats.Inserted))
	c.accountErrors.Add(float64(len(stats.Errors)))
}

func (c *Collector) RecordUpstreamRequest(outcome string, duration time.Duration) {
	c.upstreamCalls.WithLabelValues(outcome).Inc()
	c.upstreamLatency.Observe(duration.Seconds())
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
