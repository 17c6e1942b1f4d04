package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "art_auction",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "art_auction",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "art_auction",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	bidsPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "art_auction",
			Subsystem: "bidding",
			Name:      "bids_total",
			Help:      "Bid placements by result.",
		},
		[]string{"result"},
	)

	auctionsClosed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "art_auction",
			Subsystem: "bidding",
			Name:      "auctions_closed_total",
			Help:      "Auctions closed because a bid met the reserve.",
		},
	)

	bidDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "art_auction",
			Subsystem: "bidding",
			Name:      "placement_duration_seconds",
			Help:      "Duration of bid placement including the ledger transaction.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		bidsPlaced,
		auctionsClosed,
		bidDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per matched route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordBid records a placement result ("accepted", "too_low", "no_auction", "invalid", "error").
func RecordBid(result string, duration time.Duration) {
	if duration <= 0 {
		duration = time.Millisecond
	}
	bidsPlaced.WithLabelValues(result).Inc()
	bidDuration.Observe(duration.Seconds())
}

func RecordAuctionClosed() {
	auctionsClosed.Inc()
}
