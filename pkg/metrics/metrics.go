package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds the Prometheus collectors of the video service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration    *prometheus.HistogramVec
	RequestsInFlight   prometheus.Gauge
	UploadsTotal       prometheus.Counter
	ReactionsTotal     *prometheus.CounterVec
	SubscriptionsTotal *prometheus.CounterVec
	CommentsTotal      prometheus.Counter
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
}

// New create the collectors on a private registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "video_service_request_duration_seconds",
				Help:    "HTTP request duration in seconds, by route, method and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		RequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "video_service_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		}),
		UploadsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "video_service_uploads_total",
			Help: "Total videos uploaded.",
		}),
		ReactionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "video_service_reactions_total",
			Help: "Total reactions accepted, by kind.",
		}, []string{"kind"}),
		SubscriptionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "video_service_subscriptions_total",
			Help: "Total subscription changes, by action.",
		}, []string{"action"}),
		CommentsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "video_service_comments_total",
			Help: "Total comments added.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "video_service_name_cache_hits_total",
			Help: "Display name cache hits.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "video_service_name_cache_misses_total",
			Help: "Display name cache misses.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.RequestsInFlight,
		m.UploadsTotal,
		m.ReactionsTotal,
		m.SubscriptionsTotal,
		m.CommentsTotal,
		m.CacheHits,
		m.CacheMisses,
	)
	return m
}

// Upload count one uploaded video
func (m *Metrics) Upload() {
	if m == nil {
		return
	}
	m.UploadsTotal.Inc()
}

// Reaction count one accepted like or dislike
func (m *Metrics) Reaction(kind string) {
	if m == nil {
		return
	}
	m.ReactionsTotal.WithLabelValues(kind).Inc()
}

// Subscription count one subscribe or unsubscribe
func (m *Metrics) Subscription(action string) {
	if m == nil {
		return
	}
	m.SubscriptionsTotal.WithLabelValues(action).Inc()
}

// Comment count one comment
func (m *Metrics) Comment() {
	if m == nil {
		return
	}
	m.CommentsTotal.Inc()
}

// Cache record a name cache lookup
func (m *Metrics) Cache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.Inc()
		return
	}
	m.CacheMisses.Inc()
}

// Middleware records request duration and in-flight count
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil || c.Path() == "/metrics" {
			return c.Next()
		}

		method := string([]byte(c.Method()))
		m.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		// route pattern keeps label cardinality bounded
		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" {
			route = string([]byte(r.Path))
		}
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		m.RequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
		m.RequestsInFlight.Dec()
		return err
	}
}

// Handler serves the Prometheus /metrics endpoint via Fiber
func (m *Metrics) Handler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return func(c *fiber.Ctx) error {
		httpHandler(c.Context())
		return nil
	}
}
