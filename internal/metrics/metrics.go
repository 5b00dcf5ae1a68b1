package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	requestCount          *prometheus.CounterVec
	applicationsSubmitted prometheus.Counter
	statusTransitions     *prometheus.CounterVec
	documentsUploaded     prometheus.Counter
	notificationsCreated  prometheus.Counter
}

// New creates a Metrics instance with its own registry.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		applicationsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scholarhub_applications_submitted_total",
			Help: "Total number of scholarship applications submitted.",
		}),
		statusTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scholarhub_application_status_transitions_total",
				Help: "Total number of application status transitions.",
			},
			[]string{"status"},
		),
		documentsUploaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scholarhub_documents_uploaded_total",
			Help: "Total number of supporting documents uploaded.",
		}),
		notificationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scholarhub_notifications_created_total",
			Help: "Total number of notifications created.",
		}),
	}

	collectors := []prometheus.Collector{
		m.requestCount,
		m.applicationsSubmitted,
		m.statusTransitions,
		m.documentsUploaded,
		m.notificationsCreated,
	}
	for _, c := range collectors {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// RequestCounter returns gin middleware counting requests by method, route and status.
func (m *Metrics) RequestCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		c.Next()

		// Use the route pattern (e.g. /applications/:id) instead of the raw path
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		m.requestCount.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

// ApplicationSubmitted increments the submitted-applications counter.
func (m *Metrics) ApplicationSubmitted() {
	m.applicationsSubmitted.Inc()
}

// StatusTransition increments the transition counter for the new status.
func (m *Metrics) StatusTransition(status string) {
	m.statusTransitions.WithLabelValues(status).Inc()
}

// DocumentUploaded increments the uploaded-documents counter.
func (m *Metrics) DocumentUploaded() {
	m.documentsUploaded.Inc()
}

// NotificationCreated increments the created-notifications counter.
func (m *Metrics) NotificationCreated() {
	m.notificationsCreated.Inc()
}

// NotificationsCreated adds n to the created-notifications counter. Used for
// broadcasts that fan out to many inboxes in one statement.
func (m *Metrics) NotificationsCreated(n int64) {
	m.notificationsCreated.Add(float64(n))
}
