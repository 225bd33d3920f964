package monitoring

import (
	"strconv"
	"strings"
	"time"

	"woorkins_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector holds the service's Prometheus metrics on its own
// registry.
type MetricsCollector struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	paymentsCreated     *prometheus.CounterVec
	processorCalls      *prometheus.HistogramVec
	ledgerCredits       *prometheus.CounterVec
	creditingIncomplete *prometheus.CounterVec
}

var _ interfaces.IPaymentMetrics = (*MetricsCollector)(nil)

func NewMetricsCollector(serviceName string) *MetricsCollector {
	ns := strings.ReplaceAll(serviceName, "-", "_")
	mc := &MetricsCollector{registry: prometheus.NewRegistry()}

	mc.httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: ns + "_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "endpoint", "status"})
	mc.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    ns + "_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})
	mc.paymentsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: ns + "_payments_created_total",
		Help: "Charges accepted by the payment processor",
	}, []string{"method", "target", "processor_status"})
	mc.processorCalls = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    ns + "_processor_call_duration_seconds",
		Help:    "Payment processor call latency",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30},
	}, []string{"operation", "outcome"})
	mc.ledgerCredits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: ns + "_ledger_credits_total",
		Help: "Balance credits applied",
	}, []string{"target"})
	mc.creditingIncomplete = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: ns + "_crediting_incomplete_total",
		Help: "Charges whose ledger effects need reconciliation",
	}, []string{"target"})

	mc.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		mc.httpRequestsTotal,
		mc.httpRequestDuration,
		mc.paymentsCreated,
		mc.processorCalls,
		mc.ledgerCredits,
		mc.creditingIncomplete,
	)
	return mc
}

func (mc *MetricsCollector) PaymentCreated(method, target, processorStatus string) {
	mc.paymentsCreated.WithLabelValues(method, target, processorStatus).Inc()
}

func (mc *MetricsCollector) ProcessorCall(operation, outcome string, elapsed time.Duration) {
	mc.processorCalls.WithLabelValues(operation, outcome).Observe(elapsed.Seconds())
}

func (mc *MetricsCollector) LedgerCredited(target string) {
	mc.ledgerCredits.WithLabelValues(target).Inc()
}

func (mc *MetricsCollector) CreditingIncomplete(target string) {
	mc.creditingIncomplete.WithLabelValues(target).Inc()
}

// MetricsMiddleware records per-route HTTP metrics.
func (mc *MetricsCollector) MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())
		mc.httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		mc.httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (mc *MetricsCollector) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(mc.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
