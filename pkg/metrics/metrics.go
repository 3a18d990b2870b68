package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthpredict",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	httpLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "healthpredict",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	assessments = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthpredict",
		Name:      "assessments_total",
		Help:      "Completed assessments by disease and risk outcome.",
	}, []string{"disease", "risk"})

	predictorErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthpredict",
		Name:      "predictor_errors_total",
		Help:      "Failed calls to the prediction service by disease.",
	}, []string{"disease"})

	aiRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthpredict",
		Name:      "ai_requests_total",
		Help:      "LLM requests by service type and outcome (ok, cache_hit, error).",
	}, []string{"service_type", "outcome"})

	aiLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "healthpredict",
		Name:      "ai_generate_duration_seconds",
		Help:      "LLM generate latency by service type.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
	}, []string{"service_type"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpLatency, assessments, predictorErrors, aiRequests, aiLatency)
}

// Middleware 记录每个路由的请求数与耗时
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Handler /metrics 端点
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

func ObserveAssessment(disease, risk string) {
	assessments.WithLabelValues(disease, risk).Inc()
}

func ObservePredictorError(disease string) {
	predictorErrors.WithLabelValues(disease).Inc()
}

func ObserveAI(serviceType, outcome string, d time.Duration) {
	aiRequests.WithLabelValues(serviceType, outcome).Inc()
	if outcome != "cache_hit" && d > 0 {
		aiLatency.WithLabelValues(serviceType).Observe(d.Seconds())
	}
}
