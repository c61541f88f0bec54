package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	BlogGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blogai", Name: "blog_generations_total", Help: "Number of blog generation requests by result."},
		[]string{"result"},
	)
	ModelCallDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: "blogai", Name: "model_call_duration_seconds", Help: "Latency of language model calls.", Buckets: prometheus.ExponentialBuckets(0.5, 2, 10)},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blogai", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blogai", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

// Generation results.
const (
	ResultSaved         = "saved"
	ResultInvalidJSON   = "invalid_json"
	ResultInvalidSchema = "invalid_schema"
	ResultError         = "error"
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(BlogGenerations)
	reg.MustRegister(ModelCallDuration)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
