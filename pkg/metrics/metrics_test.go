package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRegisterCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { RegisterCollectors(reg) })

	BlogGenerations.WithLabelValues(ResultSaved).Inc()
	ModelCallDuration.Observe(1.5)
	n, err := testutil.GatherAndCount(reg, "blogai_blog_generations_total", "blogai_model_call_duration_seconds")
	require.NoError(t, err)
	require.GreaterOrEqual(t, n, 2)
}
