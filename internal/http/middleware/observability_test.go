package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"bloomnet-dispatch/internal/logx"
)

func TestObservability_UsesRoutePatternForLabels(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := newHTTPMetrics(reg)

	r := chi.NewRouter()
	r.Use(observe(logx.Nop(), metrics))
	r.Get("/donation/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/donation/123", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	got := testutil.ToFloat64(metrics.requestsTotal.WithLabelValues(http.MethodGet, "/donation/{id}", "204"))
	require.Equal(t, float64(1), got, "counter must use the route pattern label")

	count := histogramCount(t, metrics.requestDuration, http.MethodGet, "/donation/{id}", "204")
	require.Equal(t, uint64(1), count)
}

func TestObservability_FallsBackToRawPathOutsideRouter(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := newHTTPMetrics(reg)

	h := observe(logx.Nop(), metrics)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/plain", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	got := testutil.ToFloat64(metrics.requestsTotal.WithLabelValues(http.MethodGet, "/plain", "200"))
	require.Equal(t, float64(1), got)
}

func histogramCount(t *testing.T, hv *prometheus.HistogramVec, method, path, status string) uint64 {
	t.Helper()

	obs, err := hv.GetMetricWithLabelValues(method, path, status)
	require.NoError(t, err)

	metric, ok := obs.(prometheus.Metric)
	require.True(t, ok, "must implement prometheus.Metric")

	m := &dto.Metric{}
	err = metric.Write(m)
	require.NoError(t, err)

	h := m.GetHistogram()
	require.NotNil(t, h)
	return h.GetSampleCount()
}
