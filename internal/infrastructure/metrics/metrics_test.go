package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounters(t *testing.T) {
	r := NewRecorder()
	r.Transition("invoice", "sent", true)
	r.Transition("invoice", "paid", false)
	r.Regeneration(true)
	r.Payment(false)

	require.Equal(t, 1.0, testutil.ToFloat64(r.transitions.WithLabelValues("invoice", "sent", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.transitions.WithLabelValues("invoice", "paid", "failed")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.regenerations.WithLabelValues("ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.payments.WithLabelValues("failed")))
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.Transition("quote", "cancelled", true)
	r.Regeneration(false)
	r.Payment(true)

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMiddlewareExposesRequestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRecorder()

	engine := gin.New()
	engine.Use(r.Middleware())
	engine.GET("/v1/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	engine.GET("/metrics", gin.WrapH(r.Handler()))

	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.Contains(w.Body.String(), `path="/v1/ping"`))
}
