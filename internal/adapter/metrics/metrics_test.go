package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fincore/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func gaugeValue(t *testing.T, c *Collector, name, label string) float64 {
	t.Helper()
	families, err := c.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "name" && l.GetValue() == label {
					if m.GetGauge() != nil {
						return m.GetGauge().GetValue()
					}
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s{name=%q} not found", name, label)
	return 0
}

func TestCollector_OnTransition(t *testing.T) {
	c := NewCollector()

	c.OnTransition("stripe", domain.BreakerClosed, domain.BreakerOpen)
	assert.Equal(t, 2.0, gaugeValue(t, c, "circuit_breaker_state", "stripe"))

	c.OnTransition("stripe", domain.BreakerOpen, domain.BreakerHalfOpen)
	assert.Equal(t, 1.0, gaugeValue(t, c, "circuit_breaker_state", "stripe"))

	c.OnTransition("stripe", domain.BreakerHalfOpen, domain.BreakerClosed)
	assert.Equal(t, 0.0, gaugeValue(t, c, "circuit_breaker_state", "stripe"))
}

func TestCollector_HandlerExposesMetrics(t *testing.T) {
	c := NewCollector()
	c.RegisterEventBus(func() int64 { return 3 })
	c.OnTransition("mpesa", domain.BreakerClosed, domain.BreakerOpen)

	r := gin.New()
	r.Use(c.Middleware())
	r.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })
	r.GET("/metrics", c.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `circuit_breaker_state_transitions_total{from="closed",name="mpesa",to="open"} 1`)
	assert.Contains(t, body, "fincore_eventbus_dropped_total 3")
	assert.Contains(t, body, `fincore_http_requests_total{endpoint="/ping",method="GET",status="204"} 1`)
}
