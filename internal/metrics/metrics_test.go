package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_RecordsRoutePatternAndStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Delete("/history/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodDelete, "/history/{id}", "204"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/history/42", nil))

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodDelete, "/history/{id}", "204"))
	assert.Equal(t, before+1, after)
}

func TestGatewayRequestAndSubmission(t *testing.T) {
	before := testutil.ToFloat64(gatewayRequestsTotal.WithLabelValues("gemini", "json", "ok"))
	GatewayRequest("gemini", "json", "ok", 150*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(gatewayRequestsTotal.WithLabelValues("gemini", "json", "ok")))

	before = testutil.ToFloat64(submissionsTotal.WithLabelValues("explain", "success"))
	Submission("explain", "success")
	assert.Equal(t, before+1, testutil.ToFloat64(submissionsTotal.WithLabelValues("explain", "success")))

	HistoryEntries(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(historyEntries))
}
