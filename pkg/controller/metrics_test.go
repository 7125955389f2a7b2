package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/pkg/controller"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_ObservesByMethodAndCode(t *testing.T) {
	reg := prometheus.NewRegistry()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
		}
	})
	handler := controller.WithMetrics(reg)(next)

	for _, method := range []string{http.MethodGet, http.MethodGet, http.MethodDelete} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(method, "/v1/regions", nil))
	}

	// one series per (method, code) pair
	require.Equal(t, 2, testutil.CollectAndCount(reg, "backoffice_http_request_duration_seconds"))
}
