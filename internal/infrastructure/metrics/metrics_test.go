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

type fakeStore struct{ requests, responses int }

func (f fakeStore) Counts() (int, int) { return f.requests, f.responses }

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := New()
	m.RegisterQuoteStore(fakeStore{requests: 3, responses: 2})

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/v1/quote-requests/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/metrics", m.Handler())

	for _, path := range []string{"/v1/quote-requests/a", "/v1/quote-requests/b", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/v1/quote-requests/:id", "404")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	require.True(t, strings.Contains(body, "solar_quotes_quote_requests 3"), body)
	require.True(t, strings.Contains(body, "solar_quotes_quote_responses 2"), body)
	require.True(t, strings.Contains(body, "solar_quotes_http_request_duration_seconds"), body)
}
