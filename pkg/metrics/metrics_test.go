package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	m := NewManager()

	m.RecordHTTPRequest("/users", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.RecordHTTPRequest("/users", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.RecordHTTPRequest("/users/:id", http.MethodDelete, http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/users", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/users/:id", "DELETE", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpErrors.WithLabelValues("/users/:id", "DELETE", "not_found")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpErrors.WithLabelValues("/users", "GET", "unknown")))
}

func TestWithNamespace(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		want      string
	}{
		{name: "Plain", namespace: "custom", want: "custom_http_requests_total"},
		{name: "Service Name", namespace: "users-api.v2", want: "users_api_v2_http_requests_total"},
		{name: "Leading Digit", namespace: "9lives", want: "_9lives_http_requests_total"},
		{name: "Empty Keeps Default", namespace: "", want: "users_api_http_requests_total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(WithNamespace(tt.namespace))
			m.RecordHTTPRequest("/", http.MethodGet, http.StatusOK, time.Millisecond)

			families, err := m.registry.Gather()
			require.NoError(t, err)

			names := make([]string, 0, len(families))
			for _, f := range families {
				names = append(names, f.GetName())
			}
			assert.Contains(t, names, tt.want)
		})
	}
}

func TestHandler(t *testing.T) {
	m := NewManager()
	m.RecordHTTPRequest("/about", http.MethodGet, http.StatusOK, time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `users_api_http_requests_total{endpoint="/about",method="GET",status_code="200"} 1`)
}

func TestErrorType(t *testing.T) {
	assert.Equal(t, "server_error", ErrorType(500))
	assert.Equal(t, "rate_limit", ErrorType(429))
	assert.Equal(t, "not_found", ErrorType(404))
	assert.Equal(t, "client_error", ErrorType(400))
	assert.Equal(t, "unknown", ErrorType(200))
}
