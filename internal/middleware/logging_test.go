package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRequest_RequestID(t *testing.T) {
	handler := LogRequest()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/workout/today", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	_, err := uuid.Parse(rr.Header().Get(RequestIDHeader))
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/workout/today", nil)
	req.Header.Set(RequestIDHeader, "from-proxy")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "from-proxy", rr.Header().Get(RequestIDHeader))
}
