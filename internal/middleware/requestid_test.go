package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func TestRequestIDGenerated(t *testing.T) {
	engine := newRequestIDEngine()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	rid := w.Header().Get(HeaderXRequestID)
	_, err := uuid.Parse(rid)
	require.NoError(t, err, "generated request id must be a UUID, got %q", rid)
}

func TestRequestIDKeepsWellFormedCallerID(t *testing.T) {
	engine := newRequestIDEngine()
	supplied := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderXRequestID, supplied)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, supplied, w.Header().Get(HeaderXRequestID))
}

func TestRequestIDReplacesMalformedCallerID(t *testing.T) {
	engine := newRequestIDEngine()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderXRequestID, "not-a-uuid")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	rid := w.Header().Get(HeaderXRequestID)
	assert.NotEqual(t, "not-a-uuid", rid)
	_, err := uuid.Parse(rid)
	assert.NoError(t, err)
}
