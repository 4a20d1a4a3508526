package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storably/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limiterTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func limiterGet(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitPerIP(t *testing.T) {
	config.AppConfig.MaxRequestsPerMin = 2
	defer func() { config.AppConfig.MaxRequestsPerMin = 0 }()
	r := limiterTestRouter()

	assert.Equal(t, http.StatusOK, limiterGet(r, "10.9.0.1:5000"))
	assert.Equal(t, http.StatusOK, limiterGet(r, "10.9.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, limiterGet(r, "10.9.0.1:5000"))

	// A different client has its own budget.
	assert.Equal(t, http.StatusOK, limiterGet(r, "10.9.0.2:5000"))
}
