package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTimeoutConfig(t *testing.T) {
	cfg := DefaultTimeoutConfig()

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "Request timeout", cfg.ErrorMessage)
	assert.Equal(t, []string{"/ws"}, cfg.ExcludedSuffixes)
}

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	waitForDeadline := func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
		case <-time.After(time.Second):
		}
	}

	tests := []struct {
		name       string
		path       string
		timeout    time.Duration
		handler    gin.HandlerFunc
		wantStatus int
	}{
		{
			name:    "fast request completes",
			path:    "/api/screens",
			timeout: time.Second,
			handler: func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "silent handler past deadline gets 504",
			path:       "/api/screens",
			timeout:    20 * time.Millisecond,
			handler:    waitForDeadline,
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:    "handler that wrote after deadline keeps its status",
			path:    "/api/screens",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
				c.JSON(http.StatusBadGateway, gin.H{"error": "gateway"})
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:    "websocket path has no deadline",
			path:    "/api/screens/abc/ws",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				_, hasDeadline := c.Request.Context().Deadline()
				if hasDeadline {
					c.Status(http.StatusTeapot)
					return
				}
				c.Status(http.StatusOK)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(TimeoutWithDuration(tt.timeout))
			router.GET("/*path", tt.handler)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestTimeout_LocalizedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(TimeoutWithDuration(10 * time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	req := httptest.NewRequest(http.MethodGet, "/slow", nil)
	req.Header.Set("Accept-Language", "en")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"timeout"`)
}
