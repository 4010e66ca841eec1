package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/osdatum/server/internal/config"
)

func newCORSRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AllowedOrigins: []string{
			"http://localhost:5173",
			"https://osdatum-*.vercel.app",
		},
	}

	router := gin.New()
	router.Use(CORSMiddleware(cfg))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	return router
}

func TestCORSMiddleware(t *testing.T) {
	router := newCORSRouter()

	tests := []struct {
		name       string
		origin     string
		wantStatus int
	}{
		{"no origin header", "", http.StatusOK},
		{"exact origin", "http://localhost:5173", http.StatusOK},
		{"wildcard preview deployment", "https://osdatum-pr-42.vercel.app", http.StatusOK},
		{"disallowed origin", "https://evil.example.com", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK && tt.origin != "" {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	router := newCORSRouter()

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
