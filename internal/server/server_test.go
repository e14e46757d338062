package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/farellandr/airport-service/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		HTTP: config.HTTP{Port: "0", GinMode: gin.TestMode},
		JWT:  config.JWT{Secret: "secret", AccessTTL: time.Minute, RefreshTTL: time.Hour},
		Upload: config.Upload{
			Dir:          t.TempDir(),
			MediaURL:     "/uploads",
			MaxSizeBytes: 1024,
		},
	}
}

// Every request below is answered before a repository is touched, so no database is needed.
func TestRouter(t *testing.T) {
	r := NewRouter(testConfig(t), nil)

	testCases := []struct {
		name   string
		method string
		path   string
		header string
		want   int
	}{
		{name: "health", method: http.MethodGet, path: "/health", want: http.StatusOK},
		{name: "health ignores bad tokens", method: http.MethodGet, path: "/health", header: "Bearer nope", want: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", want: http.StatusOK},
		{name: "profile requires auth", method: http.MethodGet, path: "/api/user/me", want: http.StatusUnauthorized},
		{name: "orders require auth", method: http.MethodPost, path: "/api/airport/orders", want: http.StatusUnauthorized},
		{name: "catalog requires auth", method: http.MethodGet, path: "/api/airport/crews", want: http.StatusUnauthorized},
		{name: "bad token rejected", method: http.MethodGet, path: "/api/airport/flights", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "unknown route", method: http.MethodGet, path: "/api/airport/nowhere", want: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(""))
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}
