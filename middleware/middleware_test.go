package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterLocalBudget(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{Requests: 3, Window: time.Minute}, StrategyIP)
	r := newTestEngine(limiter.Middleware())

	for i := 0; i < 3; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Error: ")
}

func TestRateLimiterKeysByForwardedIP(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute}, StrategyIP)
	r := newTestEngine(limiter.Middleware())

	first := httptest.NewRequest(http.MethodGet, "/ping", nil)
	first.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1")
	assert.Equal(t, http.StatusOK, serve(r, first).Code)

	other := httptest.NewRequest(http.MethodGet, "/ping", nil)
	other.Header.Set("X-Forwarded-For", "10.0.0.2")
	assert.Equal(t, http.StatusOK, serve(r, other).Code)

	again := httptest.NewRequest(http.MethodGet, "/ping", nil)
	again.Header.Set("X-Forwarded-For", "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, serve(r, again).Code)
}

func TestRateLimiterSkipPaths(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{
		Requests:  1,
		Window:    time.Minute,
		SkipPaths: []string{"/health"},
	}, StrategyIP)
	r := newTestEngine(limiter.Middleware())

	for i := 0; i < 5; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestCORSAllowedAndRejectedOrigins(t *testing.T) {
	r := newTestEngine(CORSMiddleware([]string{"https://relief.example.org", "*.gov.example"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://relief.example.org")
	w := serve(r, req)
	assert.Equal(t, "https://relief.example.org", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://ndma.gov.example")
	w = serve(r, req)
	assert.Equal(t, "https://ndma.gov.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSWildcardOmitsCredentials(t *testing.T) {
	r := newTestEngine(CORSMiddleware(nil))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://anywhere.example.net")
	w := serve(r, req)
	assert.Equal(t, "https://anywhere.example.net", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestExtractToken(t *testing.T) {
	cases := []struct {
		name  string
		setup func(*http.Request)
		want  string
	}{
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc.def") }, "abc.def"},
		{"lowercase scheme", func(r *http.Request) { r.Header.Set("Authorization", "bearer xyz") }, "xyz"},
		{"query parameter", func(r *http.Request) { r.URL.RawQuery = "token=from-query" }, "from-query"},
		{"cookie ignored", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "auth_token", Value: "from-cookie"}) }, ""},
		{"basic auth ignored", func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcg==") }, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			tc.setup(req)

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = req
			assert.Equal(t, tc.want, ExtractToken(c))
		})
	}
}
