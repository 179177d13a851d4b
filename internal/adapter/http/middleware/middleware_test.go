package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func TestCORSConfig(t *testing.T) {
	t.Run("empty allows all", func(t *testing.T) {
		cfg := CORSConfig("")
		if !cfg.AllowAllOrigins || len(cfg.AllowOrigins) != 0 {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("wildcard allows all", func(t *testing.T) {
		if cfg := CORSConfig(" * "); !cfg.AllowAllOrigins {
			t.Fatalf("expected allow all, got %+v", cfg)
		}
	})

	t.Run("explicit list", func(t *testing.T) {
		cfg := CORSConfig("https://app.example.com, ,http://localhost:3000")
		if cfg.AllowAllOrigins {
			t.Fatalf("expected explicit origins")
		}
		if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[0] != "https://app.example.com" || cfg.AllowOrigins[1] != "http://localhost:3000" {
			t.Fatalf("unexpected origins: %#v", cfg.AllowOrigins)
		}
	})
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")

	r := gin.New()
	r.Use(CORS())
	r.PATCH("/v1/quote-requests/:id/responses/:response_id/accept", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/v1/quote-requests/req-1/responses/resp-1/accept", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("unexpected allow origin: %q", got)
	}
}

func TestIPRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	do := func(r *gin.Engine, ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("burst then reject per ip", func(t *testing.T) {
		r := gin.New()
		r.Use(NewIPRateLimiter(rate.Limit(0.001), 2).RateLimit())
		r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		if do(r, "10.0.0.1") != http.StatusOK || do(r, "10.0.0.1") != http.StatusOK {
			t.Fatalf("expected burst to pass")
		}
		if code := do(r, "10.0.0.1"); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", code)
		}
		if code := do(r, "10.0.0.2"); code != http.StatusOK {
			t.Fatalf("expected other ip to pass, got %d", code)
		}
	})

	t.Run("zero rps disables limiting", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_RPS", "0")
		t.Setenv("RATE_LIMIT_BURST", "1")

		r := gin.New()
		r.Use(NewIPRateLimiterFromEnv().RateLimit())
		r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 5; i++ {
			if code := do(r, "10.0.0.3"); code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, code)
			}
		}
	})
}
