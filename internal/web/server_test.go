package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/JonMunkholm/storefront/internal/config"
	"github.com/JonMunkholm/storefront/internal/core"
	"github.com/JonMunkholm/storefront/internal/core/coretest"
	_ "github.com/JonMunkholm/storefront/internal/core/industries"
)

const testAPIKey = "test-api-key"

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{RequestTimeout: 5 * time.Second},
		Form:   config.FormConfig{MaxBytes: 1 << 20, MaxCatalogItems: 10},
		Session: config.SessionConfig{
			Secret: strings.Repeat("k", config.MinSessionSecretLen),
			MaxAge: time.Hour,
		},
		Security: config.SecurityConfig{
			EnableCSP:     true,
			RequireAPIKey: true,
			APIKeys:       []string{testAPIKey},
		},
	}
}

func newTestServer(t *testing.T, mutate ...func(*config.Config)) (*Server, *coretest.MemoryRepository) {
	t.Helper()
	cfg := testConfig()
	for _, fn := range mutate {
		fn(cfg)
	}

	repo := coretest.NewMemoryRepository()
	svc := core.NewService(repo, core.ServiceOptions{
		MaxCatalogItems: cfg.Form.MaxCatalogItems,
		Now:             func() time.Time { return testNow },
	})
	s := NewServer(svc, cfg)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s, repo
}

type testRequest struct {
	method  string
	target  string
	body    string
	form    url.Values
	cookies []*http.Cookie
	headers map[string]string
}

func (s *Server) do(t *testing.T, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	switch {
	case tr.form != nil:
		body = strings.NewReader(tr.form.Encode())
	case tr.body != "":
		body = strings.NewReader(tr.body)
	}

	req := httptest.NewRequest(tr.method, tr.target, body)
	req.RemoteAddr = "203.0.113.10:40000"
	if tr.form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range tr.headers {
		req.Header.Set(k, v)
	}
	for _, c := range tr.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func validShopForm(industry string) url.Values {
	return url.Values{
		"shopName":      {"Cafe A"},
		"industry":      {industry},
		"description":   {"Coffee and light meals"},
		"established":   {"1999"},
		"prefecture":    {"東京"},
		"city":          {"渋谷区"},
		"streetAddress": {"神南1-2-3"},
		"openingTime":   {"09:00"},
		"closingTime":   {"18:00"},
		"parking":       {"nearby"},
		"websiteUrl":    {""},
	}
}

// register submits the shop form and returns the registration cookie.
func register(t *testing.T, s *Server, industry string) []*http.Cookie {
	t.Helper()
	rec := s.do(t, testRequest{method: http.MethodPost, target: "/form", form: validShopForm(industry)})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("POST /form status = %d, body = %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("POST /form set no session cookie")
	}
	return cookies
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestIndexRedirectsToForm(t *testing.T) {
	s, _ := newTestServer(t)

	rec := s.do(t, testRequest{method: http.MethodGet, target: "/"})

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/form" {
		t.Errorf("GET / = %d %q, want 302 /form", rec.Code, rec.Header().Get("Location"))
	}
}

func TestHealth(t *testing.T) {
	s, repo := newTestServer(t)

	rec := s.do(t, testRequest{method: http.MethodGet, target: "/healthz"})
	if rec.Code != http.StatusOK {
		t.Errorf("healthy status = %d", rec.Code)
	}

	repo.FailOn("Ping", nil)
	rec = s.do(t, testRequest{method: http.MethodGet, target: "/healthz"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("unhealthy status = %d", rec.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	tests := []struct {
		name    string
		csp     bool
		wantCSP bool
	}{
		{"csp enabled", true, true},
		{"csp disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t, func(c *config.Config) { c.Security.EnableCSP = tt.csp })

			rec := s.do(t, testRequest{method: http.MethodGet, target: "/form"})

			if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("missing nosniff")
			}
			if rec.Header().Get("X-Frame-Options") != "DENY" {
				t.Error("missing X-Frame-Options")
			}
			if got := rec.Header().Get("Content-Security-Policy") != ""; got != tt.wantCSP {
				t.Errorf("CSP present = %v, want %v", got, tt.wantCSP)
			}
		})
	}
}

func TestStaticFiles(t *testing.T) {
	s, _ := newTestServer(t)

	for _, path := range []string{"/static/catalog.js", "/static/style.css"} {
		t.Run(path, func(t *testing.T) {
			rec := s.do(t, testRequest{method: http.MethodGet, target: path})
			if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
				t.Errorf("GET %s = %d (%d bytes)", path, rec.Code, rec.Body.Len())
			}
		})
	}
}

func TestRateLimiterWindow(t *testing.T) {
	rl := newRateLimiter(2, time.Minute)
	defer rl.stop()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	steps := []struct {
		ip      string
		advance time.Duration
		want    bool
	}{
		{"a", 0, true},
		{"a", 0, true},
		{"a", 0, false},
		{"b", 0, true},
		{"a", 61 * time.Second, true},
	}
	for i, st := range steps {
		now = now.Add(st.advance)
		if got := rl.allow(st.ip); got != st.want {
			t.Errorf("step %d: allow(%q) = %v, want %v", i, st.ip, got, st.want)
		}
	}

	rl.stop() // second stop is a no-op
}

func TestSubmitRateLimit(t *testing.T) {
	s, repo := newTestServer(t, func(c *config.Config) {
		c.Rate = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 100, SubmitLimit: 1}
	})

	first := s.do(t, testRequest{method: http.MethodPost, target: "/form", form: validShopForm("retail")})
	if first.Code != http.StatusSeeOther {
		t.Fatalf("first submit = %d", first.Code)
	}

	second := s.do(t, testRequest{method: http.MethodPost, target: "/form", form: validShopForm("retail")})
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second submit = %d, want 429", second.Code)
	}
	if second.Header().Get("Retry-After") != "60" {
		t.Errorf("Retry-After = %q", second.Header().Get("Retry-After"))
	}
	if len(repo.Stores()) != 1 {
		t.Errorf("stores = %d, want 1", len(repo.Stores()))
	}

	// Page views use the general limit.
	if rec := s.do(t, testRequest{method: http.MethodGet, target: "/form"}); rec.Code != http.StatusOK {
		t.Errorf("GET /form = %d", rec.Code)
	}
}
