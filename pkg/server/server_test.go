// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	rnerrors "github.com/numeralia/romanos/pkg/errors"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNew(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{"/a2r": okHandler}))
	if s == nil {
		t.Fatal("expected server instance, got nil")
		return
	}

	if s.config == nil {
		t.Error("expected config to be initialized")
	}
	if s.httpServer == nil {
		t.Error("expected httpServer to be initialized")
	}
	if s.rateLimiter == nil {
		t.Error("expected rateLimiter to be initialized")
	}
	if s.httpServer.MaxHeaderBytes == 0 {
		t.Error("expected MaxHeaderBytes to be set")
	}
	if s.httpServer.ReadHeaderTimeout == 0 {
		t.Error("expected ReadHeaderTimeout to be set")
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := New()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", w.Header().Get("Content-Type"))
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("expected status healthy, got %s", resp.Status)
	}
}

func TestHealthEndpointRejectsPost(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodPost, "/health", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
	if w.Header().Get("Allow") != http.MethodGet {
		t.Errorf("expected Allow: GET, got %q", w.Header().Get("Allow"))
	}
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	tests := []struct {
		name           string
		ready          bool
		expectedStatus int
		expectedState  string
	}{
		{"ready state", true, http.StatusOK, "ready"},
		{"not ready state", false, http.StatusServiceUnavailable, "not_ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetReady(tt.ready)

			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			w := httptest.NewRecorder()
			s.handleReady(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var resp HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode ready response: %v", err)
			}
			if resp.Status != tt.expectedState {
				t.Errorf("expected status %s, got %s", tt.expectedState, resp.Status)
			}
		})
	}
}

func TestRateLimiting(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	cfg.Handlers = map[string]http.HandlerFunc{"/a2r": okHandler}

	s := New(WithConfig(cfg))

	w1 := httptest.NewRecorder()
	s.Handler().ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/a2r", nil))
	if w1.Code != http.StatusOK {
		t.Errorf("expected first request to succeed with status 200, got %d", w1.Code)
	}

	w2 := httptest.NewRecorder()
	s.Handler().ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/a2r", nil))
	if w2.Code != http.StatusTooManyRequests {
		t.Errorf("expected rate limit error with status 429, got %d", w2.Code)
	}
	if w2.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header to be set")
	}

	// System endpoints bypass the limiter.
	w3 := httptest.NewRecorder()
	s.Handler().ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w3.Code != http.StatusOK {
		t.Errorf("expected /health to bypass rate limiting, got %d", w3.Code)
	}
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/a2r": okHandler,
		"/r2a": okHandler,
	}))

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/roman/12", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Code != string(rnerrors.ErrCodeNotFound) {
		t.Errorf("expected code %s, got %s", rnerrors.ErrCodeNotFound, resp.Code)
	}
	if resp.Error == "" {
		t.Error("expected error field to be set")
	}
	hint, _ := resp.Details["hint"].(string)
	if !strings.Contains(hint, "/a2r") || !strings.Contains(hint, "/r2a") {
		t.Errorf("expected hint to list /a2r and /r2a, got %q", hint)
	}
}

func TestDefaultRootHandler(t *testing.T) {
	s := New(
		WithName("romanos-test"),
		WithVersion("1.2.3"),
		WithHandler(map[string]http.HandlerFunc{"/r2a": okHandler, "/a2r": okHandler}),
	)

	handler := s.config.Handlers["/"]
	if handler == nil {
		t.Fatal("expected default root handler to be created")
	}

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp IndexResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode index: %v", err)
	}
	if resp.Name != "romanos-test" || resp.Version != "1.2.3" {
		t.Errorf("unexpected identity %s %s", resp.Name, resp.Version)
	}
	if len(resp.Routes) < 2 || resp.Routes[0] != "GET /a2r" || resp.Routes[1] != "GET /r2a" {
		t.Errorf("expected sorted API routes first, got %v", resp.Routes)
	}
}

func TestDefaultRootHandlerMethodNotAllowed(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	s.config.Handlers["/"](w, httptest.NewRequest(http.MethodPost, "/", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
	if w.Header().Get("Allow") != http.MethodGet {
		t.Errorf("expected Allow: GET, got %q", w.Header().Get("Allow"))
	}
}

func TestCustomRootHandlerNotOverridden(t *testing.T) {
	customCalled := false
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/": func(w http.ResponseWriter, _ *http.Request) {
			customCalled = true
			w.WriteHeader(http.StatusOK)
		},
	}))

	s.config.Handlers["/"](httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !customCalled {
		t.Error("expected custom root handler to be called, not default")
	}
}

func TestReservedPathsNotOverridden(t *testing.T) {
	called := false
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/health": func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusTeapot)
		},
	}))

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if called {
		t.Error("expected built-in /health handler to win")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

func TestCORS(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{"/a2r": okHandler}))

	t.Run("simple request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/a2r", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("expected Access-Control-Allow-Origin *, got %q", got)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/a2r", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)

		if w.Code >= 300 {
			t.Errorf("expected successful preflight, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("expected Access-Control-Allow-Origin *, got %q", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodGet) {
			t.Errorf("expected GET in Access-Control-Allow-Methods, got %q", got)
		}
	})

	t.Run("restricted origins", func(t *testing.T) {
		cfg := NewConfig()
		cfg.CORSAllowedOrigins = []string{"https://allowed.example"}
		restricted := New(WithConfig(cfg), WithHandler(map[string]http.HandlerFunc{"/a2r": okHandler}))

		req := httptest.NewRequest(http.MethodGet, "/a2r", nil)
		req.Header.Set("Origin", "https://other.example")
		w := httptest.NewRecorder()
		restricted.Handler().ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no Access-Control-Allow-Origin, got %q", got)
		}
	})
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{"/a2r": okHandler}))

	s.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/a2r", nil))

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "romanos_http_requests_total") {
		t.Error("expected romanos_http_requests_total in metrics output")
	}
}

func TestGracefulShutdown(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = 0
	cfg.ShutdownTimeout = 100 * time.Millisecond
	cfg.Handlers = map[string]http.HandlerFunc{"/a2r": okHandler}

	s := New(WithConfig(cfg))

	ctx, cancel := context.WithCancel(context.TODO())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errChan:
		if err != nil {
			t.Errorf("expected clean shutdown, got error: %v", err)
		}
	case <-time.After(time.Second):
		t.Error("shutdown timed out")
	}

	if s.isReady() {
		t.Error("expected server to be not ready after shutdown")
	}
}

func TestWithName(t *testing.T) {
	s := New(WithName("custom-api-server"))
	if s.config.Name != "custom-api-server" {
		t.Errorf("expected server name custom-api-server, got %s", s.config.Name)
	}
}

func TestWithHandlerMerges(t *testing.T) {
	s := New(
		WithHandler(map[string]http.HandlerFunc{"/a2r": okHandler}),
		WithHandler(map[string]http.HandlerFunc{"/r2a": okHandler}),
	)

	for _, path := range []string{"/a2r", "/r2a", "/"} {
		if _, exists := s.config.Handlers[path]; !exists {
			t.Errorf("expected %s handler to exist", path)
		}
	}
}

func TestWithConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Name = "test-server"
	cfg.Port = 9090
	cfg.RateLimit = 500

	s := New(WithConfig(cfg))

	if s.config.Name != "test-server" {
		t.Errorf("expected name test-server, got %s", s.config.Name)
	}
	if s.config.Port != 9090 {
		t.Errorf("expected port 9090, got %d", s.config.Port)
	}
	if s.config.RateLimit != 500 {
		t.Errorf("expected rate limit 500, got %v", s.config.RateLimit)
	}
	if s.httpServer.Addr != ":9090" {
		t.Errorf("expected addr :9090, got %s", s.httpServer.Addr)
	}
}

func TestDefaultServerName(t *testing.T) {
	s := New()
	if s.config.Name != "server" {
		t.Errorf("expected default name 'server', got %s", s.config.Name)
	}
}
