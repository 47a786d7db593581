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
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	rnerrors "github.com/numeralia/romanos/pkg/errors"
	"github.com/numeralia/romanos/pkg/serializer"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// System endpoints are served without the API middleware chain.
var reservedPaths = map[string]bool{
	"/health":  true,
	"/ready":   true,
	"/metrics": true,
}

// IndexResponse describes the service at GET /.
type IndexResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Ready     bool     `json:"ready"`
	Timestamp string   `json:"timestamp"`
	Routes    []string `json:"routes"`
}

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	for path, handler := range s.config.Handlers {
		if reservedPaths[path] {
			slog.Warn("ignoring handler for reserved path", "path", path)
			continue
		}
		mux.HandleFunc(path, s.withMiddleware(handler))
	}

	return mux
}

// apiRoutes lists the registered API paths, sorted, without the index.
func (s *Server) apiRoutes() []string {
	routes := make([]string, 0, len(s.config.Handlers))
	for path := range s.config.Handlers {
		if path == "/" || reservedPaths[path] {
			continue
		}
		routes = append(routes, path)
	}
	slices.Sort(routes)
	return routes
}

// handleDefault serves the index at "/" and reports unknown paths.
func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, rnerrors.ErrCodeMethodNotAllowed,
			"method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, rnerrors.ErrCodeNotFound,
			"route not found", false, map[string]any{
				"path": r.URL.Path,
				"hint": "available routes: " + strings.Join(s.apiRoutes(), ", "),
			})
		return
	}

	routes := []string{}
	for _, p := range s.apiRoutes() {
		routes = append(routes, "GET "+p)
	}
	routes = append(routes, "GET /health", "GET /ready", "GET /metrics")

	resp := IndexResponse{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    routes,
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
