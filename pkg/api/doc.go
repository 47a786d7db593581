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

// Package api wires the conversion handlers into the reusable pkg/server
// and runs the romanosd HTTP service.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /a2r?arabic=<1-3999>  Arabic to Roman
//   - GET /r2a?roman=<numeral>  Roman to Arabic
//   - GET /v1/a2r, GET /v1/r2a  versioned aliases
//   - GET /                     service index
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// Environment variables are read by pkg/server (PORT, RATE_LIMIT, ...) and
// pkg/logging (LOG_LEVEL).
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/numeralia/romanos/pkg/api.version=1.0.0'"
package api
