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

// Package server provides the reusable HTTP server behind the romanos API.
//
// Callers register their own handlers; the server supplies the middleware
// chain, system endpoints, CORS and graceful shutdown.
//
// # Architecture
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking (github.com/google/uuid)
//   - API version negotiation via the Accept header
//   - Panic recovery for resilience
//   - CORS handling (github.com/rs/cors)
//   - Prometheus RED metrics (github.com/prometheus/client_golang)
//   - Graceful shutdown on SIGINT/SIGTERM (golang.org/x/sync/errgroup)
//
// # Usage
//
//	s := server.New(
//	    server.WithName("romanosd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/a2r": convert.HandleArabicToRoman,
//	        "/r2a": convert.HandleRomanToArabic,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// A "/" handler is added unless one is supplied. It serves the service index
// at GET / and answers every unmatched path with 404 NOT_FOUND.
//
// # System Endpoints
//
// These bypass rate limiting and cannot be overridden:
//
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 until Start is called and after Shutdown
//	GET /metrics  Prometheus exposition
//
// # Configuration
//
// NewConfig reads defaults from pkg/defaults and overrides them from:
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget (default 30)
//	RATE_LIMIT                sustained requests per second (default 100)
//	RATE_LIMIT_BURST          token bucket size (default 200)
//	CORS_ALLOWED_ORIGINS      comma separated origins (default *)
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	Invalid or missing IDs are replaced with a generated one, returned in
//	the X-Request-Id response header and included in error responses.
//
// Rate Limiting:
//
//	X-RateLimit-Limit: Requests allowed per second
//	X-RateLimit-Remaining: Tokens left in the bucket
//	X-RateLimit-Reset: Unix timestamp when the bucket refills
//
//	When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_NUMERAL",
//	  "message": "invalid roman parameter",
//	  "error": "not a canonical Roman numeral: \"IIII\"",
//	  "details": {"parameter": "roman", "value": "IIII"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Status codes are derived from pkg/errors codes by HTTPStatusFromCode.
package server
