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

package defaults

import "time"

// Handler settings for HTTP request processing.
const (
	// ConversionCacheTTL is the Cache-Control max-age for conversion responses.
	// Conversions are pure so responses never go stale.
	ConversionCacheTTL = 24 * time.Hour
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server limits.
const (
	// ServerMaxHeaderBytes caps request header size; numerals fit in a few bytes.
	ServerMaxHeaderBytes = 16 << 10

	// CORSMaxAge is how long browsers may cache preflight results, in seconds.
	CORSMaxAge = 600
)

// Rate limiting defaults.
const (
	// RateLimit is the sustained request rate per second.
	RateLimit = 100

	// RateLimitBurst is the token bucket size.
	RateLimitBurst = 200
)
