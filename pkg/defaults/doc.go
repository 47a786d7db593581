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

// Package defaults provides centralized configuration constants for the romanos service.
//
// This package defines timeout values, rate limits and other configuration
// defaults used across the codebase. Centralizing these values ensures
// consistency and makes tuning easier.
//
// # Categories
//
//   - Handler settings: Cache lifetime of conversion responses
//   - Server timeouts: For HTTP server configuration
//   - Server limits: Header sizes and CORS preflight caching
//   - Rate limiting: Token bucket rate and burst
//
// # Usage
//
//	import "github.com/numeralia/romanos/pkg/defaults"
//
//	srv := &http.Server{
//	    ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
//	    WriteTimeout:      defaults.ServerWriteTimeout,
//	}
//
// # Guidelines
//
//   - Read header timeout stays below the read timeout
//   - Write timeout stays below the idle timeout
//   - Server shutdown: 30s for graceful shutdown
package defaults
