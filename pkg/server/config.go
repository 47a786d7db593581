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
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/numeralia/romanos/pkg/defaults"
	"golang.org/x/time/rate"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Additional Handlers to be added to the server
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// CORSAllowedOrigins lists origins allowed by CORS; "*" allows any.
	CORSAllowedOrigins []string

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig returns sensible defaults overridden by environment variables
func parseConfig() *Config {
	cfg := &Config{
		Name:               "server",
		Version:            "undefined",
		Address:            "",
		Port:               8080,
		RateLimit:          defaults.RateLimit,
		RateLimitBurst:     defaults.RateLimitBurst,
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        defaults.ServerReadTimeout,
		ReadHeaderTimeout:  defaults.ServerReadHeaderTimeout,
		WriteTimeout:       defaults.ServerWriteTimeout,
		IdleTimeout:        defaults.ServerIdleTimeout,
		ShutdownTimeout:    defaults.ServerShutdownTimeout,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil && port > 0 && port < 65536 {
			cfg.Port = port
		}
	}

	// Allow customization of shutdown timeout to match the orchestrator's grace period
	if shutdownStr := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); shutdownStr != "" {
		var seconds int
		if _, err := fmt.Sscanf(shutdownStr, "%d", &seconds); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	if limitStr := os.Getenv("RATE_LIMIT"); limitStr != "" {
		var limit float64
		if _, err := fmt.Sscanf(limitStr, "%g", &limit); err == nil && limit > 0 {
			cfg.RateLimit = rate.Limit(limit)
		}
	}

	if burstStr := os.Getenv("RATE_LIMIT_BURST"); burstStr != "" {
		var burst int
		if _, err := fmt.Sscanf(burstStr, "%d", &burst); err == nil && burst > 0 {
			cfg.RateLimitBurst = burst
		}
	}

	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		var origins []string
		for _, o := range strings.Split(originsStr, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORSAllowedOrigins = origins
		}
	}

	return cfg
}
