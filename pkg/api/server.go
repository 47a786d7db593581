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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/numeralia/romanos/pkg/convert"
	"github.com/numeralia/romanos/pkg/logging"
	"github.com/numeralia/romanos/pkg/server"
)

const (
	name           = "romanosd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/numeralia/romanos/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	return ServeContext(context.Background())
}

// ServeContext is Serve with a caller-supplied parent context. It logs
// through the current default logger and leaves its configuration alone.
func ServeContext(ctx context.Context) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

func routes() map[string]http.HandlerFunc {
	return convert.NewHandler().Routes()
}
