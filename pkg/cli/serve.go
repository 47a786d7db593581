/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/numeralia/romanos/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the conversion HTTP API",
		Description: `Starts the same HTTP service as romanosd and blocks until SIGINT or
SIGTERM. Configuration is read from PORT, RATE_LIMIT, RATE_LIMIT_BURST,
CORS_ALLOWED_ORIGINS and SHUTDOWN_TIMEOUT_SECONDS.`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return api.ServeContext(ctx)
		},
	}
}
