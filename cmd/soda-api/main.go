// @title         soda preview API
// @version       1.0
// @description   Renders open-data platform URIs, row queries and discovery searches

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"soda/internal/platform/config"
	"soda/internal/platform/logger"
	phttp "soda/internal/platform/net/http"

	"soda/internal/services/api"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads CORE_API_PORT / CORE_API_TIMEOUT)
	srv := phttp.NewServer(apiCfg)

	opt := api.FromConfig(root)
	opt.Logger = logger.Named("api")
	api.Mount(srv.Router(), opt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.Info().Bool("swagger", opt.EnableSwagger).Strs("cors_origins", opt.Stack.CORS.AllowedOrigins).Msg("soda api configured")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
