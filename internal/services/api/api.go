// Package api provides the query preview HTTP API
package api

import (
	"time"

	"soda/internal/platform/config"
	"soda/internal/platform/logger"
	phttp "soda/internal/platform/net/http"

	"soda/internal/modkit"
	"soda/internal/modkit/httpkit"

	"soda/internal/services/api/docs"
	metamod "soda/internal/services/api/meta/module"
	querymod "soda/internal/services/api/query/module"
)

// ServiceName is reported by the meta endpoints
const ServiceName = "soda-api"

// Options are the API options
type Options struct {
	// Config is the unprefixed root view; modules read their own keys from it
	Config        config.Conf
	Logger        *logger.Logger
	EnableSwagger bool
	BaseURL       string
	Stack         httpkit.StackOptions
	StartedAt     time.Time
}

// FromConfig reads CORE_API_SWAGGER, CORE_API_CORS_ORIGINS, CORE_API_SLOW_REQUEST,
// CORE_API_MAX_IN_FLIGHT and CORE_API_BASE_URL
func FromConfig(root config.Conf) Options {
	api := root.Prefix("CORE_API_")
	return Options{
		Config:        root,
		EnableSwagger: api.MayBool("SWAGGER", true),
		BaseURL:       api.MayString("BASE_URL", ""),
		Stack: httpkit.StackOptions{
			CORS:        httpkit.CORSOptions{AllowedOrigins: api.MayCSV("CORS_ORIGINS", []string{"*"})},
			Timeout:     api.MayDuration("TIMEOUT", 30*time.Second),
			SlowRequest: api.MayDuration("SLOW_REQUEST", time.Second),
			MaxInFlight: api.MayInt("MAX_IN_FLIGHT", 0),
		},
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	if opt.StartedAt.IsZero() {
		opt.StartedAt = time.Now()
	}
	deps := modkit.Deps{
		Log:       opt.Logger,
		Cfg:       opt.Config,
		Service:   ServiceName,
		StartedAt: opt.StartedAt,
	}

	mods := []modkit.Module{
		metamod.New(deps),
		querymod.New(deps),
	}

	phttp.MountSwagger(r, phttp.SwaggerOptions{
		Enabled: opt.EnableSwagger,
		Doc:     docs.OpenAPI,
		BaseURL: opt.BaseURL,
	})

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		for _, m := range mods {
			deps.Logger("api").Debug().Str("module", m.Name()).Msg("mounting module")
			m.MountRoutes(api)
		}
	})
}
