// Package module wires the query preview endpoints into the API using modkit
package module

import (
	"soda/internal/core/catalog"
	"soda/internal/core/fourbyfour"
	modkit "soda/internal/modkit"
	"soda/internal/modkit/httpkit"
	str "soda/internal/platform/strings"

	queryhttp "soda/internal/services/api/query/http"
	querysvc "soda/internal/services/api/query/service"
)

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	svc   querysvc.Service
}

// New constructs the query module; SODA_LOCATION under deps.Cfg picks the default discovery region
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	if err := fourbyfour.RegisterValidation(); err != nil {
		panic("register fourbyfour tag: " + err.Error())
	}
	b := modkit.Build(append([]modkit.Option{modkit.WithName("query")}, opts...)...)

	loc, err := catalog.ParseLocation(deps.Cfg.MayEnum("SODA_LOCATION", "us", "us", "eu"))
	if err != nil {
		deps.Logger("query").Warn().Err(err).Msg("falling back to north america")
	}
	return &Module{built: b, svc: querysvc.New(loc)}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		queryhttp.Register(rr, m.svc)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }
