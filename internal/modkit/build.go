package modkit

import (
	"net/http"

	phttp "soda/internal/platform/net/http"
	str "soda/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Register []func(phttp.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Register: append(([]func(phttp.Router))(nil), c.register...),
	}
}

// Mount opens a route group at Prefix, applies Mw, runs own and then every Register hook
// an empty prefix mounts directly on r
func (b Built) Mount(r phttp.Router, own func(phttp.Router)) {
	mount := func(rr phttp.Router) {
		if len(b.Mw) > 0 {
			rr.Use(b.Mw...)
		}
		if own != nil {
			own(rr)
		}
		for _, fn := range b.Register {
			fn(rr)
		}
	}
	if b.Prefix == "" {
		r.Group(mount)
		return
	}
	r.Route(str.MustPrefix(b.Prefix), mount)
}
