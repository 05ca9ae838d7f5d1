package soda

import (
	"soda/internal/core/catalog"
	"soda/internal/core/version"
	"soda/internal/platform/config"
)

// Settings are the SODA_* environment values shared by the CLI and the API
type Settings struct {
	Options
	Location catalog.Location
}

// FromConfig reads HOST, TIMEOUT, USER_AGENT, MAX_BODY_BYTES and LOCATION under cfg's prefix
func FromConfig(cfg config.Conf) Settings {
	// MayEnum panics on anything outside the list, so ParseLocation cannot fail here
	loc, _ := catalog.ParseLocation(cfg.MayEnum("LOCATION", "us", "us", "eu"))
	return Settings{
		Options: Options{
			Host:         cfg.MayString("HOST", ""),
			UserAgent:    cfg.MayString("USER_AGENT", version.UserAgent("soda")),
			Timeout:      cfg.MayDuration("TIMEOUT", defaultTimeout),
			MaxBodyBytes: int64(cfg.MayInt("MAX_BODY_BYTES", defaultMaxBody)),
		},
		Location: loc,
	}
}
