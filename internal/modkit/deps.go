// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"soda/internal/platform/config"
	"soda/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log       *logger.Logger
	Cfg       config.Conf
	Service   string
	StartedAt time.Time
}

// Logger returns Log or the named root logger when Log is nil
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Named(component)
}
