// Package modkit provides module wiring and core deps
package modkit

import (
	"foodreview/internal/modkit/repokit"
	"foodreview/internal/platform/config"
	"foodreview/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}
