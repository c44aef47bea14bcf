//go:build wireinject
// +build wireinject

package commands

import (
	"github.com/google/wire"
	"github.com/ncobase/pager/config"
	"github.com/ncobase/pager/logging/logger"
	"github.com/ncobase/pager/server"
)

// initServeApp wires the HTTP server and its collection from cfg.
func initServeApp(cfg *config.Config) (*serveApp, func(), error) {
	panic(wire.Build(
		config.ProviderSet,
		logger.ProviderSet,
		server.ProviderSet,
		newServeApp,
	))
}
