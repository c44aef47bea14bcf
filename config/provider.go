package config

import (
	"github.com/google/wire"
	logcfg "github.com/ncobase/pager/logging/logger/config"
)

// ProviderSet is the wire provider set for the config package.
// It extracts sub-configurations from *Config for other modules.
var ProviderSet = wire.NewSet(
	ProvideLoggerConfig,
	ProvideServerConfig,
	ProvidePagingConfig,
)

// ProvideLoggerConfig provides the logger configuration.
func ProvideLoggerConfig(cfg *Config) *logcfg.Config {
	if cfg == nil {
		return logcfg.Default()
	}
	return cfg.Logger
}

// ProvideServerConfig provides the server configuration.
func ProvideServerConfig(cfg *Config) *Server {
	if cfg == nil {
		return nil
	}
	return cfg.Server
}

// ProvidePagingConfig provides the paging configuration.
func ProvidePagingConfig(cfg *Config) *Paging {
	if cfg == nil {
		return nil
	}
	return cfg.Paging
}
