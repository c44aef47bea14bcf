package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	logcfg "github.com/ncobase/pager/logging/logger/config"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. PAGER_PAGING_PAGE_SIZE
const EnvPrefix = "PAGER"

// Config represents the configuration implementation.
type Config struct {
	AppName string
	RunMode string
	Server  *Server
	Logger  *logcfg.Config
	Paging  *Paging
	Viper   *viper.Viper

	mu sync.Mutex
}

// LoadConfig loads the configuration from the file.
// With an empty path the default locations are searched and a missing
// file is not an error: defaults and environment overrides apply.
func LoadConfig(configPath string) (*Config, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("/etc/pager")
		v.AddConfigPath("$HOME/.pager")
		v.AddConfigPath(".")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	cfg.apply(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newViper returns a viper instance with defaults and env overrides.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_name", "pager")
	v.SetDefault("run_mode", "debug")
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("paging.page_size", DefaultPageSize)
	v.SetDefault("paging.max_page_size", DefaultMaxPageSize)
	return v
}

// apply reads every section from v and makes v the current source
func (c *Config) apply(v *viper.Viper) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Viper = v
	c.AppName = v.GetString("app_name")
	c.RunMode = v.GetString("run_mode")
	c.Server = getServerConfig(v)
	c.Logger = logcfg.GetConfig(v)
	c.Paging = getPagingConfig(v)
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Paging.PageSize <= 0 {
		return fmt.Errorf("paging.page_size must be positive, got %d", c.Paging.PageSize)
	}
	if c.Paging.MaxPageSize > 0 && c.Paging.PageSize > c.Paging.MaxPageSize {
		return fmt.Errorf("paging.page_size %d exceeds paging.max_page_size %d", c.Paging.PageSize, c.Paging.MaxPageSize)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// Reload re-reads the configuration file into c.
// The file is parsed into a fresh viper instance, so an invalid file
// leaves both the typed sections and c.Viper untouched.
func (c *Config) Reload() error {
	c.mu.Lock()
	file := c.Viper.ConfigFileUsed()
	c.mu.Unlock()
	if file == "" {
		return errors.New("failed to reload config: no config file in use")
	}

	v := newViper()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}
	next := &Config{}
	next.apply(v)
	if err := next.Validate(); err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}
	c.apply(v)
	return nil
}

// Watch watches the configuration file and reloads it when it changes.
// Invalid files are reported to onError and leave c unchanged.
func (c *Config) Watch(callback func(*Config), onError func(error)) {
	c.mu.Lock()
	watched := c.Viper
	c.mu.Unlock()

	watched.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		if err := c.Reload(); err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		if callback != nil {
			callback(c)
		}
	})
	watched.WatchConfig()
}
