package config

import (
	"github.com/spf13/viper"
)

// Paging defaults
const (
	DefaultPageSize    = 15
	DefaultMaxPageSize = 1024
)

// Paging paging config struct
type Paging struct {
	// PageSize is used when a request or command gives no size
	PageSize int
	// MaxPageSize caps requested sizes, 0 disables the cap
	MaxPageSize int
}

func getPagingConfig(v *viper.Viper) *Paging {
	return &Paging{
		PageSize:    v.GetInt("paging.page_size"),
		MaxPageSize: v.GetInt("paging.max_page_size"),
	}
}

// GetPaging returns a copy of the paging section, safe against concurrent reloads
func (c *Config) GetPaging() Paging {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.Paging
}
