package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Server defaults
const (
	DefaultHost            = "127.0.0.1"
	DefaultPort            = 8080
	DefaultShutdownTimeout = 5 * time.Second
)

// Server server config struct
type Server struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func getServerConfig(v *viper.Viper) *Server {
	return &Server{
		Host:            v.GetString("server.host"),
		Port:            v.GetInt("server.port"),
		ShutdownTimeout: getDurationOrDefault(v, "server.shutdown_timeout", DefaultShutdownTimeout),
	}
}

// GetServer returns a copy of the server section, safe against concurrent reloads
func (c *Config) GetServer() Server {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.Server
}
