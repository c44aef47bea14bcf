package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
app_name: demo
run_mode: release
server:
  host: 0.0.0.0
  port: 9000
  shutdown_timeout: 2s
logger:
  level: 5
  format: json
paging:
  page_size: 20
  max_page_size: 200
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.AppName)
	assert.Equal(t, "release", cfg.RunMode)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5, cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "stdout", cfg.Logger.Output)
	assert.Equal(t, Paging{PageSize: 20, MaxPageSize: 200}, cfg.GetPaging())
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "app_name: bare\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, cfg.Paging.PageSize)
	assert.Equal(t, DefaultMaxPageSize, cfg.Paging.MaxPageSize)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, "paging:\n  page_size: 20\n")
	t.Setenv("PAGER_PAGING_PAGE_SIZE", "30")
	t.Setenv("PAGER_LOGGER_FORMAT", "json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Paging.PageSize)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero page size", "paging:\n  page_size: 0\n"},
		{"negative page size", "paging:\n  page_size: -2\n"},
		{"above max", "paging:\n  page_size: 50\n  max_page_size: 10\n"},
		{"bad port", "server:\n  port: 70000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestReload(t *testing.T) {
	path := writeConfig(t, "paging:\n  page_size: 10\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("paging:\n  page_size: 25\n"), 0644))
	require.NoError(t, cfg.Reload())
	assert.Equal(t, 25, cfg.GetPaging().PageSize)

	require.NoError(t, os.WriteFile(path, []byte("paging:\n  page_size: 0\n"), 0644))
	assert.Error(t, cfg.Reload())
	assert.Equal(t, 25, cfg.GetPaging().PageSize)
	assert.Equal(t, 25, cfg.Viper.GetInt("paging.page_size"))
}

func TestReloadWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Error(t, cfg.Reload())
	assert.Equal(t, DefaultPageSize, cfg.GetPaging().PageSize)
}

// replaceConfig swaps the file in with a rename so a watcher never sees
// a truncated intermediate.
func replaceConfig(t *testing.T, path, body string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(body), 0644))
	require.NoError(t, os.Rename(tmp, path))
}

func TestWatch(t *testing.T) {
	path := writeConfig(t, "paging:\n  page_size: 10\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	reloaded := make(chan int, 16)
	failed := make(chan error, 16)
	cfg.Watch(func(c *Config) {
		reloaded <- c.GetPaging().PageSize
	}, func(err error) {
		failed <- err
	})

	replaceConfig(t, path, "paging:\n  page_size: 25\n")
	timeout := time.After(5 * time.Second)
	for got := 0; got != 25; {
		select {
		case got = <-reloaded:
		case err := <-failed:
			t.Fatalf("unexpected reload error: %v", err)
		case <-timeout:
			t.Fatal("config change was not picked up")
		}
	}
	assert.Equal(t, 25, cfg.GetPaging().PageSize)

	replaceConfig(t, path, "paging:\n  page_size: 0\n")
	select {
	case err := <-failed:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("invalid config was not reported")
	}
	assert.Equal(t, 25, cfg.GetPaging().PageSize)
	assert.Equal(t, 25, cfg.Viper.GetInt("paging.page_size"))
}

func TestGetServerIsCopy(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "server:\n  port: 1234\n"))
	require.NoError(t, err)

	sc := cfg.GetServer()
	sc.Port = 1
	assert.Equal(t, 1234, cfg.GetServer().Port)
	assert.Equal(t, "127.0.0.1:1234", cfg.GetServer().Addr())
}

func TestProviders(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "server:\n  port: 1234\n"))
	require.NoError(t, err)

	assert.Same(t, cfg.Server, ProvideServerConfig(cfg))
	assert.Same(t, cfg.Paging, ProvidePagingConfig(cfg))
	assert.Same(t, cfg.Logger, ProvideLoggerConfig(cfg))
	assert.Nil(t, ProvidePagingConfig(nil))
	assert.NotNil(t, ProvideLoggerConfig(nil))
}
