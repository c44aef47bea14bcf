// Package config loads pager configuration with Viper, supporting YAML,
// JSON and TOML files, environment overrides and hot reloading.
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfig("./config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// With an empty path the file "config" is searched in /etc/pager,
// $HOME/.pager, the working directory and the executable directory. A
// missing file is fine in that case; defaults apply.
//
// # Configuration Format
//
//	app_name: pager
//	run_mode: release
//
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	  shutdown_timeout: 5s
//
//	logger:
//	  level: 4        # logrus level, 4 = info
//	  format: json    # json or text
//	  output: stdout  # stdout, stderr or file
//	  output_file: ./logs/pager.log
//
//	paging:
//	  page_size: 15
//	  max_page_size: 1024
//
// # Environment Variables
//
// Every key can be overridden with a PAGER_ prefixed variable, dots
// replaced by underscores:
//
//	PAGER_PAGING_PAGE_SIZE=50 PAGER_SERVER_PORT=9090 pager serve
//
// # Hot Reload
//
//	cfg.Watch(func(c *config.Config) {
//	    log.Printf("page size now %d", c.Paging.PageSize)
//	}, nil)
package config
