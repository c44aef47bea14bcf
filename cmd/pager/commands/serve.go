package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ncobase/pager/config"
	"github.com/ncobase/pager/logging/logger"
	"github.com/ncobase/pager/server"
	"github.com/spf13/cobra"
)

// serveApp is what the serve command runs
type serveApp struct {
	collection *server.Collection
	server     *server.Server
	logger     *logger.Logger
}

func newServeApp(collection *server.Collection, srv *server.Server, l *logger.Logger) *serveApp {
	return &serveApp{collection: collection, server: srv, logger: l}
}

func newServeCommand(a *app) *cobra.Command {
	var (
		size  int
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a collection over HTTP",
		Long:  `Serve a collection over HTTP. The optional file is loaded before the server starts.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sa, cleanup, err := initServeApp(a.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) > 0 {
				items, err := loadItems(args, cmd.InOrStdin(), a.inputJSON)
				if err != nil {
					return err
				}
				if _, err := sa.collection.Load(ctx, items, size); err != nil {
					return err
				}
			}

			if watch && a.configFile != "" {
				a.cfg.Watch(func(c *config.Config) {
					sa.logger.Infof(ctx, "config reloaded, default page size %d", c.GetPaging().PageSize)
				}, func(err error) {
					sa.logger.Errorf(ctx, "config reload failed: %v", err)
				})
			}

			return sa.server.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "page size of the preloaded file (default from config)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the config file on change")
	return cmd
}
