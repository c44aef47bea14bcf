package commands

import (
	"fmt"
	"io"

	"github.com/ncobase/pager/config"
	"github.com/ncobase/pager/logging/logger"
	"github.com/ncobase/pager/version"
	"github.com/spf13/cobra"
)

// app holds what every subcommand shares
type app struct {
	configFile string
	inputJSON  bool

	cfg     *config.Config
	logger  *logger.Logger
	cleanup func()
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "pager",
		Short:         "Split ordered collections into fixed-size pages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.cleanup != nil {
				a.cleanup()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "conf", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&a.inputJSON, "json", false, "read input as a JSON array instead of lines")

	rootCmd.AddCommand(
		newPageCommand(a),
		newWalkCommand(a),
		newServeCommand(a),
		newVersionCommand(),
	)

	return rootCmd
}

// init loads the configuration and the logger
func (a *app) init(stderr io.Writer) error {
	cfg, err := config.LoadConfig(a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	l, cleanup, err := logger.ProvideLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	a.logger = l
	if cfg.Logger.Output == "stdout" {
		// stdout carries command output
		a.logger.SetOutput(stderr)
	}
	a.logger.SetVersion(version.Version)
	a.cleanup = cleanup
	return nil
}

// pageSize resolves the --size flag against the configuration
func (a *app) pageSize(size int) int {
	if size == 0 {
		return a.cfg.GetPaging().PageSize
	}
	return size
}
