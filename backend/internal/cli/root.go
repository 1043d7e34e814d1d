package cli

import (
	"github.com/spf13/cobra"

	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFolder string
}

// NewRootCommand creates the root command of the forum API binary.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "forum-api",
		Short: "Discussion forum API",
		Long:  "Serves threads, comments, replies and likes over HTTP, backed by PostgreSQL.",
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFolder, "config_folder", "backend/config", "path to folder with configs")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}

// loadConfig panics on an invalid config, the process cannot do anything useful without one.
func loadConfig(opts *RootOptions) *config.Config {
	cfg := config.MustLoad(opts.ConfigFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)
	return cfg
}
