package cli

import (
	"github.com/spf13/cobra"

	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/shared/logger"
)

// NewMigrateCommand creates the migrate command. The schema is idempotent, running it twice is safe.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Short:        "Apply the database schema",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(rootOpts)

			storage, err := pg.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer storage.Cleanup()

			if err := storage.Migrate(cmd.Context()); err != nil {
				return err
			}
			logger.Log.Info("schema applied")
			return nil
		},
	}
}
