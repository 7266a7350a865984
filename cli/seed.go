package cli

import (
	"github.com/spf13/cobra"

	"orderdesk/seed"
	"orderdesk/store"
)

// NewSeedCommand creates the seed command, a one-time load of the static
// customer and item reference files.
func NewSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load customer and item reference data into an empty store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := setupLogger(opts.Verbose)
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			st, err := store.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Migrate(); err != nil {
				return err
			}

			n, err := seed.Run(cmd.Context(), st, log, cfg.Seed.Customers, cfg.Seed.Items)
			if err != nil {
				return err
			}
			log.Info("seeding complete", "rows", n)
			return nil
		},
	}
}
