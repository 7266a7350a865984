package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"orderdesk/api"
	"orderdesk/service"
	"orderdesk/store"
)

// NewServeCommand creates the serve command, which migrates the schema
// and runs the HTTP server until interrupted.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := setupLogger(opts.Verbose)
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			log.Info("opening store", "path", cfg.Database)
			st, err := store.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Migrate(); err != nil {
				return err
			}

			svcs := api.Services{
				Customers: service.NewCustomerService(st, log),
				Items:     service.NewItemService(st, log),
				Orders:    service.NewOrderService(st, log),
			}
			srv := api.NewServer(cfg.Addr, api.NewRouter(svcs, log))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info("HTTP server listening", "addr", cfg.Addr)
			return srv.Run(ctx)
		},
	}
}
