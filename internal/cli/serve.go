package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chroma/config"
	"github.com/katalvlaran/chroma/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP colouring API",
		Long: `Serve exposes POST /v1/colorings, GET /v1/strategies, GET /healthz and
GET /metrics. With --config the file is watched and edits apply to new
requests without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			srv := server.New(cfg, logger, reg)

			if path, _ := cmd.Flags().GetString("config"); path != "" {
				loader, err := config.NewLoader(path, logger)
				if err != nil {
					return err
				}
				loader.OnChange(srv.SetConfig)
				stop, err := loader.Watch()
				if err != nil {
					logger.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
				} else {
					defer stop()
				}
			}

			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
