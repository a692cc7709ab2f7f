package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huestep/internal/config"
	"github.com/jmylchreest/huestep/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr string
		file string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the palette API over HTTP",
		Long: `Serve palette generation over HTTP until interrupted.

Endpoints:
  GET /health
  GET /api/v1/palette?color=&index=&dark=&format=&list=
  GET /api/v1/presets
  GET /api/v1/presets/:name
  GET /api/v1/rgb?color=
  GET /api/v1/theme.css`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.Server.Addr
			}
			if !cmd.Flags().Changed("file") {
				file = a.cfg.PresetsFile
			}

			presets, err := config.LoadPresets(file)
			if err != nil {
				return err
			}

			if !a.verbose {
				gin.SetMode(gin.ReleaseMode)
			}

			srv := server.New(server.Options{
				Addr:        addr,
				ReadTimeout: a.cfg.Server.ReadTimeout,
				Presets:     presets,
			}, a.logger.Named("server"))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")
	cmd.Flags().StringVar(&file, "file", "", "brands file (yaml, toml or json)")

	return cmd
}
