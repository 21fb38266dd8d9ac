package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/f3rmion/ireum/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser form",
	Long: `Serve the name suggestion form over HTTP.

Routes:
  GET  /              form
  POST /suggest       form submission, renders the cards
  POST /api/suggest   JSON in, JSON out
  GET  /healthz       liveness

The server stops on SIGINT or SIGTERM.`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	handler := web.NewHandler(a.svc,
		web.WithBreaker(a.breaker),
		web.WithFormat(a.format),
		web.WithLogger(log),
	)

	srv := web.NewServer(
		web.WithAddr(cfg.Addr),
		web.WithServerLogger(log),
	)

	log.Info("serving", slog.String("addr", cfg.Addr), slog.String("format", string(a.format)))
	return srv.Run(cmd.Context(), handler.Routes())
}
