package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wexinc/manifest/internal/logging"
	"github.com/wexinc/manifest/internal/server"
)

// shutdownTimeout bounds how long in-flight requests may take after a signal.
const shutdownTimeout = 10 * time.Second

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP dashboard",
	Long: `Start the browser dashboard and JSON API.

Routes:
  /                     Dashboard form, metrics and charts
  /api/summary          Metrics and chart data as JSON
  /api/passengers       Matching rows as JSON
  /api/options          Filter options and defaults
  /charts/<chart>.png   Chart images
  /healthz, /metrics    Health check and Prometheus metrics

Examples:
  manifest serve
  manifest serve --addr :9090 --source ./titanic.csv`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addServeFlags(serveCmd)
}

func addServeFlags(c *cobra.Command) {
	c.Flags().String("addr", "", "Listen address (default: server.addr from config, :8080)")
}

// runServe handles the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, overrides, cleanup, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		return err
	}

	touchProject(".")

	defaults := resolveCriteria(cfg, overrides, ds)
	srv := server.New(ds, server.Options{
		Defaults:      &defaults,
		HistogramBins: cfg.Charts.HistogramBins,
		ChartWidth:    cfg.Charts.Width,
		ChartHeight:   cfg.Charts.Height,
		ReadTimeout:   cfg.Server.ReadTimeout,
		Logger:        logging.Global(),
	})

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Server.Addr
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(addr)
	}()
	cmd.Printf("Serving %d passengers on %s\n", ds.Len(), addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
