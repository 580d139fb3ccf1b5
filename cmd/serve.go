package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hance08/ledger/internal/api"
	"github.com/hance08/ledger/internal/constants"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type serveRunner struct {
	rt *runtime
}

func NewServeCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP transfer API",
		Long: `Start the HTTP server exposing POST /api/executeTransaction and the
read-only account and transaction endpoints.

The server stops gracefully on SIGINT or SIGTERM; in-flight batches are
allowed to finish within server.shutdown_timeout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &serveRunner{rt: rt}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().String("addr", ":5001", "listen address (overrides server.addr)")
	cmd.Flags().Bool("seed", false, "load the sample accounts before serving")
	_ = rt.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = rt.v.BindPFlag("server.seed_on_start", cmd.Flags().Lookup("seed"))

	return cmd
}

func (r *serveRunner) Run(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := r.rt.cfg.Server
	logger := r.rt.app.Logger
	svc := r.rt.Service()

	if cfg.SeedOnStart {
		seeded, err := svc.Account.Seed(constants.SampleAccounts)
		if err != nil {
			return fmt.Errorf("failed to seed accounts: %w", err)
		}
		logger.Info("sample accounts seeded", zap.Int("count", len(seeded)))
	}

	server := api.NewServer(svc, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", cfg.Addr))
		if err := server.Listen(cfg.Addr); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server", zap.Duration("timeout", cfg.ShutdownTimeout))
		return server.ShutdownWithTimeout(cfg.ShutdownTimeout)
	})

	pterm.Info.Printf("Serving on %s, press Ctrl+C to stop\n", cfg.Addr)
	if err := g.Wait(); err != nil {
		return err
	}

	pterm.Success.Println("Server stopped")
	return nil
}
