package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"scormd/internal/logging"
	"scormd/internal/preflight"
	"scormd/internal/server"
	"scormd/internal/store"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the content service in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}

			if failed := preflight.Failed(preflight.RunAll(cfg)); len(failed) != 0 {
				for _, result := range failed {
					fmt.Fprintf(cmd.ErrOrStderr(), "preflight: %s: %s\n", result.Name, result.Detail)
				}
				return errors.New("preflight checks failed")
			}

			lockPath := filepath.Join(cfg.Paths.LogDir, "scormd.lock")
			lock := flock.New(lockPath)
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !locked {
				return errors.New("another scormd instance is already running")
			}
			defer func() {
				_ = lock.Unlock()
			}()

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			st, err := store.Open(cfg)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(cfg, st, logger)
			if err := srv.Start(runCtx); err != nil {
				return err
			}
			logger.Info("scormd running",
				slog.String("address", srv.Addr()),
				slog.String("data_dir", cfg.Paths.DataDir),
				slog.String("lock", lockPath))

			<-runCtx.Done()
			srv.Stop()
			logger.Info("scormd stopped")
			return nil
		},
	}
}
