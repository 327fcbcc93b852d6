package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront/internal/cms"
	"storefront/internal/content"
	"storefront/internal/db"
	"storefront/internal/web"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := cms.New(a.cfg.CMS, a.logger)
	if client.Enabled() {
		a.logger.Info("cms enabled", zap.String("url", a.cfg.CMS.BaseURL), zap.Duration("timeout", a.cfg.CMS.Timeout))
	} else {
		a.logger.Info("cms not configured, serving local content", zap.String("dir", a.cfg.ContentDir))
	}
	source := content.NewSource(client, a.cfg.ContentDir, a.cfg.StaticDir, a.logger)

	var store web.EnquiryStore
	if a.cfg.DSN != "" {
		gdb, err := db.Open(a.cfg.DSN)
		if err != nil {
			return err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		store = db.NewEnquiryStore(gdb)
	} else {
		a.logger.Warn("DB_DSN is empty; contact enquiries are only logged")
	}

	if a.cfg.AdminHash != "" && !a.cfg.HasSessionSecret() {
		a.logger.Warn("SESSION_SECRET is not set; admin area stays disabled")
	}

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           web.New(a.cfg, source, store, a.logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	a.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
