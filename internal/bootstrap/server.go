package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

const shutdownGrace = 10 * time.Second

// StartHTTPServer serves the router until SIGINT/SIGTERM, emits a shutdown
// audit entry, then drains in-flight requests within the grace window.
func StartHTTPServer(router *gin.Engine, cfg ServerConfig, audit AuditLogger) error {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.L().Info("http server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-quit:
		zap.L().Info("shutdown signal received", zap.String("signal", sig.String()))

		// The audit entry goes out while the server is still up.
		audit.Log(context.Background(), AuditLog{
			Action:  "SERVER_SHUTDOWN",
			Message: "server is shutting down",
			Meta:    map[string]any{"signal": sig.String()},
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("forced shutdown", zap.Error(err))
		return err
	}

	zap.L().Info("server exited gracefully")
	return nil
}
