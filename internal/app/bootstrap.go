package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/hazelsoft/userdir/internal/config"
	"github.com/hazelsoft/userdir/internal/middleware"
	"github.com/hazelsoft/userdir/internal/pkg/logging"
)

func Run(baseCtx context.Context) error {
	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if os.Getenv("ENV") != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	opts, err := config.New("config.json")
	if err != nil {
		return err
	}

	logging.SetupLogger(opts.App.Env, opts.App.LogLevel, os.Stdout)

	providers, err := newProvider(signalCtx, opts)
	if err != nil {
		return err
	}
	if providers.DB != nil {
		defer providers.DB.Close()
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CORS,
		middleware.CheckContentType,
	}

	apiServer := New(opts, providers, middlewares)
	if err := apiServer.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return apiServer.Shutdown()
}
