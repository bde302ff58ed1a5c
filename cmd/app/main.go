package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/cmd"
	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/in/http/openapi"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(configs.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		logger.Error("service stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	db, err := postgres.Open(ctx, postgres.Settings{
		Host:     configs.DBHost,
		Port:     configs.DBPort,
		User:     configs.DBUser,
		Password: configs.DBPassword,
		Name:     configs.DBName,
		SSLMode:  configs.DBSslMode,
	})
	if err != nil {
		return err
	}
	logger.Info("database ready", "host", configs.DBHost, "name", configs.DBName)

	app := cmd.NewCompositionRoot(configs, db, logger)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("close order event publisher", "error", err)
		}
	}()

	doc, err := openapi.Load(ctx)
	if err != nil {
		return err
	}
	server, err := app.CreateServer()
	if err != nil {
		return err
	}
	e, err := httpadapter.NewRouter(server, logger, httpadapter.RouterConfig{
		AllowedOrigins: configs.CORSAllowedOrigins,
		Document:       doc,
	})
	if err != nil {
		return err
	}
	e.Logger.SetLevel(echoLogLevel(configs.LogLevel))

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, e, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func echoLogLevel(level string) log.Lvl {
	switch logging.ParseLevel(level) {
	case slog.LevelDebug:
		return log.DEBUG
	case slog.LevelWarn:
		return log.WARN
	case slog.LevelError:
		return log.ERROR
	default:
		return log.INFO
	}
}
