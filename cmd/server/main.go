package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/damacus/iron-files/internal/config"
	"github.com/damacus/iron-files/internal/handlers"
	"github.com/damacus/iron-files/internal/logging"
	customMiddleware "github.com/damacus/iron-files/internal/middleware"
	"github.com/damacus/iron-files/internal/renderer"
	"github.com/damacus/iron-files/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load("")
	if err != nil {
		// No logger yet: the log settings themselves may be what failed.
		fmt.Fprintln(os.Stderr, "iron-files:", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "iron-files:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	e := newServer(cfg, logger, &services.RealMinioFactory{})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server",
			zap.String("addr", cfg.Server.Addr),
			zap.String("minio_endpoint", cfg.Minio.Endpoint),
		)
		if err := e.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newServer(cfg *config.Config, logger *zap.Logger, minioFactory services.MinioClientFactory) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.ErrorHandler(logger)

	// Services
	creds := services.Credentials{
		Endpoint:     cfg.Minio.Endpoint,
		AccessKey:    cfg.Minio.AccessKey,
		SecretKey:    cfg.Minio.SecretKey,
		SessionToken: cfg.Minio.SessionToken,
	}
	catalog := services.NewCatalog(minioFactory, creds, cfg.Listing.PageSize, logger)
	filesHandler := handlers.NewFilesHandler()
	browserHandler := handlers.NewBrowserHandler(catalog, logger)

	// Middleware
	e.Use(customMiddleware.RequestID())
	e.Use(customMiddleware.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(customMiddleware.SecurityHeaders())

	// Template Renderer
	e.Renderer = renderer.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/buckets")
	})

	// File metadata API
	api := e.Group("/api/files")
	api.GET("/describe", filesHandler.Describe)
	api.GET("/size", filesHandler.FormatSize)
	api.GET("/sanitize", filesHandler.Sanitize)
	api.GET("/categories", filesHandler.Categories)

	// Object Browser (read-only)
	e.GET("/buckets", browserHandler.ListBuckets)
	e.GET("/buckets/:bucketName", browserHandler.BrowseBucket)
	e.GET("/buckets/:bucketName/object/info", browserHandler.GetObjectInfo)

	return e
}
