// Package main RPN API
// @title RPN API
// @version 1.0
// @description Converts infix arithmetic expressions to Reverse Polish notation and keeps a conversion history
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/rpn/api/docs"
	"github.com/DjordjeVuckovic/rpn/internal/router"
	"github.com/DjordjeVuckovic/rpn/internal/server"
	"github.com/DjordjeVuckovic/rpn/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

const storeInitTimeout = 30 * time.Second

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	initCtx, cancel := context.WithTimeout(context.Background(), storeInitTimeout)
	store, healthChecker, err := factory.NewStore(initCtx, cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create conversion store", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "RPN API is running")
	})

	router.NewConversionRouter(s.Echo, store).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	store.Close()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
