package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-insight/internal/config"
	"pdf-insight/internal/handler"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()
	cfg := container.Config

	// Handlers
	documentHandler := handler.NewDocumentHandler(
		container.AnalysisService,
		container.ReportExporter,
		cfg.GetOCRSettings().Mode,
		cfg.GetMaxFileSize(),
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		documentHandler,
		cfg.GetStaticDir(),
		cfg.GetAllowedOrigins(),
		mux.MiddlewareFunc(handler.NewRecoverMiddleware(container.Logger).Middleware),
		mux.MiddlewareFunc(handler.NewLoggingMiddleware(container.Logger).Middleware),
	)

	// start server
	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	container.Logger.Info("OCR capability", "available", container.AnalysisService.OCRAvailable(), "mode", cfg.GetOCRSettings().Mode, "production", cfg.IsProduction())

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
}
