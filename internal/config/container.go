package config

import (
	"time"

	"pdf-insight/internal/domain"
	"pdf-insight/internal/export"
	"pdf-insight/internal/infra/supabase"
	"pdf-insight/internal/service"
	"pdf-insight/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	Storage         domain.StorageService
	OCREngine       domain.OCREngine
	AnalysisService domain.AnalysisService
	ReportExporter  domain.ReportExporter
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel(), config.GetLogFormat())
	return NewContainerWith(config, appLogger)
}

// NewContainerWith wires the application around an existing config and logger.
func NewContainerWith(config domain.Config, appLogger domain.Logger) *Container {
	storage := newStorage(config, appLogger)

	ocrSettings := config.GetOCRSettings()
	ocrEngine := service.NewTesseractEngine(ocrSettings, appLogger)

	processor := service.NewPDFProcessor(
		appLogger,
		time.Duration(config.GetPageTimeoutSeconds())*time.Second,
		service.NewFitzOpener(),
		service.NewPlainTextOpener(),
	)

	analysisService := service.NewAnalysisService(
		service.NewPdfcpuValidator(),
		processor,
		ocrEngine,
		storage,
		ocrSettings,
		config.GetMaxFileSize(),
		appLogger,
	)

	return &Container{
		Config:          config,
		Logger:          appLogger,
		Storage:         storage,
		OCREngine:       ocrEngine,
		AnalysisService: analysisService,
		ReportExporter:  export.NewXLSXExporter(),
	}
}

// newStorage uses the Supabase bucket when credentials are present and the
// local upload directory otherwise.
func newStorage(config domain.Config, appLogger domain.Logger) domain.StorageService {
	client := supabase.NewClient(config, appLogger)
	if client.Configured() {
		err := client.Initialize()
		if err == nil {
			appLogger.Info("Storing uploads in Supabase", "bucket", config.GetSupabaseBucket())
			return service.NewSupabaseStorage(client, config.GetSupabaseBucket())
		}
		appLogger.Warn("Supabase storage unavailable; falling back to local uploads", "error", err)
	}

	appLogger.Info("Storing uploads locally", "path", config.GetUploadPath())
	return service.NewLocalStorage(config.GetUploadPath())
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
