package config

import (
	"os"
	"strconv"
	"strings"

	"pdf-insight/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort         string
	UploadPath         string
	MaxFileSize        int64
	LogLevel           string
	LogFormat          string
	StaticDir          string
	AllowedOrigins     []string
	SupabaseURL        string
	SupabaseKey        string
	SupabaseBucket     string
	OCR                domain.OCRSettings
	PageTimeoutSeconds int
	Production         bool
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Railway and Cloud Run provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		UploadPath:     getEnvOrDefault("UPLOAD_PATH", "./uploads"),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("LOG_FORMAT", "text"),
		StaticDir:      getEnvOrDefault("STATIC_DIR", "./static"),
		AllowedOrigins: getEnvListOrDefault("ALLOWED_ORIGINS", []string{"*"}),
		SupabaseURL:    getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:    getEnvOrDefault("SUPABASE_SERVICE_KEY", ""),
		SupabaseBucket: getEnvOrDefault("SUPABASE_BUCKET", "documents"),
		OCR: domain.OCRSettings{
			Enabled:     getEnvBoolOrDefault("OCR_ENABLED", true),
			Languages:   getEnvListOrDefault("OCR_LANGUAGES", []string{"eng"}),
			DPI:         getEnvFloatOrDefault("OCR_DPI", 200),
			Concurrency: int(getEnvInt64OrDefault("OCR_CONCURRENCY", 4)),
			Mode:        domain.ParseOCRMode(getEnvOrDefault("OCR_MODE", string(domain.OCRModeAlways))),
		},
		PageTimeoutSeconds: int(getEnvInt64OrDefault("PAGE_TIMEOUT_SECONDS", 90)),
		Production:         isSet("RAILWAY_ENVIRONMENT"),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetUploadPath returns the upload directory path
func (c *AppConfig) GetUploadPath() string {
	return c.UploadPath
}

// GetMaxFileSize returns the maximum allowed file size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns the log output format (text or json)
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetStaticDir returns the directory holding the upload page
func (c *AppConfig) GetStaticDir() string {
	return c.StaticDir
}

// GetAllowedOrigins returns the CORS origins
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase service key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetSupabaseBucket returns the storage bucket for uploaded PDFs
func (c *AppConfig) GetSupabaseBucket() string {
	return c.SupabaseBucket
}

// GetOCRSettings returns the OCR configuration. Production deployments
// run without OCR regardless of OCR_ENABLED.
func (c *AppConfig) GetOCRSettings() domain.OCRSettings {
	s := c.OCR
	if c.Production {
		s.Enabled = false
	}
	if s.Concurrency < 1 {
		s.Concurrency = 1
	}
	if s.DPI <= 0 {
		s.DPI = 200
	}
	return s
}

// GetPageTimeoutSeconds returns the per-page text extraction timeout
func (c *AppConfig) GetPageTimeoutSeconds() int {
	if c.PageTimeoutSeconds < 1 {
		return 90
	}
	return c.PageTimeoutSeconds
}

// IsProduction reports whether the process runs in the hosted environment
func (c *AppConfig) IsProduction() bool {
	return c.Production
}

// Helper functions for environment variable handling
// isSet reports whether key is present in the environment, even when empty.
func isSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvListOrDefault splits a comma separated value, dropping blanks.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
