package domain

import (
	"context"
	"io"
)

// PDFDocument is an opened PDF that can produce per-page text and images.
// Page numbers are 0-based here; reports use 1-based indices.
type PDFDocument interface {
	NumPage() int
	PageText(pageNumber int) (string, error)
	RenderPage(pageNumber int, dpi float64) ([]byte, error)
	Close() error
}

// PDFOpener opens a PDF from its raw bytes.
type PDFOpener interface {
	Open(data []byte) (PDFDocument, error)
	Name() string
}

// PDFValidator checks the structural validity of a PDF before it is opened.
type PDFValidator interface {
	Validate(data []byte) error
}

// OCREngine recognises text in a rendered page image. Availability is
// queried at call time so the pipeline stays identical whether or not OCR
// is installed.
type OCREngine interface {
	Available() bool
	Recognize(ctx context.Context, image []byte) (string, error)
}

// StorageService persists the original uploaded bytes.
type StorageService interface {
	Upload(ctx context.Context, path string, file io.Reader) error
}

// Upload is an incoming document as received by the HTTP layer.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// AnalysisService turns an uploaded PDF into a report.
type AnalysisService interface {
	Analyze(ctx context.Context, upload Upload) (*Report, error)
	OCRAvailable() bool
}

// ReportExporter renders a report into a downloadable file.
type ReportExporter interface {
	Export(report *Report) ([]byte, error)
	ContentType() string
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetUploadPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetLogFormat() string
	GetStaticDir() string
	GetAllowedOrigins() []string
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetSupabaseBucket() string
	GetOCRSettings() OCRSettings
	GetPageTimeoutSeconds() int
	IsProduction() bool
}
