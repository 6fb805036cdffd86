package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"pdf-insight/internal/analysis"
	"pdf-insight/internal/domain"
	"pdf-insight/internal/validate"
	apperrors "pdf-insight/pkg/errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// AnalysisService runs an uploaded PDF through ingestion and the analysis
// core and returns the report.
type AnalysisService struct {
	validator   domain.PDFValidator
	processor   *PDFProcessor
	ocr         domain.OCREngine
	storage     domain.StorageService
	settings    domain.OCRSettings
	maxFileSize int64
	logger      domain.Logger

	newID func() string
}

func NewAnalysisService(
	validator domain.PDFValidator,
	processor *PDFProcessor,
	ocr domain.OCREngine,
	storage domain.StorageService,
	settings domain.OCRSettings,
	maxFileSize int64,
	logger domain.Logger,
) *AnalysisService {
	if settings.Concurrency < 1 {
		settings.Concurrency = 1
	}
	return &AnalysisService{
		validator:   validator,
		processor:   processor,
		ocr:         ocr,
		storage:     storage,
		settings:    settings,
		maxFileSize: maxFileSize,
		logger:      logger,
		newID:       func() string { return uuid.New().String() },
	}
}

// OCRAvailable reports whether pages will be sent to the OCR engine.
func (s *AnalysisService) OCRAvailable() bool {
	return s.ocr != nil && s.ocr.Available()
}

// Analyze validates, stores and analyses one upload.
func (s *AnalysisService) Analyze(ctx context.Context, upload domain.Upload) (*domain.Report, error) {
	start := time.Now()

	if err := upload.Validate(s.maxFileSize); err != nil {
		return nil, uploadError(err)
	}
	if s.validator != nil {
		if err := s.validator.Validate(upload.Data); err != nil {
			return nil, apperrors.NewProcessingError("The file is not a readable PDF", err)
		}
	}

	docID := s.newID()
	path := fmt.Sprintf("pdfs/%s.pdf", docID)
	if err := s.storage.Upload(ctx, path, bytes.NewReader(upload.Data)); err != nil {
		s.logger.Error("Failed to store upload", err, "doc_id", docID, "path", path)
		return nil, apperrors.NewStorageError("Failed to store the uploaded file", err)
	}

	doc, meta, err := s.processor.Open(upload.Data)
	if err != nil {
		s.logger.Error("Failed to open PDF", err, "doc_id", docID)
		return nil, apperrors.NewProcessingError("The file is not a readable PDF", err)
	}
	defer doc.Close()

	s.logger.Info("Analyzing document",
		"doc_id", docID,
		"filename", upload.Filename,
		"pages", meta.PageCount,
		"reader", meta.Reader,
		"title", meta.Title,
		"author", meta.Author,
		"file_size", len(upload.Data),
	)

	raw := s.processor.ExtractPages(ctx, doc)

	ocrAvailable := s.OCRAvailable()
	if ocrAvailable {
		s.runOCR(ctx, doc, raw)
	}

	report := &domain.Report{
		DocumentID:   docID,
		Filename:     upload.Filename,
		TotalPages:   len(raw),
		OCRAvailable: ocrAvailable,
		Analysis:     analysis.Run(analysis.NewPageRecords(raw)),
	}

	if err := validate.Report(report); err != nil {
		s.logger.Error("Report failed schema validation", err, "doc_id", docID)
		return nil, apperrors.NewInternalError("Failed to build the analysis report", err)
	}

	s.logger.Info("Document analyzed",
		"doc_id", docID,
		"document_type", report.DocumentType.DocumentType,
		"recommended_action", report.Quality.RecommendedAction,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}

// runOCR fills OCRText and OCRStatus in place. Each goroutine owns one
// index of pages, so no locking is needed. Page failures never abort the run.
func (s *AnalysisService) runOCR(ctx context.Context, doc domain.PDFDocument, pages []domain.RawPage) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.settings.Concurrency)

	for i := range pages {
		if s.settings.Mode == domain.OCRModeFallback && pages[i].HasTextLayer() {
			continue
		}
		g.Go(func() error {
			text, err := s.ocrPage(gctx, doc, pages[i].Number)
			if err != nil {
				s.logger.Warn("OCR failed for page", "page", pages[i].Number, "error", err)
				pages[i].OCRStatus = domain.OCRStatusFailed
				return nil
			}
			pages[i].OCRText = text
			pages[i].OCRStatus = domain.OCRStatusSuccess
			return nil
		})
	}

	_ = g.Wait()
}

func (s *AnalysisService) ocrPage(ctx context.Context, doc domain.PDFDocument, pageNumber int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	image, err := doc.RenderPage(pageNumber-1, s.settings.DPI)
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return s.ocr.Recognize(ctx, image)
}

func uploadError(err error) error {
	switch {
	case errors.Is(err, domain.ErrFileTooLarge):
		return apperrors.NewTooLargeError("File too large", err)
	case errors.Is(err, domain.ErrNotPDF):
		return apperrors.NewUnsupportedMediaError("Only PDF files are allowed", err)
	default:
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return apperrors.NewValidationError(vErr.Message, vErr.Field)
		}
		return apperrors.NewValidationError(err.Error())
	}
}
