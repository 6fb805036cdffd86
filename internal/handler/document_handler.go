// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"pdf-insight/internal/domain"
)

// multipartOverhead leaves room for boundaries and headers around the file part.
const multipartOverhead = 1 << 20

// DocumentHandler handles document-related HTTP requests
type DocumentHandler struct {
	analysisService domain.AnalysisService
	exporter        domain.ReportExporter
	ocrMode         domain.OCRMode
	maxFileSize     int64
	logger          domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(
	analysisService domain.AnalysisService,
	exporter domain.ReportExporter,
	ocrMode domain.OCRMode,
	maxFileSize int64,
	logger domain.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		analysisService: analysisService,
		exporter:        exporter,
		ocrMode:         ocrMode,
		maxFileSize:     maxFileSize,
		logger:          logger,
	}
}

// AnalyzeDocument accepts a multipart upload in the "file" field and returns
// the analysis report. ?format=xlsx returns a workbook instead of JSON.
func (h *DocumentHandler) AnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format != "" && format != "json" && format != "xlsx" {
		writeError(w, http.StatusBadRequest, "Unsupported format. Allowed: json, xlsx.")
		return
	}

	if h.maxFileSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		originalName = "document.pdf"
	}

	reader := io.Reader(file)
	if h.maxFileSize > 0 {
		reader = io.LimitReader(file, h.maxFileSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		h.logger.Error("Failed to read upload", err, "filename", originalName)
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	report, err := h.analysisService.Analyze(r.Context(), domain.Upload{
		Filename:    originalName,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	if format == "xlsx" {
		h.writeWorkbook(w, report)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *DocumentHandler) writeWorkbook(w http.ResponseWriter, report *domain.Report) {
	if h.exporter == nil {
		writeError(w, http.StatusNotImplemented, "Export is not available")
		return
	}
	data, err := h.exporter.Export(report)
	if err != nil {
		h.logger.Error("Failed to export report", err, "doc_id", report.DocumentID)
		writeError(w, http.StatusInternalServerError, "Failed to export report")
		return
	}

	name := strings.TrimSuffix(report.Filename, filepath.Ext(report.Filename)) + "-report.xlsx"
	w.Header().Set("Content-Type", h.exporter.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("X-Document-Id", report.DocumentID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Capabilities reports what the server can do for clients deciding how to upload.
func (h *DocumentHandler) Capabilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ocr_available": h.analysisService.OCRAvailable(),
		"ocr_mode":      h.ocrMode,
		"max_file_size": h.maxFileSize,
	})
}
