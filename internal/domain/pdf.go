package domain

import "strings"

// OCRMode decides which pages are sent to the OCR engine.
type OCRMode string

const (
	// OCRModeAlways runs OCR on every page, next to the text layer.
	OCRModeAlways OCRMode = "always"
	// OCRModeFallback only runs OCR on pages without a text layer.
	OCRModeFallback OCRMode = "fallback"
)

// ParseOCRMode converts a config string to an OCRMode, defaulting to always.
func ParseOCRMode(s string) OCRMode {
	switch OCRMode(strings.ToLower(strings.TrimSpace(s))) {
	case OCRModeFallback:
		return OCRModeFallback
	default:
		return OCRModeAlways
	}
}

// OCRSettings groups the OCR related configuration.
type OCRSettings struct {
	Enabled     bool     `json:"enabled"`
	Languages   []string `json:"languages"`
	DPI         float64  `json:"dpi"`
	Concurrency int      `json:"concurrency"`
	Mode        OCRMode  `json:"mode"`
}

// PDFMetadata contains the document level information read while opening a PDF.
type PDFMetadata struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	PageCount int    `json:"page_count"`
	Reader    string `json:"reader"`
}

// RawPage is the ingestion output for one page before pattern extraction.
type RawPage struct {
	Number    int
	TextLayer string
	OCRText   string
	OCRStatus OCRStatus
}

// HasTextLayer reports whether the native text layer carries any text.
func (p RawPage) HasTextLayer() bool {
	return strings.TrimSpace(p.TextLayer) != ""
}

// CombinedText joins the text layer and the OCR output.
func (p RawPage) CombinedText() string {
	return strings.TrimSpace(p.TextLayer + "\n" + p.OCRText)
}
