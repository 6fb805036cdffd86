package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pdf-insight/internal/domain"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine recognises page images with libtesseract.
type TesseractEngine struct {
	settings domain.OCRSettings
	logger   domain.Logger

	checkOnce sync.Once
	ready     bool
}

// NewTesseractEngine creates an engine for the configured languages.
func NewTesseractEngine(settings domain.OCRSettings, logger domain.Logger) *TesseractEngine {
	return &TesseractEngine{
		settings: settings,
		logger:   logger,
	}
}

// Available reports whether OCR is enabled and every configured language
// has trained data installed.
func (e *TesseractEngine) Available() bool {
	if !e.settings.Enabled {
		return false
	}
	e.checkOnce.Do(e.checkLanguages)
	return e.ready
}

func (e *TesseractEngine) checkLanguages() {
	installed, err := gosseract.GetAvailableLanguages()
	if err != nil {
		e.logger.Warn("Tesseract language data not found; OCR disabled", "error", err)
		return
	}

	have := make(map[string]bool, len(installed))
	for _, lang := range installed {
		have[lang] = true
	}
	for _, lang := range e.settings.Languages {
		if !have[lang] {
			e.logger.Warn("Tesseract language missing; OCR disabled", "language", lang)
			return
		}
	}

	e.ready = true
	e.logger.Info("Tesseract OCR available", "version", gosseract.Version(), "languages", e.settings.Languages)
}

// Recognize runs OCR on a PNG image. A fresh client is used per call since
// clients are not safe for concurrent use.
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte) (string, error) {
	if !e.Available() {
		return "", domain.ErrOCRUnavailable
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(image) == 0 {
		return "", errors.New("empty page image")
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(e.settings.Languages) > 0 {
		if err := client.SetLanguage(e.settings.Languages...); err != nil {
			return "", fmt.Errorf("failed to set OCR language: %w", err)
		}
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to load page image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr failed: %w", err)
	}
	return text, nil
}
