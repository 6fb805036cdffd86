package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"pdf-insight/internal/domain"
)

// PDFProcessor opens uploaded PDFs and pulls the native text layer out of
// every page.
type PDFProcessor struct {
	openers     []domain.PDFOpener
	pageTimeout time.Duration
	logger      domain.Logger
}

// NewPDFProcessor creates a new PDF processor. Openers are tried in order.
func NewPDFProcessor(logger domain.Logger, pageTimeout time.Duration, openers ...domain.PDFOpener) *PDFProcessor {
	if pageTimeout <= 0 {
		pageTimeout = 90 * time.Second
	}
	return &PDFProcessor{
		openers:     openers,
		pageTimeout: pageTimeout,
		logger:      logger,
	}
}

// metadataReader is implemented by documents that expose the PDF info dictionary.
type metadataReader interface {
	Metadata() map[string]string
}

// Open returns the first document any opener can read. A document without
// pages counts as a failure so the next opener gets a chance.
func (p *PDFProcessor) Open(data []byte) (domain.PDFDocument, domain.PDFMetadata, error) {
	if len(p.openers) == 0 {
		return nil, domain.PDFMetadata{}, errors.New("no PDF readers configured")
	}

	var errs []error
	for _, opener := range p.openers {
		doc, err := opener.Open(data)
		if err == nil && doc.NumPage() == 0 {
			_ = doc.Close()
			err = domain.ErrNoPages
		}
		if err != nil {
			p.logger.Warn("PDF reader could not open document", "reader", opener.Name(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", opener.Name(), err))
			continue
		}

		meta := domain.PDFMetadata{
			PageCount: doc.NumPage(),
			Reader:    opener.Name(),
		}
		if mr, ok := doc.(metadataReader); ok {
			info := mr.Metadata()
			meta.Title = info["title"]
			meta.Author = info["author"]
		}
		return newTrackedDocument(doc), meta, nil
	}

	return nil, domain.PDFMetadata{}, fmt.Errorf("failed to open PDF: %w", errors.Join(errs...))
}

// ExtractPages reads the text layer of every page. A page that errors or
// exceeds the page timeout yields an empty text layer.
func (p *PDFProcessor) ExtractPages(ctx context.Context, doc domain.PDFDocument) []domain.RawPage {
	numPages := doc.NumPage()
	pages := make([]domain.RawPage, numPages)

	type pageResult struct {
		text string
		err  error
	}

	for pageNum := 0; pageNum < numPages; pageNum++ {
		pages[pageNum] = domain.RawPage{
			Number:    pageNum + 1,
			OCRStatus: domain.OCRStatusSkipped,
		}
		if ctx.Err() != nil {
			continue
		}

		p.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)
		resultCh := make(chan pageResult, 1)
		go func(idx int) {
			t, e := doc.PageText(idx)
			resultCh <- pageResult{text: t, err: e}
		}(pageNum)

		var text string
		var err error
		select {
		case res := <-resultCh:
			text, err = res.text, res.err
		case <-time.After(p.pageTimeout):
			p.logger.Warn("PDF page extraction timeout; using empty page", "page", pageNum+1, "total", numPages, "timeout_sec", int(p.pageTimeout.Seconds()))
			err = fmt.Errorf("timeout after %v", p.pageTimeout)
		case <-ctx.Done():
			err = ctx.Err()
		}
		if err != nil {
			p.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", err)
			continue
		}

		pages[pageNum].TextLayer = sanitizeText(text)
	}

	return pages
}

// trackedDocument counts page reads that are still running. Close on the
// wrapped document is postponed until the last of them returns, since a
// timed out or cancelled read keeps running inside the reader.
type trackedDocument struct {
	domain.PDFDocument

	mu       sync.Mutex
	inflight int
	closed   bool
}

func newTrackedDocument(doc domain.PDFDocument) *trackedDocument {
	return &trackedDocument{PDFDocument: doc}
}

func (d *trackedDocument) acquire() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	d.inflight++
	return true
}

func (d *trackedDocument) release() {
	d.mu.Lock()
	d.inflight--
	last := d.closed && d.inflight == 0
	d.mu.Unlock()
	if last {
		_ = d.PDFDocument.Close()
	}
}

func (d *trackedDocument) PageText(pageNumber int) (string, error) {
	if !d.acquire() {
		return "", domain.ErrDocumentClosed
	}
	defer d.release()
	return d.PDFDocument.PageText(pageNumber)
}

func (d *trackedDocument) RenderPage(pageNumber int, dpi float64) ([]byte, error) {
	if !d.acquire() {
		return nil, domain.ErrDocumentClosed
	}
	defer d.release()
	return d.PDFDocument.RenderPage(pageNumber, dpi)
}

// Close releases the document now, or when the last running read returns.
func (d *trackedDocument) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	pending := d.inflight
	d.mu.Unlock()

	if pending > 0 {
		return nil
	}
	return d.PDFDocument.Close()
}

// sanitizeText drops control characters other than tab, newline and
// carriage return, and the replacement runes left by invalid UTF-8.
func sanitizeText(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch {
		case r == 0x09 || r == 0x0A || r == 0x0D:
			result.WriteRune(r)
		case r < 0x20, r == 0x7F, r == utf8.RuneError:
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
