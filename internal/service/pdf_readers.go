package service

import (
	"bytes"
	"fmt"
	"strings"

	"pdf-insight/internal/domain"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// FitzOpener reads PDFs with MuPDF. It is the only reader that can render
// pages for OCR.
type FitzOpener struct{}

func NewFitzOpener() *FitzOpener {
	return &FitzOpener{}
}

func (o *FitzOpener) Name() string { return "mupdf" }

func (o *FitzOpener) Open(data []byte) (domain.PDFDocument, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &fitzDocument{doc: doc}, nil
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) NumPage() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) PageText(pageNumber int) (string, error) {
	return d.doc.Text(pageNumber)
}

func (d *fitzDocument) RenderPage(pageNumber int, dpi float64) ([]byte, error) {
	return d.doc.ImagePNG(pageNumber, dpi)
}

func (d *fitzDocument) Metadata() map[string]string {
	return d.doc.Metadata()
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}

// PlainTextOpener is a pure Go reader used when MuPDF cannot open a file.
// It extracts text only.
type PlainTextOpener struct{}

func NewPlainTextOpener() *PlainTextOpener {
	return &PlainTextOpener{}
}

func (o *PlainTextOpener) Name() string { return "ledongthuc" }

func (o *PlainTextOpener) Open(data []byte) (doc domain.PDFDocument, err error) {
	// The reader panics on some malformed cross reference tables.
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("failed to open PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &plainTextDocument{reader: r}, nil
}

type plainTextDocument struct {
	reader *pdf.Reader
}

func (d *plainTextDocument) NumPage() int {
	return d.reader.NumPage()
}

func (d *plainTextDocument) PageText(pageNumber int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("page %d: %v", pageNumber+1, r)
		}
	}()

	p := d.reader.Page(pageNumber + 1)
	if p.V.IsNull() {
		return "", nil
	}
	text, err = p.GetPlainText(nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (d *plainTextDocument) RenderPage(int, float64) ([]byte, error) {
	return nil, domain.ErrRenderUnsupported
}

func (d *plainTextDocument) Close() error { return nil }

// PdfcpuValidator rejects files whose structure cannot be parsed. Relaxed
// mode tolerates the minor PDF format violations common in scanner output.
type PdfcpuValidator struct {
	conf *model.Configuration
}

func NewPdfcpuValidator() *PdfcpuValidator {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PdfcpuValidator{conf: conf}
}

func (v *PdfcpuValidator) Validate(data []byte) error {
	if err := api.Validate(bytes.NewReader(data), v.conf); err != nil {
		return fmt.Errorf("invalid PDF structure: %w", err)
	}
	return nil
}
