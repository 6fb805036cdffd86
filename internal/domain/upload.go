package domain

import (
	"bytes"
	"path/filepath"
	"strings"
)

var pdfMagic = []byte("%PDF-")

// Validate checks that the upload looks like a PDF and fits the size limit.
// A maxSize of zero or less disables the size check.
func (u *Upload) Validate(maxSize int64) error {
	if len(u.Data) == 0 {
		return &ValidationError{Field: "file", Message: "file is empty", Err: ErrInvalidFile}
	}
	if maxSize > 0 && int64(len(u.Data)) > maxSize {
		return &ValidationError{Field: "file", Message: ErrFileTooLarge.Error(), Err: ErrFileTooLarge}
	}
	if !u.declaresPDF() {
		return &ValidationError{Field: "content_type", Message: ErrNotPDF.Error(), Err: ErrNotPDF}
	}
	if !bytes.HasPrefix(u.Data, pdfMagic) {
		return &ValidationError{Field: "file", Message: ErrNotPDF.Error(), Err: ErrNotPDF}
	}
	return nil
}

// declaresPDF accepts application/pdf, or a generic binary type when the
// file name carries a .pdf extension.
func (u *Upload) declaresPDF() bool {
	ct := strings.ToLower(strings.TrimSpace(u.ContentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case "application/pdf":
		return true
	case "", "application/octet-stream":
		return strings.EqualFold(filepath.Ext(u.Filename), ".pdf")
	default:
		return false
	}
}
