package domain

import (
	"errors"
	"testing"
)

// TestUpload_Validate tests that Upload.Validate() accepts PDFs and rejects everything else.
// It tests:
// - Declared content type handling
// - The %PDF- signature check
// - Size limits and empty uploads
func TestUpload_Validate(t *testing.T) {
	pdf := []byte("%PDF-1.7\n...")

	tests := []struct {
		name    string
		upload  Upload
		maxSize int64
		wantErr error
		field   string
	}{
		{
			// Tests the common case of a browser upload
			name:    "Valid application/pdf",
			upload:  Upload{Filename: "a.pdf", ContentType: "application/pdf", Data: pdf},
			maxSize: 1024,
		},
		{
			// Tests that media type parameters are ignored
			name:    "Content type with parameters",
			upload:  Upload{Filename: "a.pdf", ContentType: "Application/PDF; charset=binary", Data: pdf},
			maxSize: 1024,
		},
		{
			// Tests that generic binary uploads are accepted when the name says PDF
			name:    "Octet stream with pdf extension",
			upload:  Upload{Filename: "scan.PDF", ContentType: "application/octet-stream", Data: pdf},
			maxSize: 1024,
		},
		{
			// Tests that a zero limit disables the size check
			name:    "No size limit",
			upload:  Upload{Filename: "a.pdf", ContentType: "application/pdf", Data: pdf},
			maxSize: 0,
		},
		{
			// Tests that generic binary uploads without a pdf name are rejected
			name:    "Octet stream without pdf extension",
			upload:  Upload{Filename: "scan.bin", ContentType: "application/octet-stream", Data: pdf},
			maxSize: 1024,
			wantErr: ErrNotPDF,
			field:   "content_type",
		},
		{
			// Tests that other declared types are rejected even with PDF bytes
			name:    "Wrong content type",
			upload:  Upload{Filename: "a.pdf", ContentType: "image/png", Data: pdf},
			maxSize: 1024,
			wantErr: ErrNotPDF,
			field:   "content_type",
		},
		{
			// Tests that the signature is checked
			name:    "Missing PDF signature",
			upload:  Upload{Filename: "a.pdf", ContentType: "application/pdf", Data: []byte("hello world")},
			maxSize: 1024,
			wantErr: ErrNotPDF,
			field:   "file",
		},
		{
			// Tests that oversized uploads are rejected before type checks
			name:    "Too large",
			upload:  Upload{Filename: "a.txt", ContentType: "text/plain", Data: pdf},
			maxSize: 4,
			wantErr: ErrFileTooLarge,
			field:   "file",
		},
		{
			// Tests that empty uploads are rejected
			name:    "Empty",
			upload:  Upload{Filename: "a.pdf", ContentType: "application/pdf"},
			maxSize: 1024,
			wantErr: ErrInvalidFile,
			field:   "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.upload.Validate(tt.maxSize)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected a ValidationError, got %T", err)
			}
			if vErr.Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, vErr.Field)
			}
		})
	}
}
