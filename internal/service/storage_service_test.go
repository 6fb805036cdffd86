package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeUploader struct {
	bucket      string
	path        string
	contentType string
	body        string
	err         error
}

func (f *fakeUploader) UploadObject(bucket, path string, data io.Reader, contentType string) error {
	b, _ := io.ReadAll(data)
	f.bucket, f.path, f.contentType, f.body = bucket, path, contentType, string(b)
	return f.err
}

func TestSupabaseStorage_Upload(t *testing.T) {
	uploader := &fakeUploader{}
	svc := NewSupabaseStorage(uploader, "documents")

	if err := svc.Upload(context.Background(), "pdfs/abc.pdf", strings.NewReader("%PDF-1.4")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if uploader.bucket != "documents" || uploader.path != "pdfs/abc.pdf" {
		t.Fatalf("unexpected destination %s/%s", uploader.bucket, uploader.path)
	}
	if uploader.contentType != "application/pdf" {
		t.Fatalf("expected application/pdf, got %s", uploader.contentType)
	}
	if uploader.body != "%PDF-1.4" {
		t.Fatalf("unexpected body %q", uploader.body)
	}
}

func TestSupabaseStorage_UploadError(t *testing.T) {
	cause := errors.New("bucket not found")
	svc := NewSupabaseStorage(&fakeUploader{err: cause}, "documents")

	err := svc.Upload(context.Background(), "pdfs/abc.pdf", strings.NewReader("x"))
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestLocalStorage_Upload(t *testing.T) {
	root := t.TempDir()
	svc := NewLocalStorage(root)

	if err := svc.Upload(context.Background(), "pdfs/abc.pdf", strings.NewReader("%PDF-1.7")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := os.ReadFile(filepath.Join(root, "pdfs", "abc.pdf"))
	if err != nil {
		t.Fatalf("expected stored file, got %v", err)
	}
	if string(got) != "%PDF-1.7" {
		t.Fatalf("unexpected stored content %q", got)
	}

	leftovers, _ := filepath.Glob(filepath.Join(root, "pdfs", ".upload-*"))
	if len(leftovers) != 0 {
		t.Fatalf("expected temp files to be cleaned up, got %v", leftovers)
	}
}

func TestLocalStorage_StaysInsideRoot(t *testing.T) {
	root := t.TempDir()
	svc := NewLocalStorage(root)

	if err := svc.Upload(context.Background(), "../../escape.pdf", strings.NewReader("x")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "escape.pdf")); err != nil {
		t.Fatalf("expected file to be written inside root: %v", err)
	}
}

func TestLocalStorage_RejectsEmptyPath(t *testing.T) {
	svc := NewLocalStorage(t.TempDir())

	if err := svc.Upload(context.Background(), "", strings.NewReader("x")); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLocalStorage_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewLocalStorage(t.TempDir()).Upload(ctx, "pdfs/a.pdf", strings.NewReader("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
