package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ObjectUploader is the part of the Supabase client the storage needs.
type ObjectUploader interface {
	UploadObject(bucket, path string, data io.Reader, contentType string) error
}

// SupabaseStorage keeps uploaded PDFs in a Supabase storage bucket.
type SupabaseStorage struct {
	client ObjectUploader
	bucket string
}

func NewSupabaseStorage(client ObjectUploader, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		client: client,
		bucket: bucket,
	}
}

func (s *SupabaseStorage) Upload(
	ctx context.Context,
	path string,
	file io.Reader,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.client.UploadObject(s.bucket, path, file, "application/pdf"); err != nil {
		return fmt.Errorf("storage upload failed: %w", err)
	}
	return nil
}

// LocalStorage writes uploads below a directory on disk.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

func (s *LocalStorage) Upload(
	ctx context.Context,
	path string,
	file io.Reader,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dest, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	// Write to a temp file first so a failed copy never leaves a partial PDF.
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create upload file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write upload: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("failed to store upload: %w", err)
	}
	return nil
}

func (s *LocalStorage) resolve(path string) (string, error) {
	clean := filepath.Clean("/" + filepath.FromSlash(path))
	if clean == string(filepath.Separator) || strings.HasSuffix(path, "/") {
		return "", errors.New("invalid storage path")
	}
	return filepath.Join(s.root, clean), nil
}
