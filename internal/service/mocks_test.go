package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"pdf-insight/internal/domain"
)

// Mock implementations for testing

type MockLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) record(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, s)
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.record("INFO: " + msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	m.record("ERROR: " + msg + " - " + err.Error())
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.record("DEBUG: " + msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.record("WARN: " + msg)
}

type MockDocument struct {
	texts     []string
	textErr   map[int]error
	renderErr map[int]error
	block     chan struct{}
	started   chan struct{}

	mu     sync.Mutex
	closed bool
}

func (d *MockDocument) NumPage() int { return len(d.texts) }

func (d *MockDocument) PageText(i int) (string, error) {
	if d.started != nil {
		select {
		case d.started <- struct{}{}:
		default:
		}
	}
	if d.block != nil {
		<-d.block
	}
	if err := d.textErr[i]; err != nil {
		return "", err
	}
	return d.texts[i], nil
}

func (d *MockDocument) RenderPage(i int, dpi float64) ([]byte, error) {
	if err := d.renderErr[i]; err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("page-%d", i+1)), nil
}

func (d *MockDocument) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

func (d *MockDocument) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// MockMetadataDocument also exposes the PDF info dictionary.
type MockMetadataDocument struct {
	*MockDocument
	info map[string]string
}

func (d *MockMetadataDocument) Metadata() map[string]string { return d.info }

type MockOpener struct {
	name string
	doc  domain.PDFDocument
	err  error
}

func (o *MockOpener) Name() string { return o.name }

func (o *MockOpener) Open(data []byte) (domain.PDFDocument, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.doc, nil
}

type MockValidator struct {
	err error
}

func (v *MockValidator) Validate(data []byte) error { return v.err }

// MockOCR answers per rendered image, keyed by "page-N".
type MockOCR struct {
	available bool
	texts     map[string]string
	errs      map[string]error

	mu    sync.Mutex
	calls []string
}

func (o *MockOCR) Available() bool { return o.available }

func (o *MockOCR) Recognize(ctx context.Context, image []byte) (string, error) {
	key := string(image)
	o.mu.Lock()
	o.calls = append(o.calls, key)
	o.mu.Unlock()
	if err := o.errs[key]; err != nil {
		return "", err
	}
	return o.texts[key], nil
}

func (o *MockOCR) callCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.calls)
}

type MockStorageService struct {
	paths []string
	data  [][]byte
	err   error
}

func NewMockStorageService() *MockStorageService {
	return &MockStorageService{}
}

func (m *MockStorageService) Upload(ctx context.Context, path string, file io.Reader) error {
	if m.err != nil {
		return m.err
	}
	b, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	m.paths = append(m.paths, path)
	m.data = append(m.data, b)
	return nil
}

var errMock = errors.New("mock failure")
