package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MockEvidenceStorage stores evidence files on the local filesystem.
// Upload and download URLs point back at this server's mock endpoints.
type MockEvidenceStorage struct {
	baseURL     string // server URL, e.g. "http://localhost:8080"
	evidenceDir string
}

func NewMockEvidenceStorage(baseURL, uploadsDir string) (*MockEvidenceStorage, error) {
	evidenceDir := filepath.Join(uploadsDir, "evidence")
	if err := os.MkdirAll(evidenceDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create evidence directory: %w", err)
	}
	return &MockEvidenceStorage{
		baseURL:     baseURL,
		evidenceDir: evidenceDir,
	}, nil
}

// NewEvidenceKey builds a fresh storage key for a chapter's evidence file.
func NewEvidenceKey(chapterID, filename string) string {
	return fmt.Sprintf("%s/%s-%s", chapterID, uuid.NewString(), filepath.Base(filename))
}

func (m *MockEvidenceStorage) GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error) {
	// The key travels in the query string so the upload handler knows
	// where to save the body.
	uploadToken := uuid.NewString()
	return fmt.Sprintf("%s/api/v1/evidence/upload/%s?key=%s", m.baseURL, uploadToken, url.QueryEscape(key)), nil
}

func (m *MockEvidenceStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/api/v1/evidence/download?key=%s", m.baseURL, url.QueryEscape(key)), nil
}

func (m *MockEvidenceStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(m.fullPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (m *MockEvidenceStorage) SaveFile(key string, reader io.Reader) error {
	fullPath := m.fullPath(key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}
	f, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (m *MockEvidenceStorage) ReadFile(key string) (io.ReadCloser, error) {
	return os.Open(m.fullPath(key))
}

// fullPath resolves a key inside the evidence dir, refusing traversal.
func (m *MockEvidenceStorage) fullPath(key string) string {
	cleaned := filepath.Clean("/" + strings.ReplaceAll(key, "..", ""))
	return filepath.Join(m.evidenceDir, cleaned)
}
