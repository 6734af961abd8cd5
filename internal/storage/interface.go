package storage

import (
	"context"
	"io"
	"time"
)

// EvidenceStorage is the interface for storing upgrade-evidence and
// activity-proof files. The mock implementation keeps files on the
// local filesystem behind presigned-style URLs; a cloud backend can
// replace it without touching the services.
type EvidenceStorage interface {
	// GenerateUploadURL returns a presigned-style URL a client can PUT
	// the file to.
	GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error)

	// GenerateDownloadURL returns a presigned-style URL the file can be
	// fetched from.
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists reports whether the file exists and its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// SaveFile persists an uploaded file (mock HTTP handler only).
	SaveFile(key string, reader io.Reader) error

	// ReadFile opens a stored file for reading (mock HTTP handler only).
	ReadFile(key string) (io.ReadCloser, error)
}
