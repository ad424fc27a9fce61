package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage on the local filesystem.
// Used in development when no S3 credentials are configured.
type LocalStorage struct {
	baseDir   string
	publicURL string
}

// NewLocalStorage creates a filesystem-backed storage rooted at baseDir
func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{
		baseDir:   cfg.LocalDir,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Put stores a file under baseDir, creating parent directories as needed
func (l *LocalStorage) Put(ctx context.Context, key string, reader io.Reader, contentType string) error {
	path, err := l.safePath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Delete removes a file; a missing file is not an error
func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	path, err := l.safePath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetURL returns the public URL for a file
func (l *LocalStorage) GetURL(key string) string {
	return l.publicURL + "/" + key
}

// safePath resolves key inside baseDir and rejects path traversal
func (l *LocalStorage) safePath(key string) (string, error) {
	path := filepath.Join(l.baseDir, filepath.Clean("/"+key))
	if !strings.HasPrefix(path, filepath.Clean(l.baseDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid storage key: %s", key)
	}
	return path, nil
}
