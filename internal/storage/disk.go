// Package storage persists uploaded checkup images on the local filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Ashokchittari/dentoCare/internal/logger"
)

// maxUploadSize caps a single stored file at 20 MB.
const maxUploadSize = int64(20 * 1024 * 1024)

// ErrFileTooLarge is returned by Save when the upload exceeds maxUploadSize.
var ErrFileTooLarge = errors.New("uploaded file is too large")

// DiskStore writes uploaded files under a local directory and addresses them
// by a relative path like "uploads/1714063323841.jpg". Filenames are
// timestamp-based with the original extension preserved.
type DiskStore struct {
	root string // directory files are written to, e.g. "uploads"
	seq  atomic.Uint64
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(root string) (*DiskStore, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		if err := os.MkdirAll(root, os.ModePerm); err != nil {
			return nil, err
		}
	}
	return &DiskStore{root: root}, nil
}

// Save stores the file contents and returns the addressable path.
// The sequence suffix keeps two uploads in the same millisecond apart.
// Uploads above 20 MB are rejected with ErrFileTooLarge and nothing is kept.
func (s *DiskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), s.seq.Add(1), ext)
	fullPath := filepath.Join(s.root, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		logger.Log.Errorw("failed to create upload file", "path", fullPath, "error", err)
		return "", err
	}
	defer dst.Close()

	// Read one byte past the limit so an oversize upload is detected
	// instead of silently truncated.
	written, err := io.Copy(dst, io.LimitReader(r, maxUploadSize+1))
	if err != nil {
		os.Remove(fullPath)
		logger.Log.Errorw("failed to write upload file", "path", fullPath, "error", err)
		return "", err
	}
	if written > maxUploadSize {
		os.Remove(fullPath)
		logger.Log.Errorw("upload exceeds size limit", "path", fullPath, "limit", maxUploadSize)
		return "", ErrFileTooLarge
	}

	stored := filepath.ToSlash(filepath.Join(filepath.Base(s.root), name))
	logger.Log.Infow("stored upload", "path", stored, "size", written)
	return stored, nil
}

// ReadFile resolves a stored path back to its bytes.
// Paths outside the store directory are rejected.
func (s *DiskStore) ReadFile(url string) ([]byte, error) {
	name := filepath.Base(filepath.FromSlash(url))
	fullPath := filepath.Join(s.root, name)

	absRoot, err := filepath.Abs(s.root)
	if err != nil {
		return nil, err
	}
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(absPath, absRoot+string(os.PathSeparator)) {
		return nil, fmt.Errorf("file path is outside the store directory: %s", url)
	}

	return os.ReadFile(absPath)
}

// Dir returns the directory files are stored in, for static serving.
func (s *DiskStore) Dir() string {
	return s.root
}
