package fsxlocal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Abraxas-365/counsel/pkg/fsx"
)

// LocalFileSystem stores files under a base directory on local disk.
type LocalFileSystem struct {
	baseDir string
}

// NewLocalFileSystem creates a disk-backed file system rooted at baseDir.
func NewLocalFileSystem(baseDir string) fsx.FileSystem {
	return &LocalFileSystem{baseDir: baseDir}
}

func (l *LocalFileSystem) resolve(path string) string {
	return filepath.Join(l.baseDir, filepath.Clean("/"+path))
}

func (l *LocalFileSystem) ReadFile(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(l.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func (l *LocalFileSystem) WriteFile(_ context.Context, path string, data []byte) error {
	full := l.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", path, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (l *LocalFileSystem) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(l.resolve(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (l *LocalFileSystem) Delete(_ context.Context, path string) error {
	if err := os.Remove(l.resolve(path)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}
