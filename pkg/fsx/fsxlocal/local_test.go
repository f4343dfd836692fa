package fsxlocal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalFileSystem(t *testing.T) {
	base := t.TempDir()
	fs := NewLocalFileSystem(base)
	ctx := context.Background()

	if err := fs.WriteFile(ctx, "reports/a.pdf", []byte("data")); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	data, err := fs.ReadFile(ctx, "reports/a.pdf")
	if err != nil || string(data) != "data" {
		t.Fatalf("ReadFile = %q, %v", data, err)
	}

	exists, err := fs.Exists(ctx, "reports/a.pdf")
	if err != nil || !exists {
		t.Errorf("Exists = %v, %v", exists, err)
	}
	exists, err = fs.Exists(ctx, "reports/b.pdf")
	if err != nil || exists {
		t.Errorf("Exists on missing file = %v, %v", exists, err)
	}

	if err := fs.Delete(ctx, "reports/a.pdf"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := fs.ReadFile(ctx, "reports/a.pdf"); err == nil {
		t.Error("ReadFile succeeded after Delete")
	}
}

func TestLocalFileSystemConfinesPaths(t *testing.T) {
	base := t.TempDir()
	fs := NewLocalFileSystem(filepath.Join(base, "root"))
	ctx := context.Background()

	outside := filepath.Join(base, "escape.txt")
	if err := fs.WriteFile(ctx, "../escape.txt", []byte("x")); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	if _, err := os.Stat(outside); err == nil {
		t.Error("traversal path escaped the base directory")
	}
}
