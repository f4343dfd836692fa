package fsx

import "context"

// FileReader reads stored files by path.
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileWriter stores files by path.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

// FileSystem is the full storage surface used by the service: uploaded
// resumes go in, rendered reports come out.
type FileSystem interface {
	FileReader
	FileWriter
	Exists(ctx context.Context, path string) (bool, error)
	Delete(ctx context.Context, path string) error
}
