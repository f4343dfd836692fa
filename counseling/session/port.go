package session

import (
	"context"
	"time"

	"github.com/Abraxas-365/counsel/counseling/report"
	"github.com/Abraxas-365/counsel/pkg/kernel"
)

// Repository persists sessions by key. The contract is read/write-by-key
// only; no operation spans more than one session.
type Repository interface {
	// GetByID retrieves a session, ErrSessionNotFound when absent
	GetByID(ctx context.Context, id kernel.SessionID) (*Session, error)

	// Upsert writes the full session row (write-through per action)
	Upsert(ctx context.Context, s *Session) error

	// Delete removes a session row
	Delete(ctx context.Context, id kernel.SessionID) error
}

// ExtractionJob describes one queued resume-to-text extraction.
type ExtractionJob struct {
	ID         kernel.ExtractionJobID `json:"id"`
	SessionID  kernel.SessionID       `json:"session_id"`
	FilePath   string                 `json:"file_path"`
	FileType   string                 `json:"file_type"`
	EnqueuedAt time.Time              `json:"enqueued_at"`
}

// ExtractionQueue carries extraction jobs to the worker pool.
type ExtractionQueue interface {
	// Enqueue adds a job to the queue
	Enqueue(ctx context.Context, job *ExtractionJob) error

	// Dequeue gets a job from the queue (blocking with timeout); returns
	// nil bytes when the queue stayed empty
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// Size returns the number of queued jobs
	Size(ctx context.Context) (int64, error)

	// Ping checks queue connectivity
	Ping(ctx context.Context) error
}

// Generator is the external generative text collaborator. A failed call
// returns an error value; callers substitute degraded text and continue.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ReportRenderer turns an assembled document model into rendered bytes.
// The core does not know the byte format beyond its file extension.
type ReportRenderer interface {
	Render(doc report.Document) ([]byte, error)
}

// TextExtractor converts an uploaded resume file into plain text.
type TextExtractor interface {
	ExtractText(data []byte, fileType string) (string, error)
}
