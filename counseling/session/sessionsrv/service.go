package sessionsrv

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/counsel/counseling/career"
	"github.com/Abraxas-365/counsel/counseling/session"
	"github.com/Abraxas-365/counsel/internal/textnorm"
	"github.com/Abraxas-365/counsel/pkg/errx"
	"github.com/Abraxas-365/counsel/pkg/fsx"
	"github.com/Abraxas-365/counsel/pkg/kernel"
	"github.com/Abraxas-365/counsel/pkg/logx"
)

const (
	uploadPrefix = "uploads"
	reportPrefix = "reports"
)

// Service is the session action engine. It owns all slot mutations: one
// action per turn, serialized per session, persisted write-through after
// every mutating action.
type Service struct {
	repo      session.Repository
	catalog   *career.Catalog
	norm      *textnorm.Normalizer
	generator session.Generator
	renderer  session.ReportRenderer
	extractor session.TextExtractor
	files     fsx.FileSystem
	queue     session.ExtractionQueue

	locks keyedMutex
}

// NewService creates a session service.
func NewService(
	repo session.Repository,
	catalog *career.Catalog,
	norm *textnorm.Normalizer,
	generator session.Generator,
	renderer session.ReportRenderer,
	extractor session.TextExtractor,
	files fsx.FileSystem,
	queue session.ExtractionQueue,
) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		norm:      norm,
		generator: generator,
		renderer:  renderer,
		extractor: extractor,
		files:     files,
		queue:     queue,
	}
}

// ============================================================================
// Turn Handling
// ============================================================================

// HandleTurn applies one dialogue turn: optional slot instructions first,
// then exactly one named action. State changes are all-or-nothing; an
// action whose precondition is unmet returns a corrective payload and
// leaves every slot untouched.
func (s *Service) HandleTurn(ctx context.Context, req session.TurnRequest) ([]session.Payload, error) {
	if req.SessionID == "" {
		return nil, session.ErrMissingSessionID()
	}

	kind, err := session.ParseActionKind(req.Action)
	if err != nil {
		return nil, err
	}

	id := kernel.NewSessionID(req.SessionID)
	unlock := s.locks.lock(id)
	defer unlock()

	sess, err := s.loadOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}

	// Actions work on a copy; the stored row only changes on success.
	work := sess.Clone()

	slotsApplied, err := applySlotInstructions(work, req.Slots)
	if err != nil {
		return nil, err
	}

	def := actionTable[kind]
	payloads, mutated, err := def.run(ctx, s, work, req.Text)
	if err != nil {
		return nil, err
	}

	if mutated || slotsApplied {
		if err := s.repo.Upsert(ctx, work); err != nil {
			return nil, errx.Wrap(err, "persist session", errx.TypeInternal)
		}
	}

	return payloads, nil
}

func (s *Service) loadOrCreate(ctx context.Context, id kernel.SessionID) (*session.Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return sess, nil
	}

	var e *errx.Error
	if errors.As(err, &e) && e.Code == session.CodeSessionNotFound {
		// First message from this session_id creates the record.
		return session.New(id), nil
	}
	return nil, err
}

func applySlotInstructions(sess *session.Session, slots map[string]string) (bool, error) {
	if len(slots) == 0 {
		return false, nil
	}

	// Validate every name before writing anything.
	parsed := make(map[session.SlotName]string, len(slots))
	for name, value := range slots {
		slot, err := session.ParseSlotName(name)
		if err != nil {
			return false, err
		}
		parsed[slot] = value
	}
	for slot, value := range parsed {
		sess.SetSlot(slot, value)
	}
	return true, nil
}

// ============================================================================
// Session Queries
// ============================================================================

// GetSession returns a snapshot of the session.
func (s *Service) GetSession(ctx context.Context, id kernel.SessionID) (*session.SessionResponse, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return session.ToSessionResponse(sess), nil
}

// ReadReport serves the stored bytes of a rendered report.
func (s *Service) ReadReport(ctx context.Context, name string) ([]byte, error) {
	data, err := s.files.ReadFile(ctx, path.Join(reportPrefix, path.Base(name)))
	if err != nil {
		return nil, session.ErrSessionNotFound().WithDetail("report", name)
	}
	return data, nil
}

// ============================================================================
// Resume Extraction
// ============================================================================

// EnqueueResumeExtraction stores an uploaded resume file and schedules
// its text extraction.
func (s *Service) EnqueueResumeExtraction(ctx context.Context, id kernel.SessionID, fileName string, data []byte) (*session.UploadResumeResponse, error) {
	if id.IsEmpty() {
		return nil, session.ErrMissingSessionID()
	}

	fileType := strings.TrimPrefix(strings.ToLower(path.Ext(fileName)), ".")
	switch fileType {
	case "pdf", "txt":
	default:
		return nil, session.ErrInvalidFileFormat().
			WithDetail("file_name", fileName).
			WithDetail("supported_formats", []string{"pdf", "txt"})
	}

	jobID := kernel.NewExtractionJobID(uuid.NewString())
	filePath := fmt.Sprintf("%s/%s/%s.%s", uploadPrefix, id, jobID, fileType)

	if err := s.files.WriteFile(ctx, filePath, data); err != nil {
		return nil, errx.Wrap(err, "store uploaded resume", errx.TypeInternal)
	}

	job := &session.ExtractionJob{
		ID:         jobID,
		SessionID:  id,
		FilePath:   filePath,
		FileType:   fileType,
		EnqueuedAt: time.Now(),
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		return nil, session.ErrQueueUnavailable().WithDetail("error", err.Error())
	}

	return &session.UploadResumeResponse{
		JobID:     jobID,
		SessionID: id,
		Status:    "queued",
	}, nil
}

// ProcessExtractionJob runs one extraction job: read the stored file,
// extract its text, write the resume_keywords slot. Extraction failure
// degrades to empty resume text rather than failing the session.
func (s *Service) ProcessExtractionJob(ctx context.Context, job *session.ExtractionJob) error {
	text := ""

	data, err := s.files.ReadFile(ctx, job.FilePath)
	if err != nil {
		logx.Errorf("extraction job %s: read %s: %v", job.ID, job.FilePath, err)
	} else if text, err = s.extractor.ExtractText(data, job.FileType); err != nil {
		logx.Errorf("extraction job %s: extract: %v", job.ID, err)
		text = ""
	}

	return s.applyResumeText(ctx, job.SessionID, text)
}

func (s *Service) applyResumeText(ctx context.Context, id kernel.SessionID, text string) error {
	unlock := s.locks.lock(id)
	defer unlock()

	sess, err := s.loadOrCreate(ctx, id)
	if err != nil {
		return err
	}
	sess.SetSlot(session.SlotResumeKeywords, text)
	return s.repo.Upsert(ctx, sess)
}
