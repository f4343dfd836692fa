package session

import (
	"time"

	"github.com/Abraxas-365/counsel/pkg/kernel"
)

// ============================================================================
// Request DTOs
// ============================================================================

// TurnRequest is one conversation turn delivered by the dialogue
// collaborator: the session, the raw user text, exactly one action, and
// optional slot-mutation instructions applied before the action runs.
type TurnRequest struct {
	SessionID string            `json:"session_id" validate:"required"`
	Action    string            `json:"action" validate:"required"`
	Text      string            `json:"text"`
	Slots     map[string]string `json:"slots,omitempty"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// Payload is one response unit handed back to the dialogue collaborator.
// Custom carries structured data such as a report path.
type Payload struct {
	Text   string         `json:"text"`
	Custom map[string]any `json:"custom,omitempty"`
}

// TextPayload builds a plain text payload.
func TextPayload(text string) Payload {
	return Payload{Text: text}
}

// SessionResponse is the external snapshot of a session.
type SessionResponse struct {
	SessionID         kernel.SessionID   `json:"session_id"`
	Name              string             `json:"name,omitempty"`
	Interests         string             `json:"interests,omitempty"`
	Strengths         string             `json:"strengths,omitempty"`
	Subjects          string             `json:"subjects,omitempty"`
	ResumeKeywords    string             `json:"resume_keywords,omitempty"`
	RecommendedCareer kernel.DomainLabel `json:"recommended_career,omitempty"`
	ReportPath        kernel.ReportPath  `json:"report_path,omitempty"`
	InterviewMode     bool               `json:"interview_mode"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// ToSessionResponse maps a session to its external representation.
func ToSessionResponse(s *Session) *SessionResponse {
	return &SessionResponse{
		SessionID:         s.ID,
		Name:              s.Name,
		Interests:         s.Interests,
		Strengths:         s.Strengths,
		Subjects:          s.Subjects,
		ResumeKeywords:    s.ResumeKeywords,
		RecommendedCareer: s.RecommendedCareer,
		ReportPath:        s.ReportPath,
		InterviewMode:     s.InterviewMode,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// UploadResumeResponse acknowledges an accepted resume upload.
type UploadResumeResponse struct {
	JobID     kernel.ExtractionJobID `json:"job_id"`
	SessionID kernel.SessionID       `json:"session_id"`
	Status    string                 `json:"status"`
}
