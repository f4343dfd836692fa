package session

import (
	"strings"
	"time"

	"github.com/Abraxas-365/counsel/pkg/kernel"
)

// Session is the mutable per-conversation record. One conversation owns
// its session exclusively; slots are filled incrementally by the action
// engine, one action at a time.
type Session struct {
	ID                kernel.SessionID   `db:"session_id" json:"session_id"`
	Name              string             `db:"name" json:"name"`
	Interests         string             `db:"interests" json:"interests"`
	Strengths         string             `db:"strengths" json:"strengths"`
	Subjects          string             `db:"subjects" json:"subjects"`
	ResumeKeywords    string             `db:"resume_keywords" json:"resume_keywords"`
	RecommendedCareer kernel.DomainLabel `db:"recommended_career" json:"recommended_career"`
	ReportPath        kernel.ReportPath  `db:"report_path" json:"report_path"`
	InterviewMode     bool               `db:"interview_mode" json:"interview_mode"`
	CreatedAt         time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `db:"updated_at" json:"updated_at"`
}

// New creates a session with all slots at their defaults.
func New(id kernel.SessionID) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ============================================================================
// Domain Methods
// ============================================================================

// Reset clears every slot back to its default. The identity and creation
// time survive; everything else is reinitialized.
func (s *Session) Reset() {
	s.Name = ""
	s.Interests = ""
	s.Strengths = ""
	s.Subjects = ""
	s.ResumeKeywords = ""
	s.RecommendedCareer = ""
	s.ReportPath = ""
	s.InterviewMode = false
	s.UpdatedAt = time.Now()
}

// Clone returns a copy of the session. Actions mutate the copy so a
// failed action never leaves the stored state partially changed.
func (s *Session) Clone() *Session {
	c := *s
	return &c
}

// ProfileText concatenates the four profile slots for scoring. Raw values
// are joined; normalization happens downstream.
func (s *Session) ProfileText() string {
	return strings.Join([]string{
		s.Interests,
		s.Strengths,
		s.Subjects,
		s.ResumeKeywords,
	}, " ")
}

// HasRecommendation reports whether a career has been recommended.
func (s *Session) HasRecommendation() bool {
	return !s.RecommendedCareer.IsEmpty()
}

// HasResume reports whether resume text has been captured.
func (s *Session) HasResume() bool {
	return strings.TrimSpace(s.ResumeKeywords) != ""
}

// DisplayName returns the user's name or a neutral fallback.
func (s *Session) DisplayName() string {
	if strings.TrimSpace(s.Name) == "" {
		return "User"
	}
	return s.Name
}

// ============================================================================
// Slots
// ============================================================================

// SlotName identifies a session slot that the dialogue collaborator may
// set directly through turn-level slot instructions.
type SlotName string

const (
	SlotUserName       SlotName = "name"
	SlotInterests      SlotName = "interests"
	SlotStrengths      SlotName = "strengths"
	SlotSubjects       SlotName = "subjects"
	SlotResumeKeywords SlotName = "resume_keywords"
)

// ParseSlotName validates an externally supplied slot name.
func ParseSlotName(s string) (SlotName, error) {
	switch SlotName(s) {
	case SlotUserName, SlotInterests, SlotStrengths, SlotSubjects, SlotResumeKeywords:
		return SlotName(s), nil
	default:
		return "", ErrUnknownSlot().WithDetail("slot", s)
	}
}

// SetSlot writes a raw value into the named slot.
func (s *Session) SetSlot(slot SlotName, value string) {
	switch slot {
	case SlotUserName:
		s.Name = value
	case SlotInterests:
		s.Interests = value
	case SlotStrengths:
		s.Strengths = value
	case SlotSubjects:
		s.Subjects = value
	case SlotResumeKeywords:
		s.ResumeKeywords = value
	}
	s.UpdatedAt = time.Now()
}
