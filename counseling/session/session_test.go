package session

import (
	"errors"
	"testing"

	"github.com/Abraxas-365/counsel/pkg/errx"
)

func TestResetKeepsIdentity(t *testing.T) {
	s := New("abc-123")
	s.Name = "Ana"
	s.Interests = "coding"
	s.RecommendedCareer = "Tech / Data Science"
	s.ReportPath = "reports/x.pdf"
	s.InterviewMode = true
	created := s.CreatedAt

	s.Reset()

	if s.ID != "abc-123" {
		t.Errorf("ID = %q, want abc-123", s.ID)
	}
	if !s.CreatedAt.Equal(created) {
		t.Error("Reset changed CreatedAt")
	}
	if s.Name != "" || s.Interests != "" || s.RecommendedCareer != "" ||
		s.ReportPath != "" || s.InterviewMode {
		t.Errorf("Reset left state behind: %+v", s)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New("abc")
	s.Name = "Ana"

	c := s.Clone()
	c.Name = "Maria"

	if s.Name != "Ana" {
		t.Errorf("mutating the clone changed the original: %q", s.Name)
	}
}

func TestProfileText(t *testing.T) {
	s := New("abc")
	s.Interests = "coding"
	s.Strengths = "logic"
	s.Subjects = "math"
	s.ResumeKeywords = "python sql"

	if got := s.ProfileText(); got != "coding logic math python sql" {
		t.Errorf("ProfileText() = %q", got)
	}
}

func TestDisplayName(t *testing.T) {
	s := New("abc")
	if got := s.DisplayName(); got != "User" {
		t.Errorf("DisplayName() = %q, want User", got)
	}
	s.Name = "Ana"
	if got := s.DisplayName(); got != "Ana" {
		t.Errorf("DisplayName() = %q, want Ana", got)
	}
}

func TestParseSlotName(t *testing.T) {
	for _, valid := range []string{"name", "interests", "strengths", "subjects", "resume_keywords"} {
		if _, err := ParseSlotName(valid); err != nil {
			t.Errorf("ParseSlotName(%q) error: %v", valid, err)
		}
	}

	_, err := ParseSlotName("recommended_career")
	if err == nil {
		t.Fatal("ParseSlotName accepted a non-writable slot")
	}
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != CodeUnknownSlot {
		t.Errorf("error = %v, want %s", err, CodeUnknownSlot)
	}
}

func TestParseActionKind(t *testing.T) {
	for _, valid := range []string{
		"record_identity", "recommend", "generate_report",
		"skill_gap", "day_in_life", "mock_interview", "reset",
	} {
		if _, err := ParseActionKind(valid); err != nil {
			t.Errorf("ParseActionKind(%q) error: %v", valid, err)
		}
	}

	_, err := ParseActionKind("make_coffee")
	if err == nil {
		t.Fatal("ParseActionKind accepted an unknown action")
	}
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != CodeUnknownAction {
		t.Errorf("error = %v, want %s", err, CodeUnknownAction)
	}
}

func TestSetSlot(t *testing.T) {
	s := New("abc")
	s.SetSlot(SlotUserName, "Ana")
	s.SetSlot(SlotResumeKeywords, "python sql")

	if s.Name != "Ana" || s.ResumeKeywords != "python sql" {
		t.Errorf("SetSlot results: %+v", s)
	}
	if !s.HasResume() {
		t.Error("HasResume() = false after setting resume keywords")
	}
}
