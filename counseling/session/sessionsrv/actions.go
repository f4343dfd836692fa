package sessionsrv

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/counsel/counseling/career"
	"github.com/Abraxas-365/counsel/counseling/report"
	"github.com/Abraxas-365/counsel/counseling/session"
	"github.com/Abraxas-365/counsel/pkg/kernel"
	"github.com/Abraxas-365/counsel/pkg/logx"
)

// actionDef pairs an action's precondition predicate with its transition.
// The precondition returns the corrective prompt shown when unmet; run is
// only invoked once the precondition holds and reports whether it mutated
// the session.
type actionDef struct {
	precondition func(s *Service, sess *session.Session) (string, bool)
	handle       func(ctx context.Context, s *Service, sess *session.Session, text string) ([]session.Payload, bool, error)
}

// run checks the precondition and executes the transition. An unmet
// precondition yields the corrective payload and no mutation.
func (d actionDef) run(ctx context.Context, s *Service, sess *session.Session, text string) ([]session.Payload, bool, error) {
	if prompt, ok := d.precondition(s, sess); !ok {
		return []session.Payload{session.TextPayload(prompt)}, false, nil
	}
	return d.handle(ctx, s, sess, text)
}

func always(*Service, *session.Session) (string, bool) { return "", true }

func needsRecommendation(correctivePrompt string) func(*Service, *session.Session) (string, bool) {
	return func(_ *Service, sess *session.Session) (string, bool) {
		if !sess.HasRecommendation() {
			return correctivePrompt, false
		}
		return "", true
	}
}

var actionTable = map[session.ActionKind]actionDef{
	session.ActionRecordIdentity: {
		precondition: always,
		handle:       runRecordIdentity,
	},
	session.ActionRecommend: {
		precondition: func(s *Service, sess *session.Session) (string, bool) {
			if len(s.norm.Normalize(sess.ProfileText())) == 0 {
				return "I need more information to make a recommendation. Could you tell me about your interests?", false
			}
			return "", true
		},
		handle: runRecommend,
	},
	session.ActionGenerateReport: {
		precondition: needsRecommendation("I need to suggest a career first before I can generate a report."),
		handle:       runGenerateReport,
	},
	session.ActionSkillGap: {
		precondition: func(_ *Service, sess *session.Session) (string, bool) {
			switch {
			case !sess.HasResume() && !sess.HasRecommendation():
				return "I need your resume and a career recommendation first. Please upload your resume and ask me for a recommendation.", false
			case !sess.HasResume():
				return "I need your resume first. Please upload it so I can compare your skills against the role.", false
			case !sess.HasRecommendation():
				return "I need to recommend a career first. Ask me for a recommendation once you have shared your interests.", false
			}
			return "", true
		},
		handle: runSkillGap,
	},
	session.ActionDayInLife: {
		precondition: needsRecommendation("Please let me recommend a career first."),
		handle:       runDayInLife,
	},
	session.ActionMockInterview: {
		precondition: needsRecommendation("I need to know which career to interview you for!"),
		handle:       runMockInterview,
	},
	session.ActionReset: {
		precondition: always,
		handle:       runReset,
	},
}

// ============================================================================
// Transitions
// ============================================================================

func runRecordIdentity(_ context.Context, _ *Service, sess *session.Session, text string) ([]session.Payload, bool, error) {
	name := strings.TrimSpace(text)
	sess.SetSlot(session.SlotUserName, name)

	return []session.Payload{
		session.TextPayload(fmt.Sprintf("Nice to meet you, %s! What subjects or activities are you most interested in?", sess.DisplayName())),
	}, true, nil
}

func runRecommend(_ context.Context, s *Service, sess *session.Session, _ string) ([]session.Payload, bool, error) {
	tokens := s.norm.Normalize(sess.ProfileText())

	rec, err := s.catalog.Score(tokens)
	if err != nil {
		return nil, false, err
	}
	sess.RecommendedCareer = rec.Best.Label
	sess.UpdatedAt = time.Now()

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your profile, I recommend exploring **%s**!\n\n", rec.Best.Label)
	fmt.Fprintf(&b, "**About this field:**\n%s\n\n", rec.Best.Description)
	b.WriteString("**Suggested Online Courses to Explore:**\n")
	for _, course := range rec.Best.Courses {
		fmt.Fprintf(&b, "- [%s](%s)\n", course.Title, course.URL)
	}

	return []session.Payload{
		{
			Text: b.String(),
			Custom: map[string]any{
				"recommended_career": rec.Best.Label,
				"match_percent":      rec.Ranked[0].Score.Percent(),
			},
		},
		session.TextPayload("What would you like to do next? I can run a skill gap analysis, simulate a day in this career, start a mock interview, or generate your report."),
	}, true, nil
}

func runGenerateReport(ctx context.Context, s *Service, sess *session.Session, _ string) ([]session.Payload, bool, error) {
	domain, ok := s.catalog.Get(sess.RecommendedCareer)
	if !ok {
		// The recommend action only ever stores catalog labels.
		return nil, false, career.ErrUnknownDomain().WithDetail("label", sess.RecommendedCareer)
	}

	doc := report.Assemble(report.Input{
		Name:        sess.Name,
		Career:      domain.Label,
		Description: domain.Description,
		Interests:   sess.Interests,
		Strengths:   sess.Strengths,
		Subjects:    sess.Subjects,
	})

	rendered, err := s.renderer.Render(doc)
	if err != nil {
		return nil, false, report.ErrRegistry.NewWithCause(report.CodeRenderFailed, err)
	}

	safeName := strings.ReplaceAll(sess.DisplayName(), " ", "_")
	storagePath := fmt.Sprintf("%s/Career_Report_%s_%s.pdf", reportPrefix, safeName, sess.ID.Short())
	if err := s.files.WriteFile(ctx, storagePath, rendered); err != nil {
		return nil, false, report.ErrRegistry.NewWithCause(report.CodeStoreFailed, err).
			WithDetail("path", storagePath)
	}

	sess.ReportPath = kernel.ReportPath(storagePath)
	sess.UpdatedAt = time.Now()

	return []session.Payload{
		{
			Text:   "I have generated your report! You can download it from the sidebar in the app.",
			Custom: map[string]any{"report_path": storagePath},
		},
	}, true, nil
}

func runSkillGap(ctx context.Context, s *Service, sess *session.Session, _ string) ([]session.Payload, bool, error) {
	reference, err := s.generator.Complete(ctx, skillListPrompt(sess.RecommendedCareer))
	if err != nil {
		logx.Warnf("skill gap for session %s: generative call failed: %v", sess.ID, err)
		return []session.Payload{session.TextPayload(degradedGenerativeMessage)}, false, nil
	}

	gap := career.AnalyzeSkillGap(reference, s.norm.TokenSet(sess.ResumeKeywords))

	var b strings.Builder
	fmt.Fprintf(&b, "### Skill Gap Analysis for a **%s** role:\n\n", sess.RecommendedCareer)
	if len(gap.Matching) > 0 {
		b.WriteString("**Skills you likely have (based on your resume):**\n- ")
		b.WriteString(strings.Join(career.Top(gap.Matching, career.SkillGapDisplayLimit), "\n- "))
		b.WriteString("\n\n")
	}
	if len(gap.Missing) > 0 {
		b.WriteString("**Key skills to develop for this role:**\n- ")
		b.WriteString(strings.Join(career.Top(gap.Missing, career.SkillGapDisplayLimit), "\n- "))
		b.WriteString("\n\n")
	}
	b.WriteString("Focusing on these areas will significantly strengthen your profile for this career path!")

	return []session.Payload{
		{
			Text: b.String(),
			Custom: map[string]any{
				"matching_skills": gap.Matching,
				"missing_skills":  gap.Missing,
			},
		},
	}, false, nil
}

func runDayInLife(ctx context.Context, s *Service, sess *session.Session, _ string) ([]session.Payload, bool, error) {
	narrative, err := s.generator.Complete(ctx, dayInLifePrompt(sess.RecommendedCareer))
	if err != nil {
		logx.Warnf("day in life for session %s: generative call failed: %v", sess.ID, err)
		return []session.Payload{session.TextPayload(degradedGenerativeMessage)}, false, nil
	}

	return []session.Payload{
		session.TextPayload(fmt.Sprintf("### A Day in the Life of a %s:\n\n%s", sess.RecommendedCareer, narrative)),
	}, false, nil
}

func runMockInterview(ctx context.Context, s *Service, sess *session.Session, _ string) ([]session.Payload, bool, error) {
	question, err := s.generator.Complete(ctx, interviewQuestionPrompt(sess.RecommendedCareer))
	if err != nil {
		logx.Warnf("mock interview for session %s: generative call failed: %v", sess.ID, err)
		question = degradedGenerativeMessage
	}

	// Interview mode turns on even when the question is degraded; the
	// collaborator keeps routing follow-up answers to interview handling.
	sess.InterviewMode = true
	sess.UpdatedAt = time.Now()

	return []session.Payload{
		session.TextPayload(fmt.Sprintf("Great! Let's start a mock interview for a **%s** role. Here is your first question:\n\n*'%s'*", sess.RecommendedCareer, question)),
	}, true, nil
}

func runReset(_ context.Context, _ *Service, sess *session.Session, _ string) ([]session.Payload, bool, error) {
	sess.Reset()
	return []session.Payload{
		session.TextPayload("Okay, I've cleared everything and we can start fresh. What is your name?"),
	}, true, nil
}
