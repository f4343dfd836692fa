package session

// ActionKind is the closed set of operations the dialogue collaborator
// may invoke on a session. Every action carries a precondition over the
// session's slots; an unmet precondition never mutates state.
type ActionKind string

const (
	ActionRecordIdentity ActionKind = "record_identity"
	ActionRecommend      ActionKind = "recommend"
	ActionGenerateReport ActionKind = "generate_report"
	ActionSkillGap       ActionKind = "skill_gap"
	ActionDayInLife      ActionKind = "day_in_life"
	ActionMockInterview  ActionKind = "mock_interview"
	ActionReset          ActionKind = "reset"
)

// ParseActionKind validates an externally supplied action name.
func ParseActionKind(s string) (ActionKind, error) {
	switch ActionKind(s) {
	case ActionRecordIdentity, ActionRecommend, ActionGenerateReport,
		ActionSkillGap, ActionDayInLife, ActionMockInterview, ActionReset:
		return ActionKind(s), nil
	default:
		return "", ErrUnknownAction().WithDetail("action", s)
	}
}
