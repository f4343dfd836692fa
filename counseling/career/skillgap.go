package career

import (
	"sort"
	"strings"
)

// SkillGapDisplayLimit caps how many skills each gap list shows to the
// user.
const SkillGapDisplayLimit = 7

// SkillGap is the set comparison between a reference skill list and the
// tokens of a resume. Both lists are sorted lexically for deterministic
// output.
type SkillGap struct {
	Matching []string `json:"matching"`
	Missing  []string `json:"missing"`
}

// AnalyzeSkillGap compares a comma-separated reference skill string
// (as produced by the generative collaborator) against the deduplicated
// normalized resume tokens.
//
// Reference entries are trimmed and lower-cased but otherwise kept whole,
// so a multi-word entry like "project management" only matches if the
// resume yields that exact token.
func AnalyzeSkillGap(reference string, resumeTokens map[string]struct{}) SkillGap {
	seen := make(map[string]struct{})
	gap := SkillGap{}

	for _, entry := range strings.Split(reference, ",") {
		skill := strings.ToLower(strings.TrimSpace(entry))
		if skill == "" {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}

		if _, ok := resumeTokens[skill]; ok {
			gap.Matching = append(gap.Matching, skill)
		} else {
			gap.Missing = append(gap.Missing, skill)
		}
	}

	sort.Strings(gap.Matching)
	sort.Strings(gap.Missing)
	return gap
}

// Top returns at most limit entries of the list, for display.
func Top(list []string, limit int) []string {
	if len(list) <= limit {
		return list
	}
	return list[:limit]
}
