package career

import (
	"reflect"
	"testing"
)

func tokenSet(tokens ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func TestAnalyzeSkillGap(t *testing.T) {
	tests := []struct {
		name         string
		reference    string
		resume       map[string]struct{}
		wantMatching []string
		wantMissing  []string
	}{
		{
			name:         "split between matching and missing",
			reference:    "Python, SQL, Communication, Leadership",
			resume:       tokenSet("python", "sql", "teamwork"),
			wantMatching: []string{"python", "sql"},
			wantMissing:  []string{"communication", "leadership"},
		},
		{
			name:         "all matching",
			reference:    "Python, SQL",
			resume:       tokenSet("python", "sql"),
			wantMatching: []string{"python", "sql"},
			wantMissing:  nil,
		},
		{
			name:         "all missing on empty resume",
			reference:    "Python, SQL",
			resume:       tokenSet(),
			wantMatching: nil,
			wantMissing:  []string{"python", "sql"},
		},
		{
			name:         "entries trimmed and lower cased",
			reference:    "  Python , SQL  ",
			resume:       tokenSet("python"),
			wantMatching: []string{"python"},
			wantMissing:  []string{"sql"},
		},
		{
			name:         "duplicate entries collapsed",
			reference:    "Python, python, PYTHON",
			resume:       tokenSet(),
			wantMatching: nil,
			wantMissing:  []string{"python"},
		},
		{
			name:         "empty entries skipped",
			reference:    "Python,, ,SQL",
			resume:       tokenSet("sql"),
			wantMatching: []string{"sql"},
			wantMissing:  []string{"python"},
		},
		{
			name:         "multi word entries match whole",
			reference:    "project management, sql",
			resume:       tokenSet("project", "management", "sql"),
			wantMatching: []string{"sql"},
			wantMissing:  []string{"project management"},
		},
		{
			name:         "output sorted",
			reference:    "zig, ada, cobol",
			resume:       tokenSet(),
			wantMatching: nil,
			wantMissing:  []string{"ada", "cobol", "zig"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gap := AnalyzeSkillGap(tt.reference, tt.resume)
			if !reflect.DeepEqual(gap.Matching, tt.wantMatching) {
				t.Errorf("Matching = %v, want %v", gap.Matching, tt.wantMatching)
			}
			if !reflect.DeepEqual(gap.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", gap.Missing, tt.wantMissing)
			}
		})
	}
}

func TestAnalyzeSkillGapPartition(t *testing.T) {
	resume := tokenSet("python", "sql", "docker")
	gap := AnalyzeSkillGap("Python, SQL, Kubernetes, Terraform", resume)

	// Matching and missing partition the reference list.
	if got := len(gap.Matching) + len(gap.Missing); got != 4 {
		t.Errorf("partition size = %d, want 4", got)
	}
	for _, skill := range gap.Matching {
		for _, miss := range gap.Missing {
			if skill == miss {
				t.Errorf("%q appears in both lists", skill)
			}
		}
	}
}

func TestTop(t *testing.T) {
	list := []string{"a", "b", "c", "d"}

	if got := Top(list, 2); len(got) != 2 || got[0] != "a" {
		t.Errorf("Top(list, 2) = %v", got)
	}
	if got := Top(list, 10); len(got) != 4 {
		t.Errorf("Top(list, 10) = %v", got)
	}
	if got := Top(nil, 3); got != nil {
		t.Errorf("Top(nil, 3) = %v", got)
	}
}
