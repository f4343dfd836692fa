package career

import (
	"errors"
	"math"
	"testing"

	"github.com/Abraxas-365/counsel/internal/textnorm"
	"github.com/Abraxas-365/counsel/pkg/errx"
)

func TestScoreEmptyProfile(t *testing.T) {
	c := testCatalog(t)

	_, err := c.Score(nil)
	if err == nil {
		t.Fatal("Score(nil) succeeded")
	}
	var e *errx.Error
	if !errors.As(err, &e) || e.Code != CodeInsufficientProfile {
		t.Errorf("Score(nil) error = %v, want %s", err, CodeInsufficientProfile)
	}
}

func TestScoreSelfMatch(t *testing.T) {
	c := testCatalog(t)

	// A profile that is exactly a domain's keyword document scores 1.
	rec, err := c.Score([]string{"python", "sql", "coding"})
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if rec.Best.Label != "Tech" {
		t.Fatalf("Best = %q, want Tech", rec.Best.Label)
	}
	if got := float64(rec.Ranked[0].Score); math.Abs(got-1) > 1e-9 {
		t.Errorf("self-match score = %v, want 1", got)
	}
}

func TestScoreRanksAllDomains(t *testing.T) {
	c := testCatalog(t)

	rec, err := c.Score([]string{"python", "painting"})
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if len(rec.Ranked) != c.Len() {
		t.Fatalf("Ranked has %d entries, want %d", len(rec.Ranked), c.Len())
	}
	for i := 1; i < len(rec.Ranked); i++ {
		if rec.Ranked[i-1].Score < rec.Ranked[i].Score {
			t.Errorf("ranking not descending at %d: %v < %v", i, rec.Ranked[i-1].Score, rec.Ranked[i].Score)
		}
	}
	for _, sd := range rec.Ranked {
		if sd.Score < 0 || sd.Score > 1 {
			t.Errorf("score for %q = %v, outside [0,1]", sd.Label, sd.Score)
		}
	}
}

func TestScoreTieBreaksToDeclarationOrder(t *testing.T) {
	c := testCatalog(t)

	// No overlap with any domain: every score is zero and the first
	// declared domain wins, on every run.
	for i := 0; i < 20; i++ {
		rec, err := c.Score([]string{"astronomy", "telescope"})
		if err != nil {
			t.Fatalf("Score error: %v", err)
		}
		if rec.Best.Label != "Tech" {
			t.Fatalf("run %d: Best = %q, want Tech (first declared)", i, rec.Best.Label)
		}
		for _, sd := range rec.Ranked {
			if sd.Score != 0 {
				t.Errorf("run %d: score for %q = %v, want 0", i, sd.Label, sd.Score)
			}
		}
	}
}

func TestScorePrefersOverlap(t *testing.T) {
	c := testCatalog(t)

	rec, err := c.Score([]string{"music", "design", "law"})
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if rec.Best.Label != "Arts" {
		t.Errorf("Best = %q, want Arts (two keyword hits beat one)", rec.Best.Label)
	}
}

func TestScoreWithBuiltInCatalog(t *testing.T) {
	norm, err := textnorm.New()
	if err != nil {
		t.Fatalf("textnorm.New error: %v", err)
	}
	c, err := NewCatalog(BuiltInDefinitions(), norm)
	if err != nil {
		t.Fatalf("NewCatalog error: %v", err)
	}

	tests := []struct {
		profile string
		want    string
	}{
		{"I love coding in python and machine learning", "Tech / Data Science"},
		{"I enjoy painting, sketching and graphic design", "Arts / Design"},
		{"I am passionate about justice, law and debate", "Law / Social Sciences"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			rec, err := c.Score(norm.Normalize(tt.profile))
			if err != nil {
				t.Fatalf("Score error: %v", err)
			}
			if rec.Best.Label.String() != tt.want {
				t.Errorf("profile %q: Best = %q, want %q", tt.profile, rec.Best.Label, tt.want)
			}
		})
	}
}
