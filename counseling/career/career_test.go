package career

import (
	"strings"
	"testing"

	"github.com/Abraxas-365/counsel/pkg/kernel"
)

// splitNormalizer lower-cases and splits on whitespace. Catalog tests use
// it so keyword tokens are exactly the words written in the definitions.
type splitNormalizer struct{}

func (splitNormalizer) Normalize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog([]Domain{
		{Label: "Tech", Keywords: []string{"python", "sql", "coding"}, Description: "tech stuff"},
		{Label: "Arts", Keywords: []string{"painting", "music", "design"}, Description: "arts stuff"},
		{Label: "Law", Keywords: []string{"law", "justice", "debate"}, Description: "law stuff"},
	}, splitNormalizer{})
	if err != nil {
		t.Fatalf("NewCatalog error: %v", err)
	}
	return c
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name    string
		domains []Domain
	}{
		{
			name:    "empty catalog",
			domains: nil,
		},
		{
			name: "empty label",
			domains: []Domain{
				{Label: "", Keywords: []string{"python"}},
			},
		},
		{
			name: "duplicate label",
			domains: []Domain{
				{Label: "Tech", Keywords: []string{"python"}},
				{Label: "Tech", Keywords: []string{"sql"}},
			},
		},
		{
			name: "no usable keywords",
			domains: []Domain{
				{Label: "Tech", Keywords: nil},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.domains, splitNormalizer{}); err == nil {
				t.Error("NewCatalog accepted an invalid definition")
			}
		})
	}
}

func TestCatalogNormalizesKeywords(t *testing.T) {
	c, err := NewCatalog([]Domain{
		{Label: "Tech", Keywords: []string{"Machine Learning", "python"}},
	}, splitNormalizer{})
	if err != nil {
		t.Fatalf("NewCatalog error: %v", err)
	}

	d, ok := c.Get("Tech")
	if !ok {
		t.Fatal("Get(Tech) not found")
	}
	// Multi-word keyword contributes one token per word.
	want := []string{"machine", "learning", "python"}
	if len(d.Keywords) != len(want) {
		t.Fatalf("Keywords = %v, want %v", d.Keywords, want)
	}
	for i, kw := range want {
		if d.Keywords[i] != kw {
			t.Errorf("Keywords[%d] = %q, want %q", i, d.Keywords[i], kw)
		}
	}
}

func TestCatalogLookups(t *testing.T) {
	c := testCatalog(t)

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if !c.Contains("Arts") {
		t.Error("Contains(Arts) = false")
	}
	if c.Contains("Astronomy") {
		t.Error("Contains(Astronomy) = true")
	}
	if _, ok := c.Get("Astronomy"); ok {
		t.Error("Get(Astronomy) found")
	}

	labels := make([]kernel.DomainLabel, 0, c.Len())
	for _, d := range c.Domains() {
		labels = append(labels, d.Label)
	}
	want := []kernel.DomainLabel{"Tech", "Arts", "Law"}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("Domains()[%d] = %q, want %q (declaration order)", i, labels[i], want[i])
		}
	}
}

func TestBuiltInDefinitions(t *testing.T) {
	defs := BuiltInDefinitions()
	if len(defs) != 5 {
		t.Fatalf("BuiltInDefinitions() has %d domains, want 5", len(defs))
	}

	c, err := NewCatalog(defs, splitNormalizer{})
	if err != nil {
		t.Fatalf("NewCatalog(BuiltInDefinitions()) error: %v", err)
	}
	if first := c.Domains()[0].Label; first != "Tech / Data Science" {
		t.Errorf("first domain = %q, want Tech / Data Science", first)
	}
	for _, d := range c.Domains() {
		if d.Description == "" {
			t.Errorf("domain %q has no description", d.Label)
		}
		if len(d.Courses) == 0 {
			t.Errorf("domain %q has no courses", d.Label)
		}
	}
}
