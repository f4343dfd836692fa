package report

import (
	"strings"
	"testing"
)

func TestAssembleFullInput(t *testing.T) {
	doc := Assemble(Input{
		Name:        "Ana",
		Career:      "Tech / Data Science",
		Description: "Careers in technology and data.",
		Interests:   "coding",
		Strengths:   "problem solving",
		Subjects:    "math",
	})

	if len(doc.Blocks) != 10 {
		t.Fatalf("Assemble produced %d blocks, want 10", len(doc.Blocks))
	}

	wantKinds := []BlockKind{
		BlockTitle, BlockSubject,
		BlockHeading, BlockParagraph,
		BlockHeading, BlockParagraph,
		BlockHeading, BlockParagraph, BlockParagraph, BlockParagraph,
	}
	for i, kind := range wantKinds {
		if doc.Blocks[i].Kind != kind {
			t.Errorf("block %d kind = %q, want %q", i, doc.Blocks[i].Kind, kind)
		}
	}

	if doc.Blocks[1].Text != "For: Ana" {
		t.Errorf("subject = %q, want For: Ana", doc.Blocks[1].Text)
	}
	if doc.Blocks[3].Text != "Tech / Data Science" {
		t.Errorf("career paragraph = %q", doc.Blocks[3].Text)
	}
	if doc.Blocks[7].Text != "Interests: coding" {
		t.Errorf("interests paragraph = %q", doc.Blocks[7].Text)
	}
}

func TestAssembleDefaults(t *testing.T) {
	doc := Assemble(Input{Career: "Arts / Design"})

	if len(doc.Blocks) != 10 {
		t.Fatalf("Assemble produced %d blocks, want 10", len(doc.Blocks))
	}
	if doc.Blocks[1].Text != "For: User" {
		t.Errorf("subject = %q, want For: User", doc.Blocks[1].Text)
	}
	if doc.Blocks[5].Text != "No details available." {
		t.Errorf("description = %q, want No details available.", doc.Blocks[5].Text)
	}
	for _, i := range []int{7, 8, 9} {
		if !strings.HasSuffix(doc.Blocks[i].Text, "Not provided") {
			t.Errorf("block %d = %q, want Not provided suffix", i, doc.Blocks[i].Text)
		}
	}
}

func TestAssembleBlankNameFallsBack(t *testing.T) {
	doc := Assemble(Input{Name: "   ", Career: "Law / Social Sciences"})
	if doc.Blocks[1].Text != "For: User" {
		t.Errorf("subject = %q, want For: User", doc.Blocks[1].Text)
	}
}
