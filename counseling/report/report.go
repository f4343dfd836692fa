package report

import (
	"strings"

	"github.com/Abraxas-365/counsel/pkg/kernel"
)

// BlockKind types the blocks of the document model.
type BlockKind string

const (
	BlockTitle     BlockKind = "title"
	BlockSubject   BlockKind = "subject"
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
)

// Block is one typed unit of the document model.
type Block struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text"`
}

// Document is the ordered, renderer-agnostic career report model. The
// rendering engine decides the byte format.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// Input carries the session fields the assembler needs. Profile values
// are the raw slot contents, not normalized tokens.
type Input struct {
	Name        string
	Career      kernel.DomainLabel
	Description string
	Interests   string
	Strengths   string
	Subjects    string
}

const placeholder = "Not provided"

// Assemble builds the document model for a completed session. Absent
// profile slots render the neutral placeholder so the layout stays
// identical across sessions.
func Assemble(in Input) Document {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "User"
	}
	description := in.Description
	if description == "" {
		description = "No details available."
	}

	return Document{Blocks: []Block{
		{Kind: BlockTitle, Text: "Personalized Career Report"},
		{Kind: BlockSubject, Text: "For: " + name},
		{Kind: BlockHeading, Text: "Recommended Career Path:"},
		{Kind: BlockParagraph, Text: in.Career.String()},
		{Kind: BlockHeading, Text: "About this Field:"},
		{Kind: BlockParagraph, Text: description},
		{Kind: BlockHeading, Text: "Your Profile Summary:"},
		{Kind: BlockParagraph, Text: "Interests: " + orPlaceholder(in.Interests)},
		{Kind: BlockParagraph, Text: "Strengths: " + orPlaceholder(in.Strengths)},
		{Kind: BlockParagraph, Text: "Subjects: " + orPlaceholder(in.Subjects)},
	}}
}

func orPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}
