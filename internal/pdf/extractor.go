package pdf

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz" // Lightweight PDF renderer
)

// Extractor pulls plain text out of uploaded resume files.
type Extractor struct{}

// NewExtractor creates a new text extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the textual content of a resume file. PDF files
// are read page by page; plain text files pass through unchanged.
func (e *Extractor) ExtractText(data []byte, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "pdf":
		return extractPDFText(data)
	case "txt":
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", fileType)
	}
}

func extractPDFText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
