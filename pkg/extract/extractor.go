// Package extract converts stored study documents (plain text, PDF, slide
// decks) into a single plain-text string for the retrieval pipeline.
package extract

import (
	"os"
	"path/filepath"
	"strings"
)

// Diagnostic payloads returned instead of an error so downstream chunking
// always receives usable text.
const (
	DiagnosticUnreadableFile = "Note uploaded but not readable as text."
	DiagnosticPDFFailure     = "Error extracting text from PDF file."
	DiagnosticSlideFailure   = "Error extracting text from slide file."
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the file at path and returns its text content. The extraction
// method is picked from the file extension of the original upload name.
// Failures never propagate: the result degrades to one of the diagnostic
// strings above.
func (e *Extractor) Extract(path string, originalName string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return DiagnosticUnreadableFile
	}

	switch strings.ToLower(filepath.Ext(originalName)) {
	case ".pdf":
		text, err := extractPDF(content)
		if err != nil {
			return DiagnosticPDFFailure
		}
		return text
	case ".pptx", ".ppt":
		text, err := extractSlides(content)
		if err != nil {
			return DiagnosticSlideFailure
		}
		return text
	default:
		// Anything else is treated as UTF-8 plain text.
		return string(content)
	}
}

// IsDiagnostic reports whether text is one of the degraded extraction payloads.
func IsDiagnostic(text string) bool {
	switch text {
	case DiagnosticUnreadableFile, DiagnosticPDFFailure, DiagnosticSlideFailure:
		return true
	}
	return false
}
