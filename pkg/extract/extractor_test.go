package extract

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestExtractPlainText(t *testing.T) {
	extractor := NewExtractor()
	path := writeTemp(t, "notes", []byte("Paris is the capital of France."))

	text := extractor.Extract(path, "notes.txt")

	assert.Equal(t, "Paris is the capital of France.", text)
}

func TestExtractUnknownExtensionFallsBackToPlainText(t *testing.T) {
	extractor := NewExtractor()
	path := writeTemp(t, "notes", []byte("just bytes"))

	assert.Equal(t, "just bytes", extractor.Extract(path, "notes.weird"))
}

func TestExtractMissingFile(t *testing.T) {
	extractor := NewExtractor()

	text := extractor.Extract(filepath.Join(t.TempDir(), "gone"), "gone.txt")

	assert.Equal(t, DiagnosticUnreadableFile, text)
	assert.True(t, IsDiagnostic(text))
}

func TestExtractMalformedPDF(t *testing.T) {
	extractor := NewExtractor()
	path := writeTemp(t, "broken", []byte("not a pdf at all"))

	assert.Equal(t, DiagnosticPDFFailure, extractor.Extract(path, "broken.pdf"))
}

func TestExtractMalformedSlides(t *testing.T) {
	extractor := NewExtractor()
	path := writeTemp(t, "broken", []byte("not a zip archive"))

	assert.Equal(t, DiagnosticSlideFailure, extractor.Extract(path, "broken.pptx"))
}

func TestExtractSlidesArchiveWithoutSlides(t *testing.T) {
	extractor := NewExtractor()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("docProps/core.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := writeTemp(t, "empty", buf.Bytes())

	assert.Equal(t, DiagnosticSlideFailure, extractor.Extract(path, "empty.pptx"))
}

func TestExtractSlides(t *testing.T) {
	extractor := NewExtractor()

	slide := func(paragraphs ...string) []byte {
		var body bytes.Buffer
		body.WriteString(`<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><p:cSld><p:spTree>`)
		for _, paragraph := range paragraphs {
			body.WriteString(`<p:sp><p:txBody><a:p><a:r><a:t>`)
			body.WriteString(paragraph)
			body.WriteString(`</a:t></a:r></a:p></p:txBody></p:sp>`)
		}
		body.WriteString(`</p:spTree></p:cSld></p:sld>`)
		return body.Bytes()
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	// Slide 2 first in the archive; order must still follow slide numbers.
	for name, content := range map[string][]byte{
		"ppt/slides/slide2.xml": slide("Second slide"),
		"ppt/slides/slide1.xml": slide("Title line", "Body line"),
	} {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	path := writeTemp(t, "deck", buf.Bytes())
	text := extractor.Extract(path, "deck.pptx")

	assert.Equal(t, "Title line\nBody line\n\nSecond slide", text)
}
