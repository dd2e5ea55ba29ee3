package questionbank

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docxBytes(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractTextUnsupportedType(t *testing.T) {
	_, err := ExtractText("text/plain", []byte("hello"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestExtractTextEmptyFile(t *testing.T) {
	_, err := ExtractText(MIMEPDF, nil)
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestExtractTextCorruptPDF(t *testing.T) {
	_, err := ExtractText(MIMEPDF, []byte("not a pdf"))
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestExtractTextDOCX(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Photosynthesis converts light</w:t></w:r></w:p>
    <w:p><w:r><w:t>into chemical energy.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := ExtractText(MIMEDOCX, docxBytes(t, doc))
	require.NoError(t, err)
	assert.Equal(t, "Photosynthesis converts light into chemical energy.", text)
}

func TestExtractTextDOCXSplitRuns(t *testing.T) {
	// Word splits sentences across runs; the pieces must rejoin without
	// picking up markup text.
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Hello </w:t></w:r><w:r><w:t>world</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := ExtractText(MIMEDOCX, docxBytes(t, doc))
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text)
}

func TestExtractTextDOCXMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractText(MIMEDOCX, buf.Bytes())
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestExtractTextNotAZip(t *testing.T) {
	_, err := ExtractText(MIMEDOCX, []byte("plain text pretending to be docx"))
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestExtractTextTruncates(t *testing.T) {
	long := strings.Repeat("word ", 5000)
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>` + long + `</w:t></w:r></w:p></w:body>
</w:document>`

	text, err := ExtractText(MIMEDOCX, docxBytes(t, doc))
	require.NoError(t, err)
	assert.Len(t, text, MaxExtractChars)
}

func TestExtractTextCollapsesWhitespace(t *testing.T) {
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>spaced    out
text</w:t></w:r></w:p></w:body>
</w:document>`

	text, err := ExtractText(MIMEDOCX, docxBytes(t, doc))
	require.NoError(t, err)
	assert.Equal(t, "spaced out text", text)
}
