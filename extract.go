package questionbank

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extraction errors. Handlers map these to client errors rather than
// server failures.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrInvalidFile         = errors.New("invalid or unreadable file")
)

// MaxExtractChars caps the text returned from an uploaded document.
// Longer documents are truncated; topic prompts never need more.
const MaxExtractChars = 12000

// MIME types accepted by ExtractText.
const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ExtractText pulls plain text from an uploaded PDF or DOCX document.
// The result has whitespace collapsed and is truncated to
// MaxExtractChars.
func ExtractText(mimeType string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrInvalidFile)
	}

	var (
		text string
		err  error
	)
	switch mimeType {
	case MIMEPDF:
		text, err = extractPDF(content)
	case MIMEDOCX:
		text, err = extractDOCX(content)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mimeType)
	}
	if err != nil {
		return "", err
	}

	text = strings.Join(strings.Fields(text), " ")
	if len(text) > MaxExtractChars {
		text = text[:MaxExtractChars]
	}
	return text, nil
}

func extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return buf.String(), nil
}

// extractDOCX reads word/document.xml from the DOCX container and
// collects the character data inside w:t runs. A space is inserted at
// each paragraph end so adjacent paragraphs do not fuse into one word.
func extractDOCX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("%w: missing word/document.xml", ErrInvalidFile)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	defer rc.Close()

	var buf strings.Builder
	var inText bool
	decoder := xml.NewDecoder(rc)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidFile, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				buf.WriteByte(' ')
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		}
	}
	return buf.String(), nil
}
