// Package extract decodes resume documents (PDF, DOCX, plain text) into
// UTF-8 text. It is the only I/O-adjacent collaborator of the ranking
// engine; a decode failure is a per-document error, never fatal to a batch.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// ErrUnsupportedFormat is returned for formats the decoder cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// DetectFormat sniffs a format from a filename extension. Returns "" when
// the extension is unknown.
func DetectFormat(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "pdf"
	case ".docx":
		return "docx"
	case ".txt", ".text", ".md":
		return "txt"
	default:
		return ""
	}
}

// Text decodes document bytes into plain text. format is one of "pdf",
// "docx", "txt" (see DetectFormat).
func Text(format string, data []byte) (string, error) {
	switch strings.ToLower(format) {
	case "txt":
		return string(data), nil
	case "pdf":
		return pdfText(data)
	case "docx":
		return docxText(data)
	default:
		engine.IncrDecodeErrors()
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		engine.IncrDecodeErrors()
		return "", fmt.Errorf("read pdf: %w", err)
	}
	engine.IncrPDFDecodes()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // salvage the remaining pages
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		engine.IncrDecodeErrors()
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()
	engine.IncrDocxDecodes()

	return doc.Editable().GetContent(), nil
}
