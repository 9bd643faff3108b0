// Package extract turns uploaded resume files into plain text for the
// parser. PDF and DOCX are supported; anything else is treated as UTF-8 text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/quantipeak/go_apply/internal/engine"
)

// ErrEmptyFile is returned for zero-length uploads.
var ErrEmptyFile = errors.New("extract: empty file")

// Text extracts plain text from an uploaded file. The format is picked by
// content sniffing first (magic bytes), falling back to the file extension,
// so a mislabeled upload still extracts. Output is line-normalized.
func Text(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	var text string
	var err error
	switch detectFormat(filename, data) {
	case formatPDF:
		text, err = pdfText(data)
	case formatDOCX:
		text, err = docxText(data)
	default:
		text = string(data)
	}
	if err != nil {
		engine.IncrExtractErrors()
		return "", err
	}
	return engine.NormalizeLines(text), nil
}

type fileFormat int

const (
	formatText fileFormat = iota
	formatPDF
	formatDOCX
)

var pdfMagic = []byte("%PDF")
var zipMagic = []byte("PK\x03\x04")

func detectFormat(filename string, data []byte) fileFormat {
	if bytes.HasPrefix(data, pdfMagic) {
		return formatPDF
	}
	if bytes.HasPrefix(data, zipMagic) {
		// DOCX is a zip; plain zips are not accepted anyway.
		return formatDOCX
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return formatPDF
	case ".docx":
		return formatDOCX
	}
	return formatText
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("extract: read pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip unreadable pages, keep the rest
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("extract: read docx: %w", err)
	}
	defer doc.Close()
	return wordMLToText(doc.Editable().GetContent()), nil
}

var (
	wordParaEndRe = regexp.MustCompile(`</w:p>`)
	wordTagRe     = regexp.MustCompile(`<[^>]+>`)
)

// wordMLToText flattens WordprocessingML into plain text: paragraph ends
// become newlines, remaining tags are dropped, entities unescaped.
func wordMLToText(content string) string {
	s := wordParaEndRe.ReplaceAllString(content, "\n")
	s = wordTagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// ReadAllLimited reads at most limit bytes from r and errors if the source
// exceeds it, so an oversized upload fails instead of filling memory.
func ReadAllLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("extract: file exceeds %d byte limit", limit)
	}
	return data, nil
}
