package apply

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"

	"github.com/quantipeak/go_apply/internal/engine"
)

// DocumentExportResult is the structured output of document_export. Content
// is base64 so DOCX bytes survive the JSON transport.
type DocumentExportResult struct {
	FileName string `json:"file_name"`
	Format   string `json:"format"`
	Content  string `json:"content_base64"`
	Size     int    `json:"size_bytes"`
	Summary  string `json:"summary"`
}

// Line-markup conventions the generated documents use.
type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading
	lineBullet
	linePlain
)

const maxHeadingLen = 60

// classifyLine maps one document line to its markup role. A heading is a
// short standalone line with letters and no lowercase; bullets start with
// "•" or "- ". Lines carrying "|", "@", or "." are never headings: those are
// experience separators, emails, and URLs even when fully uppercase.
func classifyLine(line string) lineKind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return lineBlank
	}
	if strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "- ") {
		return lineBullet
	}
	if len(trimmed) <= maxHeadingLen && isAllCaps(trimmed) && !strings.ContainsAny(trimmed, "|@.") {
		return lineHeading
	}
	return linePlain
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func bulletText(line string) string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "•")
	trimmed = strings.TrimPrefix(trimmed, "- ")
	return strings.TrimSpace(trimmed)
}

// ExportDocument renders generated document text to txt, docx, or pdf. The
// text is interpreted with the shared markup: ALL-CAPS headings, "•" bullets,
// plain lines, and "|"-separated experience lines passed through verbatim.
func ExportDocument(text, format, baseName string) (*DocumentExportResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("document_export: empty document text")
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "txt"
	}
	if baseName = strings.TrimSpace(baseName); baseName == "" {
		baseName = "document"
	}

	var data []byte
	var err error
	switch format {
	case "txt":
		data = []byte(renderText(text))
	case "docx":
		data, err = renderDocx(text)
	case "pdf":
		data, err = renderPDF(text)
	default:
		return nil, fmt.Errorf("document_export: unsupported format %q (txt, docx, pdf)", format)
	}
	if err != nil {
		return nil, fmt.Errorf("document_export: %w", err)
	}

	engine.IncrDocumentExports()
	return &DocumentExportResult{
		FileName: baseName + "." + format,
		Format:   format,
		Content:  base64.StdEncoding.EncodeToString(data),
		Size:     len(data),
		Summary:  fmt.Sprintf("Exported %s.%s (%d bytes).", baseName, format, len(data)),
	}, nil
}

// renderText normalizes line endings and sets headings off with a blank line.
func renderText(text string) string {
	lines := strings.Split(engine.NormalizeLines(text), "\n")
	var b strings.Builder
	for i, line := range lines {
		if classifyLine(line) == lineHeading && i > 0 && strings.TrimSpace(lines[i-1]) != "" {
			b.WriteString("\n")
		}
		b.WriteString(strings.TrimRight(line, " \t"))
		b.WriteString("\n")
	}
	return b.String()
}

// --- DOCX ---

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// renderDocx builds a minimal WordprocessingML package: one document part,
// headings bold at 14pt, bullets as indented "•" runs.
func renderDocx(text string) ([]byte, error) {
	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, line := range strings.Split(engine.NormalizeLines(text), "\n") {
		switch classifyLine(line) {
		case lineBlank:
			doc.WriteString(`<w:p/>`)
		case lineHeading:
			doc.WriteString(`<w:p><w:r><w:rPr><w:b/><w:sz w:val="28"/></w:rPr><w:t xml:space="preserve">`)
			doc.WriteString(xmlEscape(strings.TrimSpace(line)))
			doc.WriteString(`</w:t></w:r></w:p>`)
		case lineBullet:
			doc.WriteString(`<w:p><w:pPr><w:ind w:left="360"/></w:pPr><w:r><w:t xml:space="preserve">`)
			doc.WriteString(xmlEscape("• " + bulletText(line)))
			doc.WriteString(`</w:t></w:r></w:p>`)
		default:
			doc.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
			doc.WriteString(xmlEscape(strings.TrimSpace(line)))
			doc.WriteString(`</w:t></w:r></w:p>`)
		}
	}

	doc.WriteString(`<w:sectPr/></w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		body []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(relsXML)},
		{"word/document.xml", doc.Bytes()},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(p.body); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- PDF ---

const (
	pdfBodySize    = 11.0
	pdfHeadingSize = 14.0
	pdfLineHeight  = 5.5
)

// renderPDF lays the document out on A4 in Helvetica: bold headings,
// indented bullets, word-wrapped body lines. The translator maps UTF-8
// (notably "•") into the core-font codepage.
func renderPDF(text string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range strings.Split(engine.NormalizeLines(text), "\n") {
		switch classifyLine(line) {
		case lineBlank:
			pdf.Ln(pdfLineHeight)
		case lineHeading:
			pdf.SetFont("Helvetica", "B", pdfHeadingSize)
			pdf.MultiCell(0, pdfLineHeight+1, tr(strings.TrimSpace(line)), "", "L", false)
			pdf.Ln(1)
		case lineBullet:
			pdf.SetFont("Helvetica", "", pdfBodySize)
			pdf.SetLeftMargin(26)
			pdf.MultiCell(0, pdfLineHeight, tr("• "+bulletText(line)), "", "L", false)
			pdf.SetLeftMargin(20)
		default:
			pdf.SetFont("Helvetica", "", pdfBodySize)
			pdf.MultiCell(0, pdfLineHeight, tr(strings.TrimSpace(line)), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func xmlEscape(s string) string {
	var b bytes.Buffer
	// EscapeText only fails on a failing writer; bytes.Buffer never does.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
