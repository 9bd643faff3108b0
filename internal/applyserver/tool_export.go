package applyserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quantipeak/go_apply/internal/engine/apply"
)

// DocumentExportInput is the input for document_export.
type DocumentExportInput struct {
	Text     string `json:"text" jsonschema:"Generated document text using the shared markup: ALL-CAPS headers, bullet lines, plain lines"`
	Format   string `json:"format,omitempty" jsonschema:"Output format: txt (default), docx, or pdf"`
	FileName string `json:"file_name,omitempty" jsonschema:"Base name for the exported file, without extension"`
}

func registerDocumentExport(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "document_export",
		Description: "Render generated document text (resume or cover letter) to a downloadable file. Interprets ALL-CAPS lines as headings and bullet markers as list items. Formats: txt, docx, pdf. Returns base64 content.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input DocumentExportInput) (*mcp.CallToolResult, *apply.DocumentExportResult, error) {
		if input.Text == "" {
			return nil, nil, errors.New("text is required")
		}
		result, err := apply.ExportDocument(input.Text, input.Format, input.FileName)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}
