package applyserver

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quantipeak/go_apply/internal/engine"
	"github.com/quantipeak/go_apply/internal/engine/apply"
	"github.com/quantipeak/go_apply/internal/engine/extract"
	"github.com/quantipeak/go_apply/internal/engine/resume"
)

// ResumeParseInput is the input for resume_parse.
type ResumeParseInput struct {
	Text string `json:"text" jsonschema:"Plain resume text to parse into a structured profile"`
}

// ResumeUploadInput is the input for resume_upload. Exactly one of path or
// content_base64 must be provided.
type ResumeUploadInput struct {
	Path          string `json:"path,omitempty" jsonschema:"Path to a local resume file (pdf, docx, or txt)"`
	ContentBase64 string `json:"content_base64,omitempty" jsonschema:"Base64-encoded resume file content, used instead of path"`
	FileName      string `json:"file_name,omitempty" jsonschema:"Original file name, used for format detection with content_base64"`
}

// ResumeValidateInput is the input for resume_validate.
type ResumeValidateInput struct {
	Text string `json:"text" jsonschema:"Plain resume text to parse and validate"`
}

// ResumeValidateOutput pairs the validation verdict with the parsed profile.
type ResumeValidateOutput struct {
	Validation resume.ValidationResult `json:"validation"`
	Profile    *resume.Profile         `json:"profile"`
}

func registerResumeParse(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_parse",
		Description: "Parse plain resume text into a structured candidate profile: contact info, skills, experience, education, projects, and other sections. Nothing is persisted.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ResumeParseInput) (*mcp.CallToolResult, *apply.ResumeParseResult, error) {
		if input.Text == "" {
			return nil, nil, errors.New("text is required")
		}
		return nil, apply.ParseResumeText(ctx, input.Text), nil
	})
}

func registerResumeUpload(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_upload",
		Description: "Extract text from a resume file (PDF, DOCX, or TXT), parse it into a structured profile, validate it, and persist the candidate keyed by email. Provide either a local file path or base64 content.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ResumeUploadInput) (*mcp.CallToolResult, *apply.ResumeParseResult, error) {
		data, name, err := readUpload(input)
		if err != nil {
			return nil, nil, err
		}
		result, err := apply.UploadResume(ctx, name, data)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}

func registerResumeValidate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_validate",
		Description: "Parse resume text and report validation errors (blocking) and warnings (informational) without persisting anything.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ResumeValidateInput) (*mcp.CallToolResult, *ResumeValidateOutput, error) {
		if input.Text == "" {
			return nil, nil, errors.New("text is required")
		}
		parsed := apply.ParseResumeText(ctx, input.Text)
		return nil, &ResumeValidateOutput{Validation: parsed.Validation, Profile: parsed.Profile}, nil
	})
}

// readUpload resolves the upload input to file bytes and a name.
func readUpload(input ResumeUploadInput) ([]byte, string, error) {
	switch {
	case input.Path != "" && input.ContentBase64 != "":
		return nil, "", errors.New("provide either path or content_base64, not both")
	case input.Path != "":
		f, err := os.Open(input.Path)
		if err != nil {
			return nil, "", fmt.Errorf("open %s: %w", input.Path, err)
		}
		defer f.Close()
		max := engine.Cfg.MaxUploadBytes
		if max <= 0 {
			max = 32 << 20
		}
		data, err := extract.ReadAllLimited(f, max)
		if err != nil {
			return nil, "", err
		}
		return data, input.Path, nil
	case input.ContentBase64 != "":
		data, err := base64.StdEncoding.DecodeString(input.ContentBase64)
		if err != nil {
			return nil, "", fmt.Errorf("decode content_base64: %w", err)
		}
		name := input.FileName
		if name == "" {
			name = "resume"
		}
		return data, name, nil
	default:
		return nil, "", errors.New("either path or content_base64 is required")
	}
}
