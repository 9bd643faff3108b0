package applyserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quantipeak/go_apply/internal/engine/apply"
)

// GenerateInput is the shared input for cover_letter_generate and
// resume_generate.
type GenerateInput struct {
	Candidate      string `json:"candidate,omitempty" jsonschema:"Stored candidate UUID or email; alternative to resume_text"`
	ResumeText     string `json:"resume_text,omitempty" jsonschema:"Inline plain resume text; used instead of a stored candidate"`
	JobTitle       string `json:"job_title" jsonschema:"Title of the target role"`
	Company        string `json:"company" jsonschema:"Name of the target company"`
	JobDescription string `json:"job_description" jsonschema:"Full text of the job posting"`
	Tone           string `json:"tone,omitempty" jsonschema:"Cover letter tone: professional (default), friendly, concise"`
}

func (in GenerateInput) validate() error {
	if in.JobTitle == "" {
		return errors.New("job_title is required")
	}
	if in.Company == "" {
		return errors.New("company is required")
	}
	if in.JobDescription == "" {
		return errors.New("job_description is required")
	}
	return nil
}

func (in GenerateInput) target() apply.JobTarget {
	return apply.JobTarget{
		Title:       in.JobTitle,
		Company:     in.Company,
		Description: in.JobDescription,
	}
}

func registerCoverLetterGenerate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "cover_letter_generate",
		Description: "Generate a tailored cover letter from a candidate profile and job posting. Tone options: professional (default), friendly, concise. Returns the letter text with word count.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, *apply.CoverLetterResult, error) {
		if err := input.validate(); err != nil {
			return nil, nil, err
		}
		profile, err := resolveProfile(ctx, input.Candidate, input.ResumeText)
		if err != nil {
			return nil, nil, err
		}
		result, err := apply.GenerateCoverLetter(ctx, profile, input.target(), input.Tone)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}

func registerResumeGenerate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_generate",
		Description: "Rewrite a candidate profile as a plain-text resume tailored to a job posting. Output uses ALL-CAPS section headers, bullet points, and 'Title | Company | Duration' experience lines, ready for document_export.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, *apply.ResumeGenerateResult, error) {
		if err := input.validate(); err != nil {
			return nil, nil, err
		}
		profile, err := resolveProfile(ctx, input.Candidate, input.ResumeText)
		if err != nil {
			return nil, nil, err
		}
		result, err := apply.GenerateResume(ctx, profile, input.target())
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}
