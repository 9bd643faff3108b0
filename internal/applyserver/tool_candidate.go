package applyserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quantipeak/go_apply/internal/engine/apply"
)

// CandidateGetInput is the input for candidate_get.
type CandidateGetInput struct {
	Candidate string `json:"candidate" jsonschema:"Candidate UUID or email address"`
}

// CandidateListInput is the input for candidate_list.
type CandidateListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum candidates to return (default 50, max 200)"`
}

// CandidateListOutput is the output for candidate_list.
type CandidateListOutput struct {
	Candidates []apply.CandidateRecord `json:"candidates"`
	Total      int                     `json:"total"`
}

func registerCandidateGet(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "candidate_get",
		Description: "Fetch a stored candidate profile by UUID or email address. Returns the full parsed profile as persisted by resume_upload.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input CandidateGetInput) (*mcp.CallToolResult, *apply.CandidateRecord, error) {
		if input.Candidate == "" {
			return nil, nil, errors.New("candidate is required")
		}
		db := apply.GetCandidateDB()
		if db == nil {
			return nil, nil, errors.New("candidate store not configured (set DATABASE_URL)")
		}
		rec, err := db.GetCandidate(ctx, input.Candidate)
		if err != nil {
			return nil, nil, fmt.Errorf("candidate_get: %w", err)
		}
		return nil, rec, nil
	})
}

func registerCandidateList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "candidate_list",
		Description: "List stored candidates sorted by most recently updated. Returns id, email, name, and profile for each.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input CandidateListInput) (*mcp.CallToolResult, *CandidateListOutput, error) {
		db := apply.GetCandidateDB()
		if db == nil {
			return nil, nil, errors.New("candidate store not configured (set DATABASE_URL)")
		}
		records, err := db.ListCandidates(ctx, input.Limit)
		if err != nil {
			return nil, nil, fmt.Errorf("candidate_list: %w", err)
		}
		return nil, &CandidateListOutput{Candidates: records, Total: len(records)}, nil
	})
}
