package applyserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quantipeak/go_apply/internal/engine/apply"
)

// JobSearchInput is the input for job_search.
type JobSearchInput struct {
	Companies []string `json:"companies" jsonschema:"Company board slugs to query (e.g. stripe, airbnb), as used in boards.greenhouse.io/<slug> and jobs.lever.co/<slug>"`
	Keywords  string   `json:"keywords,omitempty" jsonschema:"Keywords to filter postings by title and location (e.g. golang remote)"`
	Limit     int      `json:"limit,omitempty" jsonschema:"Maximum postings to return (default 20, max 50)"`
}

func registerJobSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_search",
		Description: "Search the Greenhouse and Lever public posting APIs for the given company boards. Returns postings with title, location, URL, salary when listed, and a markdown description excerpt. Postings appearing on both boards are deduped.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input JobSearchInput) (*mcp.CallToolResult, *apply.JobSearchResult, error) {
		if len(input.Companies) == 0 {
			return nil, nil, errors.New("companies is required")
		}
		result, err := apply.SearchJobs(ctx, input.Companies, input.Keywords, input.Limit)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}
