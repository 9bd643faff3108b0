package applyserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quantipeak/go_apply/internal/engine/apply"
)

func registerApplicationTrack(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_track",
		Description: "Save a job application to the local tracker (SQLite). Status options: saved (default), applied, interviewing, offer, rejected. Returns the assigned ID for future updates.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input apply.ApplicationTrackInput) (*mcp.CallToolResult, *apply.ApplicationResult, error) {
		if input.JobTitle == "" || input.Company == "" {
			return nil, nil, errors.New("job_title and company are required")
		}
		result, err := apply.TrackApplication(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}

func registerApplicationUpdate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_update",
		Description: "Update status or notes for a tracked application by ID. Status options: saved, applied, interviewing, offer, rejected. Get IDs from application_list.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input apply.ApplicationUpdateInput) (*mcp.CallToolResult, *apply.ApplicationResult, error) {
		if input.ID <= 0 {
			return nil, nil, errors.New("id is required")
		}
		result, err := apply.UpdateApplication(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}

func registerApplicationList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "application_list",
		Description: "List tracked job applications. Optionally filter by status: saved, applied, interviewing, offer, rejected. Returns applications sorted by most recently updated.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input apply.ApplicationListInput) (*mcp.CallToolResult, *apply.ApplicationListResult, error) {
		result, err := apply.ListApplications(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}
