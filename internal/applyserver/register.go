// Package applyserver registers the MCP tools exposed by the go_apply server.
package applyserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quantipeak/go_apply/internal/engine/apply"
	"github.com/quantipeak/go_apply/internal/engine/resume"
)

// RegisterTools registers all application-assistant tools on the given MCP
// server: resume parsing and upload, candidate lookup, document generation
// and export, job board search, and the application tracker.
func RegisterTools(server *mcp.Server) {
	registerResumeParse(server)
	registerResumeUpload(server)
	registerResumeValidate(server)
	registerCandidateGet(server)
	registerCandidateList(server)
	registerCoverLetterGenerate(server)
	registerResumeGenerate(server)
	registerDocumentExport(server)
	registerJobSearch(server)
	registerApplicationTrack(server)
	registerApplicationUpdate(server)
	registerApplicationList(server)
}

// resolveProfile loads a candidate profile for generation tools. Either a
// stored candidate (by id or email) or inline resume text may be given;
// inline text wins when both are present.
func resolveProfile(ctx context.Context, candidate, resumeText string) (*resume.Profile, error) {
	if strings.TrimSpace(resumeText) != "" {
		return apply.ParseResumeText(ctx, resumeText).Profile, nil
	}
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return nil, errors.New("either candidate or resume_text is required")
	}
	db := apply.GetCandidateDB()
	if db == nil {
		return nil, errors.New("candidate store not configured (set DATABASE_URL)")
	}
	rec, err := db.GetCandidate(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("candidate %q: %w", candidate, err)
	}
	return rec.Profile, nil
}
