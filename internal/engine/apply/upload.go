// Package apply implements the application-assistant operations behind the
// MCP tools: resume upload and persistence, document generation and export,
// job board search, and the application tracker.
package apply

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quantipeak/go_apply/internal/engine"
	"github.com/quantipeak/go_apply/internal/engine/extract"
	"github.com/quantipeak/go_apply/internal/engine/resume"
)

// ResumeParseResult is the output of resume_parse and resume_upload.
type ResumeParseResult struct {
	Profile    *resume.Profile         `json:"profile"`
	Validation resume.ValidationResult `json:"validation"`
	// CandidateID is set when the profile was persisted.
	CandidateID string `json:"candidate_id,omitempty"`
	Persisted   bool   `json:"persisted"`
	Message     string `json:"message"`
}

// newParser builds the parser with the configured fallback options.
func newParser() *resume.Parser {
	return resume.NewParser(nil, resume.Options{
		SynthesizeExperience: engine.Cfg.SynthesizeExperience,
	})
}

// ParseResumeText parses already-extracted text into a validated profile.
// Nothing is persisted; this is the dry-run counterpart of UploadResume.
func ParseResumeText(_ context.Context, text string) *ResumeParseResult {
	engine.IncrResumeParses()
	profile := newParser().Parse(text)
	validation := resume.Validate(profile)
	return &ResumeParseResult{
		Profile:    profile,
		Validation: validation,
		Message:    parseMessage(profile, validation),
	}
}

// UploadResume runs the full pipeline: extract text from the file, parse,
// validate, and upsert the candidate keyed by email. Validation errors block
// persistence; a missing email or unconfigured database degrade to a
// parse-only result rather than failing the upload.
func UploadResume(ctx context.Context, filename string, data []byte) (*ResumeParseResult, error) {
	engine.IncrResumeUploads()

	if max := engine.Cfg.MaxUploadBytes; max > 0 && int64(len(data)) > max {
		return nil, fmt.Errorf("upload: file exceeds %d byte limit", max)
	}

	text, err := extract.Text(filename, data)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	result := ParseResumeText(ctx, text)
	if !result.Validation.Valid {
		result.Message = "Profile failed validation; not persisted. " + result.Message
		return result, nil
	}

	db := GetCandidateDB()
	if db == nil {
		result.Message += " Candidate store not configured; profile not persisted."
		return result, nil
	}

	rec, err := db.UpsertCandidate(ctx, result.Profile, filename)
	if err != nil {
		if errors.Is(err, ErrNoEmail) {
			result.Message += " No email extracted; profile not persisted."
			return result, nil
		}
		return nil, fmt.Errorf("upload: %w", err)
	}

	slog.Info("candidate upserted",
		slog.String("id", rec.ID),
		slog.String("email", rec.Email),
		slog.String("file", filename),
	)
	result.CandidateID = rec.ID
	result.Persisted = true
	result.Message += fmt.Sprintf(" Candidate saved as %s.", rec.ID)
	return result, nil
}

func parseMessage(p *resume.Profile, v resume.ValidationResult) string {
	msg := fmt.Sprintf("Parsed profile: %d skills, %d experience entries, %d education entries.",
		len(p.Skills), len(p.Experience), len(p.Education))
	if len(v.Errors) > 0 {
		msg += fmt.Sprintf(" %d validation errors.", len(v.Errors))
	}
	if len(v.Warnings) > 0 {
		msg += fmt.Sprintf(" %d warnings.", len(v.Warnings))
	}
	return msg
}
