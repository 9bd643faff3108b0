package apply

import (
	"context"
	"strings"
	"testing"
)

const sampleResumeText = `Jane Roe
jane.roe@example.com
(555) 987-6543

EXPERIENCE
Backend Developer | Initech | 2021-2024
• Built billing pipelines

EDUCATION
Bachelor of Science, State University

SKILLS
Python, Docker
`

func TestParseResumeText(t *testing.T) {
	res := ParseResumeText(context.Background(), sampleResumeText)
	if res.Profile.Name != "Jane Roe" {
		t.Errorf("name = %q", res.Profile.Name)
	}
	if !res.Validation.Valid {
		t.Errorf("expected valid profile, errors: %v", res.Validation.Errors)
	}
	if res.Persisted {
		t.Error("parse-only result should not be persisted")
	}
	if !strings.Contains(res.Message, "2 skills") {
		t.Errorf("message = %q", res.Message)
	}
}

func TestUploadResumeNoStore(t *testing.T) {
	SetCandidateDB(nil)
	res, err := UploadResume(context.Background(), "resume.txt", []byte(sampleResumeText))
	if err != nil {
		t.Fatalf("UploadResume: %v", err)
	}
	if res.Persisted {
		t.Error("should not persist without a configured store")
	}
	if !strings.Contains(res.Message, "not configured") {
		t.Errorf("message = %q", res.Message)
	}
}

func TestUploadResumeEmpty(t *testing.T) {
	if _, err := UploadResume(context.Background(), "resume.txt", nil); err == nil {
		t.Error("expected error for empty file")
	}
}
