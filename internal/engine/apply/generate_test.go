package apply

import (
	"context"
	"strings"
	"testing"
)

func TestNormalizeTone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"professional", "professional"},
		{"Friendly", "friendly"},
		{" CONCISE ", "concise"},
		{"", "professional"},
		{"sarcastic", "professional"},
	}
	for _, tt := range tests {
		if got := normalizeTone(tt.in); got != tt.want {
			t.Errorf("normalizeTone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateRequiresDescription(t *testing.T) {
	ctx := context.Background()
	p := ParseResumeText(ctx, sampleResumeText).Profile
	job := JobTarget{Title: "Engineer", Company: "Acme"}

	if _, err := GenerateCoverLetter(ctx, p, job, ""); err == nil {
		t.Error("GenerateCoverLetter: expected error without description")
	}
	if _, err := GenerateResume(ctx, p, job); err == nil {
		t.Error("GenerateResume: expected error without description")
	}
}

func TestGenerateRejectsNilProfile(t *testing.T) {
	job := JobTarget{Title: "Engineer", Company: "Acme", Description: "Go services"}
	if _, err := GenerateResume(context.Background(), nil, job); err == nil {
		t.Error("expected error for nil profile")
	}
}

func TestCoverLetterPromptAssembly(t *testing.T) {
	pj, err := profileJSON(ParseResumeText(context.Background(), sampleResumeText).Profile)
	if err != nil {
		t.Fatalf("profileJSON: %v", err)
	}
	for _, want := range []string{`"email": "jane.roe@example.com"`, `"Python"`} {
		if !strings.Contains(pj, want) {
			t.Errorf("profile JSON missing %s", want)
		}
	}
}
