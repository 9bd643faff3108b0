package resume

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

const sampleResume = `John Smith
john.smith@example.com
(555) 123-4567
linkedin.com/in/johnsmith

EXPERIENCE
Senior Developer | Acme Corp | 2020-2023
• Built internal tools

EDUCATION
Bachelor of Science, University of Foo

SKILLS
Python, Docker
`

// --- Full parse ---

func TestParseSampleResume(t *testing.T) {
	p := NewParser(nil, Options{})
	got := p.Parse(sampleResume)

	if got.Name != "John Smith" {
		t.Errorf("name = %q, want John Smith", got.Name)
	}
	wantContact := ContactInfo{
		Email:    "john.smith@example.com",
		Phone:    "(555) 123-4567",
		LinkedIn: "https://linkedin.com/in/johnsmith",
		Website:  "",
	}
	if got.Contact != wantContact {
		t.Errorf("contact = %+v, want %+v", got.Contact, wantContact)
	}
	if want := []string{"Python", "Docker"}; !reflect.DeepEqual(got.Skills, want) {
		t.Errorf("skills = %v, want %v", got.Skills, want)
	}
	wantExp := []ExperienceEntry{{
		Title:       "Senior Developer",
		Company:     "Acme Corp",
		Duration:    "2020-2023",
		Description: "Built internal tools",
	}}
	if !reflect.DeepEqual(got.Experience, wantExp) {
		t.Errorf("experience = %+v, want %+v", got.Experience, wantExp)
	}
	if want := []string{"Bachelor of Science, University of Foo"}; !reflect.DeepEqual(got.Education, want) {
		t.Errorf("education = %v, want %v", got.Education, want)
	}
	wantSummary := "Experienced professional with expertise in Python, Docker. " +
		"Passionate about technology and innovation with a strong foundation in software development and problem-solving."
	if got.Summary != wantSummary {
		t.Errorf("summary = %q, want %q", got.Summary, wantSummary)
	}
	if got.AdditionalSections != nil {
		t.Errorf("additional sections = %v, want none", got.AdditionalSections)
	}
}

func TestParseEducationLineNeverBecomesExperience(t *testing.T) {
	p := NewParser(nil, Options{})
	got := p.Parse("Jane Doe\n\nEDUCATION\nBachelor of Science, University of Foo\n")
	if len(got.Experience) != 0 {
		t.Errorf("experience = %+v, want none", got.Experience)
	}
	if want := []string{"Bachelor of Science, University of Foo"}; !reflect.DeepEqual(got.Education, want) {
		t.Errorf("education = %v, want %v", got.Education, want)
	}
}

func TestParseDegenerateInput(t *testing.T) {
	p := NewParser(nil, Options{})
	for _, text := range []string{"", "   ", "tiny", "\n\n  \n"} {
		got := p.Parse(text)
		if got.Name != "" || len(got.Skills) != 0 || len(got.Experience) != 0 {
			t.Errorf("Parse(%q) = %+v, want minimal profile", text, got)
		}
		if got.Skills == nil || got.Education == nil {
			t.Errorf("Parse(%q) returned nil lists", text)
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	p := NewParser(nil, Options{})
	first, err := json.Marshal(p.Parse(sampleResume))
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	second, err := json.Marshal(p.Parse(sampleResume))
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("repeated parses differ:\n%s\n%s", first, second)
	}
}

// --- Name extraction ---

func TestParseNameSkipsContactLines(t *testing.T) {
	p := NewParser(nil, Options{})
	text := "Email: jane@example.com\nPhone: 555-123-4567\nJane Doe\n\nSKILLS\nDocker\n"
	if got := p.Parse(text); got.Name != "Jane Doe" {
		t.Errorf("name = %q, want Jane Doe", got.Name)
	}
}

// --- Placeholder experience ---

func TestSynthesizedExperienceOffByDefault(t *testing.T) {
	p := NewParser(nil, Options{})
	got := p.Parse("Jane Doe\nDeveloped several command line utilities.\n")
	if len(got.Experience) != 0 {
		t.Errorf("experience = %+v, want none without the synthesis option", got.Experience)
	}
}

func TestSynthesizedExperienceOptIn(t *testing.T) {
	p := NewParser(nil, Options{SynthesizeExperience: true})

	got := p.Parse("Jane Doe\nDeveloped several command line utilities.\n")
	if len(got.Experience) != 1 {
		t.Fatalf("experience = %+v, want one synthesized entry", got.Experience)
	}
	if got.Experience[0].Company != "Various Projects" {
		t.Errorf("company = %q, want Various Projects", got.Experience[0].Company)
	}

	// No development verbs, no synthesis even when the option is on.
	got = p.Parse("Jane Doe\nTwenty seasons of competitive chess.\n")
	if len(got.Experience) != 0 {
		t.Errorf("experience = %+v, want none without development verbs", got.Experience)
	}

	// A real entry suppresses the placeholder.
	got = p.Parse("Jane Doe\n\nEXPERIENCE\nSenior Developer | Acme Corp | 2020-2023\n• Developed internal tools\n")
	if len(got.Experience) != 1 || got.Experience[0].Company != "Acme Corp" {
		t.Errorf("experience = %+v, want only the real Acme Corp entry", got.Experience)
	}
}

// --- Summary synthesis ---

func TestSummaryEmptyWithoutSkills(t *testing.T) {
	p := NewParser(nil, Options{})
	if got := p.Parse("Jane Doe\nTwenty seasons of competitive chess.\n"); got.Summary != "" {
		t.Errorf("summary = %q, want empty when no skills found", got.Summary)
	}
}

func TestSummaryCapsSkillCount(t *testing.T) {
	p := NewParser(nil, Options{})
	got := p.Parse("Jane Doe\n\nSKILLS\nPython, Docker, Kubernetes, Terraform, Ansible, Jenkins\n")
	if n := strings.Count(got.Summary, ","); n != 4 {
		t.Errorf("summary lists %d separators, want 4 (top five skills): %q", n, got.Summary)
	}
}
