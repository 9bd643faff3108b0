package resume

import (
	"strings"
	"testing"
)

func validProfile() *Profile {
	return &Profile{
		Name: "Jane Doe",
		Contact: ContactInfo{
			Email:    "jane@example.com",
			Phone:    "(555) 123-4567",
			LinkedIn: "https://linkedin.com/in/janedoe",
		},
		Skills:     []string{"Python"},
		Experience: []ExperienceEntry{{Title: "Engineer", Company: "Acme", Description: "Built things"}},
		Education:  []string{"BSc Computer Science, Foo University"},
	}
}

// --- Blocking errors ---

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Profile)
		wantErr string
	}{
		{"missing name", func(p *Profile) { p.Name = "" }, "missing required field: name"},
		{"name too short", func(p *Profile) { p.Name = "J" }, "at least 2 characters"},
		{"name too long", func(p *Profile) { p.Name = strings.Repeat("a", 101) }, "less than 100 characters"},
		{"bad email", func(p *Profile) { p.Contact.Email = "not-an-email" }, "invalid email"},
		{"bad phone", func(p *Profile) { p.Contact.Phone = "call me maybe" }, "invalid phone"},
		{"experience missing title", func(p *Profile) { p.Experience[0].Title = "" }, "experience entry 1 missing title"},
		{"experience missing company", func(p *Profile) { p.Experience[0].Company = " " }, "experience entry 1 missing company"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)
			res := Validate(p)
			if res.Valid {
				t.Fatalf("Valid = true, want false")
			}
			if !containsSubstring(res.Errors, tt.wantErr) {
				t.Errorf("errors = %v, want one containing %q", res.Errors, tt.wantErr)
			}
		})
	}
}

// --- Warnings only ---

func TestValidateWarnings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Profile)
		wantWarn string
	}{
		{"unusual name characters", func(p *Profile) { p.Name = "Jane Doe 3rd" }, "unusual characters"},
		{"malformed linkedin", func(p *Profile) { p.Contact.LinkedIn = "https://not a url" }, "invalid LinkedIn URL"},
		{"non-linkedin url", func(p *Profile) { p.Contact.LinkedIn = "https://example.com/janedoe" }, "doesn't appear to be a LinkedIn profile"},
		{"no skills", func(p *Profile) { p.Skills = nil }, "no skills"},
		{"too many skills", func(p *Profile) { p.Skills = make([]string, 51) }, "unusually high"},
		{"no education", func(p *Profile) { p.Education = nil }, "no education"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)
			res := Validate(p)
			if !res.Valid {
				t.Fatalf("Valid = false, errors = %v, want warnings only", res.Errors)
			}
			if !containsSubstring(res.Warnings, tt.wantWarn) {
				t.Errorf("warnings = %v, want one containing %q", res.Warnings, tt.wantWarn)
			}
		})
	}
}

func TestValidateCleanProfile(t *testing.T) {
	res := Validate(validProfile())
	if !res.Valid || len(res.Errors) != 0 || len(res.Warnings) != 0 {
		t.Errorf("Validate = %+v, want clean result", res)
	}
}

func TestValidateEmptyContactIsFine(t *testing.T) {
	p := validProfile()
	p.Contact = ContactInfo{}
	res := Validate(p)
	if !res.Valid {
		t.Errorf("empty contact fields produced errors: %v", res.Errors)
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
