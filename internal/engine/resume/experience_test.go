package resume

import (
	"reflect"
	"testing"
)

// --- Entry parsing ---

func TestParseExperiencePipeDelimited(t *testing.T) {
	v := DefaultVocabulary()
	lines := []string{
		"Senior Developer | Acme Corp | 2020-2023",
		"• Built internal tools",
	}
	got := parseExperience(lines, v)
	want := []ExperienceEntry{{
		Title:       "Senior Developer",
		Company:     "Acme Corp",
		Duration:    "2020-2023",
		Description: "Built internal tools",
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseExperience = %+v, want %+v", got, want)
	}
}

func TestParseExperienceCommaDelimited(t *testing.T) {
	v := DefaultVocabulary()
	lines := []string{
		"Software Engineer, Initech",
		"Maintained the TPS reporting stack",
	}
	got := parseExperience(lines, v)
	if len(got) != 1 {
		t.Fatalf("entries = %d, want 1", len(got))
	}
	if got[0].Title != "Software Engineer" || got[0].Company != "Initech" {
		t.Errorf("entry = %+v, want Software Engineer at Initech", got[0])
	}
	if got[0].Duration != "" {
		t.Errorf("duration = %q, want empty when line has none", got[0].Duration)
	}
	if got[0].Description != "Maintained the TPS reporting stack" {
		t.Errorf("description = %q, want the plain following line", got[0].Description)
	}
}

func TestParseExperienceRejections(t *testing.T) {
	v := DefaultVocabulary()
	tests := []struct {
		name string
		line string
	}{
		{"institution company", "Bachelor of Science, University of Foo"},
		{"degree title", "Master of Engineering, Initech"},
		{"short title", "QA, Initech Incorporated"},
		{"short company", "Senior Developer, AB"},
		{"no delimiter", "Freelance consulting work"},
		{"bullet line", "• Senior Developer | Acme Corp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseExperience([]string{tt.line}, v); len(got) != 0 {
				t.Errorf("parseExperience(%q) = %+v, want no entries", tt.line, got)
			}
		})
	}
}

// --- Duration detection ---

func TestDurationFromLine(t *testing.T) {
	v := DefaultVocabulary()
	tests := []struct {
		name string
		line string
		want string
	}{
		{"third pipe segment", "Lead Developer | Acme Corp | Jan 2020 - Mar 2023", "Jan 2020 - Mar 2023"},
		{"years in company segment", "Lead Developer, Acme Corp 3 years", "3 years"},
		{"months", "Contract Developer, Acme Corp 6 months", "6 months"},
		{"month range", "Lead Developer, Acme Corp Jan 2020 - Mar 2023", "Jan 2020 - Mar 2023"},
		{"open ended", "Lead Developer, Acme Corp Sep 2021 - Present", "Sep 2021 - Present"},
		{"none", "Lead Developer, Acme Corp", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseExperience([]string{tt.line}, v)
			if len(got) != 1 {
				t.Fatalf("entries = %d, want 1", len(got))
			}
			if got[0].Duration != tt.want {
				t.Errorf("duration = %q, want %q", got[0].Duration, tt.want)
			}
		})
	}
}

// --- Description scan ---

func TestScanDescription(t *testing.T) {
	filler := DefaultVocabulary().FillerDescription
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"bullet", []string{"hdr", "• Shipped v2"}, "Shipped v2"},
		{"skips blanks", []string{"hdr", "", "", "• Shipped v2"}, "Shipped v2"},
		{"plain line", []string{"hdr", "Shipped v2 to production"}, "Shipped v2 to production"},
		{"skips next entry header", []string{"hdr", "Other Role | Other Co", "• Shipped v2"}, "Shipped v2"},
		{"window exhausted", []string{"hdr", "", "", "", "", "• Too far away"}, filler},
		{"nothing follows", []string{"hdr"}, filler},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scanDescription(tt.lines, 0, filler); got != tt.want {
				t.Errorf("scanDescription = %q, want %q", got, tt.want)
			}
		})
	}
}
