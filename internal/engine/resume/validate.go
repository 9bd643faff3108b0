package resume

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationResult reports structural checks on an assembled profile.
// Errors block downstream persistence and generation; warnings are
// informational only.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

const maxReasonableSkills = 50

var (
	nameCharsetRe = regexp.MustCompile(`^[a-zA-Z\s\-\.]+$`)

	validEmailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	validPhoneRes = []*regexp.Regexp{
		regexp.MustCompile(`^\+?1?[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}$`),
		regexp.MustCompile(`^\+?[1-9]\d{1,14}$`),
	}

	validURLRe = regexp.MustCompile(`(?i)^https?://(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+[A-Z]{2,6}(?::\d+)?(?:/?|[/?]\S+)$`)
)

// Validate checks a parsed profile and separates blocking errors from
// informational warnings. The parser should never produce an invalid profile;
// this is the safety net for profiles arriving from external callers.
func Validate(p *Profile) ValidationResult {
	var errs, warns []string

	name := strings.TrimSpace(p.Name)
	switch {
	case name == "":
		errs = append(errs, "missing required field: name")
	case len(name) < 2:
		errs = append(errs, "name must be at least 2 characters long")
	case len(name) > 100:
		errs = append(errs, "name must be less than 100 characters")
	case !nameCharsetRe.MatchString(name):
		warns = append(warns, "name contains unusual characters")
	}

	if p.Contact.Email != "" && !validEmailRe.MatchString(p.Contact.Email) {
		errs = append(errs, "invalid email: "+p.Contact.Email)
	}
	if p.Contact.Phone != "" && !matchesAnyPhone(p.Contact.Phone) {
		errs = append(errs, "invalid phone number format: "+p.Contact.Phone)
	}
	if p.Contact.LinkedIn != "" {
		url := p.Contact.LinkedIn
		if !strings.HasPrefix(url, "http") {
			url = "https://" + url
		}
		if !validURLRe.MatchString(url) {
			warns = append(warns, "invalid LinkedIn URL: "+p.Contact.LinkedIn)
		} else if !strings.Contains(strings.ToLower(url), "linkedin.com") {
			warns = append(warns, "LinkedIn URL doesn't appear to be a LinkedIn profile")
		}
	}

	if len(p.Skills) == 0 {
		warns = append(warns, "no skills found in resume")
	} else if len(p.Skills) > maxReasonableSkills {
		warns = append(warns, "unusually high number of skills found")
	}

	for i, exp := range p.Experience {
		if strings.TrimSpace(exp.Title) == "" {
			errs = append(errs, fmt.Sprintf("experience entry %d missing title", i+1))
		}
		if strings.TrimSpace(exp.Company) == "" {
			errs = append(errs, fmt.Sprintf("experience entry %d missing company", i+1))
		}
	}

	if len(p.Education) == 0 {
		warns = append(warns, "no education found in resume")
	}

	if errs == nil {
		errs = []string{}
	}
	if warns == nil {
		warns = []string{}
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs, Warnings: warns}
}

func matchesAnyPhone(phone string) bool {
	for _, re := range validPhoneRes {
		if re.MatchString(strings.TrimSpace(phone)) {
			return true
		}
	}
	return false
}
