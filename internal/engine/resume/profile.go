// Package resume implements the heuristic résumé-text parser: it turns raw
// plain text extracted from an uploaded file into a structured candidate
// profile. The parser is pure and stateless (same input, same output), so
// parses may run concurrently without coordination.
package resume

// ContactInfo holds the extracted contact fields. A missed extraction is an
// empty string, never an error: downstream formatting appends fields to
// contact lines only when non-empty.
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// ExperienceEntry is one parsed work-history item.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description"`
}

// Profile is the structured output of a parse. Section lists never contain
// empty or whitespace-only strings; Skills is deduplicated case-insensitively
// preserving first-seen order.
type Profile struct {
	Name               string              `json:"name"`
	Contact            ContactInfo         `json:"contact_info"`
	Summary            string              `json:"summary"`
	Skills             []string            `json:"skills"`
	Experience         []ExperienceEntry   `json:"experience"`
	Education          []string            `json:"education"`
	Projects           []string            `json:"projects"`
	Certifications     []string            `json:"certifications"`
	Awards             []string            `json:"awards"`
	Volunteer          []string            `json:"volunteer"`
	Languages          []string            `json:"languages"`
	Interests          []string            `json:"interests"`
	Publications       []string            `json:"publications"`
	References         []string            `json:"references"`
	AdditionalSections map[string][]string `json:"additional_sections,omitempty"`
}

// emptyProfile returns a minimal profile with non-nil lists, used for
// degenerate input so callers always get a serializable record.
func emptyProfile() *Profile {
	return &Profile{
		Skills:         []string{},
		Experience:     []ExperienceEntry{},
		Education:      []string{},
		Projects:       []string{},
		Certifications: []string{},
		Awards:         []string{},
		Volunteer:      []string{},
		Languages:      []string{},
		Interests:      []string{},
		Publications:   []string{},
		References:     []string{},
	}
}
