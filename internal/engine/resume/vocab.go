package resume

// Canonical section names used as keys throughout the parser.
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAwards         = "awards"
	SectionVolunteer      = "volunteer"
	SectionLanguages      = "languages"
	SectionInterests      = "interests"
	SectionPublications   = "publications"
	SectionReferences     = "references"
)

// Vocabulary is the immutable extraction configuration: section-header
// synonyms, the skill term list, word filters for experience parsing, and the
// filler texts. It is injected into the Parser rather than kept as package
// state so tests can swap lists freely.
type Vocabulary struct {
	// SectionOrder fixes iteration order over SectionSynonyms (maps do not).
	SectionOrder []string

	// SectionSynonyms maps a canonical section name to its accepted header
	// spellings, tried in declared order: the first synonym with a match in
	// the document wins, regardless of document position.
	SectionSynonyms map[string][]string

	// Skills is the fixed technology vocabulary matched case-insensitively on
	// word boundaries across the whole document.
	Skills []string

	// TitleExclusions reject an experience-entry title: lines whose first
	// segment contains one of these are education or section noise, not jobs.
	TitleExclusions []string

	// InstitutionWords reject an experience-entry company: a "company" that
	// is a school is an education line that leaked into the section.
	InstitutionWords []string

	// WebsiteExclusions drop website-extractor matches that are really email
	// providers or dedicated-field domains.
	WebsiteExclusions []string

	// ContactLineWords disqualify a line from being the candidate's name.
	ContactLineWords []string

	// MinEntryLen is the per-section minimum entry length for the simple
	// list parsers; entries below it are treated as noise.
	MinEntryLen map[string]int

	// FillerDescription substitutes for an experience entry whose
	// description could not be found within the scan window.
	FillerDescription string

	// SummaryTemplate closes the synthesized summary after the skill list.
	SummaryTemplate string
}

// DefaultVocabulary returns the stock extraction configuration.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		SectionOrder: []string{
			SectionSummary, SectionExperience, SectionEducation, SectionSkills,
			SectionProjects, SectionCertifications, SectionAwards, SectionVolunteer,
			SectionLanguages, SectionInterests, SectionPublications, SectionReferences,
		},
		SectionSynonyms: map[string][]string{
			SectionSummary:        {"summary", "professional summary", "profile", "objective", "about"},
			SectionExperience:     {"experience", "work experience", "employment history", "work history", "professional experience", "career", "work"},
			SectionEducation:      {"education", "academic background", "academics", "qualifications"},
			SectionSkills:         {"skills", "technical skills", "technologies", "core competencies", "soft skills"},
			SectionProjects:       {"projects", "personal projects", "academic projects"},
			SectionCertifications: {"certifications", "certificates", "licenses", "credentials"},
			SectionAwards:         {"awards", "honors", "achievements", "recognition"},
			SectionVolunteer:      {"volunteer", "volunteering", "volunteer experience", "community service"},
			SectionLanguages:      {"languages", "language proficiency"},
			SectionInterests:      {"interests", "hobbies"},
			SectionPublications:   {"publications", "papers"},
			SectionReferences:     {"references", "referees"},
		},
		Skills: []string{
			"python", "java", "javascript", "typescript", "react", "angular", "vue", "node.js", "sql",
			"machine learning", "ai", "artificial intelligence", "data science", "analytics", "aws", "azure", "gcp",
			"docker", "kubernetes", "git", "agile", "scrum", "project management", "html", "css", "bootstrap",
			"mongodb", "postgresql", "mysql", "redis", "elasticsearch", "tensorflow", "pytorch", "pandas",
			"numpy", "scikit-learn", "flask", "django", "fastapi", "spring", "express", "rest api", "graphql",
			"microservices", "ci/cd", "jenkins", "terraform", "ansible", "linux", "unix", "bash", "powershell",
			"go", "rust", "c++", "c#",
		},
		TitleExclusions: []string{
			"education", "skills", "certifications", "interests", "professional summary",
			"bachelor", "master", "phd", "degree", "university", "college", "b.tech", "m.tech",
		},
		InstitutionWords: []string{
			"university", "college", "institute", "school", "academy",
		},
		WebsiteExclusions: []string{
			"linkedin", "github", "gmail.com", "yahoo.com", "hotmail.com",
			"outlook.com", "icloud.com", "aol.com", "proton.me",
		},
		ContactLineWords: []string{
			"email", "phone", "linkedin", "github", "portfolio",
		},
		MinEntryLen: map[string]int{
			SectionEducation:      10,
			SectionProjects:       4,
			SectionCertifications: 10,
			SectionAwards:         10,
			SectionVolunteer:      10,
			SectionLanguages:      3,
			SectionInterests:      3,
			SectionPublications:   10,
			SectionReferences:     5,
		},
		FillerDescription: "Contributed to software development projects using modern technologies and best practices.",
		SummaryTemplate:   "Passionate about technology and innovation with a strong foundation in software development and problem-solving.",
	}
}

// minLen returns the configured minimum entry length for a section, with a
// conservative default for sections the map does not mention.
func (v *Vocabulary) minLen(section string) int {
	if n, ok := v.MinEntryLen[section]; ok {
		return n
	}
	return 5
}
