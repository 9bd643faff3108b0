package resume

import "strings"

// minParseLen is the degenerate-input threshold: anything shorter yields a
// minimal profile instead of a parse attempt.
const minParseLen = 10

// nameScanLines bounds how many leading lines are considered for the name.
const nameScanLines = 5

// topSummarySkills caps how many skills feed the synthesized summary.
const topSummarySkills = 5

// Options selects optional parser behaviors. The zero value reproduces the
// strict parse: no fabricated data.
type Options struct {
	// SynthesizeExperience inserts one generic placeholder experience entry
	// when the document mentions development work but no real entry could be
	// parsed. Off by default: a fabricated employer in an otherwise truthful
	// profile is usually worse than an empty section.
	SynthesizeExperience bool
}

// Parser extracts a Profile from raw resume text. It is safe for concurrent
// use; all state is the injected vocabulary and options.
type Parser struct {
	vocab *Vocabulary
	opts  Options
}

// NewParser builds a Parser. A nil vocabulary selects DefaultVocabulary.
func NewParser(vocab *Vocabulary, opts Options) *Parser {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Parser{vocab: vocab, opts: opts}
}

// Parse extracts a structured profile from resume text. It never fails:
// missed fields are empty, and degenerate input (under 10 chars) returns a
// minimal profile so the upload flow can degrade instead of aborting.
func (p *Parser) Parse(text string) *Profile {
	profile := emptyProfile()
	if len(strings.TrimSpace(text)) < minParseLen {
		return profile
	}

	lines := splitLines(text)
	cls := p.vocab.classify(lines)

	profile.Name = extractName(lines, p.vocab.ContactLineWords)
	profile.Contact = ContactInfo{
		Email:    ExtractEmail(text),
		Phone:    ExtractPhone(text),
		LinkedIn: ExtractLinkedIn(text),
		Website:  ExtractWebsite(text, p.vocab.WebsiteExclusions),
	}

	profile.Skills = p.collectSkills(text, cls)
	profile.Experience = p.collectExperience(lines, cls)

	profile.Education = p.listSection(cls, SectionEducation)
	profile.Projects = orEmpty(parseProjects(p.vocab.locate(cls, SectionProjects), p.vocab.minLen(SectionProjects)))
	profile.Certifications = p.listSection(cls, SectionCertifications)
	profile.Awards = p.listSection(cls, SectionAwards)
	profile.Volunteer = p.listSection(cls, SectionVolunteer)
	profile.Languages = p.listSection(cls, SectionLanguages)
	profile.Interests = p.listSection(cls, SectionInterests)
	profile.Publications = p.listSection(cls, SectionPublications)
	profile.References = p.listSection(cls, SectionReferences)
	profile.AdditionalSections = additionalSections(cls)

	profile.Summary = p.synthesizeSummary(profile.Skills)
	return profile
}

func (p *Parser) listSection(cls []classifiedLine, section string) []string {
	return orEmpty(parseList(p.vocab.locate(cls, section), p.vocab.minLen(section)))
}

// orEmpty keeps section lists serializable as [] instead of null.
func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// extractName scans the first lines for the candidate's name: the first
// non-empty line that does not look like a contact line.
func extractName(lines []string, contactWords []string) string {
	limit := nameScanLines
	if limit > len(lines) {
		limit = len(lines)
	}
	for _, raw := range lines[:limit] {
		line := strings.TrimSpace(raw)
		if line == "" || containsAnyWord(line, contactWords) {
			continue
		}
		return line
	}
	return ""
}

// collectSkills merges whole-document vocabulary hits with the tokens of an
// explicit skills section, deduplicated case-insensitively in first-seen
// order.
func (p *Parser) collectSkills(text string, cls []classifiedLine) []string {
	skills := MatchSkills(text, p.vocab.Skills)
	for _, tok := range parseSkillsSection(p.vocab.locate(cls, SectionSkills)) {
		skills = appendUniqueFold(skills, tok)
	}
	if skills == nil {
		skills = []string{}
	}
	return skills
}

func (p *Parser) collectExperience(lines []string, cls []classifiedLine) []ExperienceEntry {
	entries := parseExperience(p.vocab.locate(cls, SectionExperience), p.vocab)
	if len(entries) == 0 && p.opts.SynthesizeExperience && hasDevelopmentLines(lines) {
		entries = []ExperienceEntry{placeholderExperience()}
	}
	if entries == nil {
		entries = []ExperienceEntry{}
	}
	return entries
}

var developmentVerbs = []string{"developed", "built", "created", "implemented"}

func hasDevelopmentLines(lines []string) bool {
	for _, line := range lines {
		if containsAnyWord(line, developmentVerbs) {
			return true
		}
	}
	return false
}

// placeholderExperience is the synthesized fallback entry. It fabricates a
// generic employer, which is why Options.SynthesizeExperience gates it.
func placeholderExperience() ExperienceEntry {
	return ExperienceEntry{
		Title:       "Software Developer",
		Company:     "Various Projects",
		Duration:    "Project-based experience",
		Description: "Developed multiple software applications and projects using various technologies.",
	}
}

// synthesizeSummary builds the default narrative from the top skills. The
// summary is generated, never extracted; the downstream generation step may
// replace it.
func (p *Parser) synthesizeSummary(skills []string) string {
	if len(skills) == 0 {
		return ""
	}
	top := skills
	if len(top) > topSummarySkills {
		top = top[:topSummarySkills]
	}
	return "Experienced professional with expertise in " + strings.Join(top, ", ") + ". " + p.vocab.SummaryTemplate
}
