package resume

import (
	"regexp"
	"strings"
)

// Duration patterns, in priority order. The first match in an entry line
// wins and is never overwritten by a later one.
var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\s*(?:years?|yrs?)(?:\s*\d+\s*months?)?`),
	regexp.MustCompile(`(?i)\d+\s*months?`),
	regexp.MustCompile(`(?i)\d+\s*-\s*\d+\s*years?`),
	regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s*\d{4}\s*[-–]\s*(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s*\d{4}`),
	regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s*\d{4}\s*[-–]\s*Present`),
}

// descScanWindow bounds how far past an entry header the description search
// looks.
const descScanWindow = 4

// parseExperience turns the experience section's lines into structured
// entries. An entry header is a non-bullet line carrying a '|' or ','
// delimiter: "Title | Company | Duration" or "Title, Company ...". Lines
// whose title hits the exclusion vocabulary, or whose company names an
// educational institution, are rejected as mis-sectioned education rows.
func parseExperience(lines []string, vocab *Vocabulary) []ExperienceEntry {
	var entries []ExperienceEntry
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || isBulletLine(line) {
			continue
		}
		var parts []string
		switch {
		case strings.Contains(line, "|"):
			parts = strings.Split(line, "|")
		case strings.Contains(line, ","):
			parts = strings.Split(line, ",")
		default:
			continue
		}
		if len(parts) < 2 {
			continue
		}
		title := strings.TrimSpace(parts[0])
		company := strings.TrimSpace(parts[1])
		if len(title) <= 3 || len(company) <= 2 {
			continue
		}
		if containsAnyWord(title, vocab.TitleExclusions) {
			continue
		}
		if containsAnyWord(company, vocab.InstitutionWords) {
			continue
		}

		duration := ""
		if len(parts) >= 3 && strings.Contains(line, "|") {
			duration = strings.TrimSpace(parts[2])
		}
		if duration == "" {
			for _, re := range durationPatterns {
				if m := re.FindString(line); m != "" {
					duration = m
					break
				}
			}
		}

		entries = append(entries, ExperienceEntry{
			Title:       title,
			Company:     company,
			Duration:    duration,
			Description: scanDescription(lines, i, vocab.FillerDescription),
		})
	}
	return entries
}

// scanDescription looks at the lines following an entry header for the first
// bullet or plain line that is not itself another entry header. If nothing
// within the window qualifies, the filler text stands in.
func scanDescription(lines []string, headerIdx int, filler string) string {
	end := headerIdx + 1 + descScanWindow
	if end > len(lines) {
		end = len(lines)
	}
	for j := headerIdx + 1; j < end; j++ {
		next := strings.TrimSpace(lines[j])
		if next == "" {
			continue
		}
		if isBulletLine(next) {
			return stripBullet(next)
		}
		if !strings.Contains(next, "|") {
			return next
		}
	}
	return filler
}

func containsAnyWord(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
