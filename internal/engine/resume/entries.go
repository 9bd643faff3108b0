package resume

import "strings"

// parseList is the simple list parser shared by education, certifications,
// awards, volunteer, languages, interests, publications and references: every
// non-blank line of the section is one entry verbatim, bullet stripped and
// trimmed, kept only when it clears the section's minimum length.
func parseList(lines []string, minLen int) []string {
	var out []string
	for _, raw := range lines {
		entry := stripBullet(strings.TrimSpace(raw))
		if len(entry) >= minLen {
			out = append(out, entry)
		}
	}
	return out
}

// parseProjects treats non-bullet lines as project names and folds following
// bullets into the entry as " - description" suffixes.
func parseProjects(lines []string, minLen int) []string {
	var out []string
	current := ""
	flush := func() {
		if len(current) >= minLen {
			out = append(out, current)
		}
		current = ""
	}
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if isBulletLine(line) {
			if current != "" {
				current += " - " + stripBullet(line)
			}
			continue
		}
		flush()
		current = line
	}
	flush()
	return out
}
