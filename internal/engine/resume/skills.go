package resume

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchSkills scans the whole document for vocabulary terms, case-insensitive
// and on word boundaries, and returns their title-cased forms in vocabulary
// order. Boundary matching keeps short terms like "go" or "ai" from firing
// inside "mongodb" or "email". Duplicate casings collapse to one entry.
func MatchSkills(text string, vocab []string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, term := range vocab {
		if containsTerm(lower, term) {
			out = appendUniqueFold(out, titleCase(term))
		}
	}
	return out
}

// containsTerm reports whether term occurs in text with non-alphanumeric
// characters (or the text edges) on both sides. All occurrences are checked:
// "django and go" rejects the first hit but accepts the second.
func containsTerm(text, term string) bool {
	if term == "" {
		return false
	}
	for from := 0; ; {
		idx := strings.Index(text[from:], term)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(term)
		if !wordCharBefore(text, start) && !wordCharAt(text, end) {
			return true
		}
		from = start + 1
	}
}

func wordCharBefore(s string, i int) bool {
	if i <= 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func wordCharAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// parseSkillsSection flattens the skills section into tokens: lines split on
// commas, with "Category: a, b, c" lines contributing only the right side of
// the colon. Empty tokens are dropped.
func parseSkillsSection(lines []string) []string {
	var out []string
	for _, raw := range lines {
		line := stripBullet(strings.TrimSpace(raw))
		if line == "" {
			continue
		}
		if idx := strings.Index(line, ":"); idx >= 0 {
			line = line[idx+1:]
		}
		for _, tok := range strings.Split(line, ",") {
			if t := strings.TrimSpace(tok); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// appendUniqueFold appends s to list unless an entry already matches it
// case-insensitively, preserving first-seen order.
func appendUniqueFold(list []string, s string) []string {
	for _, existing := range list {
		if strings.EqualFold(existing, s) {
			return list
		}
	}
	return append(list, s)
}

// titleCase uppercases the first letter of every letter run and lowercases
// the rest, so "rest api" becomes "Rest Api" and "node.js" becomes "Node.Js".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
