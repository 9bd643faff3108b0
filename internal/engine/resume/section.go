package resume

import (
	"strings"
	"unicode"
)

// Section location is line-based. A header line must start at column zero
// (indented or bulleted occurrences of a header word inside descriptions are
// body text, not boundaries), may carry a trailing colon, and is matched
// case-insensitively against the synonym lists. A section body runs from the
// line after its header to the next header of any kind, or end of document.

type lineKind int

const (
	lineText lineKind = iota
	lineKnownHeader
	lineCapsHeader
)

type classifiedLine struct {
	raw     string
	kind    lineKind
	section string // canonical name, for known headers
	synonym string // the synonym that matched
	capsKey string // lowercased header text, for caps headers
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func isBulletLine(s string) bool {
	return strings.HasPrefix(s, "•") || strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "* ")
}

func stripBullet(s string) string {
	for _, prefix := range []string{"•", "- ", "* "} {
		if strings.HasPrefix(s, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(s, prefix))
		}
	}
	return s
}

// headerText normalizes a candidate header line for comparison: trailing
// colon removed, inner whitespace collapsed, lowercased.
func headerText(trimmed string) string {
	s := strings.TrimSuffix(trimmed, ":")
	s = strings.Join(strings.Fields(s), " ")
	return strings.ToLower(s)
}

// isCapsHeader reports whether a line is an unrecognized standalone ALL-CAPS
// header: 3..60 chars of letters, spaces, '&', '-' or '/', with at least one
// letter and no lowercase.
func isCapsHeader(trimmed string) bool {
	s := strings.TrimSuffix(trimmed, ":")
	if len(s) < 3 || len(s) > 60 {
		return false
	}
	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasLetter = true
		case r == ' ' || r == '&' || r == '-' || r == '/':
		default:
			return false
		}
	}
	return hasLetter
}

// classify assigns a kind to every line of the document in one pass.
func (v *Vocabulary) classify(lines []string) []classifiedLine {
	out := make([]classifiedLine, len(lines))
	for i, raw := range lines {
		out[i] = classifiedLine{raw: raw}
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || isBulletLine(trimmed) {
			continue
		}
		if raw[0] == ' ' || raw[0] == '\t' {
			continue // indented lines are never headers
		}
		ht := headerText(trimmed)
		if section, synonym, ok := v.matchSynonym(ht); ok {
			out[i] = classifiedLine{raw: raw, kind: lineKnownHeader, section: section, synonym: synonym}
			continue
		}
		if isCapsHeader(trimmed) {
			out[i] = classifiedLine{raw: raw, kind: lineCapsHeader, capsKey: ht}
		}
	}
	return out
}

func (v *Vocabulary) matchSynonym(ht string) (section, synonym string, ok bool) {
	for _, sec := range v.SectionOrder {
		for _, syn := range v.SectionSynonyms[sec] {
			if ht == syn {
				return sec, syn, true
			}
		}
	}
	return "", "", false
}

// locate finds the body of a canonical section. Synonyms are tried in their
// declared order and the first synonym present anywhere in the document wins;
// document order only breaks ties within one synonym. Returns nil when the
// section has no header in the document.
func (v *Vocabulary) locate(cls []classifiedLine, section string) []string {
	for _, syn := range v.SectionSynonyms[section] {
		for i, cl := range cls {
			if cl.kind == lineKnownHeader && cl.section == section && cl.synonym == syn {
				return sectionBody(cls, i)
			}
		}
	}
	return nil
}

// sectionBody collects raw lines after header index i until the next header.
func sectionBody(cls []classifiedLine, i int) []string {
	var body []string
	for j := i + 1; j < len(cls); j++ {
		if cls[j].kind != lineText {
			break
		}
		body = append(body, cls[j].raw)
	}
	return body
}

// additionalSections captures unknown ALL-CAPS headers and their bodies,
// keyed by the lowercased header text.
func additionalSections(cls []classifiedLine) map[string][]string {
	var out map[string][]string
	for i, cl := range cls {
		if cl.kind != lineCapsHeader {
			continue
		}
		var body []string
		for _, raw := range sectionBody(cls, i) {
			if t := strings.TrimSpace(raw); t != "" {
				body = append(body, t)
			}
		}
		if len(body) == 0 {
			continue
		}
		if out == nil {
			out = make(map[string][]string)
		}
		out[cl.capsKey] = body
	}
	return out
}
