package resume

import (
	"fmt"
	"regexp"
	"strings"
)

// Contact extraction works as ordered matcher chains: each field has a list
// of (pattern, normalize) strategies tried in priority order, and the first
// strategy that yields a non-empty value wins. A miss is an empty string.

type contactMatcher struct {
	re   *regexp.Regexp
	norm func(groups []string) string
}

func firstMatch(text string, chain []contactMatcher) string {
	for _, m := range chain {
		groups := m.re.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		if v := m.norm(groups); v != "" {
			return v
		}
	}
	return ""
}

var emailChain = []contactMatcher{
	{
		re:   regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		norm: func(g []string) string { return g[0] },
	},
}

var phoneChain = []contactMatcher{
	{
		re:   regexp.MustCompile(`(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`),
		norm: func(g []string) string { return formatNANP(g[2], g[3], g[4]) },
	},
}

var linkedinChain = []contactMatcher{
	{
		re:   regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`),
		norm: func(g []string) string { return "https://" + g[0] },
	},
	{
		re:   regexp.MustCompile(`(?i)linkedin\.com/pub/[\w-]+`),
		norm: func(g []string) string { return "https://" + g[0] },
	},
}

var websiteRe = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?[a-zA-Z0-9-]+\.[a-zA-Z]{2,}(?:/\S*)?`)

// ExtractEmail returns the first email-shaped substring in text, or "".
// Later occurrences are never considered, even if the first is a throwaway
// address: first match wins by contract.
func ExtractEmail(text string) string {
	return firstMatch(text, emailChain)
}

// ExtractPhone returns the first North-American-style phone number in text,
// canonicalized to "(XXX) XXX-XXXX". A leading 1 or +1 country code is
// accepted and dropped. Returns "" when nothing phone-shaped is found.
func ExtractPhone(text string) string {
	return firstMatch(text, phoneChain)
}

// ExtractLinkedIn returns the first linkedin.com/in/ (or /pub/) handle in
// text as a full https:// URL, or "".
func ExtractLinkedIn(text string) string {
	return firstMatch(text, linkedinChain)
}

// ExtractWebsite returns the first domain-shaped substring that does not
// contain any of the excluded provider names. Email addresses are blanked
// out up front because both their local part and their domain also match
// the website pattern.
func ExtractWebsite(text string, exclusions []string) string {
	text = emailChain[0].re.ReplaceAllString(text, " ")
	for _, m := range websiteRe.FindAllString(text, -1) {
		lower := strings.ToLower(m)
		excluded := false
		for _, ex := range exclusions {
			if strings.Contains(lower, ex) {
				excluded = true
				break
			}
		}
		if !excluded {
			return m
		}
	}
	return ""
}

func formatNANP(area, exchange, line string) string {
	if len(area) != 3 || len(exchange) != 3 || len(line) != 4 {
		return ""
	}
	return fmt.Sprintf("(%s) %s-%s", area, exchange, line)
}
