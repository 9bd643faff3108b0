package apply

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/quantipeak/go_apply/internal/engine"
	"github.com/quantipeak/go_apply/internal/engine/resume"
)

// JobTarget identifies the posting a document is tailored to.
type JobTarget struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// CoverLetterResult is the structured output of cover_letter_generate.
type CoverLetterResult struct {
	CoverLetter string `json:"cover_letter"`
	WordCount   int    `json:"word_count"`
	Tone        string `json:"tone"`
	Summary     string `json:"summary"`
}

// ResumeGenerateResult is the structured output of resume_generate. Resume is
// plain text in the export markup: ALL-CAPS section headers, "•" bullets, and
// "Title | Company | Duration" experience lines.
type ResumeGenerateResult struct {
	Resume     string   `json:"resume"`
	Highlights []string `json:"highlights"`
	Summary    string   `json:"summary"`
}

const coverLetterPrompt = `You are an expert career coach. Write a tailored cover letter for the candidate below.

TARGET ROLE: %s at %s
TONE: %s

JOB DESCRIPTION:
%s

CANDIDATE PROFILE (JSON):
%s

GUIDELINES:
- Three to four short paragraphs, under 350 words
- Open with the specific role and company
- Connect the candidate's strongest skills and experience to the job requirements
- Plain text only, no markdown, no placeholders like [Company] or [Your Name]
- Never invent employers, dates, or credentials not present in the profile
- Close with a brief call to action

Return a JSON object with this exact structure:
{
  "cover_letter": "<the complete cover letter text>"
}

Return ONLY the JSON object, no markdown, no explanation.`

const resumeTailorPrompt = `You are an expert ATS resume writer. Rewrite the candidate's resume tailored to the target job.

TARGET ROLE: %s at %s

JOB DESCRIPTION:
%s

CANDIDATE PROFILE (JSON):
%s

FORMAT RULES:
- Plain text only, no markdown, no asterisks
- ALL-CAPS standalone lines as section headers (SUMMARY, SKILLS, EXPERIENCE, EDUCATION)
- Lines starting with "•" for bullet points
- "Title | Company | Duration" lines for experience entries
- Omit any section the candidate has no data for
- Never invent employers, dates, or credentials not present in the profile
- Naturally incorporate keywords from the job description where the profile supports them

Return a JSON object with this exact structure:
{
  "resume": "<the complete tailored resume text>",
  "highlights": [<the candidate skills the rewrite emphasizes>]
}

Return ONLY the JSON object, no markdown, no explanation.`

// --- Tones ---

const defaultTone = "professional"

var toneTemperatures = map[string]float64{
	"professional": 0.6,
	"friendly":     0.8,
	"concise":      0.4,
}

func normalizeTone(tone string) string {
	tone = strings.ToLower(strings.TrimSpace(tone))
	if _, ok := toneTemperatures[tone]; !ok {
		return defaultTone
	}
	return tone
}

// --- Generation ---

const defaultContentChars = 6000

func contentLimit() int {
	if n := engine.Cfg.MaxContentChars; n > 0 {
		return n
	}
	return defaultContentChars
}

func profileJSON(p *resume.Profile) (string, error) {
	if p == nil {
		return "", errors.New("generate: nil profile")
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("generate: marshal profile: %w", err)
	}
	return string(b), nil
}

// GenerateCoverLetter writes a cover letter for the profile against the job.
// Tone is one of professional, friendly, concise; anything else falls back to
// professional. Results are cached per profile+job+tone.
func GenerateCoverLetter(ctx context.Context, p *resume.Profile, job JobTarget, tone string) (*CoverLetterResult, error) {
	if strings.TrimSpace(job.Description) == "" {
		return nil, errors.New("cover_letter_generate: job description is required")
	}
	tone = normalizeTone(tone)

	pj, err := profileJSON(p)
	if err != nil {
		return nil, err
	}

	jd := engine.TruncateRunes(job.Description, contentLimit(), "")
	key := engine.CacheKey("cl", p.Contact.Email, job.Title, job.Company, tone, jd)
	if cached, ok := engine.CacheLoadJSON[*CoverLetterResult](ctx, key); ok && cached != nil {
		return cached, nil
	}

	prompt := fmt.Sprintf(coverLetterPrompt, job.Title, job.Company, tone, jd, pj)
	raw, err := engine.CallLLMCreative(ctx, prompt, toneTemperatures[tone], 1200)
	if err != nil {
		return nil, fmt.Errorf("cover_letter_generate: %w", err)
	}

	var decoded struct {
		CoverLetter string `json:"cover_letter"`
	}
	letter := ""
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		letter = decoded.CoverLetter
	} else {
		// Salvage the field from malformed JSON, else use raw text.
		letter = engine.ExtractJSONField(raw, "cover_letter")
		if letter == "" {
			letter = raw
		}
	}
	letter = strings.TrimSpace(letter)
	if letter == "" {
		return nil, errors.New("cover_letter_generate: empty result")
	}

	engine.IncrCoverLetters()
	result := &CoverLetterResult{
		CoverLetter: letter,
		WordCount:   len(strings.Fields(letter)),
		Tone:        tone,
		Summary: fmt.Sprintf("Generated %s cover letter for %s at %s (%d words).",
			tone, job.Title, job.Company, len(strings.Fields(letter))),
	}
	engine.CacheStoreJSON(ctx, key, job.Title+" at "+job.Company, result)
	return result, nil
}

// GenerateResume rewrites the profile as a tailored plain-text resume in the
// export markup, ready for document_export.
func GenerateResume(ctx context.Context, p *resume.Profile, job JobTarget) (*ResumeGenerateResult, error) {
	if strings.TrimSpace(job.Description) == "" {
		return nil, errors.New("resume_generate: job description is required")
	}

	pj, err := profileJSON(p)
	if err != nil {
		return nil, err
	}

	jd := engine.TruncateRunes(job.Description, contentLimit(), "")
	key := engine.CacheKey("rg", p.Contact.Email, job.Title, job.Company, jd)
	if cached, ok := engine.CacheLoadJSON[*ResumeGenerateResult](ctx, key); ok && cached != nil {
		return cached, nil
	}

	prompt := fmt.Sprintf(resumeTailorPrompt, job.Title, job.Company, jd, pj)
	raw, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("resume_generate: %w", err)
	}

	var decoded struct {
		Resume     string   `json:"resume"`
		Highlights []string `json:"highlights"`
	}
	result := &ResumeGenerateResult{}
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil && decoded.Resume != "" {
		result.Resume = strings.TrimSpace(decoded.Resume)
		result.Highlights = decoded.Highlights
	} else {
		// Raw output is still usable as the document body.
		result.Resume = strings.TrimSpace(engine.ExtractJSONField(raw, "resume"))
		if result.Resume == "" {
			result.Resume = strings.TrimSpace(raw)
		}
	}
	if result.Resume == "" {
		return nil, errors.New("resume_generate: empty result")
	}
	if result.Highlights == nil {
		result.Highlights = []string{}
	}

	engine.IncrResumesGenerated()
	result.Summary = fmt.Sprintf("Generated tailored resume for %s at %s (%d lines, %d highlighted skills).",
		job.Title, job.Company, strings.Count(result.Resume, "\n")+1, len(result.Highlights))
	engine.CacheStoreJSON(ctx, key, job.Title+" at "+job.Company, result)
	return result, nil
}
