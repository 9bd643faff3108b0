package apply

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/time/rate"

	"github.com/quantipeak/go_apply/internal/engine"
)

// JobPosting is one normalized posting from a public board API.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Posted      string `json:"posted,omitempty"`
	Salary      string `json:"salary,omitempty"`
	Description string `json:"description,omitempty"`
}

// JobSearchResult is the structured output of job_search.
type JobSearchResult struct {
	Query    string       `json:"query"`
	Postings []JobPosting `json:"postings"`
	Summary  string       `json:"summary"`
}

const (
	maxSearchCompanies = 8
	defaultSearchLimit = 20
	maxSearchLimit     = 50
	maxBodyBytes       = 2 * 1024 * 1024
	descriptionChars   = 600
)

// --- Rate limiting ---

var (
	boardLimiterOnce sync.Once
	boardLimiter     *rate.Limiter
)

// limiter is shared across both board APIs; built once from config.
func limiter() *rate.Limiter {
	boardLimiterOnce.Do(func() {
		rps := engine.Cfg.BoardRequestsPerSec
		if rps <= 0 {
			rps = 4
		}
		burst := engine.Cfg.BoardBurst
		if burst < 1 {
			burst = 2
		}
		boardLimiter = rate.NewLimiter(rate.Limit(rps), burst)
	})
	return boardLimiter
}

// --- Search ---

// SearchJobs queries the Greenhouse and Lever public posting APIs for the
// given company board slugs, filters by keywords, and dedupes postings that
// appear on both boards. Results are cached.
func SearchJobs(ctx context.Context, companies []string, keywords string, limit int) (*JobSearchResult, error) {
	slugs := normalizeSlugs(companies)
	if len(slugs) == 0 {
		return nil, fmt.Errorf("job_search: at least one company board slug is required")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	query := strings.TrimSpace(keywords)
	key := engine.CacheKey("js", strings.Join(slugs, ","), query, strconv.Itoa(limit))
	if cached, ok := engine.CacheLoadJSON[*JobSearchResult](ctx, key); ok && cached != nil {
		return cached, nil
	}

	type fetchResult struct {
		slug     string
		postings []JobPosting
		err      error
	}
	// Two fetches per slug, one against each board.
	ch := make(chan fetchResult, 2*len(slugs))
	for _, slug := range slugs {
		go func(s string) {
			postings, err := fetchGreenhouseJobs(ctx, s)
			ch <- fetchResult{s, postings, err}
		}(slug)
		go func(s string) {
			postings, err := fetchLeverPostings(ctx, s)
			ch <- fetchResult{s, postings, err}
		}(slug)
	}

	kws := strings.Fields(strings.ToLower(query))
	seen := make(map[string]bool)
	var postings []JobPosting
	for i := 0; i < 2*len(slugs); i++ {
		r := <-ch
		if r.err != nil {
			slog.Debug("board fetch error", slog.String("slug", r.slug), slog.Any("error", r.err))
			continue
		}
		for _, p := range r.postings {
			if !matchesKeywords(p.Title+" "+p.Location, kws) {
				continue
			}
			dedupeKey := engine.CanonicalPostingKey(p.Title, p.Company+" "+p.Location)
			if seen[dedupeKey] {
				continue
			}
			seen[dedupeKey] = true
			postings = append(postings, p)
		}
	}
	if len(postings) > limit {
		postings = postings[:limit]
	}
	if postings == nil {
		postings = []JobPosting{}
	}

	result := &JobSearchResult{
		Query:    query,
		Postings: postings,
		Summary: fmt.Sprintf("Found %d postings across %d company boards for %q.",
			len(postings), len(slugs), query),
	}
	engine.CacheStoreJSON(ctx, key, query, result)
	return result, nil
}

func normalizeSlugs(companies []string) []string {
	seen := make(map[string]bool)
	var slugs []string
	for _, c := range companies {
		slug := strings.ToLower(strings.TrimSpace(c))
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		slugs = append(slugs, slug)
		if len(slugs) == maxSearchCompanies {
			break
		}
	}
	return slugs
}

// matchesKeywords returns true if haystack contains any of the keywords (case-insensitive).
func matchesKeywords(haystack string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	lower := strings.ToLower(haystack)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// --- Greenhouse ---

const greenhouseBoardsAPI = "https://boards-api.greenhouse.io/v1/boards/%s/jobs?content=true"

// greenhouseJob is a single job from the Greenhouse public API.
type greenhouseJob struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	UpdatedAt   string `json:"updated_at"`
	AbsoluteURL string `json:"absolute_url"`
	Content     string `json:"content,omitempty"`
}

type greenhouseResponse struct {
	Jobs []greenhouseJob `json:"jobs"`
}

// fetchGreenhouseJobs fetches all jobs for a company board slug. A 404 means
// the company has no Greenhouse board, not an error.
func fetchGreenhouseJobs(ctx context.Context, slug string) ([]JobPosting, error) {
	body, err := fetchBoardJSON(ctx, fmt.Sprintf(greenhouseBoardsAPI, slug))
	if err != nil || body == nil {
		return nil, err
	}
	engine.IncrGreenhouseRequests()

	var gr greenhouseResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("greenhouse parse: %w", err)
	}

	postings := make([]JobPosting, 0, len(gr.Jobs))
	for _, job := range gr.Jobs {
		jobURL := job.AbsoluteURL
		if jobURL == "" {
			jobURL = fmt.Sprintf("https://boards.greenhouse.io/%s/jobs/%d", slug, job.ID)
		}
		posted := ""
		if len(job.UpdatedAt) >= 10 {
			posted = job.UpdatedAt[:10]
		}
		postings = append(postings, JobPosting{
			Title:       job.Title,
			Company:     slug,
			Location:    job.Location.Name,
			URL:         jobURL,
			Source:      "greenhouse",
			Posted:      posted,
			Description: greenhouseDescription(ctx, jobURL, job.Content),
		})
	}
	return postings, nil
}

// greenhouseDescription converts the API's escaped-HTML job content to
// truncated markdown, cached per posting URL.
func greenhouseDescription(ctx context.Context, jobURL, content string) string {
	if content == "" {
		return ""
	}
	cacheKey := engine.CacheKey("jd", jobURL)
	if cached, ok := engine.CacheGetText(ctx, cacheKey); ok {
		return cached
	}

	unescaped := html.UnescapeString(content)
	md, err := htmltomarkdown.ConvertString(unescaped)
	if err != nil {
		md = engine.CleanHTML(unescaped)
	}
	desc := engine.TruncateRunes(strings.TrimSpace(md), descriptionChars, "...")
	engine.CacheSetText(ctx, cacheKey, desc)
	return desc
}

// --- Lever ---

const leverAPIBase = "https://api.lever.co/v0/postings/%s?mode=json"

// leverPosting is a single job from the Lever public API.
type leverPosting struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	HostedURL  string `json:"hostedUrl"`
	Categories struct {
		Location     string   `json:"location"`
		AllLocations []string `json:"allLocations"`
		Commitment   string   `json:"commitment"`
	} `json:"categories"`
	SalaryRange struct {
		Min      int    `json:"min"`
		Max      int    `json:"max"`
		Currency string `json:"currency"`
	} `json:"salaryRange"`
	CreatedAt        int64  `json:"createdAt"`
	DescriptionPlain string `json:"descriptionPlain"`
	WorkplaceType    string `json:"workplaceType"`
}

func fetchLeverPostings(ctx context.Context, slug string) ([]JobPosting, error) {
	body, err := fetchBoardJSON(ctx, fmt.Sprintf(leverAPIBase, slug))
	if err != nil || body == nil {
		return nil, err
	}
	engine.IncrLeverRequests()

	var raw []leverPosting
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("lever parse: %w", err)
	}

	postings := make([]JobPosting, 0, len(raw))
	for _, p := range raw {
		jobURL := p.HostedURL
		if jobURL == "" {
			jobURL = fmt.Sprintf("https://jobs.lever.co/%s/%s", slug, p.ID)
		}
		loc := p.Categories.Location
		if loc == "" && len(p.Categories.AllLocations) > 0 {
			loc = strings.Join(p.Categories.AllLocations, ", ")
		}
		if p.WorkplaceType != "" {
			loc = strings.TrimPrefix(loc+" ("+p.WorkplaceType+")", " ")
		}
		postings = append(postings, JobPosting{
			Title:       p.Text,
			Company:     slug,
			Location:    loc,
			URL:         jobURL,
			Source:      "lever",
			Salary:      leverSalary(p),
			Description: engine.TruncateRunes(strings.TrimSpace(p.DescriptionPlain), descriptionChars, "..."),
		})
	}
	return postings, nil
}

func leverSalary(p leverPosting) string {
	if p.SalaryRange.Min <= 0 {
		return ""
	}
	if p.SalaryRange.Max > p.SalaryRange.Min {
		return fmt.Sprintf("$%d-$%d %s", p.SalaryRange.Min, p.SalaryRange.Max, p.SalaryRange.Currency)
	}
	return fmt.Sprintf("$%d %s", p.SalaryRange.Min, p.SalaryRange.Currency)
}

// --- Shared fetch ---

// fetchBoardJSON performs a rate-limited GET with retries. Returns (nil, nil)
// on 404 so an absent board is a silent miss.
func fetchBoardJSON(ctx context.Context, apiURL string) ([]byte, error) {
	if err := limiter().Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)
	req.Header.Set("Accept", "application/json")

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("board API status %d for %s", resp.StatusCode, apiURL)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}
