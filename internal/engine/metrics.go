package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ResumeUploads      atomic.Int64
	ResumeParses       atomic.Int64
	ExtractErrors      atomic.Int64
	LLMCalls           atomic.Int64
	LLMErrors          atomic.Int64
	CoverLetters       atomic.Int64
	ResumesGenerated   atomic.Int64
	DocumentExports    atomic.Int64
	GreenhouseRequests atomic.Int64
	LeverRequests      atomic.Int64
	TrackerWrites      atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"resume_uploads":      metrics.ResumeUploads.Load(),
		"resume_parses":       metrics.ResumeParses.Load(),
		"extract_errors":      metrics.ExtractErrors.Load(),
		"llm_calls":           metrics.LLMCalls.Load(),
		"llm_errors":          metrics.LLMErrors.Load(),
		"cover_letters":       metrics.CoverLetters.Load(),
		"resumes_generated":   metrics.ResumesGenerated.Load(),
		"document_exports":    metrics.DocumentExports.Load(),
		"greenhouse_requests": metrics.GreenhouseRequests.Load(),
		"lever_requests":      metrics.LeverRequests.Load(),
		"tracker_writes":      metrics.TrackerWrites.Load(),
		"cache_hits":          hits,
		"cache_misses":        misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"resume_uploads", "resume_parses", "extract_errors",
		"llm_calls", "llm_errors",
		"cover_letters", "resumes_generated", "document_exports",
		"greenhouse_requests", "lever_requests", "tracker_writes",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the apply/ and extract/ sub-packages.
func IncrResumeUploads()      { metrics.ResumeUploads.Add(1) }
func IncrResumeParses()       { metrics.ResumeParses.Add(1) }
func IncrExtractErrors()      { metrics.ExtractErrors.Add(1) }
func IncrCoverLetters()       { metrics.CoverLetters.Add(1) }
func IncrResumesGenerated()   { metrics.ResumesGenerated.Add(1) }
func IncrDocumentExports()    { metrics.DocumentExports.Add(1) }
func IncrGreenhouseRequests() { metrics.GreenhouseRequests.Add(1) }
func IncrLeverRequests()      { metrics.LeverRequests.Add(1) }
func IncrTrackerWrites()      { metrics.TrackerWrites.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
