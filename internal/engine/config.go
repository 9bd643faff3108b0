package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int
	LLMClient          *llm.Client

	DatabaseURL string // PostgreSQL candidate store; empty disables persistence

	MaxUploadBytes  int64 // resume file size cap
	MaxContentChars int   // resume text cap fed into LLM prompts

	// SynthesizeExperience enables the parser's placeholder experience
	// fallback. Off by default; it fabricates data.
	SynthesizeExperience bool

	BoardRequestsPerSec float64 // shared rate limit for public board APIs
	BoardBurst          int

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	HTTPClient *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (apply, extract).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
