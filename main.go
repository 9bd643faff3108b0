// go_apply — job application assistant MCP server.
//
// Parses uploaded resumes into structured candidate profiles, persists
// candidates by email, generates tailored cover letters and resumes via LLM,
// exports documents to TXT/DOCX, searches Greenhouse and Lever job boards,
// and tracks applications in a local SQLite database.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quantipeak/go_apply/internal/applyserver"
	"github.com/quantipeak/go_apply/internal/engine"
	"github.com/quantipeak/go_apply/internal/engine/apply"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_apply",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_apply",
		Version: version,
	}, nil)

	applyserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 12))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_apply",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		LLMAPIKey:            env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks:   env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:           env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:             env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:       env.Float("LLM_TEMPERATURE", 0.1),
		LLMMaxTokens:         env.Int("LLM_MAX_TOKENS", 16384),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		MaxUploadBytes:       int64(env.Int("MAX_UPLOAD_BYTES", 10*1024*1024)),
		MaxContentChars:      env.Int("MAX_CONTENT_CHARS", 6000),
		SynthesizeExperience: env.Str("SYNTHESIZE_EXPERIENCE", "false") == "true",
		BoardRequestsPerSec:  env.Float("BOARD_REQUESTS_PER_SEC", 4),
		BoardBurst:           env.Int("BOARD_BURST", 2),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
		llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)

	engine.Init(c)

	// Candidate store (PostgreSQL)
	if c.DatabaseURL != "" {
		db, err := apply.ConnectCandidateDB(context.Background(), c.DatabaseURL)
		if err != nil {
			slog.Warn("candidate DB init failed", slog.Any("error", err))
		} else {
			apply.SetCandidateDB(db)
			slog.Info("candidate DB initialized")
		}
	}

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
