// go_resume — Resume Extraction & Ranking MCP server.
//
// Exposes four MCP tools: resume_rank, resume_analyze, resume_extract,
// skill_vocabulary. Extracts contact fields and skills from resumes with
// layered heuristics, scores them against a job description with cosine
// similarity over word counts, and generates prioritized improvement tips.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/engine/rank"
	"github.com/anatolykoptev/go_resume/internal/ner"
	"github.com/anatolykoptev/go_resume/internal/rankserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	c := engine.Config{
		SkillVocabulary:      loadVocabularyTerms(),
		NEREnabled:           env.Str("NER_ENABLED", "true") != "false",
		RankWorkers:          env.Int("RANK_WORKERS", 4),
		RedisURL:             env.Str("REDIS_URL", ""),
		CacheTTL:             env.Duration("CACHE_TTL", 15*time.Minute),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
	}
	engine.Init(c)
	engine.InitCache(c.RedisURL, c.CacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)

	vocab := rank.NewVocabulary(c.SkillVocabulary)
	var recognizer rank.EntityRecognizer
	if c.NEREnabled {
		recognizer = ner.New()
	}

	slog.Info("starting go_resume",
		slog.String("port", mcpPort),
		slog.Int("vocabulary", vocab.Len()),
		slog.Bool("ner", c.NEREnabled),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_resume",
		Version: version,
	}, nil)

	rankserver.RegisterTools(server, rankserver.Options{
		Vocab:      vocab,
		Recognizer: recognizer,
		Workers:    c.RankWorkers,
	})
	slog.Info("tools registered", slog.Int("count", 4))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_resume",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

// loadVocabularyTerms resolves the skill vocabulary from the environment:
// SKILL_VOCABULARY (comma-separated) wins, then SKILL_VOCABULARY_FILE
// (one term per line), then the built-in default list.
func loadVocabularyTerms() []string {
	if terms := env.List("SKILL_VOCABULARY", ""); len(terms) > 0 {
		return terms
	}

	if path := env.Str("SKILL_VOCABULARY_FILE", ""); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("vocabulary file unreadable, using default", slog.String("path", path), slog.Any("error", err))
			return rank.DefaultVocabulary
		}
		var terms []string
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				terms = append(terms, line)
			}
		}
		if len(terms) > 0 {
			return terms
		}
		slog.Warn("vocabulary file empty, using default", slog.String("path", path))
	}

	return rank.DefaultVocabulary
}
