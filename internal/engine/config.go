package engine

import "time"

// Config holds all engine configuration, injected from main.
type Config struct {
	SkillVocabulary      []string // empty = rank.DefaultVocabulary
	NEREnabled           bool
	RankWorkers          int
	RedisURL             string // empty = L2 cache disabled
	CacheTTL             time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
