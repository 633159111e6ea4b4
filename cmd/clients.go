package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/krykos/leadscout/internal/config"
	"github.com/krykos/leadscout/internal/scrape"
	"github.com/krykos/leadscout/internal/store"
	"github.com/krykos/leadscout/pkg/firecrawl"
	"github.com/krykos/leadscout/pkg/jina"
	"github.com/krykos/leadscout/pkg/llm"
)

// newSearchClient builds the Jina search/reader client from config.
func newSearchClient(cfg *config.Config) jina.Client {
	return jina.NewClient(cfg.Jina.Key,
		jina.WithBaseURL(cfg.Jina.BaseURL),
		jina.WithSearchBaseURL(cfg.Jina.SearchBaseURL),
	)
}

// newFetcher builds the scrape chain: Firecrawl first, Jina Reader as
// fallback.
func newFetcher(cfg *config.Config, jinaClient jina.Client) scrape.Fetcher {
	fcClient := firecrawl.NewClient(cfg.Firecrawl.Key, firecrawl.WithBaseURL(cfg.Firecrawl.BaseURL))
	return scrape.NewChain(
		scrape.NewFirecrawlFetcher(fcClient),
		scrape.NewJinaFetcher(jinaClient),
	)
}

// newLLMClient builds the language-model client for the configured provider.
func newLLMClient(cfg *config.Config) llm.Client {
	if cfg.LLM.Provider == "anthropic" {
		return llm.NewAnthropic(cfg.LLM.Key, cfg.LLM.Model)
	}
	return llm.NewOpenAI(cfg.LLM.Key,
		llm.WithBaseURL(cfg.LLM.BaseURL),
		llm.WithModel(cfg.LLM.Model),
	)
}

// newPageCache opens the scraped-page cache when enabled. Failures are
// logged and disable caching rather than aborting the run.
func newPageCache(cfg *config.Config) *store.PageCache {
	if !cfg.Cache.Enabled {
		return nil
	}
	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
	cache, err := store.OpenPageCache(cfg.Cache.Path, ttl)
	if err != nil {
		zap.L().Warn("page cache unavailable, continuing without it", zap.Error(err))
		return nil
	}
	return cache
}
