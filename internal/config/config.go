// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Jina      JinaConfig      `yaml:"jina" mapstructure:"jina"`
	Firecrawl FirecrawlConfig `yaml:"firecrawl" mapstructure:"firecrawl"`
	LLM       LLMConfig       `yaml:"llm" mapstructure:"llm"`
	Discover  DiscoverConfig  `yaml:"discover" mapstructure:"discover"`
	Scout     ScoutConfig     `yaml:"scout" mapstructure:"scout"`
	Identity  IdentityConfig  `yaml:"identity" mapstructure:"identity"`
	Pipeline  PipelineConfig  `yaml:"pipeline" mapstructure:"pipeline"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// JinaConfig holds Jina AI search/reader settings.
type JinaConfig struct {
	Key           string `yaml:"key" mapstructure:"key"`
	BaseURL       string `yaml:"base_url" mapstructure:"base_url"`
	SearchBaseURL string `yaml:"search_base_url" mapstructure:"search_base_url"`
}

// FirecrawlConfig holds Firecrawl API settings.
type FirecrawlConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// LLMConfig holds language-model settings. Provider is "openai" for any
// OpenAI-compatible endpoint (Ollama by default) or "anthropic".
type LLMConfig struct {
	Provider string `yaml:"provider" mapstructure:"provider"`
	Key      string `yaml:"key" mapstructure:"key"`
	BaseURL  string `yaml:"base_url" mapstructure:"base_url"`
	Model    string `yaml:"model" mapstructure:"model"`
}

// DiscoverConfig configures lead discovery and filtering.
type DiscoverConfig struct {
	QuerySuffix     string   `yaml:"query_suffix" mapstructure:"query_suffix"`
	QueryExclusions []string `yaml:"query_exclusions" mapstructure:"query_exclusions"`
	OverFetch       int      `yaml:"over_fetch" mapstructure:"over_fetch"`
	DomainBlacklist []string `yaml:"domain_blacklist" mapstructure:"domain_blacklist"`
	PathBlacklist   []string `yaml:"path_blacklist" mapstructure:"path_blacklist"`
}

// ScoutConfig configures site scraping and business analysis.
type ScoutConfig struct {
	MaxContentChars int `yaml:"max_content_chars" mapstructure:"max_content_chars"`
}

// IdentityConfig configures decision-maker resolution.
type IdentityConfig struct {
	MaxContextChars  int `yaml:"max_context_chars" mapstructure:"max_context_chars"`
	MaxSearchResults int `yaml:"max_search_results" mapstructure:"max_search_results"`
}

// PipelineConfig configures the run loop.
type PipelineConfig struct {
	DefaultCount   int     `yaml:"default_count" mapstructure:"default_count"`
	LeadsPerSecond float64 `yaml:"leads_per_second" mapstructure:"leads_per_second"`
}

// OutputConfig configures result persistence.
type OutputConfig struct {
	CampaignsPath string `yaml:"campaigns_path" mapstructure:"campaigns_path"`
	ProfilePath   string `yaml:"profile_path" mapstructure:"profile_path"`
}

// CacheConfig configures the scraped-page cache.
type CacheConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Path     string `yaml:"path" mapstructure:"path"`
	TTLHours int    `yaml:"ttl_hours" mapstructure:"ttl_hours"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// defaultDomainBlacklist rejects hosts of social networks, directories,
// review aggregators, and content platforms. Matching is substring-based
// on the lowercased host, intentionally broad.
var defaultDomainBlacklist = []string{
	"clutch.co", "yelp.com", "linkedin.com", "facebook.com",
	"instagram.com", "twitter.com", "glassdoor.com", "upwork.com",
	"expert.com", "wikipedia.org", "crunchbase.com",
	"yellowpages.com", "bbb.org", "angis.com", "houzz.com", "thumbtack.com",
	"expertise.com", "upcity.com", "designrush.com",
	"goodfirms.co", "sortlist.com", "topagencies", "bestagencies",
	"agencies.com", "directory", "listing", "review",
	"builtinaustin.com", "nogood.io", "writingstudio.com",
	"medium.com", "hubspot.com", "wordpress.com",
	"zhihu.com", "quora.com", "reddit.com", "stackoverflow.com",
	"youtube.com", "vimeo.com", "slideshare.net", "issuu.com",
}

// defaultPathBlacklist rejects URL paths pointing at editorial or listicle
// content rather than company sites.
var defaultPathBlacklist = []string{
	"/blog/", "/articles/", "/news/", "/post/",
	"/list/", "/top-", "/best-", "/directory/", "/review/",
	"/question/", "/answer/", "/topic/",
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("jina.base_url", "https://r.jina.ai")
	v.SetDefault("jina.search_base_url", "https://s.jina.ai")
	v.SetDefault("firecrawl.base_url", "https://api.firecrawl.dev/v1")
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.base_url", "http://localhost:11434/v1")
	v.SetDefault("llm.model", "llama3")
	v.SetDefault("llm.key", "ollama")
	v.SetDefault("discover.query_suffix", "official website")
	v.SetDefault("discover.query_exclusions", []string{"zhihu.com", "quora.com", "reddit.com", "youtube.com"})
	v.SetDefault("discover.over_fetch", 10)
	v.SetDefault("discover.domain_blacklist", defaultDomainBlacklist)
	v.SetDefault("discover.path_blacklist", defaultPathBlacklist)
	v.SetDefault("scout.max_content_chars", 5000)
	v.SetDefault("identity.max_context_chars", 5000)
	v.SetDefault("identity.max_search_results", 5)
	v.SetDefault("pipeline.default_count", 3)
	v.SetDefault("pipeline.leads_per_second", 0.5)
	v.SetDefault("output.campaigns_path", "campaigns.json")
	v.SetDefault("output.profile_path", "prospect_profile.json")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.path", "leadscout-cache.db")
	v.SetDefault("cache.ttl_hours", 24)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
