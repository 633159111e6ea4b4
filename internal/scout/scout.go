// Package scout retrieves a company's web content and asks a language
// model to infer a business profile with an automation pitch.
package scout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/krykos/leadscout/internal/config"
	"github.com/krykos/leadscout/internal/model"
	"github.com/krykos/leadscout/internal/scrape"
	"github.com/krykos/leadscout/internal/store"
	"github.com/krykos/leadscout/pkg/llm"
)

// aboutLinkPattern matches markdown hyperlinks whose text contains a
// leadership-page indicator phrase. Only the first match is used.
var aboutLinkPattern = regexp.MustCompile(`(?i)\[[^\]]*(?:about|team|leadership|who we are|staff)[^\]]*\]\(([^)\s]+)\)`)

const analyzeSystemPrompt = `You are a Senior Sales Strategist. Analyze the provided website content.
Your output must be a valid JSON object.
If you cannot find the company name, use "%s".
Never propose automating the company's own core offering; only operational
and administrative overhead tasks qualify as inefficiencies.

Structure:
{
  "company_name": "Name of the entity",
  "core_services": "Brief description",
  "target_audience": "Who they serve",
  "identified_inefficiencies": ["task 1", "task 2"],
  "automation_hypothesis": "pitch"
}`

// Scout fetches site content and produces business profiles.
type Scout struct {
	fetcher scrape.Fetcher
	llm     llm.Client
	cache   *store.PageCache // optional, nil disables caching
	cfg     config.ScoutConfig
}

// New creates a Scout. cache may be nil.
func New(fetcher scrape.Fetcher, llmClient llm.Client, cache *store.PageCache, cfg config.ScoutConfig) *Scout {
	return &Scout{fetcher: fetcher, llm: llmClient, cache: cache, cfg: cfg}
}

// fetchPage retrieves a page's markdown, consulting the cache first.
// Cache failures degrade silently to a live fetch.
func (s *Scout) fetchPage(ctx context.Context, pageURL string) (string, error) {
	if s.cache != nil {
		if md, ok := s.cache.Get(ctx, pageURL); ok {
			zap.L().Debug("scout: cache hit", zap.String("url", pageURL))
			return md, nil
		}
	}

	page, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, pageURL, page.Markdown); err != nil {
			zap.L().Debug("scout: cache write failed", zap.Error(err))
		}
	}
	return page.Markdown, nil
}

// Scrape fetches the page at url and, when the content links to an
// about/leadership page, opportunistically fetches that too. A primary
// fetch failure yields zero-value content, not an error: the caller treats
// "no content" as a recoverable outcome. Secondary fetch failures leave
// AboutText empty.
func (s *Scout) Scrape(ctx context.Context, pageURL string) model.ScrapedContent {
	log := zap.L().With(zap.String("component", "scout"), zap.String("url", pageURL))
	log.Info("gathering site intelligence")

	mainText, err := s.fetchPage(ctx, pageURL)
	if err != nil {
		log.Warn("primary scrape failed", zap.Error(err))
		return model.ScrapedContent{}
	}

	content := model.ScrapedContent{MainText: mainText}

	aboutURL := resolveAboutLink(mainText, pageURL)
	if aboutURL == "" {
		return content
	}

	log.Info("found leadership page", zap.String("about_url", aboutURL))
	aboutText, err := s.fetchPage(ctx, aboutURL)
	if err != nil {
		log.Warn("secondary scrape failed", zap.Error(err))
		return content
	}
	content.AboutText = aboutText
	return content
}

// resolveAboutLink scans markdown for the first about/leadership link and
// resolves its target against the original URL. Root-relative paths are
// resolved against the scheme+host; absolute URLs are used as-is; any other
// form is skipped.
func resolveAboutLink(markdown, originalURL string) string {
	match := aboutLinkPattern.FindStringSubmatch(markdown)
	if match == nil {
		return ""
	}
	target := match[1]

	switch {
	case strings.HasPrefix(target, "/"):
		parsed, err := url.Parse(originalURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return ""
		}
		return parsed.Scheme + "://" + parsed.Host + target
	case strings.HasPrefix(target, "http"):
		return target
	default:
		return ""
	}
}

// Analyze submits truncated site content to the language model and returns
// a business profile. The profile always carries a non-empty company_name:
// unparsable model output or a missing name falls back to fallbackName.
func (s *Scout) Analyze(ctx context.Context, content, fallbackName string) model.BusinessProfile {
	log := zap.L().With(zap.String("component", "scout"), zap.String("fallback", fallbackName))
	log.Info("analyzing business model")

	maxChars := s.cfg.MaxContentChars
	if maxChars <= 0 {
		maxChars = 5000
	}
	if content == "" {
		content = "No content"
	} else {
		content = Truncate(content, maxChars)
	}

	raw, err := s.llm.Complete(ctx, llm.CompletionRequest{
		System:    fmt.Sprintf(analyzeSystemPrompt, fallbackName),
		Prompt:    "Website Content:\n" + content,
		ForceJSON: true,
	})
	if err != nil {
		log.Warn("analysis call failed", zap.Error(err))
		return model.BusinessProfile{
			model.KeyCompanyName: fallbackName,
			model.KeyError:       err.Error(),
		}
	}

	var profile model.BusinessProfile
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &profile); err != nil {
		log.Warn("analysis returned unparsable output", zap.Error(err))
		return model.BusinessProfile{
			model.KeyCompanyName: fallbackName,
			model.KeyError:       "unparsable model output: " + err.Error(),
		}
	}

	if profile.CompanyName() == "" {
		profile.SetCompanyName(fallbackName)
	}
	return profile
}

// Truncate caps s at max bytes without splitting a multi-byte rune, so
// truncated text stays valid UTF-8.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// CleanJSON extracts a JSON object from text that may contain markdown
// code fences or other wrapping.
func CleanJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}
