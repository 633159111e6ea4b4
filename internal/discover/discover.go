// Package discover turns a niche/location query into a filtered,
// deduplicated list of candidate company leads via web search.
package discover

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/krykos/leadscout/internal/config"
	"github.com/krykos/leadscout/internal/model"
	"github.com/krykos/leadscout/pkg/jina"
)

// Discoverer finds candidate companies for a niche query.
type Discoverer struct {
	search jina.Client
	cfg    config.DiscoverConfig
}

// New creates a Discoverer with the given search client and config.
func New(search jina.Client, cfg config.DiscoverConfig) *Discoverer {
	return &Discoverer{search: search, cfg: cfg}
}

// buildQuery appends the disambiguating suffix and negative-keyword
// exclusions to the niche query.
func (d *Discoverer) buildQuery(niche string) string {
	var b strings.Builder
	b.WriteString(niche)
	if d.cfg.QuerySuffix != "" {
		b.WriteString(" ")
		b.WriteString(d.cfg.QuerySuffix)
	}
	for _, excl := range d.cfg.QueryExclusions {
		b.WriteString(" -")
		b.WriteString(excl)
	}
	return b.String()
}

// isBlacklisted reports whether a candidate URL should be rejected.
// Domain entries match as substrings of the lowercased host; path entries
// match as substrings of the lowercased path. Unparsable URLs are rejected.
func (d *Discoverer) isBlacklisted(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	host := strings.ToLower(parsed.Host)
	path := strings.ToLower(parsed.Path)

	for _, b := range d.cfg.DomainBlacklist {
		if strings.Contains(host, b) {
			return true
		}
	}
	for _, p := range d.cfg.PathBlacklist {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// FindCompanies searches for up to count company leads matching the niche
// query. Results are over-fetched to absorb filtering losses, filtered
// against the domain and path blacklists, and deduplicated by URL. A total
// search failure yields an empty slice, never an error: the caller treats
// "no leads found" as a legitimate outcome.
func (d *Discoverer) FindCompanies(ctx context.Context, niche string, count int) []model.Lead {
	log := zap.L().With(zap.String("component", "discoverer"), zap.String("niche", niche))

	overFetch := d.cfg.OverFetch
	if overFetch <= 0 {
		overFetch = 10
	}

	query := d.buildQuery(niche)
	log.Info("searching for targets", zap.String("query", query))

	resp, err := d.search.Search(ctx, query, jina.WithMaxResults(count+overFetch))
	if err != nil {
		log.Warn("search failed", zap.Error(err))
		return nil
	}
	if len(resp.Data) == 0 {
		log.Warn("no results returned from search engine")
		return nil
	}

	var leads []model.Lead
	seen := make(map[string]bool)

	for _, r := range resp.Data {
		if r.URL == "" {
			continue
		}
		if d.isBlacklisted(r.URL) {
			continue
		}
		if seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		leads = append(leads, model.Lead{Name: r.Title, URL: r.URL})
		if len(leads) >= count {
			break
		}
	}

	log.Info("discovery complete", zap.Int("targets", len(leads)))
	return leads
}
