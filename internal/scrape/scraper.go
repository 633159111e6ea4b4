// Package scrape fetches single pages as markdown through a prioritized
// chain of external scraping services.
package scrape

import "context"

// Page holds a fetched page with its source.
type Page struct {
	URL      string
	Title    string
	Markdown string
	Source   string // e.g. "firecrawl", "jina"
}

// Fetcher fetches a single URL and returns its markdown content.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
	Name() string
}
