package scrape

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/krykos/leadscout/pkg/jina"
)

// JinaFetcher wraps the Jina Reader as a Fetcher.
type JinaFetcher struct {
	client jina.Client
}

// NewJinaFetcher creates a JinaFetcher from a Jina client.
func NewJinaFetcher(client jina.Client) *JinaFetcher {
	return &JinaFetcher{client: client}
}

// Name implements Fetcher.
func (f *JinaFetcher) Name() string { return "jina" }

// Fetch retrieves a single URL via Jina AI Reader.
func (f *JinaFetcher) Fetch(ctx context.Context, targetURL string) (*Page, error) {
	resp, err := f.client.Read(ctx, targetURL)
	if err != nil {
		return nil, err
	}
	if resp.Data.Content == "" {
		return nil, eris.Errorf("jina: empty content for %s", targetURL)
	}
	return &Page{
		URL:      resp.Data.URL,
		Title:    resp.Data.Title,
		Markdown: resp.Data.Content,
		Source:   "jina",
	}, nil
}
