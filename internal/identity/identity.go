// Package identity resolves a company's decision-maker (founder, CEO, or
// owner) and their social profile URLs through a two-stage search and
// language-model process.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/krykos/leadscout/internal/config"
	"github.com/krykos/leadscout/internal/model"
	"github.com/krykos/leadscout/internal/scout"
	"github.com/krykos/leadscout/pkg/jina"
	"github.com/krykos/leadscout/pkg/llm"
)

const extractPrompt = `Analyze this website text from %s. Find the Full Name and Title of the Founder, CEO, or Owner.
Text: %s
Return JSON: {"name": "Name or null", "title": "Title or null"}`

const resolvePrompt = `Identify the Founder/CEO LinkedIn and X.com URLs.
Company: %s
Context: %s
Return JSON: {"full_name": "Name", "linkedin_url": "URL", "x_url": "URL"}`

// Hunter finds decision-makers for companies.
type Hunter struct {
	search jina.Client
	llm    llm.Client
	cfg    config.IdentityConfig
}

// New creates a Hunter with the given collaborators and config.
func New(search jina.Client, llmClient llm.Client, cfg config.IdentityConfig) *Hunter {
	return &Hunter{search: search, llm: llmClient, cfg: cfg}
}

// FindDecisionMaker resolves the decision-maker for a company. Stage one
// extracts a name from the site text; stage two searches the web with a
// targeted query when a name was found, or a broader leadership query when
// not; stage three asks the model to resolve profile URLs from the search
// snippets. Failures in the final stages yield {error: ...}, never an error
// return: the caller treats that as "decision-maker unknown."
func (h *Hunter) FindDecisionMaker(ctx context.Context, companyName, siteText string) model.DecisionMakerRecord {
	log := zap.L().With(zap.String("component", "identity"), zap.String("company", companyName))
	log.Info("looking for names on company site")

	name := h.extractNameFromSite(ctx, companyName, siteText)

	var query string
	if name != "" {
		log.Info("verifying socials for named person", zap.String("name", name))
		query = fmt.Sprintf("%q %s LinkedIn X", name, companyName)
	} else {
		log.Info("no name on site, searching for leadership")
		query = fmt.Sprintf("%s Founder CEO owner LinkedIn -NHL -Sports -Hockey", companyName)
	}

	record, err := h.resolveProfiles(ctx, companyName, query)
	if err != nil {
		log.Warn("decision-maker resolution failed", zap.Error(err))
		return model.DecisionMakerRecord{model.KeyError: err.Error()}
	}
	return record
}

// extractNameFromSite asks the model for a person's name in the site text.
// Every failure is treated as "no name found."
func (h *Hunter) extractNameFromSite(ctx context.Context, companyName, siteText string) string {
	maxChars := h.cfg.MaxContextChars
	if maxChars <= 0 {
		maxChars = 5000
	}
	siteText = scout.Truncate(siteText, maxChars)

	raw, err := h.llm.Complete(ctx, llm.CompletionRequest{
		Prompt:    fmt.Sprintf(extractPrompt, companyName, siteText),
		ForceJSON: true,
	})
	if err != nil {
		return ""
	}

	var extracted struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(scout.CleanJSON(raw)), &extracted); err != nil {
		return ""
	}

	name := strings.TrimSpace(extracted.Name)
	if strings.EqualFold(name, "null") {
		return ""
	}
	return name
}

// resolveProfiles searches with the constructed query and asks the model to
// resolve the decision-maker's name and profile URLs from the snippets.
func (h *Hunter) resolveProfiles(ctx context.Context, companyName, query string) (model.DecisionMakerRecord, error) {
	maxResults := h.cfg.MaxSearchResults
	if maxResults <= 0 {
		maxResults = 5
	}

	resp, err := h.search.Search(ctx, query, jina.WithMaxResults(maxResults))
	if err != nil {
		return nil, err
	}

	var lines []string
	for i, r := range resp.Data {
		if i >= maxResults {
			break
		}
		lines = append(lines, fmt.Sprintf("%s - %s", r.URL, r.Snippet()))
	}
	searchContext := strings.Join(lines, "\n")

	raw, err := h.llm.Complete(ctx, llm.CompletionRequest{
		Prompt:    fmt.Sprintf(resolvePrompt, companyName, searchContext),
		ForceJSON: true,
	})
	if err != nil {
		return nil, err
	}

	var record model.DecisionMakerRecord
	if err := json.Unmarshal([]byte(scout.CleanJSON(raw)), &record); err != nil {
		return nil, err
	}

	for _, key := range []string{"linkedin_url", "x_url"} {
		if v, ok := record[key].(string); ok {
			record[key] = CleanProfileURL(v)
		}
	}
	return record, nil
}

// CleanProfileURL empties URLs that are blank, contain the literal token
// "null", or point at platform login/home pages rather than profiles.
func CleanProfileURL(url string) string {
	if url == "" ||
		strings.Contains(url, "null") ||
		strings.Contains(url, "home.x.com") ||
		strings.Contains(url, "login") {
		return ""
	}
	return url
}
