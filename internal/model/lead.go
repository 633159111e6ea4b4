// Package model defines the entities flowing through the lead-generation
// pipeline: discovered leads, scraped site content, inferred business
// profiles, decision-maker records, and persisted campaign records.
package model

import "strings"

// Lead is a discovered company candidate before enrichment.
// Leads are unique by URL within a single discovery batch.
type Lead struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ScrapedContent holds the markdown text of a company's primary page
// and, when found, its about/leadership page. Empty strings mean
// "no content available" — never nil.
type ScrapedContent struct {
	MainText  string `json:"main_text"`
	AboutText string `json:"about_text"`
}

// Combined returns the main and about text joined for downstream analysis.
func (c ScrapedContent) Combined() string {
	if c.AboutText == "" {
		return c.MainText
	}
	return c.MainText + "\n\n" + c.AboutText
}

// Empty reports whether no content at all was retrieved.
func (c ScrapedContent) Empty() bool {
	return c.MainText == "" && c.AboutText == ""
}

// Profile field keys with pipeline-level meaning. All other keys are
// model-defined and treated as opaque.
const (
	KeyCompanyName = "company_name"
	KeySourceURL   = "source_url"
	KeyError       = "error"
)

// BusinessProfile is the model-inferred profile of a company. The language
// model defines most fields; company_name is guaranteed non-empty once the
// profile leaves the analysis step.
type BusinessProfile map[string]any

// CompanyName returns the profile's company name, or "" if absent.
func (p BusinessProfile) CompanyName() string {
	name, _ := p[KeyCompanyName].(string)
	return strings.TrimSpace(name)
}

// SetCompanyName sets the profile's company name.
func (p BusinessProfile) SetCompanyName(name string) {
	p[KeyCompanyName] = name
}

// SetSourceURL stamps the URL the profile was derived from.
func (p BusinessProfile) SetSourceURL(url string) {
	p[KeySourceURL] = url
}

// Clone returns a shallow copy of the profile. List values are copied one
// level deep so masking never mutates the original.
func (p BusinessProfile) Clone() BusinessProfile {
	out := make(BusinessProfile, len(p))
	for k, v := range p {
		if list, ok := v.([]any); ok {
			copied := make([]any, len(list))
			copy(copied, list)
			out[k] = copied
			continue
		}
		if list, ok := v.([]string); ok {
			copied := make([]string, len(list))
			copy(copied, list)
			out[k] = copied
			continue
		}
		out[k] = v
	}
	return out
}

// DecisionMakerRecord holds the resolved decision-maker identity for a
// company: typically a full name and social profile URLs, or an error
// field when resolution failed. All fields are optional.
type DecisionMakerRecord map[string]any

// CampaignRecord pairs a business profile with its decision-maker lookup.
// Records accumulate in memory during a run and are persisted as one JSON
// array at the end.
type CampaignRecord struct {
	Business      BusinessProfile     `json:"business"`
	DecisionMaker DecisionMakerRecord `json:"decision_maker"`
}
