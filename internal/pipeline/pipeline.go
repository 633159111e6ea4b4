// Package pipeline sequences discovery, scouting, decision-maker
// resolution, and masking into a single lead-generation run.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/krykos/leadscout/internal/mask"
	"github.com/krykos/leadscout/internal/model"
	"github.com/krykos/leadscout/internal/store"
)

// Discoverer finds candidate leads for a niche query.
type Discoverer interface {
	FindCompanies(ctx context.Context, niche string, count int) []model.Lead
}

// SiteScout retrieves site content and infers business profiles.
type SiteScout interface {
	Scrape(ctx context.Context, url string) model.ScrapedContent
	Analyze(ctx context.Context, content, fallbackName string) model.BusinessProfile
}

// DecisionMakerFinder resolves a company's decision-maker.
type DecisionMakerFinder interface {
	FindDecisionMaker(ctx context.Context, companyName, siteText string) model.DecisionMakerRecord
}

// RunSummary reports the outcome of a pipeline run.
type RunSummary struct {
	RunID      string `json:"run_id"`
	Query      string `json:"query"`
	LeadsFound int    `json:"leads_found"`
	Records    int    `json:"records"`
	Skipped    int    `json:"skipped"`
}

// Pipeline drives one full lead-generation run. Leads are processed
// strictly one at a time; a limiter paces outbound request volume
// between leads.
type Pipeline struct {
	discoverer Discoverer
	scout      SiteScout
	hunter     DecisionMakerFinder
	writer     store.CampaignWriter
	limiter    *rate.Limiter
	out        io.Writer
}

// New creates a Pipeline. leadsPerSecond controls pacing between leads
// (0.5 ≈ one lead every two seconds).
func New(d Discoverer, s SiteScout, h DecisionMakerFinder, w store.CampaignWriter, leadsPerSecond float64) *Pipeline {
	if leadsPerSecond <= 0 {
		leadsPerSecond = 0.5
	}
	return &Pipeline{
		discoverer: d,
		scout:      s,
		hunter:     h,
		writer:     w,
		limiter:    rate.NewLimiter(rate.Limit(leadsPerSecond), 1),
		out:        os.Stdout,
	}
}

// SetOutput redirects masked-preview printing (for tests).
func (p *Pipeline) SetOutput(w io.Writer) {
	p.out = w
}

// Run discovers up to count leads for the niche query and enriches each
// one in sequence. A failed lead is skipped and logged; the run only
// fails if the final persist does.
func (p *Pipeline) Run(ctx context.Context, query string, count int) (*RunSummary, error) {
	runID := uuid.NewString()
	log := zap.L().With(zap.String("run_id", runID), zap.String("query", query))
	log.Info("pipeline: starting run", zap.Int("count", count))

	leads := p.discoverer.FindCompanies(ctx, query, count)
	if len(leads) == 0 {
		log.Warn("pipeline: no leads found")
	}

	summary := &RunSummary{RunID: runID, Query: query, LeadsFound: len(leads)}
	var records []model.CampaignRecord

	for i, lead := range leads {
		if i > 0 {
			if err := p.limiter.Wait(ctx); err != nil {
				log.Warn("pipeline: pacing interrupted", zap.Error(err))
				break
			}
		}

		record, err := p.processLead(ctx, lead)
		if err != nil {
			log.Warn("pipeline: lead skipped",
				zap.String("lead", lead.Name),
				zap.String("url", lead.URL),
				zap.Error(err),
			)
			summary.Skipped++
			continue
		}

		records = append(records, *record)
		p.printMaskedPreview(record.Business, len(records)-1)
	}

	if err := p.writer.SaveCampaigns(records); err != nil {
		return summary, eris.Wrap(err, "pipeline: persist campaigns")
	}

	summary.Records = len(records)
	log.Info("pipeline: run complete",
		zap.Int("leads", summary.LeadsFound),
		zap.Int("records", summary.Records),
		zap.Int("skipped", summary.Skipped),
	)
	fmt.Fprintf(p.out, "\n[+] Campaign complete: %d record(s) produced.\n", summary.Records)
	return summary, nil
}

// processLead runs one lead through scrape → analyze → decision-maker.
// An empty scrape is the only skip condition; every later stage degrades
// to a well-formed record instead of failing.
func (p *Pipeline) processLead(ctx context.Context, lead model.Lead) (*model.CampaignRecord, error) {
	content := p.scout.Scrape(ctx, lead.URL)
	if content.Empty() {
		return nil, eris.Errorf("no content retrieved from %s", lead.URL)
	}

	siteText := content.Combined()
	profile := p.scout.Analyze(ctx, siteText, lead.Name)

	// The analysis step already guarantees a company name, but the record
	// must never leave the driver without one.
	if profile.CompanyName() == "" {
		profile.SetCompanyName(lead.Name)
	}
	profile.SetSourceURL(lead.URL)

	decisionMaker := p.hunter.FindDecisionMaker(ctx, profile.CompanyName(), siteText)

	return &model.CampaignRecord{
		Business:      profile,
		DecisionMaker: decisionMaker,
	}, nil
}

// printMaskedPreview prints the redacted profile so the operator can
// review results without seeing real identities. Masked output is never
// persisted.
func (p *Pipeline) printMaskedPreview(profile model.BusinessProfile, index int) {
	masked := mask.Mask(profile, index)
	data, err := json.MarshalIndent(masked, "", "  ")
	if err != nil {
		zap.L().Warn("pipeline: preview marshal failed", zap.Error(err))
		return
	}
	fmt.Fprintf(p.out, "\n[+] Prospect %s:\n%s\n", mask.Placeholder(index), data)
}
