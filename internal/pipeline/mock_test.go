package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/krykos/leadscout/internal/model"
)

// --- Discoverer mock ---

type mockDiscoverer struct {
	mock.Mock
}

func (m *mockDiscoverer) FindCompanies(ctx context.Context, niche string, count int) []model.Lead {
	args := m.Called(ctx, niche, count)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Lead)
}

// --- SiteScout mock ---

type mockScout struct {
	mock.Mock
}

func (m *mockScout) Scrape(ctx context.Context, url string) model.ScrapedContent {
	args := m.Called(ctx, url)
	return args.Get(0).(model.ScrapedContent)
}

func (m *mockScout) Analyze(ctx context.Context, content, fallbackName string) model.BusinessProfile {
	args := m.Called(ctx, content, fallbackName)
	return args.Get(0).(model.BusinessProfile)
}

// --- DecisionMakerFinder mock ---

type mockHunter struct {
	mock.Mock
}

func (m *mockHunter) FindDecisionMaker(ctx context.Context, companyName, siteText string) model.DecisionMakerRecord {
	args := m.Called(ctx, companyName, siteText)
	return args.Get(0).(model.DecisionMakerRecord)
}

// --- CampaignWriter mock ---

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) SaveCampaigns(records []model.CampaignRecord) error {
	args := m.Called(records)
	return args.Error(0)
}
