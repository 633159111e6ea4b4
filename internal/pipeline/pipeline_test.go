package pipeline

import (
	"bytes"
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/krykos/leadscout/internal/model"
)

// fastPipeline builds a Pipeline with pacing that won't slow tests down.
func fastPipeline(d *mockDiscoverer, s *mockScout, h *mockHunter, w *mockWriter) (*Pipeline, *bytes.Buffer) {
	p := New(d, s, h, w, 1000)
	var buf bytes.Buffer
	p.SetOutput(&buf)
	return p, &buf
}

func TestRunEndToEnd(t *testing.T) {
	lead := model.Lead{Name: "Acme", URL: "https://acme.com"}

	d := new(mockDiscoverer)
	d.On("FindCompanies", mock.Anything, "widget makers", 3).Return([]model.Lead{lead})

	s := new(mockScout)
	s.On("Scrape", mock.Anything, "https://acme.com").
		Return(model.ScrapedContent{MainText: "Acme makes widgets."})
	s.On("Analyze", mock.Anything, "Acme makes widgets.", "Acme").
		Return(model.BusinessProfile{"company_name": "Acme", "core_services": "widgets"})

	h := new(mockHunter)
	h.On("FindDecisionMaker", mock.Anything, "Acme", "Acme makes widgets.").
		Return(model.DecisionMakerRecord{"error": "resolution failed"})

	var saved []model.CampaignRecord
	w := new(mockWriter)
	w.On("SaveCampaigns", mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(0).([]model.CampaignRecord)
	}).Return(nil)

	p, buf := fastPipeline(d, s, h, w)
	summary, err := p.Run(context.Background(), "widget makers", 3)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.LeadsFound)
	assert.Equal(t, 1, summary.Records)
	assert.Equal(t, 0, summary.Skipped)
	assert.NotEmpty(t, summary.RunID)

	// Persisted record is unmasked and carries the stamped source URL.
	require.Len(t, saved, 1)
	assert.Equal(t, "Acme", saved[0].Business.CompanyName())
	assert.Equal(t, "widgets", saved[0].Business["core_services"])
	assert.Equal(t, "https://acme.com", saved[0].Business["source_url"])
	assert.Equal(t, "resolution failed", saved[0].DecisionMaker["error"])

	// The printed preview is masked: no real identity anywhere.
	out := buf.String()
	assert.Contains(t, out, "Target-A")
	assert.NotContains(t, out, "Acme")
	assert.NotContains(t, out, "https://acme.com")

	d.AssertExpectations(t)
	s.AssertExpectations(t)
	h.AssertExpectations(t)
	w.AssertExpectations(t)
}

func TestRunSkipsLeadWithNoContent(t *testing.T) {
	leads := []model.Lead{
		{Name: "Dead Site", URL: "https://dead.com"},
		{Name: "Live Site", URL: "https://live.com"},
	}

	d := new(mockDiscoverer)
	d.On("FindCompanies", mock.Anything, mock.Anything, mock.Anything).Return(leads)

	s := new(mockScout)
	s.On("Scrape", mock.Anything, "https://dead.com").Return(model.ScrapedContent{})
	s.On("Scrape", mock.Anything, "https://live.com").
		Return(model.ScrapedContent{MainText: "content"})
	s.On("Analyze", mock.Anything, "content", "Live Site").
		Return(model.BusinessProfile{"company_name": "Live Site"})

	h := new(mockHunter)
	h.On("FindDecisionMaker", mock.Anything, "Live Site", "content").
		Return(model.DecisionMakerRecord{"full_name": "Jane Doe"})

	w := new(mockWriter)
	w.On("SaveCampaigns", mock.MatchedBy(func(records []model.CampaignRecord) bool {
		return len(records) == 1
	})).Return(nil)

	p, _ := fastPipeline(d, s, h, w)
	summary, err := p.Run(context.Background(), "anything", 2)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Records)
	assert.Equal(t, 1, summary.Skipped)
	w.AssertExpectations(t)
}

func TestRunBackfillsCompanyName(t *testing.T) {
	d := new(mockDiscoverer)
	d.On("FindCompanies", mock.Anything, mock.Anything, mock.Anything).
		Return([]model.Lead{{Name: "Fallback Co", URL: "https://f.co"}})

	s := new(mockScout)
	s.On("Scrape", mock.Anything, mock.Anything).Return(model.ScrapedContent{MainText: "text"})
	// Analysis returned a profile missing its name entirely.
	s.On("Analyze", mock.Anything, mock.Anything, mock.Anything).Return(model.BusinessProfile{})

	h := new(mockHunter)
	// The back-filled name must be what reaches the hunter.
	h.On("FindDecisionMaker", mock.Anything, "Fallback Co", mock.Anything).
		Return(model.DecisionMakerRecord{})

	w := new(mockWriter)
	w.On("SaveCampaigns", mock.Anything).Return(nil)

	p, _ := fastPipeline(d, s, h, w)
	_, err := p.Run(context.Background(), "anything", 1)
	require.NoError(t, err)
	h.AssertExpectations(t)
}

func TestRunNoLeads(t *testing.T) {
	d := new(mockDiscoverer)
	d.On("FindCompanies", mock.Anything, mock.Anything, mock.Anything).Return([]model.Lead{})

	w := new(mockWriter)
	w.On("SaveCampaigns", mock.Anything).Return(nil)

	p, _ := fastPipeline(d, new(mockScout), new(mockHunter), w)
	summary, err := p.Run(context.Background(), "nothing", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.LeadsFound)
	assert.Equal(t, 0, summary.Records)
}

func TestRunPersistFailure(t *testing.T) {
	d := new(mockDiscoverer)
	d.On("FindCompanies", mock.Anything, mock.Anything, mock.Anything).Return([]model.Lead{})

	w := new(mockWriter)
	w.On("SaveCampaigns", mock.Anything).Return(eris.New("disk full"))

	p, _ := fastPipeline(d, new(mockScout), new(mockHunter), w)
	_, err := p.Run(context.Background(), "anything", 3)
	assert.Error(t, err)
}

func TestRunMaskedPreviewSequencing(t *testing.T) {
	leads := []model.Lead{
		{Name: "Alpha Co", URL: "https://alpha.com"},
		{Name: "Beta Co", URL: "https://beta.com"},
	}

	d := new(mockDiscoverer)
	d.On("FindCompanies", mock.Anything, mock.Anything, mock.Anything).Return(leads)

	s := new(mockScout)
	s.On("Scrape", mock.Anything, mock.Anything).Return(model.ScrapedContent{MainText: "text"})
	s.On("Analyze", mock.Anything, mock.Anything, "Alpha Co").
		Return(model.BusinessProfile{"company_name": "Alpha Co"})
	s.On("Analyze", mock.Anything, mock.Anything, "Beta Co").
		Return(model.BusinessProfile{"company_name": "Beta Co"})

	h := new(mockHunter)
	h.On("FindDecisionMaker", mock.Anything, mock.Anything, mock.Anything).
		Return(model.DecisionMakerRecord{})

	w := new(mockWriter)
	w.On("SaveCampaigns", mock.Anything).Return(nil)

	p, buf := fastPipeline(d, s, h, w)
	_, err := p.Run(context.Background(), "anything", 2)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Target-A")
	assert.Contains(t, out, "Target-B")
	assert.NotContains(t, out, "Alpha")
	assert.NotContains(t, out, "Beta")
}
