// Package store persists pipeline output as flat JSON documents and
// provides a SQLite-backed cache for scraped pages.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/krykos/leadscout/internal/model"
)

// CampaignWriter persists a completed batch of campaign records.
type CampaignWriter interface {
	SaveCampaigns(records []model.CampaignRecord) error
}

// FileStore writes run output to fixed JSON files, overwritten each run.
type FileStore struct {
	campaignsPath string
	profilePath   string
}

// NewFileStore creates a FileStore writing to the given paths.
func NewFileStore(campaignsPath, profilePath string) *FileStore {
	return &FileStore{campaignsPath: campaignsPath, profilePath: profilePath}
}

// SaveCampaigns writes the whole batch as one JSON array.
func (s *FileStore) SaveCampaigns(records []model.CampaignRecord) error {
	if records == nil {
		records = []model.CampaignRecord{}
	}
	return writeJSON(s.campaignsPath, records)
}

// SaveProfile writes a single business profile (single-URL scout mode).
func (s *FileStore) SaveProfile(profile model.BusinessProfile) error {
	return writeJSON(s.profilePath, profile)
}

// writeJSON writes v as indented JSON via a temp file and rename, so a
// failed write never truncates the previous run's output.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrap(err, "store: marshal output")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return eris.Wrap(err, "store: create temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()        //nolint:errcheck
		os.Remove(tmpName) //nolint:errcheck
		return eris.Wrap(err, "store: write temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return eris.Wrap(err, "store: close temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return eris.Wrapf(err, "store: rename to %s", path)
	}
	return nil
}
