package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/krykos/leadscout/internal/scout"
	"github.com/krykos/leadscout/internal/store"
)

var scoutURL string

var scoutCmd = &cobra.Command{
	Use:   "scout",
	Short: "Profile a single website without running discovery",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		jinaClient := newSearchClient(cfg)
		cache := newPageCache(cfg)
		if cache != nil {
			defer cache.Close()
		}

		s := scout.New(newFetcher(cfg, jinaClient), newLLMClient(cfg), cache, cfg.Scout)

		content := s.Scrape(ctx, scoutURL)
		if content.Empty() {
			return eris.Errorf("no content scraped from %s", scoutURL)
		}

		profile := s.Analyze(ctx, content.Combined(), fallbackNameFromURL(scoutURL))
		profile.SetSourceURL(scoutURL)

		out, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal profile")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		fileStore := store.NewFileStore(cfg.Output.CampaignsPath, cfg.Output.ProfilePath)
		if err := fileStore.SaveProfile(profile); err != nil {
			return eris.Wrap(err, "save profile")
		}
		zap.L().Info("profile saved", zap.String("path", cfg.Output.ProfilePath))
		return nil
	},
}

// fallbackNameFromURL derives a placeholder company name from the host,
// e.g. https://www.acme-corp.com -> "acme-corp".
func fallbackNameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	if i := strings.LastIndex(host, "."); i > 0 {
		host = host[:i]
	}
	return host
}

func init() {
	scoutCmd.Flags().StringVar(&scoutURL, "url", "", "website URL to profile")
	_ = scoutCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(scoutCmd)
}
