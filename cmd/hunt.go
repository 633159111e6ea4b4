package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/krykos/leadscout/internal/discover"
	"github.com/krykos/leadscout/internal/identity"
	"github.com/krykos/leadscout/internal/pipeline"
	"github.com/krykos/leadscout/internal/scout"
	"github.com/krykos/leadscout/internal/store"
)

var (
	huntQuery string
	huntCount int
)

var huntCmd = &cobra.Command{
	Use:   "hunt",
	Short: "Run the full lead-generation pipeline for a niche query",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		query := huntQuery
		if query == "" {
			var err error
			query, err = promptQuery(os.Stdin, os.Stdout)
			if err != nil {
				return err
			}
		}

		count := huntCount
		if count <= 0 {
			count = cfg.Pipeline.DefaultCount
		}

		jinaClient := newSearchClient(cfg)
		llmClient := newLLMClient(cfg)
		cache := newPageCache(cfg)
		if cache != nil {
			defer cache.Close()
			if n, err := cache.DeleteExpired(ctx); err == nil && n > 0 {
				zap.L().Debug("pruned expired cache entries", zap.Int("count", n))
			}
		}

		d := discover.New(jinaClient, cfg.Discover)
		s := scout.New(newFetcher(cfg, jinaClient), llmClient, cache, cfg.Scout)
		h := identity.New(jinaClient, llmClient, cfg.Identity)
		fileStore := store.NewFileStore(cfg.Output.CampaignsPath, cfg.Output.ProfilePath)

		p := pipeline.New(d, s, h, fileStore, cfg.Pipeline.LeadsPerSecond)

		summary, err := p.Run(ctx, query, count)
		if err != nil {
			return eris.Wrap(err, "pipeline run")
		}

		zap.L().Info("hunt complete",
			zap.String("run_id", summary.RunID),
			zap.Int("leads_found", summary.LeadsFound),
			zap.Int("records", summary.Records),
			zap.Int("skipped", summary.Skipped),
			zap.String("output", cfg.Output.CampaignsPath),
		)
		return nil
	},
}

// promptQuery asks the operator for the niche/location query.
func promptQuery(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter niche/location query (e.g. \"landscaping companies austin\"): ")
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", eris.Wrap(err, "read query")
	}
	query := strings.TrimSpace(line)
	if query == "" {
		return "", eris.New("empty query")
	}
	return query, nil
}

func init() {
	huntCmd.Flags().StringVar(&huntQuery, "query", "", "niche/location query (prompted when omitted)")
	huntCmd.Flags().IntVar(&huntCount, "count", 0, "number of leads to pursue (default from config)")
	rootCmd.AddCommand(huntCmd)
}
