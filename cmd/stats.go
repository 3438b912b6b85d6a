package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/egghunt/internal/catalog"
	"github.com/abhisek/egghunt/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show discovery statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		byRarity, total, err := repo.DiscoveryCounts(ctx)
		if err != nil {
			return fmt.Errorf("discovery counts: %w", err)
		}

		fmt.Printf("Total discoveries: %d\n", total)
		for _, r := range catalog.AllRarities() {
			fmt.Printf("  %-11s %d\n", r.DisplayName(), byRarity[string(r)])
		}

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("session summaries: %w", err)
		}
		if len(sessions) == 0 {
			return nil
		}

		fmt.Println("\nRecent sessions:")
		for _, s := range sessions {
			dur := time.Duration(s.DurationSecs) * time.Second
			fmt.Printf("  %s  %5d events  %2d found  %s\n",
				s.Timestamp.Format("2006-01-02 15:04"), s.EventsSeen, s.Discoveries, dur)
		}
		return nil
	},
}
