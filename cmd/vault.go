package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/egghunt/internal/catalog"
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "List discovered eggs without launching the hunt",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := st.SnapshotRepo().Latest(cmd.Context())
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}

		discovered := map[string]bool{}
		if snap != nil {
			for _, d := range snap.Data.Discovered {
				discovered[d.ItemID] = true
			}
		}

		all, _ := cmd.Flags().GetBool("all")
		items := catalog.Builtin()
		found := 0
		for _, item := range items {
			if discovered[item.ID] {
				found++
				fmt.Printf("  %s %-22s %-11s %s\n",
					item.Category.Icon(), item.Name, item.Rarity.DisplayName(), item.Description)
			} else if all {
				fmt.Printf("  ? %-22s %-11s %s\n", "???", item.Rarity.DisplayName(), item.Category.DisplayName())
			}
		}
		fmt.Printf("\n%d of %d eggs found\n", found, len(items))
		return nil
	},
}

func init() {
	vaultCmd.Flags().Bool("all", false, "Include undiscovered eggs as silhouettes")
}
