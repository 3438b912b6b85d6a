package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/egghunt/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect egg catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in eggs (spoilers!)",
	Run: func(cmd *cobra.Command, args []string) {
		for _, item := range catalog.Builtin() {
			fmt.Printf("  %-16s %-12s %-11s tier %d\n",
				item.ID, item.Category, item.Rarity, item.Tier())
		}
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file-or-dir>...",
	Short: "Validate custom egg catalog files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := false
		for _, path := range args {
			items, err := loadPath(path)
			if err != nil {
				failed = true
				fmt.Printf("  ✗ %s: %v\n", path, err)
				continue
			}
			fmt.Printf("  ✓ %s: %d eggs\n", path, len(items))
		}
		if failed {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func loadPath(path string) ([]catalog.Item, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return catalog.LoadDir(path)
	}
	return catalog.LoadFile(path)
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}
