package cmd

import (
	"github.com/spf13/cobra"

	"github.com/maibrennan/larder/internal/catalog"
	"github.com/maibrennan/larder/internal/display"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show catalog entry counts per kitchen category",
	Example: `  larder categories --catalog catalog.json
  larder categories --catalog catalog.json --json`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	idx, _, err := loadCatalogIndex(cmd)
	if err != nil {
		return err
	}

	counts := make(map[catalog.Category]int, len(catalog.Categories()))
	total := 0
	for _, entry := range idx.Entries() {
		counts[entry.Category]++
		total++
	}

	if flagJSON {
		return display.PrintCategoriesJSON(cmd.OutOrStdout(), counts)
	}
	display.PrintCategories(cmd.OutOrStdout(), counts, total)
	return nil
}
