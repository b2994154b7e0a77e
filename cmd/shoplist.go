package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maibrennan/larder/internal/catalog"
	"github.com/maibrennan/larder/internal/display"
	"github.com/maibrennan/larder/internal/pantry"
	"github.com/maibrennan/larder/internal/text"
)

var flagRecipe string

var shoplistCmd = &cobra.Command{
	Use:   "shoplist",
	Short: "Turn recipe lines into a shopping list, grouped by category",
	Long: "Reads one ingredient phrase per line from --recipe (or stdin with\n" +
		"--recipe -), matches each against the catalog, drops anything the pantry\n" +
		"already has, and groups the rest by kitchen category.",
	Example: `  larder shoplist --recipe dinner.txt --catalog catalog.json
  cat dinner.txt | larder shoplist --recipe - --catalog catalog.json --json`,
	Args: cobra.NoArgs,
	RunE: runShoplist,
}

func init() {
	shoplistCmd.Flags().StringVarP(&flagRecipe, "recipe", "r", "", "Recipe file with one phrase per line (- for stdin)")
	rootCmd.AddCommand(shoplistCmd)
}

func readRecipeLines(cmd *cobra.Command) ([]string, error) {
	if flagRecipe == "" {
		return nil, invalidArgsError(
			"please provide --recipe FILE (or - for stdin)",
			"larder shoplist --recipe dinner.txt --catalog catalog.json",
		)
	}

	var reader io.Reader
	if flagRecipe == "-" {
		reader = cmd.InOrStdin()
	} else {
		file, err := os.Open(flagRecipe)
		if err != nil {
			return nil, upstreamError("opening recipe file", err)
		}
		defer file.Close()
		reader = file
	}

	var lines []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, upstreamError("reading recipe file", err)
	}
	if len(lines) == 0 {
		return nil, notFoundError(fmt.Sprintf("recipe %s has no recipe lines", flagRecipe))
	}
	return lines, nil
}

func runShoplist(cmd *cobra.Command, _ []string) error {
	lines, err := readRecipeLines(cmd)
	if err != nil {
		return err
	}

	idx, _, err := loadCatalogIndex(cmd)
	if err != nil {
		return err
	}
	matcher, err := newMatcher()
	if err != nil {
		return err
	}
	_, state, err := openPantryStore()
	if err != nil {
		return err
	}

	if flagLimit > 0 && flagLimit < len(lines) {
		lines = lines[:flagLimit]
	}

	groups := make(map[catalog.Category][]display.ShopItem)
	var skipped []string
	for _, line := range lines {
		result := matcher.Match(line, idx)

		name := line
		key := text.Normalize(line)
		if result.Entry != nil {
			name = result.Entry.Name
			key = result.Entry.NormalizedName
		}
		if state.Status(key) == pantry.StatusAvailable {
			skipped = append(skipped, name)
			continue
		}

		category := categoryFor(result, line)
		groups[category] = append(groups[category], display.ShopItem{
			Phrase: line,
			Name:   name,
			Kind:   result.Kind,
		})
	}

	if flagJSON {
		return display.PrintShopListJSON(cmd.OutOrStdout(), groups, skipped)
	}
	display.PrintShopList(cmd.OutOrStdout(), groups, skipped)
	return nil
}
