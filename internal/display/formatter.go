// Package display renders engine verdicts for the terminal: match badges,
// category buckets, shopping lists, and pantry state. Data goes to stdout,
// styled for humans or encoded as JSON for pipelines.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/maibrennan/larder/internal/catalog"
	"github.com/maibrennan/larder/internal/match"
)

// Styles for terminal output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	exactStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) // green
	partialStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")) // yellow
	fuzzyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")) // magenta
	noneStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")) // red
	dimStyle     = lipgloss.NewStyle().Faint(true)
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// PhraseMatch pairs an input phrase with its verdict and the category the
// caller settled on (the matched entry's, or the categorizer's for a miss).
type PhraseMatch struct {
	Phrase   string
	Result   match.Result
	Category catalog.Category
}

// MatchJSON is the JSON output shape for one matched phrase.
type MatchJSON struct {
	Phrase     string            `json:"phrase"`
	Kind       match.Kind        `json:"kind"`
	Confidence int               `json:"confidence"`
	Matched    *MatchedEntryJSON `json:"matched"`
	Category   catalog.Category  `json:"category"`
}

// MatchedEntryJSON is the catalog entry portion of MatchJSON.
type MatchedEntryJSON struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category catalog.Category `json:"category"`
	Origin   catalog.Origin   `json:"origin"`
}

// PrintMatches renders match verdicts to the writer.
func PrintMatches(w io.Writer, matches []PhraseMatch) {
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Ingredient matches"),
		cyanStyle.Render(fmt.Sprintf("%d phrase(s)", len(matches))),
	)
	for _, m := range matches {
		printMatch(w, m)
		fmt.Fprintln(w)
	}
}

// PrintMatchesJSON renders match verdicts as JSON.
func PrintMatchesJSON(w io.Writer, matches []PhraseMatch) error {
	out := make([]MatchJSON, 0, len(matches))
	for _, m := range matches {
		out = append(out, toMatchJSON(m))
	}
	return json.NewEncoder(w).Encode(out)
}

// KindBadge renders the colored tier badge for a match kind.
func KindBadge(kind match.Kind) string {
	switch kind {
	case match.KindExact:
		return exactStyle.Render("EXACT")
	case match.KindPartial:
		return partialStyle.Render("PARTIAL")
	case match.KindFuzzy:
		return fuzzyStyle.Render("FUZZY")
	default:
		return noneStyle.Render("NO MATCH")
	}
}

// PrintCategories renders the category buckets and their entry counts.
func PrintCategories(w io.Writer, counts map[catalog.Category]int, total int) {
	fmt.Fprintf(w, "\n%s\n\n",
		titleStyle.Render(fmt.Sprintf("Catalog categories (%d entries):", total)),
	)
	for _, c := range catalog.Categories() {
		fmt.Fprintf(w, "  %s: %d entries\n", cyanStyle.Render(c.Label()), counts[c])
	}
	fmt.Fprintln(w)
}

// PrintCategoriesJSON renders category counts as JSON, keyed by bucket name.
func PrintCategoriesJSON(w io.Writer, counts map[catalog.Category]int) error {
	out := make(map[string]int, len(counts))
	for _, c := range catalog.Categories() {
		out[string(c)] = counts[c]
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintCatalogContext prints a dim line showing which catalog was loaded.
func PrintCatalogContext(w io.Writer, location string, entryCount int) {
	fmt.Fprintf(w, "%s\n\n",
		dimStyle.Render(fmt.Sprintf("Using catalog: %s (%d entries)", location, entryCount)),
	)
}

// PrintPantry renders the pantry state as two labeled lists.
func PrintPantry(w io.Writer, available, unavailable []string) {
	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("Pantry"))
	fmt.Fprintf(w, "  %s\n", exactStyle.Render(fmt.Sprintf("Available (%d):", len(available))))
	for _, name := range available {
		fmt.Fprintf(w, "    %s\n", name)
	}
	fmt.Fprintf(w, "  %s\n", noneStyle.Render(fmt.Sprintf("Unavailable (%d):", len(unavailable))))
	for _, name := range unavailable {
		fmt.Fprintf(w, "    %s\n", name)
	}
	fmt.Fprintln(w)
}

// ShopItem is one shopping list line: the recipe phrase plus the verdict
// the engine reached for it.
type ShopItem struct {
	Phrase string
	Name   string
	Kind   match.Kind
}

// ShopItemJSON is the JSON output shape for one shopping list line.
type ShopItemJSON struct {
	Phrase string     `json:"phrase"`
	Name   string     `json:"name"`
	Kind   match.Kind `json:"kind"`
}

// PrintShopList renders items grouped by category, with a trailing note for
// anything skipped because the pantry already has it.
func PrintShopList(w io.Writer, groups map[catalog.Category][]ShopItem, skipped []string) {
	total := 0
	for _, items := range groups {
		total += len(items)
	}
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Shopping list"),
		cyanStyle.Render(fmt.Sprintf("%d item(s)", total)),
	)
	for _, c := range catalog.Categories() {
		items := groups[c]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s\n", titleStyle.Render(c.Label()))
		for _, item := range items {
			note := ""
			if item.Kind == match.KindNone {
				note = dimStyle.Render(" (not in catalog)")
			}
			fmt.Fprintf(w, "    %s%s\n", item.Name, note)
		}
		fmt.Fprintln(w)
	}
	if len(skipped) > 0 {
		fmt.Fprintf(w, "  %s %s\n\n",
			dimStyle.Render("Already in pantry:"),
			dimStyle.Render(strings.Join(skipped, ", ")),
		)
	}
}

// PrintShopListJSON renders the shopping list as JSON keyed by category.
func PrintShopListJSON(w io.Writer, groups map[catalog.Category][]ShopItem, skipped []string) error {
	type payload struct {
		Items   map[string][]ShopItemJSON `json:"items"`
		Skipped []string                  `json:"skipped,omitempty"`
	}
	out := payload{Items: make(map[string][]ShopItemJSON, len(groups)), Skipped: skipped}
	for c, items := range groups {
		lines := make([]ShopItemJSON, 0, len(items))
		for _, item := range items {
			lines = append(lines, ShopItemJSON{Phrase: item.Phrase, Name: item.Name, Kind: item.Kind})
		}
		out.Items[string(c)] = lines
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintError prints a styled error message.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

// PrintWarning prints a styled warning message.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render(msg))
}

func printMatch(w io.Writer, m PhraseMatch) {
	fmt.Fprintf(w, "  %s %s\n", KindBadge(m.Result.Kind), titleStyle.Render(m.Phrase))

	if m.Result.Entry != nil {
		fmt.Fprintf(w, "    %s %s\n",
			cyanStyle.Render("→ "+m.Result.Entry.Name),
			dimStyle.Render(fmt.Sprintf("(confidence %d)", m.Result.Confidence)),
		)
	}

	var meta []string
	meta = append(meta, m.Category.Label())
	if m.Result.Entry != nil {
		meta = append(meta, string(m.Result.Entry.Origin)+" entry")
	} else {
		meta = append(meta, "categorized by keyword")
	}
	fmt.Fprintf(w, "    %s\n", dimStyle.Render(strings.Join(meta, " | ")))
}

func toMatchJSON(m PhraseMatch) MatchJSON {
	out := MatchJSON{
		Phrase:     m.Phrase,
		Kind:       m.Result.Kind,
		Confidence: m.Result.Confidence,
		Category:   m.Category,
	}
	if e := m.Result.Entry; e != nil {
		out.Matched = &MatchedEntryJSON{
			ID:       e.ID,
			Name:     e.Name,
			Category: e.Category,
			Origin:   e.Origin,
		}
	}
	return out
}
