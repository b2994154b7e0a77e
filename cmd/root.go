package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/maibrennan/larder/internal/catalog"
	"github.com/maibrennan/larder/internal/categorize"
	"github.com/maibrennan/larder/internal/display"
	"github.com/maibrennan/larder/internal/match"
	"github.com/maibrennan/larder/internal/text"
)

var (
	flagCatalog string
	flagPantry  string
	flagConfig  string
	flagJSON    bool
	flagLimit   int
)

var rootCmd = &cobra.Command{
	Use:   "larder [phrase]...",
	Short: "Match free-text ingredient phrases against a catalog",
	Long: "CLI for the larder ingredient engine: normalizes recipe phrases, matches\n" +
		"them against an ingredient catalog with a confidence score, and buckets\n" +
		"unmatched names into kitchen-behavior categories.\n\n" +
		"Agent-friendly mode: minor syntax issues are auto-corrected when intent is clear " +
		"(for example: -catalog foo.json, catalog=foo.json, --catalgo foo.json).",
	Example: `  larder "2 cups all-purpose flour" --catalog catalog.json
  larder "3 cloves garlic, minced" --catalog catalog.json --json
  larder categories --catalog catalog.json
  larder shoplist --recipe dinner.txt --catalog catalog.json
  larder pantry toggle milk`,
	Args: cobra.ArbitraryArgs,
	RunE: runMatch,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	registerEngineFlags(rootCmd.PersistentFlags())
}

// registerEngineFlags attaches the flags every command shares.
func registerEngineFlags(f *pflag.FlagSet) {
	f.StringVarP(&flagCatalog, "catalog", "c", "", "Catalog JSON file path or http(s) URL")
	f.StringVarP(&flagPantry, "pantry", "p", "", "Pantry state file (default ~/.larder/pantry.json)")
	f.StringVar(&flagConfig, "config", "", "YAML config file (extra reducer words, default paths)")
	f.BoolVar(&flagJSON, "json", false, "Output as JSON")
	f.IntVarP(&flagLimit, "limit", "n", 0, "Limit number of results (0 = all)")
}

// Execute runs the root command.
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdout, os.Stderr))
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	resetCLIState()

	normalizedArgs, notes := normalizeCLIArgs(args)
	for _, note := range notes {
		fmt.Fprintf(stderr, "note: %s\n", note)
	}

	if len(normalizedArgs) == 0 {
		if err := printQuickStart(stdout, !isTTY(stdout)); err != nil {
			cliErr := classifyCLIError(err)
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
			return cliErr.ExitCode
		}
		return ExitSuccess
	}

	if shouldAutoJSON(normalizedArgs, isTTY(stdout)) {
		normalizedArgs = append(normalizedArgs, "--json")
	}

	setCommandIO(rootCmd, stdout, stderr)
	rootCmd.SetArgs(normalizedArgs)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if hasJSONPreference(normalizedArgs) {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				fmt.Fprintln(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func setCommandIO(cmd *cobra.Command, stdout, stderr io.Writer) {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdout, stderr)
	}
}

func resetCLIState() {
	flagCatalog = ""
	flagPantry = ""
	flagConfig = ""
	flagJSON = false
	flagLimit = 0
	flagRecipe = ""
	resetHelpFlags(rootCmd)
}

// resetHelpFlags clears cobra's lazily-registered --help flag on every
// command so a prior invocation's --help does not leak into the next one.
func resetHelpFlags(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}
	for _, child := range cmd.Commands() {
		resetHelpFlags(child)
	}
}

// loadCatalogIndex resolves the catalog location (flag, then config file),
// loads it through the source collaborator, and builds the index.
func loadCatalogIndex(cmd *cobra.Command) (*catalog.Index, string, error) {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return nil, "", err
	}

	location := flagCatalog
	if location == "" {
		location = cfg.Catalog
	}
	if location == "" {
		return nil, "", invalidArgsError(
			"please provide --catalog PATH_OR_URL (or set catalog: in the config file)",
			"larder \"2 cups flour\" --catalog catalog.json",
			"larder categories --catalog https://example.com/catalog.json",
		)
	}

	entries, err := catalog.NewSource().Load(cmd.Context(), location)
	if err != nil {
		return nil, "", upstreamError("loading catalog", err)
	}
	if len(entries) == 0 {
		return nil, "", notFoundError(
			fmt.Sprintf("catalog %s contains no entries", location),
			"Check the catalog file contents.",
		)
	}

	idx := catalog.NewIndex(entries)
	if !flagJSON {
		display.PrintCatalogContext(cmd.ErrOrStderr(), location, idx.Len())
	}
	return idx, location, nil
}

// newMatcher builds the matcher with any reducer extensions from the config.
func newMatcher() (*match.Matcher, error) {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return nil, err
	}
	if len(cfg.ExtraUnits) == 0 && len(cfg.ExtraStopWords) == 0 {
		return match.New(), nil
	}
	return match.NewWithReducer(text.NewReducerWith(cfg.ExtraUnits, cfg.ExtraStopWords)), nil
}

func runMatch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return invalidArgsError(
			"provide at least one ingredient phrase to match",
			"larder \"2 cups flour\" --catalog catalog.json",
			"larder \"3 cloves garlic, minced\" \"1 tsp salt\" --catalog catalog.json",
		)
	}

	idx, _, err := loadCatalogIndex(cmd)
	if err != nil {
		return err
	}
	matcher, err := newMatcher()
	if err != nil {
		return err
	}

	phrases := args
	if flagLimit > 0 && flagLimit < len(phrases) {
		phrases = phrases[:flagLimit]
	}

	matches := make([]display.PhraseMatch, 0, len(phrases))
	for _, phrase := range phrases {
		result := matcher.Match(phrase, idx)
		matches = append(matches, display.PhraseMatch{
			Phrase:   phrase,
			Result:   result,
			Category: categoryFor(result, phrase),
		})
	}

	if flagJSON {
		return display.PrintMatchesJSON(cmd.OutOrStdout(), matches)
	}
	display.PrintMatches(cmd.OutOrStdout(), matches)
	return nil
}

// categoryFor picks the matched entry's category, falling back to the
// keyword categorizer for phrases the catalog does not know.
func categoryFor(result match.Result, phrase string) catalog.Category {
	if result.Entry != nil {
		return result.Entry.Category
	}
	return categorize.Categorize(phrase)
}
