package cmd

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/maibrennan/larder/internal/pantry"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the catalog and toggle pantry availability interactively",
	Example: `  larder tui --catalog catalog.json
  larder tui --catalog catalog.json --pantry ~/.larder/pantry.json`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isInteractiveSession(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return invalidArgsError(
			"`larder tui` requires an interactive terminal",
			"Use `larder pantry list --json` in pipelines.",
		)
	}

	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	location := flagCatalog
	if location == "" {
		location = cfg.Catalog
	}
	if location == "" {
		return invalidArgsError(
			"please provide --catalog PATH_OR_URL (or set catalog: in the config file)",
			"larder tui --catalog catalog.json",
		)
	}

	store, state, err := openPantryStore()
	if err != nil {
		return err
	}

	model := newLoadingPantryTUIModel(tuiLoadConfig{
		ctx:      cmd.Context(),
		location: location,
		state:    state,
	})

	program := tea.NewProgram(
		model,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	finalModel, err := program.Run()
	if err != nil {
		return internalError("running tui", err)
	}

	final, ok := finalModel.(pantryTUIModel)
	if !ok {
		return nil
	}
	if final.fatalErr != nil {
		if errors.Is(final.fatalErr, pantry.ErrContractViolation) {
			return internalError("toggling pantry state", final.fatalErr)
		}
		return upstreamError("loading catalog", final.fatalErr)
	}
	if final.dirty {
		if err := store.Save(final.state); err != nil {
			return upstreamError("writing pantry state", err)
		}
	}
	return nil
}

func isInteractiveSession(stdin io.Reader, stdout io.Writer) bool {
	inputFile, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	if !term.IsTerminal(int(inputFile.Fd())) {
		return false
	}
	return isTTY(stdout)
}
