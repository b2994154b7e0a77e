package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maibrennan/larder/internal/display"
	"github.com/maibrennan/larder/internal/pantry"
	"github.com/maibrennan/larder/internal/text"
)

var pantryCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Track which ingredients you have on hand",
	Example: `  larder pantry list
  larder pantry toggle milk "green onion"
  larder pantry clear`,
}

var pantryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available and unavailable ingredients",
	Args:  cobra.NoArgs,
	RunE:  runPantryList,
}

var pantryToggleCmd = &cobra.Command{
	Use:   "toggle NAME...",
	Short: "Flip ingredients between available and unavailable",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPantryToggle,
}

var pantryClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all pantry state",
	Args:  cobra.NoArgs,
	RunE:  runPantryClear,
}

func init() {
	pantryCmd.AddCommand(pantryListCmd)
	pantryCmd.AddCommand(pantryToggleCmd)
	pantryCmd.AddCommand(pantryClearCmd)
	rootCmd.AddCommand(pantryCmd)
}

func openPantryStore() (*pantry.Store, *pantry.State, error) {
	path, err := pantryPath()
	if err != nil {
		return nil, nil, err
	}
	store := pantry.NewStore(path)
	state, err := store.Load()
	if err != nil {
		return nil, nil, upstreamError("reading pantry state", err)
	}
	return store, state, nil
}

type pantryStateJSON struct {
	Available   []string `json:"available"`
	Unavailable []string `json:"unavailable"`
}

func printPantryState(cmd *cobra.Command, available, unavailable []string) error {
	if flagJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(pantryStateJSON{
			Available:   available,
			Unavailable: unavailable,
		})
	}
	display.PrintPantry(cmd.OutOrStdout(), available, unavailable)
	return nil
}

func runPantryList(cmd *cobra.Command, _ []string) error {
	_, state, err := openPantryStore()
	if err != nil {
		return err
	}
	available, unavailable := state.Names()
	return printPantryState(cmd, available, unavailable)
}

func runPantryToggle(cmd *cobra.Command, args []string) error {
	store, state, err := openPantryStore()
	if err != nil {
		return err
	}

	var available, unavailable []string
	for _, raw := range args {
		name := text.Normalize(raw)
		if name == "" {
			return invalidArgsError(fmt.Sprintf("ingredient name %q normalizes to nothing", raw))
		}
		available, unavailable, err = state.Toggle(name)
		if err != nil {
			return upstreamError("toggling pantry state", err)
		}
	}

	if err := store.Save(state); err != nil {
		return upstreamError("writing pantry state", err)
	}
	return printPantryState(cmd, available, unavailable)
}

func runPantryClear(cmd *cobra.Command, _ []string) error {
	store, state, err := openPantryStore()
	if err != nil {
		return err
	}
	state.ClearAll()
	if err := store.Save(state); err != nil {
		return upstreamError("writing pantry state", err)
	}
	return printPantryState(cmd, nil, nil)
}
