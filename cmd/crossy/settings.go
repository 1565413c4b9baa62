package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossy/internal/games/crossy"
	"github.com/vovakirdan/tui-crossy/internal/storage"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show saved settings",
	Long: `Show the settings saved in the scores database.

Keys:
  skin   - character: chicken, cow, elephant
  music  - background music: true/false
  sfx    - move and crash sounds: true/false

Examples:
  crossy settings
  crossy settings set skin cow
  crossy settings set music false`,
	Args: cobra.NoArgs,
	Run:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a saved setting",
	Args:  cobra.ExactArgs(2),
	Run:   runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

// runWithStore opens the database, runs fn and closes the database again
// whatever fn returns.
func runWithStore(path string, fn func(*storage.Store) error) error {
	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	err = fn(store)
	if cerr := store.Close(); err == nil {
		err = cerr
	}
	return err
}

// withStore runs fn against the database named by --db and exits on
// failure. The store is already closed by then, since os.Exit skips
// deferred calls.
func withStore(fn func(*storage.Store) error) {
	if err := runWithStore(flagDBPath, fn); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSettingsShow(_ *cobra.Command, _ []string) {
	withStore(showSettings)
}

func showSettings(store *storage.Store) error {
	s, err := store.LoadSettings()
	if err != nil {
		return err
	}

	skin, _ := crossy.LookupSkin(s.Skin)
	fmt.Printf("%-6s %s\n", storage.KeySkin, skin.Name)
	fmt.Printf("%-6s %t\n", storage.KeyMusic, s.Music)
	fmt.Printf("%-6s %t\n", storage.KeyEffects, s.Effects)
	return nil
}

func runSettingsSet(_ *cobra.Command, args []string) {
	k, v, err := normalizeSetting(args[0], args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	withStore(func(store *storage.Store) error {
		if err := store.SetSetting(k, v); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", k, v)
		return nil
	})
}

// normalizeSetting checks a key and value from the command line and returns
// them in stored form.
func normalizeSetting(k, v string) (string, string, error) {
	switch k {
	case storage.KeySkin:
		if _, ok := crossy.LookupSkin(v); !ok {
			return "", "", fmt.Errorf("unknown skin %q (want one of %v)", v, crossy.SkinNames())
		}
		return k, v, nil
	case storage.KeyMusic, storage.KeyEffects:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return "", "", fmt.Errorf("%s takes true or false, got %q", k, v)
		}
		return k, strconv.FormatBool(b), nil
	default:
		return "", "", fmt.Errorf("unknown setting %q", k)
	}
}
