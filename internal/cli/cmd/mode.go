package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/cli"
	"github.com/bnema/themesync/internal/cli/model"
	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/domain/entity"
)

var modeJSON bool

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Read or change the local theme preference",
	Long: `Read or change the theme mode stored in the local preference database.

The mode is light, dark or system. With system, the effective scheme
follows the desktop preference.`,
}

var modeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the mode and the effective scheme",
	Args:  cobra.NoArgs,
	RunE:  runModeGet,
}

var modeSetCmd = &cobra.Command{
	Use:       "set <light|dark|system>",
	Short:     "Store a mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark", "system"},
	RunE:      runModeSet,
}

var modeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Pin the scheme opposite to the one currently painted",
	Args:  cobra.NoArgs,
	RunE:  runModeToggle,
}

var modePickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose the mode interactively",
	Args:  cobra.NoArgs,
	RunE:  runModePick,
}

func init() {
	rootCmd.AddCommand(modeCmd)
	modeCmd.AddCommand(modeGetCmd, modeSetCmd, modeToggleCmd, modePickCmd)
	modeCmd.PersistentFlags().BoolVar(&modeJSON, "json", false, "print the state as JSON")
}

// withController runs fn against an initialized controller and prints the
// resulting state.
func withController(fn func(*cli.App, *usecase.ManageThemeUseCase) (entity.ThemeState, error)) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctrl, _ := app.NewController()
	defer ctrl.Close()
	ctrl.Initialize(app.Ctx())

	state, err := fn(app, ctrl)
	if err != nil {
		return err
	}
	return printState(app, state)
}

func printState(app *cli.App, state entity.ThemeState) error {
	if modeJSON {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(state)
	}
	app.UseScheme(state.Effective)
	fmt.Println(styles.NewModeRenderer(app.Theme).Render(state, app.Resolver.Resolve().Source))
	return nil
}

func runModeGet(_ *cobra.Command, _ []string) error {
	return withController(func(_ *cli.App, ctrl *usecase.ManageThemeUseCase) (entity.ThemeState, error) {
		return ctrl.State(), nil
	})
}

func runModeSet(_ *cobra.Command, args []string) error {
	mode, ok := entity.ParseThemeModeLoose(args[0])
	if !ok {
		return fmt.Errorf("invalid mode %q (valid: %s)", args[0], strings.Join(modeNames(), ", "))
	}
	return withController(func(app *cli.App, ctrl *usecase.ManageThemeUseCase) (entity.ThemeState, error) {
		return ctrl.SetMode(app.Ctx(), mode)
	})
}

func runModeToggle(_ *cobra.Command, _ []string) error {
	return withController(func(app *cli.App, ctrl *usecase.ManageThemeUseCase) (entity.ThemeState, error) {
		return ctrl.ToggleTheme(app.Ctx())
	})
}

func runModePick(_ *cobra.Command, _ []string) error {
	return withController(func(app *cli.App, ctrl *usecase.ManageThemeUseCase) (entity.ThemeState, error) {
		app.UseScheme(ctrl.State().Effective)
		m := model.NewPickerModel(app.Ctx(), app.Theme, ctrl)
		final, err := tea.NewProgram(m).Run()
		if err != nil {
			return entity.ThemeState{}, fmt.Errorf("run picker: %w", err)
		}
		picked := final.(model.PickerModel)
		if picked.Err() != nil {
			return picked.State(), picked.Err()
		}
		return picked.State(), nil
	})
}

func modeNames() []string {
	modes := entity.ThemeModes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return names
}
