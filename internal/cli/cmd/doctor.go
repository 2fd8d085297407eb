package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/cli"
	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/jsruntime"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration, system preference and storage",
	Long: `Doctor checks everything the theme runtime depends on:

- the config file loads and validates
- which system preference detectors are available and what they answer
- the preference database opens and holds a readable mode
- the head script agrees with the controller on every input

Examples:
  themesync doctor
  themesync --config ./config.toml doctor`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	report := styles.DoctorReport{
		Config: doctorConfig(app),
		System: doctorSystem(app),
		Store:  doctorStore(app),
	}
	if report.Script, err = doctorScript(app); err != nil {
		return err
	}
	report.OverallOK = len(report.Config.Errors) == 0 && report.Store.OK && report.Script.Failures == 0

	fmt.Println(styles.NewDoctorRenderer(app.Theme).Render(report))
	if !report.OverallOK {
		return fmt.Errorf("doctor found problems")
	}
	return nil
}

func doctorConfig(app *cli.App) styles.DoctorConfigReport {
	r := styles.DoctorConfigReport{File: app.Manager.GetConfigFile()}
	if app.ConfigErr != nil {
		r.Errors = append(r.Errors, app.ConfigErr.Error())
	}
	return r
}

func doctorSystem(app *cli.App) styles.DoctorSystemReport {
	var r styles.DoctorSystemReport
	for _, d := range app.Resolver.Detectors() {
		entry := styles.DoctorDetector{Name: d.Name(), Priority: d.Priority(), Available: d.Available()}
		if entry.Available {
			entry.PrefersDark, entry.Answered = d.Detect()
		}
		r.Detectors = append(r.Detectors, entry)
	}
	pref := app.Resolver.Resolve()
	r.Scheme = entity.SchemeFromDark(pref.PrefersDark)
	r.Source = pref.Source
	return r
}

func doctorStore(app *cli.App) styles.DoctorStoreReport {
	r := styles.DoctorStoreReport{Path: app.DB.Path()}
	value, ok, err := app.Store.Get(app.Ctx(), app.Contract.StorageKey)
	r.Opened = app.DB.IsInitialized()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.OK = true
	r.Stored = ok
	r.Mode = app.Contract.DefaultMode
	if mode, valid := entity.ParseThemeMode(value); ok && valid {
		r.Mode = mode
	}
	return r
}

func doctorScript(app *cli.App) (styles.DoctorScriptReport, error) {
	inj, err := newInjector(app, "")
	if err != nil {
		return styles.DoctorScriptReport{}, err
	}
	rows, failed := parityRows(app.Contract, jsruntime.CheckParity(app.Ctx(), inj))
	return styles.DoctorScriptReport{
		Backend:  string(inj.Backend()),
		Digest:   strings.Join(inj.Digests(), " "),
		Cases:    len(rows),
		Failures: failed,
	}, nil
}
