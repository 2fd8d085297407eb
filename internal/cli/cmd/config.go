package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/infrastructure/config"
)

var (
	configSection     string
	configKeysJSON    bool
	configWriteSchema bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the config file location, the effective settings and the documented keys.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, environment overrides and
normalization were applied.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List configuration keys with types and defaults",
	Long: `List every configuration key with its type, default value and accepted
values.

Examples:
  themesync config keys
  themesync config keys --section appearance
  themesync config keys --json`,
	Args: cobra.NoArgs,
	RunE: runConfigKeys,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema describing config.toml, or write it next to the
config file with --write so editors with a TOML language server can
validate and complete it.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configKeysCmd, configSchemaCmd)
	configKeysCmd.Flags().StringVar(&configSection, "section", "", "only list keys of one section")
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "print keys as JSON")
	configSchemaCmd.Flags().BoolVar(&configWriteSchema, "write", false, "write "+config.SchemaFileName+" next to the config file")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Println(app.Manager.GetConfigFile())
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if app.ConfigErr != nil {
		fmt.Fprintln(os.Stderr, app.Theme.WarningStyle.Render(styles.IconWarning+" "+app.ConfigErr.Error()+"; showing defaults"))
	}
	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runConfigKeys(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	out, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configSection})
	if err != nil {
		return err
	}
	if len(out.Keys) == 0 && configSection != "" {
		return fmt.Errorf("unknown section %q", configSection)
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		text, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}
	fmt.Println(renderer.Render(out.Keys))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if !configWriteSchema {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	dir := filepath.Dir(app.Manager.GetConfigFile())
	if err := config.WriteSchemaFile(dir); err != nil {
		return err
	}
	fmt.Println(app.Theme.StatusText(true, "Wrote "+filepath.Join(dir, config.SchemaFileName), ""))
	return nil
}
