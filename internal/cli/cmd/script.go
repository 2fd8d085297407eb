package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/cli"
	"github.com/bnema/themesync/internal/infrastructure/injector"
)

var (
	scriptBackend string
	scriptHTML    bool
	scriptDigest  bool
	scriptAttach  bool
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Print the head script for another host page",
	Long: `Print the blocking head script rendered from the configured document
contract. Paste it as the first script in <head>, after the theme-color
meta and before any stylesheet. The attach script goes at the end of
<body>; it drops the critical dark style once the stylesheet has loaded.

The digest is the script-src source list a Content-Security-Policy needs
to allow both inline scripts.

Examples:
  themesync script --html
  themesync script --attach --html
  themesync script --backend cookie
  themesync script --digest`,
	Args: cobra.NoArgs,
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.Flags().StringVar(&scriptBackend, "backend", "", "storage backend: localStorage or cookie (default from appearance.storage_backend)")
	scriptCmd.Flags().BoolVar(&scriptHTML, "html", false, "wrap the script in a <script> element")
	scriptCmd.Flags().BoolVar(&scriptDigest, "digest", false, "print only the CSP digests of both scripts")
	scriptCmd.Flags().BoolVar(&scriptAttach, "attach", false, "print the end-of-body attach script instead")
}

// newInjector renders the head script for the backend named by flag, or
// the configured one when flag is empty.
func newInjector(app *cli.App, flag string) (*injector.Injector, error) {
	name := flag
	if name == "" {
		name = app.Config.Appearance.StorageBackend
	}
	backend, ok := injector.ParseBackend(name)
	if !ok {
		return nil, fmt.Errorf("unknown storage backend %q (valid: localStorage, cookie)", name)
	}
	return injector.New(app.Ctx(), app.Contract, injector.WithBackend(backend))
}

func runScript(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	inj, err := newInjector(app, scriptBackend)
	if err != nil {
		return err
	}

	switch {
	case scriptDigest:
		fmt.Println(strings.Join(inj.Digests(), " "))
	case scriptAttach && scriptHTML:
		fmt.Println(inj.AttachHTML())
	case scriptAttach:
		fmt.Println(inj.AttachScript())
	case scriptHTML:
		fmt.Println(inj.HeadHTML())
	default:
		fmt.Println(inj.Script())
	}
	return nil
}
