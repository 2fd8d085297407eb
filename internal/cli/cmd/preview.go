package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/cli"
	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/infrastructure/document"
	"github.com/bnema/themesync/internal/infrastructure/injector"
	"github.com/bnema/themesync/internal/infrastructure/jsruntime"
)

var (
	previewBackend string
	previewJSON    bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show what a page looks like before and after the controller takes over",
	Long: `Run the head script against a headless document backed by the local
preference and the system preference, print the painted state, then let a
theme controller claim the same document and print the reconciled state.

The two states agree unless the head script and the controller disagree
on the resolution rule.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewBackend, "backend", "", "storage backend the script reads (default from appearance.storage_backend)")
	previewCmd.Flags().BoolVar(&previewJSON, "json", false, "print both snapshots as JSON")
}

type previewPhase struct {
	Phase    string            `json:"phase"`
	Classes  []string          `json:"classes"`
	Attrs    map[string]string `json:"attributes"`
	Style    map[string]string `json:"style,omitempty"`
	Elements []string          `json:"head_elements,omitempty"`
	Meta     string            `json:"meta,omitempty"`
}

func runPreview(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	inj, err := newInjector(app, previewBackend)
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	doc := document.New()
	doc.AddMeta(app.Contract.MetaName, app.Contract.Light.MetaColor)

	env := jsruntime.Environment{Document: doc, System: app.Resolver}
	if inj.Backend() == injector.BackendCookie {
		if env.Cookies, err = storedCookie(app); err != nil {
			return err
		}
	} else {
		env.Storage = app.Store
	}
	if err := jsruntime.Run(ctx, inj.Script(), env); err != nil {
		return err
	}
	painted := newPreviewPhase(app, doc)

	ctrl := usecase.NewManageThemeUseCase(app.Store, app.Resolver, document.NewSink(doc, app.Contract), app.Contract)
	defer ctrl.Close()
	state := ctrl.Initialize(ctx)
	reconciled := newPreviewPhase(app, doc)

	if previewJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode([]previewPhase{painted, reconciled})
	}

	app.UseScheme(state.Effective)
	t := app.Theme
	fmt.Println(t.Title.Render("Preview") + " " + t.MutedBadge(string(inj.Backend())))
	for _, p := range []previewPhase{painted, reconciled} {
		fmt.Println()
		fmt.Println(t.Highlight.Render(p.Phase))
		printPreviewLine(t, "class", strings.Join(p.Classes, " "))
		for _, name := range sortedKeys(p.Attrs) {
			printPreviewLine(t, name, p.Attrs[name])
		}
		for _, name := range sortedKeys(p.Style) {
			printPreviewLine(t, name, p.Style[name])
		}
		if len(p.Elements) > 0 {
			printPreviewLine(t, "head", strings.Join(p.Elements, ", "))
		}
		printPreviewLine(t, app.Contract.MetaName, p.Meta)
	}
	fmt.Println()
	fmt.Println(styles.NewModeRenderer(t).Render(state, app.Resolver.Current().Source))
	return nil
}

func newPreviewPhase(app *cli.App, doc *document.Document) previewPhase {
	snap := doc.Snapshot()
	p := previewPhase{
		Phase:   snap.Owner.String(),
		Classes: snap.Classes,
		Attrs:   snap.Attrs,
	}
	if len(snap.Style) > 0 {
		p.Style = make(map[string]string, len(snap.Style))
		for _, e := range snap.Style {
			p.Style[e.Name] = e.Value
		}
	}
	for _, el := range snap.Head {
		if el.ID != "" {
			p.Elements = append(p.Elements, el.Tag+"#"+el.ID)
		}
	}
	p.Meta, _ = doc.Meta(app.Contract.MetaName)
	return p
}

// storedCookie renders the local preference as the cookie header a
// browser would send.
func storedCookie(app *cli.App) (string, error) {
	value, ok, err := app.Store.Get(app.Ctx(), app.Contract.StorageKey)
	if err != nil {
		return "", fmt.Errorf("read stored mode: %w", err)
	}
	if !ok {
		return "", nil
	}
	return app.Contract.StorageKey + "=" + url.PathEscape(value), nil
}

func printPreviewLine(t *styles.Theme, name, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Printf("  %s %s\n", t.Subtle.Render(fmt.Sprintf("%-16s", name)), t.Normal.Render(value))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
