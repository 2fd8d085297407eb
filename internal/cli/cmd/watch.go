package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/colorscheme"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the theme state whenever the system preference changes",
	Long: `Run a theme controller and print every published state.

Desktop changes are followed with 'gsettings monitor' when system.monitor
is enabled. --interval additionally re-reads every detector periodically,
which also picks up THEMESYNC_SYSTEM_SCHEME or GTK_THEME changes.

Examples:
  themesync watch
  themesync watch --interval 5s`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "re-read detectors at this interval (0 disables)")
}

func runWatch(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl, _ := app.NewController()
	defer ctrl.Close()

	initial := ctrl.Initialize(ctx)

	states := make(chan entity.ThemeState, 8)
	unsubscribe := ctrl.Subscribe(func(s entity.ThemeState) {
		select {
		case states <- s:
		default:
		}
	})
	defer unsubscribe()

	app.UseScheme(initial.Effective)
	renderer := styles.NewModeRenderer(app.Theme)
	fmt.Println(renderer.Render(initial, app.Resolver.Resolve().Source))

	g, gctx := errgroup.WithContext(ctx)
	if app.Config.System.Monitor {
		g.Go(func() error {
			return runMonitor(gctx, app)
		})
	}
	if watchInterval > 0 {
		g.Go(func() error {
			pollResolver(gctx, app.Resolver, watchInterval)
			return nil
		})
	}
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case s := <-states:
				fmt.Println(renderer.RenderChange(time.Now().Format("15:04:05"), s))
			}
		}
	})

	return g.Wait()
}

func pollResolver(ctx context.Context, resolver *colorscheme.Resolver, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			resolver.Refresh()
		}
	}
}
