package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/themesync/internal/cli"
	"github.com/bnema/themesync/internal/infrastructure/colorscheme"
	"github.com/bnema/themesync/internal/infrastructure/config"
	"github.com/bnema/themesync/internal/infrastructure/shell"
	"github.com/bnema/themesync/internal/logging"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the auth and dashboard pages with the theme chrome",
	Long: `Serve the placeholder sign-in, registration and dashboard pages with the
head script, the theme stylesheet, the mode controls and the theme API.

Each request runs its own theme controller over the preference cookie and
the Sec-CH-Prefers-Color-Scheme client hint. Without a hint, the desktop
preference of this machine applies.

Config edits are applied without a restart.

Examples:
  themesync serve
  themesync serve --listen :9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (overrides server.listen)")
}

func runServe(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	cfg := app.Config
	if serveListen != "" {
		cfg.Server.Listen = serveListen
	}

	srv, err := shell.New(ctx, cfg, shell.WithDetectors(app.ShellDetectors()...))
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(gctx)
	})

	if app.ConfigErr == nil {
		app.Manager.OnConfigChange(func(next *config.Config) {
			if serveListen != "" {
				next.Server.Listen = serveListen
			}
			if err := srv.UpdateConfig(gctx, next); err != nil {
				log.Warn().Err(err).Msg("config reload rejected")
				return
			}
			log.Info().Msg("config reloaded")
		})
		if err := app.Manager.Watch(gctx); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	if cfg.System.Monitor {
		g.Go(func() error {
			return runMonitor(gctx, app)
		})
	}

	return g.Wait()
}

// runMonitor follows desktop changes until ctx is done. A missing or
// failing gsettings only degrades to the values read at startup.
func runMonitor(ctx context.Context, app *cli.App) error {
	log := logging.FromContext(ctx)
	monitor := colorscheme.NewMonitor(app.Resolver)
	if !monitor.Available() {
		log.Debug().Msg("gsettings not found, desktop changes are not followed")
		return nil
	}
	if err := monitor.Run(ctx); err != nil {
		log.Warn().Err(err).Msg("desktop monitor stopped")
	}
	return nil
}
