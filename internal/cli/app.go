// Package cli wires configuration, logging, the system preference reader
// and the preference store for the themesync commands.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/domain/build"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/colorscheme"
	"github.com/bnema/themesync/internal/infrastructure/config"
	"github.com/bnema/themesync/internal/infrastructure/document"
	"github.com/bnema/themesync/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/themesync/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Contract  entity.DocumentContract

	// ConfigErr is set when the config file could not be loaded; the
	// defaults are used instead.
	ConfigErr error

	Resolver *colorscheme.Resolver
	// Override is the system.override detector, nil when unset.
	Override *colorscheme.StaticDetector

	DB    *sqlite.LazyDB
	Store port.PreferenceStore

	rotator *logging.Rotator
	ctx     context.Context
}

// NewApp loads the configuration from configFile (the XDG location when
// empty) and builds the dependencies. Nothing touches the database until a
// command reads or writes a preference.
func NewApp(configFile string) (*App, error) {
	var opts []config.Option
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	mgr, err := config.NewManager(opts...)
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	loadErr := mgr.Load()
	if loadErr == nil {
		cfg = mgr.Get()
	}

	var (
		rotator *logging.Rotator
		logFile io.Writer
		fileErr error
	)
	if cfg.Logging.Dir != "" {
		rotator, fileErr = logging.NewRotator(logging.FileOptions{
			Dir:        cfg.Logging.Dir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		})
		if fileErr == nil {
			logFile = rotator
		}
	}

	logger := logging.NewWithFile(cfg.Logging.Level, cfg.Logging.Format, logFile)
	ctx := logging.WithContext(context.Background(), logger)
	if fileErr != nil {
		logger.Warn().Err(fileErr).Str("dir", cfg.Logging.Dir).Msg("file logging disabled")
	}
	if loadErr != nil {
		logger.Warn().Err(loadErr).Str("file", mgr.GetConfigFile()).Msg("using default configuration")
	}

	resolver, override := NewSystemResolver(cfg.System)
	contract := cfg.DocumentContract()

	dbPath := cfg.Database.Path
	if dbPath == "" {
		if dbPath, err = config.GetDatabaseFile(); err != nil {
			return nil, err
		}
	}
	lazy := sqlite.NewLazyDB(dbPath)

	app := &App{
		Config:    cfg,
		Manager:   mgr,
		Contract:  contract,
		ConfigErr: loadErr,
		Resolver:  resolver,
		Override:  override,
		DB:        lazy,
		Store:     sqlite.NewLazyPreferenceStore(lazy),
		rotator:   rotator,
		ctx:       ctx,
	}
	// Until a command reads the stored mode, paint with the default mode.
	app.UseScheme(entity.Resolve(contract.DefaultMode, entity.SchemeFromDark(resolver.Resolve().PrefersDark)))
	return app, nil
}

// NewSystemResolver builds the system preference reader from the enabled
// detectors. A configured override outranks them all.
func NewSystemResolver(cfg config.SystemConfig) (*colorscheme.Resolver, *colorscheme.StaticDetector) {
	var detectors []port.ColorSchemeDetector
	for _, name := range cfg.Detectors {
		switch name {
		case config.DetectorEnv:
			detectors = append(detectors, colorscheme.NewEnvDetector())
		case config.DetectorGsettings:
			detectors = append(detectors, colorscheme.NewGsettingsDetector())
		case config.DetectorPortal:
			detectors = append(detectors, colorscheme.NewPortalDetector())
		}
	}

	var override *colorscheme.StaticDetector
	if scheme, ok := parseOverride(cfg.Override); ok {
		override = colorscheme.NewStaticDetector(scheme.IsDark())
		detectors = append(detectors, override)
	}
	return colorscheme.NewResolver(detectors...), override
}

func parseOverride(s string) (entity.EffectiveScheme, bool) {
	switch entity.EffectiveScheme(s) {
	case entity.SchemeLight, entity.SchemeDark:
		return entity.EffectiveScheme(s), true
	default:
		return "", false
	}
}

// ShellDetectors returns the detectors the page shell adds next to the
// request's client hint: the override, which outranks the hint, and this
// machine's last known desktop preference, which only answers when the
// request carries no hint.
func (a *App) ShellDetectors() []port.ColorSchemeDetector {
	detectors := []port.ColorSchemeDetector{colorscheme.NewCachedDetector(a.Resolver)}
	if a.Override != nil {
		detectors = append(detectors, a.Override)
	}
	return detectors
}

// NewController creates a theme controller over the preference database
// and a headless document.
func (a *App) NewController() (*usecase.ManageThemeUseCase, *document.Document) {
	doc := document.New()
	doc.AddMeta(a.Contract.MetaName, a.Contract.Light.MetaColor)
	return usecase.NewManageThemeUseCase(a.Store, a.Resolver, document.NewSink(doc, a.Contract), a.Contract), doc
}

// UseScheme restyles the terminal output with the palette of scheme.
func (a *App) UseScheme(scheme entity.EffectiveScheme) {
	a.Theme = styles.NewTheme(a.Config, scheme)
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.rotator != nil {
		errs = append(errs, a.rotator.Close())
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
