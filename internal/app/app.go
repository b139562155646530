// Package app wires configuration, the gesture provider and Lua scripts
// into one application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dshills/strokemap/internal/config"
	"github.com/dshills/strokemap/internal/host"
	"github.com/dshills/strokemap/internal/input/classify"
	"github.com/dshills/strokemap/internal/input/gesturemap"
	"github.com/dshills/strokemap/internal/input/mouse"
	luaplugin "github.com/dshills/strokemap/internal/plugin/lua"
	"github.com/dshills/strokemap/internal/provider"
)

// ConfigSource tags bindings that come from the configuration file.
const ConfigSource = "config"

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty uses defaults.
	ConfigPath string

	// LogLevel overrides the configured level when set.
	LogLevel string

	// LogOutput receives log output. Defaults to os.Stderr.
	LogOutput io.Writer

	// Viewer is the host surface gestures act on. It may be nil for
	// commands that only inspect bindings.
	Viewer host.Viewer

	// Session receives the provider. A new session is created when nil.
	Session *provider.Session

	// Actions replaces the built-in action table.
	Actions *gesturemap.ActionTable
}

// Application owns the provider and everything that feeds its registry.
//
// It is not safe for concurrent use. Reload must run on the same goroutine
// as HandleMouse.
type Application struct {
	opts Options

	config   *config.Config
	logger   *log.Logger
	handle   *host.Handle
	session  *provider.Session
	provider *provider.Provider
	actions  *gesturemap.ActionTable
	scripts  *luaplugin.Engine
	watcher  *config.Watcher

	closed bool
}

// New loads configuration and builds the application.
func New(opts Options) (*Application, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, &InitError{Component: "config", Err: err}
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	a := &Application{
		opts:    opts,
		config:  cfg,
		handle:  host.NewHandle(opts.Viewer),
		session: opts.Session,
		actions: opts.Actions,
	}
	if a.session == nil {
		a.session = provider.NewSession()
	}
	if a.actions == nil {
		a.actions = gesturemap.DefaultActions()
	}

	a.logger = NewLogger(LoggerConfig{
		Level:  cfg.Logging.Level,
		Output: opts.LogOutput,
		Prefix: cfg.Logging.Prefix,
	})

	trigger, err := cfg.Trigger()
	if err != nil {
		return nil, &InitError{Component: "trigger", Err: err}
	}
	a.provider = provider.New(a.handle,
		provider.WithTrigger(trigger),
		provider.WithClassifier(classify.NewDiffClassifier(cfg.Gesture.NoiseRatio)),
		provider.WithLogger(a.logger.WithPrefix(cfg.Logging.Prefix+"/provider")),
		provider.WithSession(a.session),
	)

	if err := a.applyBindings(cfg); err != nil {
		return nil, &InitError{Component: "bindings", Err: err}
	}
	if err := a.loadScripts(context.Background(), cfg); err != nil {
		return nil, &InitError{Component: "scripts", Err: err}
	}

	a.logger.Debug("application ready",
		"trigger", trigger,
		"bindings", a.provider.Registry().Len(),
		"config", cfg.Path())
	return a, nil
}

// Config returns the active configuration.
func (a *Application) Config() *config.Config { return a.config }

// Logger returns the application logger.
func (a *Application) Logger() *log.Logger { return a.logger }

// Provider returns the gesture provider.
func (a *Application) Provider() *provider.Provider { return a.provider }

// Session returns the session holding the provider.
func (a *Application) Session() *provider.Session { return a.session }

// Actions returns the action table bindings are resolved against.
func (a *Application) Actions() *gesturemap.ActionTable { return a.actions }

// Bindings returns every registered binding ordered by combo code.
func (a *Application) Bindings() []gesturemap.Binding {
	return a.provider.Registry().Bindings()
}

// HandleMouse forwards a pointer event to the provider. Dispatch failures
// are logged and returned.
func (a *Application) HandleMouse(ctx context.Context, e mouse.Event) error {
	if a.closed {
		return ErrClosed
	}
	err := a.provider.HandleEvent(ctx, e)
	if errors.Is(err, host.ErrHostUnavailable) {
		a.logger.Warn("gesture dropped, viewer gone")
	}
	return err
}

// Path returns the in-flight drag path for overlays.
func (a *Application) Path() classify.Trajectory {
	return a.provider.Path()
}

// Abort abandons an in-flight drag.
func (a *Application) Abort(ctx context.Context) error {
	return a.provider.Abort(ctx)
}

// Reload applies cfg: trigger, noise ratio, log level, bindings and
// scripts. A failing binding or script does not stop the others; all
// failures are joined into the returned error.
func (a *Application) Reload(ctx context.Context, cfg *config.Config) error {
	if a.closed {
		return ErrClosed
	}
	trigger, err := cfg.Trigger()
	if err != nil {
		return err
	}

	a.config = cfg
	a.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	a.provider.SetTrigger(trigger)
	a.provider.SetClassifier(classify.NewDiffClassifier(cfg.Gesture.NoiseRatio))

	removed := a.provider.Registry().RemoveSource(ConfigSource)
	removed += a.dropScripts()
	var errs []error
	if a.scripts != nil {
		errs = append(errs, a.scripts.Close())
		a.scripts = nil
	}
	errs = append(errs, a.applyBindings(cfg))
	errs = append(errs, a.loadScripts(ctx, cfg))

	a.logger.Info("config reloaded",
		"path", cfg.Path(),
		"removed", removed,
		"bindings", a.provider.Registry().Len())
	return errors.Join(errs...)
}

// Watch reloads the configuration file whenever it changes. post must run
// the given function on the goroutine that calls HandleMouse.
func (a *Application) Watch(post func(func())) error {
	if a.config.Path() == "" {
		return ErrNoConfigFile
	}
	w, err := config.NewWatcher(a.config.Path(), func(cfg *config.Config, err error) {
		post(func() {
			if err != nil {
				a.logger.Error("config reload failed", "err", err)
				return
			}
			if err := a.Reload(context.Background(), cfg); err != nil {
				a.logger.Error("config reload incomplete", "err", err)
			}
		})
	}, config.WithWatchLogger(a.logger))
	if err != nil {
		return err
	}
	a.watcher = w
	return nil
}

// Close stops watching, abandons any drag and releases the script engine.
func (a *Application) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var errs []error
	if a.watcher != nil {
		errs = append(errs, a.watcher.Close())
	}
	errs = append(errs, a.provider.Abort(context.Background()))
	if a.scripts != nil {
		errs = append(errs, a.scripts.Close())
	}
	return errors.Join(errs...)
}

// applyBindings registers the configuration's bindings.
func (a *Application) applyBindings(cfg *config.Config) error {
	reg := a.provider.Registry()
	var errs []error
	for i, bc := range cfg.Bindings {
		spec, err := bc.Spec()
		if err != nil {
			errs = append(errs, fmt.Errorf("bindings[%d]: %w", i, err))
			continue
		}
		b, err := a.actions.Binding(bc.Action, ConfigSource)
		if err != nil {
			errs = append(errs, fmt.Errorf("bindings[%d]: %w", i, err))
			continue
		}
		if bc.Description != "" {
			b = b.WithDescription(bc.Description)
		}
		if err := reg.Register(spec, b, gesturemap.Overwrite(bc.Overwrite)); err != nil {
			errs = append(errs, fmt.Errorf("bindings[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// dropScripts removes every binding made by a script and returns how
// many were removed.
func (a *Application) dropScripts() int {
	reg := a.provider.Registry()
	n := 0
	for _, b := range reg.Bindings() {
		if strings.HasPrefix(b.Source, luaplugin.SourcePrefix) {
			n += reg.RemoveSource(b.Source)
		}
	}
	return n
}

// loadScripts loads cfg's scripts into a fresh Lua state. Any previous
// engine must already be closed.
func (a *Application) loadScripts(ctx context.Context, cfg *config.Config) error {

	paths := cfg.ScriptPaths()
	if len(paths) == 0 {
		return nil
	}

	timeout, err := cfg.ScriptTimeout()
	if err != nil {
		return err
	}
	a.scripts = luaplugin.NewEngine(a.provider.Registry(),
		luaplugin.WithActions(a.actions),
		luaplugin.WithLogger(a.logger.WithPrefix(cfg.Logging.Prefix+"/lua")),
		luaplugin.WithTimeout(timeout),
	)
	return a.scripts.LoadFiles(ctx, paths...)
}
