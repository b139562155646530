package lua

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/strokemap/internal/host"
	"github.com/dshills/strokemap/internal/input/gesture"
	"github.com/dshills/strokemap/internal/input/gesturemap"
)

// SourcePrefix prefixes the binding source of every script.
const SourcePrefix = "lua:"

// Engine loads gesture scripts into a registry.
type Engine struct {
	state    *State
	registry *gesturemap.Registry
	actions  *gesturemap.ActionTable
	logger   *log.Logger
	timeout  time.Duration

	// source tags bindings made by the script currently loading.
	source string
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithActions sets the actions scripts can bind by name.
func WithActions(t *gesturemap.ActionTable) EngineOption {
	return func(e *Engine) {
		e.actions = t
	}
}

// WithLogger sets the logger used by gesture.log.
func WithLogger(l *log.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithTimeout bounds each script load and callback. Zero disables it.
func WithTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.timeout = d
	}
}

// NewEngine creates an engine that registers into reg.
func NewEngine(reg *gesturemap.Registry, opts ...EngineOption) *Engine {
	e := &Engine{
		registry: reg,
		actions:  gesturemap.DefaultActions(),
		logger:   log.New(io.Discard),
		timeout:  DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = NewState(WithExecutionTimeout(e.timeout))
	e.install()
	return e
}

// Close releases the Lua state. Bindings already registered keep their
// callbacks but fail with ErrStateClosed when invoked.
func (e *Engine) Close() error {
	return e.state.Close()
}

// LoadFile runs the script at path. Bindings previously made by the same
// file are removed first, so loading again acts as a reload.
func (e *Engine) LoadFile(ctx context.Context, path string) error {
	source := SourcePrefix + filepath.Base(path)
	return e.load(ctx, source, func() error {
		return e.state.DoFile(ctx, path)
	})
}

// LoadString runs code as the script name.
func (e *Engine) LoadString(ctx context.Context, name, code string) error {
	return e.load(ctx, SourcePrefix+name, func() error {
		return e.state.DoString(ctx, code)
	})
}

// LoadFiles loads each path and returns every failure joined.
func (e *Engine) LoadFiles(ctx context.Context, paths ...string) error {
	var errs []error
	for _, p := range paths {
		if err := e.LoadFile(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (e *Engine) load(ctx context.Context, source string, run func() error) error {
	removed := e.registry.RemoveSource(source)
	e.source = source
	defer func() { e.source = "" }()

	if err := run(); err != nil {
		return fmt.Errorf("load %s: %w", source, err)
	}
	e.logger.Debug("script loaded", "source", source, "replaced", removed)
	return nil
}

func (e *Engine) install() {
	L := e.state.L
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"bind":   e.luaBind,
		"unbind": e.luaUnbind,
		"bound":  e.luaBound,
		"code":   e.luaCode,
		"format": e.luaFormat,
		"list":   e.luaList,
		"log":    e.luaLog,
	})
	L.SetGlobal("gesture", mod)
}

// checkSpec reads argument n as a gesture spec and resolves it.
func checkSpec(L *lua.LState, n int) gesture.Combo {
	spec, err := toSpec(L.CheckAny(n))
	if err != nil {
		L.ArgError(n, err.Error())
		return gesture.Empty
	}
	combo, err := gesture.Resolve(spec)
	if err != nil {
		L.ArgError(n, err.Error())
		return gesture.Empty
	}
	return combo
}

// gesture.bind(spec, handler [, opts])
func (e *Engine) luaBind(L *lua.LState) int {
	combo := checkSpec(L, 1)

	var b gesturemap.Binding
	switch h := L.CheckAny(2).(type) {
	case *lua.LFunction:
		b = gesturemap.NewBinding(e.callback(h))
	case lua.LString:
		var err error
		b, err = e.actions.Binding(string(h), "")
		if err != nil {
			L.ArgError(2, err.Error())
			return 0
		}
	default:
		L.ArgError(2, "function or action name expected, got "+h.Type().String())
		return 0
	}

	var opts []gesturemap.RegisterOption
	switch o := L.Get(3).(type) {
	case lua.LBool:
		opts = append(opts, gesturemap.Overwrite(bool(o)))
	case *lua.LTable:
		opts = append(opts, gesturemap.Overwrite(lua.LVAsBool(o.RawGetString("overwrite"))))
		if desc, ok := o.RawGetString("description").(lua.LString); ok {
			b = b.WithDescription(string(desc))
		}
	}

	source := e.source
	if source == "" {
		source = SourcePrefix + "runtime"
	}
	if err := e.registry.Register(combo, b.WithSource(source), opts...); err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

// gesture.unbind(spec) -> bool
func (e *Engine) luaUnbind(L *lua.LState) int {
	combo := checkSpec(L, 1)
	L.Push(lua.LBool(e.registry.Delete(combo) == nil))
	return 1
}

// gesture.bound(spec) -> bool
func (e *Engine) luaBound(L *lua.LState) int {
	combo := checkSpec(L, 1)
	L.Push(lua.LBool(e.registry.Contains(combo)))
	return 1
}

// gesture.code(spec) -> number
func (e *Engine) luaCode(L *lua.LState) int {
	combo := checkSpec(L, 1)
	if code := combo.Code(); code > maxNumberCode {
		L.Push(lua.LString(fmt.Sprintf("0x%x", code)))
	} else {
		L.Push(lua.LNumber(code))
	}
	return 1
}

// gesture.format(spec [, notation]) -> string
func (e *Engine) luaFormat(L *lua.LState) int {
	combo := checkSpec(L, 1)
	n, err := gesture.ParseNotation(L.OptString(2, "word"))
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	s, err := combo.Format(n)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	L.Push(lua.LString(s))
	return 1
}

// gesture.list() -> {words...}
func (e *Engine) luaList(L *lua.LState) int {
	t := L.NewTable()
	for _, c := range e.registry.Combos() {
		t.Append(lua.LString(c.Words()))
	}
	L.Push(t)
	return 1
}

// gesture.log(msg)
func (e *Engine) luaLog(L *lua.LState) int {
	e.logger.Info(L.CheckString(1), "source", e.source)
	return 0
}

// callback adapts a Lua function to a binding callback. The function is
// called with a viewer table and the combo in word form.
func (e *Engine) callback(fn *lua.LFunction) gesturemap.Callback {
	return func(ctx context.Context, v host.Viewer) error {
		combo, _ := gesturemap.ComboFrom(ctx)
		return e.state.CallFunction(ctx, fn, func(L *lua.LState) []lua.LValue {
			return []lua.LValue{viewerTable(L, v), lua.LString(combo.Words())}
		})
	}
}
