package gesturemap

import (
	"fmt"
	"sort"

	"github.com/dshills/strokemap/internal/input/gesture"
)

// Registry maps combos to bindings.
type Registry struct {
	// bindings is keyed by combo code.
	bindings map[uint64]Binding
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[uint64]Binding),
	}
}

// RegisterOption configures Register.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	overwrite bool
}

// WithOverwrite allows Register to replace an existing binding.
func WithOverwrite() RegisterOption {
	return func(c *registerConfig) {
		c.overwrite = true
	}
}

// Overwrite sets overwrite from a flag, for callers holding a bool.
func Overwrite(allow bool) RegisterOption {
	return func(c *registerConfig) {
		c.overwrite = allow
	}
}

// Register binds spec to b. It fails with ErrDuplicateGesture when the
// combo is already bound, unless WithOverwrite is given. The empty combo
// is a click or scribble, not a gesture, and cannot be bound.
func (r *Registry) Register(spec gesture.Spec, b Binding, opts ...RegisterOption) error {
	var cfg registerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	combo, err := gesture.Resolve(spec)
	if err != nil {
		return err
	}
	if combo.IsEmpty() {
		return fmt.Errorf("%w: empty gesture cannot be bound", gesture.ErrInvalidGesture)
	}
	if b.Callback == nil {
		return fmt.Errorf("%w: %s", ErrNilCallback, combo.Words())
	}
	if existing, ok := r.bindings[combo.Code()]; ok && !cfg.overwrite {
		return fmt.Errorf("%w: %s bound to %s", ErrDuplicateGesture, combo.Words(), existing.Label())
	}

	b.Combo = combo
	r.bindings[combo.Code()] = b
	return nil
}

// Binder returns a function that registers a callback for spec.
// It is the decorator form of Register.
func (r *Registry) Binder(spec gesture.Spec, opts ...RegisterOption) func(Callback) error {
	return func(cb Callback) error {
		return r.Register(spec, NewBinding(cb).WithSource("code"), opts...)
	}
}

// Set binds spec to b, replacing any existing binding.
func (r *Registry) Set(spec gesture.Spec, b Binding) error {
	return r.Register(spec, b, WithOverwrite())
}

// Get returns the binding for spec.
func (r *Registry) Get(spec gesture.Spec) (Binding, error) {
	combo, err := gesture.Resolve(spec)
	if err != nil {
		return Binding{}, err
	}
	b, ok := r.Lookup(combo)
	if !ok {
		return Binding{}, fmt.Errorf("%w: %s", ErrGestureNotFound, combo.Words())
	}
	return b, nil
}

// Lookup returns the binding for an already resolved combo.
func (r *Registry) Lookup(c gesture.Combo) (Binding, bool) {
	b, ok := r.bindings[c.Code()]
	return b, ok
}

// Contains reports whether spec is bound. A spec that does not parse is
// simply not present.
func (r *Registry) Contains(spec gesture.Spec) bool {
	combo, err := gesture.Resolve(spec)
	if err != nil {
		return false
	}
	_, ok := r.bindings[combo.Code()]
	return ok
}

// Delete removes the binding for spec.
func (r *Registry) Delete(spec gesture.Spec) error {
	combo, err := gesture.Resolve(spec)
	if err != nil {
		return err
	}
	if _, ok := r.bindings[combo.Code()]; !ok {
		return fmt.Errorf("%w: %s", ErrGestureNotFound, combo.Words())
	}
	delete(r.bindings, combo.Code())
	return nil
}

// RemoveSource deletes every binding whose Source equals source and
// returns how many were removed.
func (r *Registry) RemoveSource(source string) int {
	n := 0
	for code, b := range r.bindings {
		if b.Source == source {
			delete(r.bindings, code)
			n++
		}
	}
	return n
}

// Len returns the number of bindings.
func (r *Registry) Len() int {
	return len(r.bindings)
}

// Combos returns the bound combos ordered by code.
func (r *Registry) Combos() []gesture.Combo {
	bindings := r.Bindings()
	out := make([]gesture.Combo, len(bindings))
	for i, b := range bindings {
		out[i] = b.Combo
	}
	return out
}

// Bindings returns all bindings ordered by combo code.
func (r *Registry) Bindings() []Binding {
	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Combo.Code() < out[j].Combo.Code()
	})
	return out
}
