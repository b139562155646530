// Package gesturemap maps gesture combos to callbacks.
//
// # Key Concepts
//
// Binding: a combo, the callback it runs, and where the binding came from.
//
// Registry: the combo to binding table. Keys may be given as any
// gesture.Spec and are normalized to their canonical code, so "up-left",
// "↑←", "^<" and 0x41 all address the same entry.
//
// ActionTable: named callbacks ("viewer.clear", "viewer.quit", ...) that
// configuration files and scripts bind to by name.
//
// # Overwrite Protection
//
// Register refuses to replace an existing binding unless WithOverwrite is
// given:
//
//	reg := gesturemap.NewRegistry()
//	err := reg.Register(gesture.Text("up-left"), b)
//	err = reg.Register(gesture.Text("^<"), other) // ErrDuplicateGesture
//	err = reg.Register(gesture.Text("^<"), other, gesturemap.WithOverwrite())
//
// Binder returns the same operation in decorator form:
//
//	bind := reg.Binder(gesture.Text("down-right"))
//	err := bind(func(ctx context.Context, v host.Viewer) error { ... })
//
// # Concurrency
//
// A Registry is owned by one provider and driven from the host's event
// loop. It is not safe for concurrent use.
package gesturemap
