package gesturemap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/strokemap/internal/host"
	"github.com/dshills/strokemap/internal/input/gesture"
)

type recordingViewer struct {
	notes   []string
	cleared bool
	quit    bool
}

func (v *recordingViewer) Name() string      { return "recorder" }
func (v *recordingViewer) Notify(msg string) { v.notes = append(v.notes, msg) }
func (v *recordingViewer) Clear()            { v.cleared = true }
func (v *recordingViewer) Quit()             { v.quit = true }

type plainViewer struct{}

func (plainViewer) Name() string  { return "plain" }
func (plainViewer) Notify(string) {}

func tagged(tag string, calls *[]string) Binding {
	return NewBinding(func(context.Context, host.Viewer) error {
		*calls = append(*calls, tag)
		return nil
	})
}

func TestRegisterAndLookupAcrossNotations(t *testing.T) {
	reg := NewRegistry()
	var calls []string
	require.NoError(t, reg.Register(gesture.Text("up-left"), tagged("a", &calls)))

	specs := []gesture.Spec{
		gesture.Text("up-left"),
		gesture.Text("↑←"),
		gesture.Text("^<"),
		gesture.Code(0x41),
		gesture.Words("up", "left"),
		gesture.MustNew(gesture.Up, gesture.Left),
	}
	for _, spec := range specs {
		b, err := reg.Get(spec)
		require.NoError(t, err)
		require.NoError(t, b.Callback(context.Background(), &recordingViewer{}))
		assert.True(t, reg.Contains(spec))
	}
	assert.Equal(t, []string{"a", "a", "a", "a", "a", "a"}, calls)
	assert.Equal(t, 1, reg.Len())
}

func TestRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	var calls []string
	require.NoError(t, reg.Register(gesture.Text("down"), tagged("first", &calls)))

	err := reg.Register(gesture.Text("v"), tagged("second", &calls))
	assert.ErrorIs(t, err, ErrDuplicateGesture)

	b, err := reg.Get(gesture.Text("down"))
	require.NoError(t, err)
	require.NoError(t, b.Callback(context.Background(), nil))
	assert.Equal(t, []string{"first"}, calls)

	require.NoError(t, reg.Register(gesture.Text("↓"), tagged("second", &calls), WithOverwrite()))
	b, err = reg.Get(gesture.Code(0x2))
	require.NoError(t, err)
	require.NoError(t, b.Callback(context.Background(), nil))
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, 1, reg.Len())
}

func TestOverwriteFlag(t *testing.T) {
	reg := NewRegistry()
	var calls []string
	require.NoError(t, reg.Register(gesture.Text("left"), tagged("x", &calls)))
	assert.ErrorIs(t, reg.Register(gesture.Text("left"), tagged("y", &calls), Overwrite(false)), ErrDuplicateGesture)
	assert.NoError(t, reg.Register(gesture.Text("left"), tagged("y", &calls), Overwrite(true)))
}

func TestBinder(t *testing.T) {
	reg := NewRegistry()
	bind := reg.Binder(gesture.Text("right-down"))

	ran := false
	require.NoError(t, bind(func(context.Context, host.Viewer) error {
		ran = true
		return nil
	}))
	assert.ErrorIs(t, bind(func(context.Context, host.Viewer) error { return nil }), ErrDuplicateGesture)

	b, err := reg.Get(gesture.Text(">v"))
	require.NoError(t, err)
	assert.Equal(t, "code", b.Source)
	require.NoError(t, b.Callback(context.Background(), nil))
	assert.True(t, ran)
}

func TestRegisterErrors(t *testing.T) {
	reg := NewRegistry()
	var calls []string

	assert.ErrorIs(t, reg.Register(gesture.Text("up-up"), tagged("a", &calls)), gesture.ErrInvalidGesture)
	assert.ErrorIs(t, reg.Register(gesture.Code(0x7), tagged("a", &calls)), gesture.ErrInvalidCode)
	assert.ErrorIs(t, reg.Register(gesture.Text("up"), Binding{}), ErrNilCallback)
	assert.Equal(t, 0, reg.Len())
}

func TestRegisterEmptyRejected(t *testing.T) {
	reg := NewRegistry()
	var calls []string

	for _, spec := range []gesture.Spec{gesture.Empty, gesture.Code(0), gesture.Text("")} {
		assert.ErrorIs(t, reg.Register(spec, tagged("a", &calls)), gesture.ErrInvalidGesture)
		assert.ErrorIs(t, reg.Set(spec, tagged("a", &calls)), gesture.ErrInvalidGesture)
	}
	assert.ErrorIs(t, reg.Binder(gesture.Code(0))(func(context.Context, host.Viewer) error { return nil }), gesture.ErrInvalidGesture)
	assert.Equal(t, 0, reg.Len())
	assert.False(t, reg.Contains(gesture.Empty))
}

func TestSetGetDelete(t *testing.T) {
	reg := NewRegistry()
	var calls []string

	require.NoError(t, reg.Set(gesture.Text("^"), tagged("a", &calls)))
	require.NoError(t, reg.Set(gesture.Text("up"), tagged("b", &calls)))
	assert.Equal(t, 1, reg.Len())

	_, err := reg.Get(gesture.Text("down"))
	assert.ErrorIs(t, err, ErrGestureNotFound)

	_, err = reg.Get(gesture.Text("sideways"))
	assert.ErrorIs(t, err, gesture.ErrInvalidGesture)

	require.NoError(t, reg.Delete(gesture.Code(0x1)))
	assert.Equal(t, 0, reg.Len())
	assert.ErrorIs(t, reg.Delete(gesture.Text("up")), ErrGestureNotFound)
	assert.ErrorIs(t, reg.Delete(gesture.Text("??")), gesture.ErrInvalidGesture)
}

func TestContainsInvalidIsFalse(t *testing.T) {
	reg := NewRegistry()
	assert.False(t, reg.Contains(gesture.Text("up-up")))
	assert.False(t, reg.Contains(gesture.Code(0xF)))
	assert.False(t, reg.Contains(nil))
}

func TestIterationOrder(t *testing.T) {
	reg := NewRegistry()
	var calls []string
	for _, s := range []string{"<>", "v", "^<", "^"} {
		require.NoError(t, reg.Register(gesture.Text(s), tagged(s, &calls)))
	}

	var got []string
	for _, c := range reg.Combos() {
		got = append(got, c.Triangles())
	}
	// Codes: ^=0x1, v=0x2, ^<=0x41, <>=0x84.
	assert.Equal(t, []string{"^", "v", "^<", "<>"}, got)
	assert.Len(t, reg.Bindings(), 4)
}

func TestRemoveSource(t *testing.T) {
	reg := NewRegistry()
	var calls []string
	require.NoError(t, reg.Register(gesture.Text("^"), tagged("a", &calls).WithSource("config")))
	require.NoError(t, reg.Register(gesture.Text("v"), tagged("b", &calls).WithSource("config")))
	require.NoError(t, reg.Register(gesture.Text("<"), tagged("c", &calls).WithSource("code")))

	assert.Equal(t, 2, reg.RemoveSource("config"))
	assert.Equal(t, 1, reg.Len())
	assert.True(t, reg.Contains(gesture.Text("<")))
}

func TestBindingLabel(t *testing.T) {
	assert.Equal(t, "viewer.clear", Binding{Action: "viewer.clear", Description: "x"}.Label())
	assert.Equal(t, "x", Binding{Description: "x"}.Label())
	assert.Equal(t, "callback", Binding{}.Label())
}
