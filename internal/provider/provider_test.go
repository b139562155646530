package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/strokemap/internal/event"
	"github.com/dshills/strokemap/internal/host"
	"github.com/dshills/strokemap/internal/input/gesture"
	"github.com/dshills/strokemap/internal/input/gesturemap"
	"github.com/dshills/strokemap/internal/input/mouse"
)

type testViewer struct {
	notes []string
}

func (v *testViewer) Name() string      { return "test" }
func (v *testViewer) Notify(msg string) { v.notes = append(v.notes, msg) }

// stroke feeds a trigger press, the given drag points and a release.
func stroke(t *testing.T, p *Provider, b mouse.Button, pts ...[2]float64) error {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, p.HandleEvent(ctx, mouse.Press(b, pts[0][0], pts[0][1])))
	for _, pt := range pts[1 : len(pts)-1] {
		require.NoError(t, p.HandleEvent(ctx, mouse.Drag(b, pt[0], pt[1])))
	}
	last := pts[len(pts)-1]
	return p.HandleEvent(ctx, mouse.Release(b, last[0], last[1]))
}

func recordTopics(t *testing.T, p *Provider) *[]string {
	t.Helper()
	var topics []string
	_, err := p.Bus().SubscribeFunc("gesture.*", func(ctx context.Context, evt event.Event) error {
		topics = append(topics, evt.Topic.String())
		return nil
	})
	require.NoError(t, err)
	return &topics
}

func TestProvider_StateMachine(t *testing.T) {
	p := New(host.NewHandle(&testViewer{}))
	ctx := context.Background()

	assert.Equal(t, StateIdle, p.State())

	// Non-trigger events are ignored while idle.
	require.NoError(t, p.HandleEvent(ctx, mouse.Press(mouse.ButtonLeft, 0, 0)))
	require.NoError(t, p.HandleEvent(ctx, mouse.Drag(mouse.ButtonLeft, 5, 0)))
	assert.Equal(t, StateIdle, p.State())

	require.NoError(t, p.HandleEvent(ctx, mouse.Press(mouse.ButtonRight, 0, 0)))
	assert.Equal(t, StateDragging, p.State())

	require.NoError(t, p.HandleEvent(ctx, mouse.Drag(mouse.ButtonRight, 3, 0)))
	require.NoError(t, p.HandleEvent(ctx, mouse.Drag(mouse.ButtonRight, 3, 0)))
	d := p.Drag()
	assert.True(t, d.Active)
	assert.Equal(t, mouse.ButtonRight, d.Button)
	assert.Equal(t, 2, d.Points)
	assert.Equal(t, mouse.Position{X: 3}, d.CurrentPos)
	assert.Len(t, p.Path(), 2)

	require.NoError(t, p.HandleEvent(ctx, mouse.Release(mouse.ButtonRight, 3, 0)))
	assert.Equal(t, StateIdle, p.State())
	assert.Nil(t, p.Path())
	assert.False(t, p.Drag().Active)
}

func TestProvider_DispatchesBinding(t *testing.T) {
	v := &testViewer{}
	p := New(host.NewHandle(v))

	var got gesture.Combo
	var gotViewer host.Viewer
	err := p.Binder(gesture.Text("right-down"))(func(ctx context.Context, hv host.Viewer) error {
		got, _ = gesturemap.ComboFrom(ctx)
		gotViewer = hv
		return nil
	})
	require.NoError(t, err)
	topics := recordTopics(t, p)

	err = stroke(t, p, mouse.ButtonRight, [2]float64{0, 0}, [2]float64{5, 0}, [2]float64{10, 0}, [2]float64{10, 5}, [2]float64{10, 10})
	require.NoError(t, err)

	assert.Equal(t, "right-down", got.Words())
	assert.Same(t, v, gotViewer)
	assert.Equal(t, []string{"gesture.completed", "gesture.dispatched"}, *topics)
}

func TestProvider_UnmatchedIsNotAnError(t *testing.T) {
	p := New(host.NewHandle(&testViewer{}))
	topics := recordTopics(t, p)

	var result Result
	_, err := p.OnGesture(func(ctx context.Context, r Result) error {
		result = r
		return nil
	})
	require.NoError(t, err)

	err = stroke(t, p, mouse.ButtonRight, [2]float64{0, 0}, [2]float64{0, 1}, [2]float64{0, 2}, [2]float64{0, 3})
	require.NoError(t, err)

	assert.Equal(t, []string{"gesture.completed", "gesture.unmatched"}, *topics)
	assert.True(t, result.Combo.Equal(gesture.MustNew(gesture.Down)))
	assert.Equal(t, 4, result.Points)
	assert.Empty(t, result.Action)
}

func TestProvider_ClickWithoutMovement(t *testing.T) {
	p := New(host.NewHandle(&testViewer{}))
	noop := gesturemap.NewBinding(func(ctx context.Context, v host.Viewer) error { return nil })
	assert.ErrorIs(t, p.Register(gesture.Empty, noop), gesture.ErrInvalidGesture)
	assert.ErrorIs(t, p.Register(gesture.Code(0), noop), gesture.ErrInvalidGesture)
	topics := recordTopics(t, p)

	ctx := context.Background()
	require.NoError(t, p.HandleEvent(ctx, mouse.Press(mouse.ButtonRight, 4, 4)))
	require.NoError(t, p.HandleEvent(ctx, mouse.Release(mouse.ButtonRight, 4, 4)))

	assert.Equal(t, []string{"gesture.completed", "gesture.unmatched"}, *topics)
}

func TestProvider_ReleaseOfOtherButtonIgnored(t *testing.T) {
	p := New(host.NewHandle(&testViewer{}))
	ctx := context.Background()

	require.NoError(t, p.HandleEvent(ctx, mouse.Press(mouse.ButtonRight, 0, 0)))
	require.NoError(t, p.HandleEvent(ctx, mouse.Release(mouse.ButtonLeft, 1, 0)))
	assert.Equal(t, StateDragging, p.State())

	// Terminals report releases without a button.
	require.NoError(t, p.HandleEvent(ctx, mouse.Release(mouse.ButtonNone, 5, 0)))
	assert.Equal(t, StateIdle, p.State())
}

func TestProvider_Triggers(t *testing.T) {
	tests := []struct {
		name    string
		trigger mouse.Trigger
		press   mouse.Event
		want    State
	}{
		{"right click", mouse.TriggerRightClick, mouse.Press(mouse.ButtonRight, 0, 0), StateDragging},
		{"ctrl without modifier", mouse.TriggerCtrl, mouse.Press(mouse.ButtonLeft, 0, 0), StateIdle},
		{"ctrl", mouse.TriggerCtrl, mouse.Press(mouse.ButtonLeft, 0, 0).WithModifiers(mouse.ModCtrl), StateDragging},
		{"shift with extra", mouse.TriggerShift, mouse.Press(mouse.ButtonLeft, 0, 0).WithModifiers(mouse.ModShift | mouse.ModAlt), StateDragging},
		{"shift wrong button", mouse.TriggerShift, mouse.Press(mouse.ButtonRight, 0, 0).WithModifiers(mouse.ModShift), StateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(host.NewHandle(&testViewer{}), WithTrigger(tt.trigger))
			require.NoError(t, p.HandleEvent(context.Background(), tt.press))
			assert.Equal(t, tt.want, p.State())
			assert.Equal(t, tt.trigger, p.Trigger())
		})
	}
}

func TestProvider_Abort(t *testing.T) {
	p := New(host.NewHandle(&testViewer{}))
	called := false
	require.NoError(t, p.Register(gesture.Text("right"), gesturemap.NewBinding(func(ctx context.Context, v host.Viewer) error {
		called = true
		return nil
	})))
	topics := recordTopics(t, p)
	ctx := context.Background()

	// Aborting while idle is a no-op.
	require.NoError(t, p.Abort(ctx))
	assert.Empty(t, *topics)

	require.NoError(t, p.HandleEvent(ctx, mouse.Press(mouse.ButtonRight, 0, 0)))
	require.NoError(t, p.HandleEvent(ctx, mouse.Drag(mouse.ButtonRight, 10, 0)))
	require.NoError(t, p.Abort(ctx))

	assert.Equal(t, StateIdle, p.State())
	assert.False(t, called)
	assert.Equal(t, []string{"gesture.cancelled"}, *topics)

	// The next release belongs to no drag.
	require.NoError(t, p.HandleEvent(ctx, mouse.Release(mouse.ButtonRight, 10, 0)))
	assert.False(t, called)
}

func TestProvider_CallbackError(t *testing.T) {
	p := New(host.NewHandle(&testViewer{}))
	boom := errors.New("boom")
	require.NoError(t, p.Register(gesture.Text("left"),
		gesturemap.NewBinding(func(ctx context.Context, v host.Viewer) error { return boom }).WithAction("explode")))

	var failed Result
	_, err := p.Subscribe(event.TopicGestureFailed, func(ctx context.Context, r Result) error {
		failed = r
		return nil
	})
	require.NoError(t, err)

	err = stroke(t, p, mouse.ButtonRight, [2]float64{10, 0}, [2]float64{5, 0}, [2]float64{0, 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var de *DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "explode", de.Action)
	assert.Equal(t, "left", de.Combo.Words())
	assert.Contains(t, de.Error(), "gesture left (explode)")

	assert.Equal(t, "explode", failed.Action)
	assert.ErrorIs(t, failed.Err, boom)
}

func TestProvider_DetachedHost(t *testing.T) {
	h := host.NewHandle(&testViewer{})
	p := New(h)
	called := false
	require.NoError(t, p.Register(gesture.Text("up"), gesturemap.NewBinding(func(ctx context.Context, v host.Viewer) error {
		called = true
		return nil
	})))

	h.Detach()
	err := stroke(t, p, mouse.ButtonRight, [2]float64{0, 10}, [2]float64{0, 5}, [2]float64{0, 0})
	assert.ErrorIs(t, err, host.ErrHostUnavailable)
	assert.False(t, called)
}

func TestProvider_SubscriberErrorSurfaces(t *testing.T) {
	p := New(host.NewHandle(&testViewer{}))
	bad := errors.New("subscriber failed")
	_, err := p.OnGesture(func(ctx context.Context, r Result) error { return bad })
	require.NoError(t, err)

	err = stroke(t, p, mouse.ButtonRight, [2]float64{0, 0}, [2]float64{5, 0})
	assert.ErrorIs(t, err, bad)
	assert.Equal(t, StateIdle, p.State())
}

func TestProvider_SharedRegistryAndBus(t *testing.T) {
	reg := gesturemap.NewRegistry()
	bus := event.NewBus()
	p := New(host.NewHandle(&testViewer{}), WithRegistry(reg), WithBus(bus), WithRegistry(nil))

	assert.Same(t, reg, p.Registry())
	assert.Same(t, bus, p.Bus())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "dragging", StateDragging.String())
	assert.Equal(t, "unknown", State(9).String())
}
