package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/strokemap/internal/host"
	"github.com/dshills/strokemap/internal/input/gesture"
	"github.com/dshills/strokemap/internal/input/gesturemap"
)

func noop(ctx context.Context, v host.Viewer) error { return nil }

func TestSession_NoActiveProvider(t *testing.T) {
	s := NewSession()

	_, err := s.Current()
	assert.ErrorIs(t, err, ErrNoActiveProvider)

	err = s.RegisterGesture(gesture.Text("up"), gesturemap.NewBinding(noop))
	assert.ErrorIs(t, err, ErrNoActiveProvider)

	err = s.Binder(gesture.Text("up"))(noop)
	assert.ErrorIs(t, err, ErrNoActiveProvider)

	var nilSession *Session
	_, err = nilSession.Current()
	assert.ErrorIs(t, err, ErrNoActiveProvider)
}

func TestSession_TracksLatestProvider(t *testing.T) {
	s := NewSession()
	first := New(host.NewHandle(&testViewer{}), WithSession(s))
	second := New(host.NewHandle(&testViewer{}), WithSession(s))

	cur, err := s.Current()
	require.NoError(t, err)
	assert.Same(t, second, cur)

	require.NoError(t, s.RegisterGesture(gesture.Text("up-left"), gesturemap.NewBinding(noop)))
	assert.True(t, second.Registry().Contains(gesture.Text("^<")))
	assert.False(t, first.Registry().Contains(gesture.Text("^<")))
}

func TestSession_Duplicate(t *testing.T) {
	s := NewSession()
	p := New(host.NewHandle(&testViewer{}), WithSession(s))

	require.NoError(t, s.Binder(gesture.Code(0x41))(noop))
	err := s.Binder(gesture.Text("↑←"))(noop)
	assert.ErrorIs(t, err, gesturemap.ErrDuplicateGesture)

	require.NoError(t, s.RegisterGesture(gesture.Words("up", "left"), gesturemap.NewBinding(noop), gesturemap.WithOverwrite()))
	assert.Equal(t, 1, p.Registry().Len())
}
