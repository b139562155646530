package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubViewer struct{ msgs []string }

func (s *stubViewer) Name() string      { return "stub" }
func (s *stubViewer) Notify(msg string) { s.msgs = append(s.msgs, msg) }

func TestHandleLifecycle(t *testing.T) {
	v := &stubViewer{}
	h := NewHandle(v)
	require.True(t, h.Alive())

	got, err := h.Viewer()
	require.NoError(t, err)
	assert.Same(t, v, got)

	h.Detach()
	assert.False(t, h.Alive())
	_, err = h.Viewer()
	assert.ErrorIs(t, err, ErrHostUnavailable)

	h.Detach()
	assert.False(t, h.Alive())
}

func TestNilHandle(t *testing.T) {
	var h *Handle
	_, err := h.Viewer()
	assert.ErrorIs(t, err, ErrHostUnavailable)

	_, err = NewHandle(nil).Viewer()
	assert.ErrorIs(t, err, ErrHostUnavailable)
}
