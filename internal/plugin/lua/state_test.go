package lua

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	glua "github.com/yuin/gopher-lua"
)

func TestState_DoString(t *testing.T) {
	s := NewState()
	defer s.Close()

	require.NoError(t, s.DoString(context.Background(), `x = 1 + 1`))
	assert.Equal(t, glua.LNumber(2), s.L.GetGlobal("x"))

	assert.Error(t, s.DoString(context.Background(), `invalid lua code !!!`))
}

func TestState_SafeLibraries(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, name := range []string{"string", "table", "math"} {
		assert.NotEqual(t, glua.LNil, s.L.GetGlobal(name), name)
	}
	for _, name := range []string{"io", "os", "debug", "package", "require", "dofile", "loadfile", "load"} {
		assert.Equal(t, glua.LNil, s.L.GetGlobal(name), name)
	}
}

func TestState_CallFunction(t *testing.T) {
	s := NewState(WithExecutionTimeout(0))
	defer s.Close()

	require.NoError(t, s.DoString(context.Background(), `function add(a, b) result = a + b end`))
	fn, ok := s.L.GetGlobal("add").(*glua.LFunction)
	require.True(t, ok)

	err := s.CallFunction(context.Background(), fn, func(L *glua.LState) []glua.LValue {
		return []glua.LValue{glua.LNumber(2), glua.LNumber(3)}
	})
	require.NoError(t, err)
	assert.Equal(t, glua.LNumber(5), s.L.GetGlobal("result"))
}

func TestState_CancelledContext(t *testing.T) {
	s := NewState(WithExecutionTimeout(0))
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.DoString(ctx, `while true do end`)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrExecutionTimeout)
}

func TestState_Closed(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Close())
	assert.True(t, s.IsClosed())
	assert.ErrorIs(t, s.DoString(context.Background(), `x = 1`), ErrStateClosed)
}
