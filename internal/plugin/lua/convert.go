package lua

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/strokemap/internal/host"
	"github.com/dshills/strokemap/internal/input/gesture"
)

// maxNumberCode is the largest code a Lua number holds exactly. Larger
// codes travel as "0x..." strings.
const maxNumberCode = 1 << 53

// toSpec converts a Lua value into a gesture spec.
// Strings are text or "0x" codes, numbers are codes, and arrays are
// direction words.
func toSpec(lv lua.LValue) (gesture.Spec, error) {
	switch v := lv.(type) {
	case lua.LString:
		s := strings.TrimSpace(string(v))
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			n, err := strconv.ParseUint(s[2:], 16, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", gesture.ErrInvalidCode, s)
			}
			return gesture.Code(n), nil
		}
		return gesture.Text(s), nil
	case lua.LNumber:
		n := float64(v)
		if n < 0 || n != math.Trunc(n) {
			return nil, fmt.Errorf("%w: code %v is not a non-negative integer", ErrInvalidSpec, n)
		}
		if n > maxNumberCode {
			return nil, fmt.Errorf("%w: code %v is too large for a number, pass it as a \"0x\" string", ErrInvalidSpec, n)
		}
		return gesture.Code(uint64(n)), nil
	case *lua.LTable:
		var seq gesture.Sequence
		var bad lua.LValue
		n := v.Len()
		for i := 1; i <= n; i++ {
			item, ok := v.RawGetInt(i).(lua.LString)
			if !ok {
				bad = v.RawGetInt(i)
				break
			}
			seq = append(seq, gesture.Word(string(item)))
		}
		if bad != nil {
			return nil, fmt.Errorf("%w: sequence item %s is not a string", ErrInvalidSpec, bad.Type())
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidSpec, lv.Type())
	}
}

// viewerTable exposes v to a callback. clear and quit raise an error when
// the viewer does not support them.
func viewerTable(L *lua.LState, v host.Viewer) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("name", lua.LString(v.Name()))
	t.RawSetString("notify", L.NewFunction(func(L *lua.LState) int {
		v.Notify(L.CheckString(1))
		return 0
	}))
	t.RawSetString("clear", L.NewFunction(func(L *lua.LState) int {
		c, ok := v.(host.Clearer)
		if !ok {
			L.RaiseError("viewer %s cannot clear", v.Name())
			return 0
		}
		c.Clear()
		return 0
	}))
	t.RawSetString("quit", L.NewFunction(func(L *lua.LState) int {
		q, ok := v.(host.Quitter)
		if !ok {
			L.RaiseError("viewer %s cannot quit", v.Name())
			return 0
		}
		q.Quit()
		return 0
	}))
	return t
}
