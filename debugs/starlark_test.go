package debugs

import (
	"testing"

	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type registers struct {
		IP       int
		Halted   bool
		internal int
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "add #1 #2 -> [0]", starlark.String("add #1 #2 -> [0]")},
		{"int", 42, starlark.MakeInt(42)},
		{"negative", -7, starlark.MakeInt(-7)},
		{"int64", int64(139629729), starlark.MakeInt64(139629729)},
		{"uint8", uint8(9), starlark.MakeUint(9)},
		{"memory", []int{1, 0, 0, 0, 99}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1), starlark.MakeInt(0), starlark.MakeInt(0), starlark.MakeInt(0), starlark.MakeInt(99),
		})},
		{"phases", [5]int{9, 8, 7, 6, 5}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(9), starlark.MakeInt(8), starlark.MakeInt(7), starlark.MakeInt(6), starlark.MakeInt(5),
		})},
		{"map", map[string]any{"ip": 4, "halted": true}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("ip"), starlark.MakeInt(4))
			d.SetKey(starlark.String("halted"), starlark.True)
			return d
		}()},
		{"struct", registers{IP: 2, Halted: false, internal: 1}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("IP"), starlark.MakeInt(2))
			d.SetKey(starlark.String("Halted"), starlark.False)
			return d
		}()},
		{"pointer", &registers{IP: 3}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("IP"), starlark.MakeInt(3))
			d.SetKey(starlark.String("Halted"), starlark.False)
			return d
		}()},
		{"nil pointer", (*registers)(nil), starlark.None},
		{"starlark value", starlark.String("x"), starlark.String("x")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		v := toStarlarkValue(func() string { return "" })
		if _, ok := v.(*starlark.Builtin); !ok {
			t.Fatalf("got %T", v)
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
