package debugs

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/bfvm/logs"
	"github.com/reusee/bfvm/machines"
	"github.com/reusee/bfvm/modes"
	"github.com/reusee/bfvm/programs"
	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func TestTapSkippedInTests(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		tap Tap,
		level logs.Level,
	) {
		level.Set(slog.LevelDebug)
		defer level.Set(slog.LevelWarn)
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
		if !strings.Contains(buf.String(), "tap skipped: test") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestMachineGlobals(t *testing.T) {
	m := machines.New(programs.Tokenize("++>+++<"), strings.NewReader(""), io.Discard)
	counts := make(map[programs.Instruction]int)
	for step, err := range m.Run {
		if err != nil {
			t.Fatal(err)
		}
		counts[step.Inst]++
	}

	globals := toStringDict(MachineGlobals(m, counts))
	thread := &starlark.Thread{
		Name: "test",
	}
	for expr, expected := range map[string]string{
		"ip":               "7",
		"dp":               "0",
		"halted":           "True",
		"program":          `"++>+++<"`,
		"cells[1]":         "3",
		"cell(0)":          "2",
		"cell(100)":        "0",
		"steps['IncCell']": "5",
	} {
		value, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "test", expr, globals)
		if err != nil {
			t.Fatalf("%s: %v", expr, err)
		}
		if value.String() != expected {
			t.Fatalf("%s: got %s", expr, value.String())
		}
	}
	if m.Tape.Len() != 2 {
		t.Fatalf("cell() should not materialize, got %d", m.Tape.Len())
	}
}
