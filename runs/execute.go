package runs

import (
	"bufio"
	"context"
	"log/slog"

	"github.com/k0kubun/pp/v3"
	"github.com/reusee/bfvm/debugs"
	"github.com/reusee/bfvm/logs"
	"github.com/reusee/bfvm/machines"
	"github.com/reusee/bfvm/programs"
	"github.com/samber/lo"
)

// Execute runs program to halt against Stdin and Stdout.
// The machine is returned even on error, for inspection.
type Execute func(ctx context.Context, program programs.Program) (*machines.Machine, error)

// State is what Dump prints
type State struct {
	IP     int
	DP     int
	Halted bool
	Steps  int
	Counts map[string]int
	Cells  map[int]uint8
}

func (Module) Execute(
	logger logs.Logger,
	level logs.Level,
	writer logs.Writer,
	stdin Stdin,
	stdout Stdout,
	trace Trace,
	dump Dump,
	tapOnHalt TapOnHalt,
	tap debugs.Tap,
) Execute {
	return func(ctx context.Context, program programs.Program) (*machines.Machine, error) {
		if trace && level.Level() > slog.LevelDebug {
			level.Set(slog.LevelDebug)
		}

		// flushed by the machine after every OutputCell
		output := bufio.NewWriter(stdout)
		m := machines.New(program, stdin, output)

		counts := make(map[programs.Instruction]int)
		var runErr error
		for step, err := range m.Run {
			if err != nil {
				runErr = err
				break
			}
			counts[step.Inst]++
			if trace {
				logger.DebugContext(ctx, "step",
					"ip", step.IP,
					"inst", step.Inst,
					"dp", step.DP,
					"cell", step.Cell,
				)
			}
		}

		steps := lo.Sum(lo.Values(counts))
		if runErr != nil {
			logger.DebugContext(ctx, "machine stopped",
				"error", wrap(runErr),
				"ip", m.IP,
				"steps", steps,
			)
			runErr = logs.WrapSpan(ctx, runErr)
		} else {
			logger.InfoContext(ctx, "machine halted",
				"steps", steps,
				"cells", m.Tape.Len(),
			)
		}

		if dump {
			printer := pp.New()
			printer.SetOutput(writer)
			printer.SetColoringEnabled(false)
			printer.Println(snapshot(m, counts))
		}

		if tapOnHalt {
			tap(ctx, "halt", debugs.MachineGlobals(m, counts))
		}

		return m, runErr
	}
}

func snapshot(m *machines.Machine, counts map[programs.Instruction]int) State {
	state := State{
		IP:     m.IP,
		DP:     m.DP,
		Halted: m.Halted(),
		Steps:  lo.Sum(lo.Values(counts)),
		Counts: lo.MapKeys(counts, func(_ int, inst programs.Instruction) string {
			return inst.String()
		}),
		Cells: make(map[int]uint8, m.Tape.Len()),
	}
	for addr, v := range m.Tape.Cells() {
		state.Cells[addr] = v
	}
	return state
}
