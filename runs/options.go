package runs

import (
	"github.com/reusee/bfvm/cmds"
	"github.com/reusee/bfvm/configs"
)

// Trace logs every executed instruction
type Trace bool

// Dump pretty prints the machine after halt
type Dump bool

// TapOnHalt opens the debug repl after halt
type TapOnHalt bool

var (
	traceFlag = cmds.Switch("-trace", "log every executed instruction at debug level")
	dumpFlag  = cmds.Switch("-dump", "print machine state after halt")
	tapFlag   = cmds.Switch("-tap", "open a starlark repl on machine state after halt")
)

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag || configs.First[bool](loader, "trace"))
}

func (Module) Dump(
	loader configs.Loader,
) Dump {
	return Dump(*dumpFlag || configs.First[bool](loader, "dump"))
}

func (Module) TapOnHalt(
	loader configs.Loader,
) TapOnHalt {
	return TapOnHalt(*tapFlag || configs.First[bool](loader, "tap"))
}
