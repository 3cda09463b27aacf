package runs

import (
	"io"
	"os"

	"github.com/reusee/bfvm/configs"
	"github.com/reusee/bfvm/debugs"
	"github.com/reusee/bfvm/logs"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs configs.Module
	Debugs  debugs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Stdin feeds InputCell
type Stdin io.Reader

// Stdout receives OutputCell
type Stdout io.Writer

func (Module) Stdin(
	tapOnHalt TapOnHalt,
) Stdin {
	return stdinFor(os.Stdin, tapOnHalt)
}

func (Module) Stdout() Stdout {
	return os.Stdout
}
