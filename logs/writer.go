package logs

import (
	"io"
	"os"
)

// Writer receives terminal log output, and diagnostic dumps.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
